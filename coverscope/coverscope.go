package coverscope

import "time"

// Video is one search result from the video platform. Immutable once fetched.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Channel     string    `json:"channel"`
	PublishedAt time.Time `json:"published_at"`
	// Views is the cumulative view count at fetch time.
	Views int64 `json:"views"`
	Likes int64 `json:"likes"`
	// Duration is the display form ("3:05" or "1:02:45").
	Duration     string `json:"duration"`
	DurationSecs int    `json:"duration_secs"`
	Thumbnail    string `json:"thumbnail"`
	URL          string `json:"url"`
}

// FilterDecision records whether a video survived the cover filter.
// Rule names the exclusion rule that fired; it is empty for covers.
type FilterDecision struct {
	IsCover bool   `json:"is_cover"`
	Rule    string `json:"rule,omitempty"`
}

// CoverType is a rule-based cover category with its display icon.
type CoverType struct {
	Name string `json:"name"`
	// Icon is a Bootstrap Icons class name.
	Icon string `json:"icon"`
}

// ClassifiedVideo is a cover that passed the filter, with its rule-based
// category and, when clustering ran, its experimental cluster assignment.
// The cluster never overrides the rule-based category.
type ClassifiedVideo struct {
	Video
	CoverType CoverType `json:"cover_type"`
	// Cluster is -1 when clustering was skipped.
	Cluster     int    `json:"cluster"`
	ClusterName string `json:"cluster_name,omitempty"`
}

// MonthCount is one bucket of the monthly upload histogram.
// Month is formatted "2006-01".
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ClusterStat summarizes one experimental cluster.
type ClusterStat struct {
	Name     string   `json:"name"`
	Size     int      `json:"size"`
	AvgViews float64  `json:"avg_views"`
	Keywords []string `json:"keywords"`
}

// ScatterPoint is a 2D projection of one cover for the cluster plot.
type ScatterPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	// Title feeds the chart tooltip.
	Title string `json:"title"`
}

// TrendSummary aggregates cover activity for one song query.
type TrendSummary struct {
	Score     float64       `json:"score"`
	Summary   string        `json:"summary"`
	Months    []MonthCount  `json:"months"`
	TopCovers []Video       `json:"top_covers"`
	Clusters  []ClusterStat `json:"clusters,omitempty"`
}
