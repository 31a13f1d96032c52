package results

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/mager/coverscope/classify"
	"github.com/mager/coverscope/cluster"
	"github.com/mager/coverscope/coverscope"
	"github.com/mager/coverscope/filter"
	"github.com/mager/coverscope/trend"
	"github.com/mager/coverscope/youtube"
	"go.uber.org/zap"
)

//go:embed results.html
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "results.html"))

// topN is how many most-viewed covers get the spotlight section.
const topN = 3

// ResultsHandler runs the full pipeline for one song query: fetch, filter,
// classify, cluster, aggregate, render.
type ResultsHandler struct {
	log      *zap.SugaredLogger
	searcher youtube.Searcher
	now      func() time.Time
}

func (*ResultsHandler) Pattern() string {
	return "/results"
}

// NewResultsHandler builds a new ResultsHandler.
func NewResultsHandler(log *zap.SugaredLogger, searcher youtube.Searcher) *ResultsHandler {
	return &ResultsHandler{
		log:      log,
		searcher: searcher,
		now:      time.Now,
	}
}

type noiseVideo struct {
	coverscope.Video
	Rule string
}

// analytics is the JSON blob embedded in the page for client-side charts.
type analytics struct {
	Score  float64                   `json:"score"`
	Months []coverscope.MonthCount   `json:"months"`
	Points []coverscope.ScatterPoint `json:"points"`
}

type pageData struct {
	SongQuery    string
	Error        string
	TotalResults int
	CoverCount   int
	Covers       []coverscope.ClassifiedVideo
	Noise        []noiseVideo
	Trend        coverscope.TrendSummary
	HasClusters  bool
	Analytics    template.JS
}

func (h *ResultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// FormValue covers both the GET query param and the POST form.
	song := r.FormValue("song")
	if song == "" {
		h.render(w, http.StatusOK, pageData{})
		return
	}

	videos, err := h.searcher.SearchCovers(r.Context(), song)
	if err != nil {
		h.log.Errorw("Search failed", "song", song, "error", err)
		h.render(w, http.StatusBadGateway, pageData{
			SongQuery: song,
			Error:     "Video search failed. Please try again later.",
		})
		return
	}

	covers, decisions := filter.Apply(videos)
	h.log.Infow("Filtered covers", "song", song, "total", len(videos), "covers", len(covers))

	data := pageData{
		SongQuery:    song,
		TotalResults: len(videos),
		CoverCount:   len(covers),
	}
	for i, v := range videos {
		if d := decisions[i]; !d.IsCover {
			data.Noise = append(data.Noise, noiseVideo{Video: v, Rule: d.Rule})
		}
	}

	classified := make([]coverscope.ClassifiedVideo, len(covers))
	for i, v := range covers {
		classified[i] = coverscope.ClassifiedVideo{
			Video:     v,
			CoverType: classify.Category(v),
			Cluster:   -1,
		}
	}

	summary := coverscope.TrendSummary{
		Score:     trend.Score(covers, h.now()),
		Months:    trend.MonthlyHistogram(covers),
		TopCovers: trend.TopCovers(covers, topN),
	}
	summary.Summary = trend.Summary(summary.Score)

	var points []coverscope.ScatterPoint
	clusterRes, err := cluster.Covers(covers)
	switch {
	case err == nil:
		for i := range classified {
			lab := clusterRes.Labels[i]
			classified[i].Cluster = lab
			classified[i].ClusterName = clusterRes.Names[lab]
		}
		summary.Clusters = clusterRes.Stats
		data.HasClusters = true
		points = clusterRes.Points
	case errors.Is(err, cluster.ErrInsufficientData):
		// Rule-based results still render; the experimental panel is omitted.
		h.log.Infow("Skipping clustering", "song", song, "covers", len(covers))
	default:
		h.log.Errorw("Clustering failed", "song", song, "error", err)
	}

	data.Covers = classified
	data.Trend = summary

	blob, err := json.Marshal(analytics{
		Score:  summary.Score,
		Months: summary.Months,
		Points: points,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data.Analytics = template.JS(blob)

	h.render(w, http.StatusOK, data)
}

func (h *ResultsHandler) render(w http.ResponseWriter, status int, data pageData) {
	if data.Analytics == "" {
		data.Analytics = template.JS("null")
	}
	w.WriteHeader(status)
	if err := page.Execute(w, data); err != nil {
		h.log.Errorw("Render failed", "error", err)
	}
}
