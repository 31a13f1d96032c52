// Package trend turns a filtered set of covers into aggregate analytics: a
// trend score, a natural-language summary, a monthly upload histogram, and
// the most viewed covers.
package trend

import (
	"math"
	"sort"
	"time"

	"github.com/mager/coverscope/coverscope"
)

// Score weights and scale factors. The three terms are each normalized to
// [0, 1] before weighting, so the weights express the relative importance of
// recent uploads, total engagement, and sheer cover volume. Tune here, not at
// call sites.
const (
	recencyWeight = 0.4
	viewsWeight   = 0.4
	volumeWeight  = 0.2

	// A cover older than this contributes zero recency.
	recencyWindowDays = 365
	// log1p(totalViews)/viewsLogDivisor saturates around 3M total views.
	viewsLogDivisor = 15.0
	// Cover counts are capped here before normalizing.
	volumeCap = 50
)

// Score computes the 0-100 trend score for the covers, rounded to one
// decimal. It is monotonically non-decreasing in view counts and cover
// volume when recency is held fixed. An empty input scores zero.
func Score(videos []coverscope.Video, now time.Time) float64 {
	if len(videos) == 0 {
		return 0
	}

	var recencySum float64
	var totalViews int64
	for _, v := range videos {
		daysAgo := now.Sub(v.PublishedAt).Hours() / 24
		recency := 1 - math.Min(daysAgo/recencyWindowDays, 1)
		recencySum += math.Max(0, recency)
		totalViews += v.Views
	}

	avgRecency := recencySum / float64(len(videos))
	viewsTerm := math.Log1p(float64(totalViews)) / viewsLogDivisor
	volumeTerm := math.Min(float64(len(videos)), volumeCap) / volumeCap

	score := recencyWeight*avgRecency + viewsWeight*viewsTerm + volumeWeight*volumeTerm
	return math.Round(score*100*10) / 10
}

// Summary phrases one score band per threshold.
func Summary(score float64) string {
	switch {
	case score >= 80:
		return "This song is highly trending: frequent new covers with strong recent engagement."
	case score >= 60:
		return "This song is moderately trending: cover activity and engagement are above average."
	case score >= 40:
		return "This song shows steady interest: consistent covers, but not rising sharply."
	case score >= 20:
		return "This song is losing traction: fewer new covers and lower engagement recently."
	default:
		return "This song has low current activity: few new covers or views recently."
	}
}

// MonthlyHistogram buckets uploads by month in chronological order,
// zero-filling months with no uploads inside the observed range. Bucket
// counts sum to the number of input videos with a publish date.
func MonthlyHistogram(videos []coverscope.Video) []coverscope.MonthCount {
	counts := make(map[string]int)
	var first, last time.Time
	for _, v := range videos {
		if v.PublishedAt.IsZero() {
			continue
		}
		m := monthStart(v.PublishedAt)
		counts[m.Format("2006-01")]++
		if first.IsZero() || m.Before(first) {
			first = m
		}
		if last.IsZero() || m.After(last) {
			last = m
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var out []coverscope.MonthCount
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		out = append(out, coverscope.MonthCount{Month: key, Count: counts[key]})
	}
	return out
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// TopCovers returns the n most viewed covers, leaving the input untouched.
func TopCovers(videos []coverscope.Video, n int) []coverscope.Video {
	sorted := make([]coverscope.Video, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views > sorted[j].Views
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
