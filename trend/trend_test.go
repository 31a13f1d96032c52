package trend

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mager/coverscope/coverscope"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func vid(published time.Time, views int64) coverscope.Video {
	return coverscope.Video{PublishedAt: published, Views: views}
}

func TestScoreEmpty(t *testing.T) {
	if got := Score(nil, now); got != 0 {
		t.Errorf("Score(nil) = %f, want 0", got)
	}
}

func TestScore(t *testing.T) {
	videos := []coverscope.Video{
		vid(now.AddDate(0, -1, 0), 10000),
		vid(now.AddDate(0, -6, 0), 50000),
	}

	got := Score(videos, now)

	// Recompute from the documented formula.
	var recencySum float64
	var totalViews int64
	for _, v := range videos {
		days := now.Sub(v.PublishedAt).Hours() / 24
		recencySum += math.Max(0, 1-math.Min(days/recencyWindowDays, 1))
		totalViews += v.Views
	}
	raw := recencyWeight*(recencySum/2) +
		viewsWeight*math.Log1p(float64(totalViews))/viewsLogDivisor +
		volumeWeight*2.0/volumeCap
	want := math.Round(raw*1000) / 10

	if got != want {
		t.Errorf("Score = %f, want %f", got, want)
	}
	if got <= 0 || got > 100 {
		t.Errorf("Score = %f out of range", got)
	}
}

func TestScoreMonotonicInViews(t *testing.T) {
	published := now.AddDate(0, -2, 0)
	prev := -1.0
	for _, views := range []int64{0, 100, 10000, 1000000} {
		got := Score([]coverscope.Video{vid(published, views)}, now)
		if got < prev {
			t.Errorf("Score(views=%d) = %f decreased from %f", views, got, prev)
		}
		prev = got
	}
}

func TestScoreMonotonicInVolume(t *testing.T) {
	published := now.AddDate(0, -2, 0)
	prev := -1.0
	for n := 1; n <= 50; n += 7 {
		videos := make([]coverscope.Video, n)
		for i := range videos {
			videos[i] = vid(published, 1000)
		}
		got := Score(videos, now)
		if got < prev {
			t.Errorf("Score(n=%d) = %f decreased from %f", n, got, prev)
		}
		prev = got
	}
}

func TestScoreOldCoversContributeNoRecency(t *testing.T) {
	fresh := Score([]coverscope.Video{vid(now.AddDate(0, 0, -1), 1000)}, now)
	stale := Score([]coverscope.Video{vid(now.AddDate(-3, 0, 0), 1000)}, now)
	if stale >= fresh {
		t.Errorf("stale score %f >= fresh score %f", stale, fresh)
	}
}

func TestSummaryBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "highly trending"},
		{80, "highly trending"},
		{65, "moderately trending"},
		{45, "steady interest"},
		{25, "losing traction"},
		{5, "low current activity"},
	}
	for _, c := range cases {
		got := Summary(c.score)
		if !strings.Contains(got, c.want) {
			t.Errorf("Summary(%f) = %q, want it to mention %q", c.score, got, c.want)
		}
	}
}

func TestMonthlyHistogram(t *testing.T) {
	videos := []coverscope.Video{
		vid(time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), 10),
		vid(time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC), 10),
		vid(time.Date(2025, time.November, 28, 0, 0, 0, 0, time.UTC), 10),
	}

	got := MonthlyHistogram(videos)

	wantMonths := []string{"2025-11", "2025-12", "2026-01", "2026-02"}
	if len(got) != len(wantMonths) {
		t.Fatalf("got %d buckets, want %d", len(got), len(wantMonths))
	}
	sum := 0
	for i, mc := range got {
		if mc.Month != wantMonths[i] {
			t.Errorf("bucket %d = %q, want %q", i, mc.Month, wantMonths[i])
		}
		sum += mc.Count
	}
	if sum != len(videos) {
		t.Errorf("bucket counts sum to %d, want %d", sum, len(videos))
	}
	if got[0].Count != 2 || got[1].Count != 0 || got[2].Count != 0 || got[3].Count != 1 {
		t.Errorf("unexpected counts: %+v", got)
	}
}

func TestMonthlyHistogramEmpty(t *testing.T) {
	if got := MonthlyHistogram(nil); got != nil {
		t.Errorf("MonthlyHistogram(nil) = %v, want nil", got)
	}
}

func TestTopCovers(t *testing.T) {
	videos := []coverscope.Video{
		{Title: "low", Views: 10},
		{Title: "high", Views: 1000},
		{Title: "mid", Views: 100},
		{Title: "tiny", Views: 1},
	}

	top := TopCovers(videos, 3)
	if len(top) != 3 {
		t.Fatalf("got %d covers, want 3", len(top))
	}
	if top[0].Title != "high" || top[1].Title != "mid" || top[2].Title != "low" {
		t.Errorf("unexpected order: %v, %v, %v", top[0].Title, top[1].Title, top[2].Title)
	}

	// Input order untouched.
	if videos[0].Title != "low" {
		t.Error("TopCovers mutated its input")
	}

	if got := TopCovers(videos[:2], 3); len(got) != 2 {
		t.Errorf("got %d covers, want 2", len(got))
	}
}
