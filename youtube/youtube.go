package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/mager/coverscope/config"
	"github.com/mager/coverscope/coverscope"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// maxResults is the platform's search.list page cap.
const maxResults = 50

// Searcher fetches candidate cover videos for a song title.
type Searcher interface {
	SearchCovers(ctx context.Context, song string) ([]coverscope.Video, error)
}

type YoutubeClient struct {
	svc *yt.Service
	log *zap.SugaredLogger
}

// ProvideYoutube provides a YouTube Data API client
func ProvideYoutube(cfg config.Config, log *zap.SugaredLogger) (*YoutubeClient, error) {
	svc, err := yt.NewService(context.Background(), option.WithAPIKey(cfg.YoutubeApiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &YoutubeClient{svc: svc, log: log}, nil
}

var Options = ProvideYoutube

// SearchCovers searches for "<song> cover" and returns up to 50 results with
// full metadata. Search results only carry snippets, so a second batch call
// fetches statistics and durations for all IDs at once.
func (c *YoutubeClient) SearchCovers(ctx context.Context, song string) ([]coverscope.Video, error) {
	res, err := c.svc.Search.List([]string{"snippet"}).
		Q(song + " cover").
		Type("video").
		Order("relevance").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}

	ids := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	details, err := c.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	c.log.Infow("Fetched videos", "query", song, "count", len(details.Items))

	videos := make([]coverscope.Video, 0, len(details.Items))
	for _, item := range details.Items {
		v := coverscope.Video{
			ID:  item.Id,
			URL: "https://www.youtube.com/watch?v=" + item.Id,
		}
		if sn := item.Snippet; sn != nil {
			v.Title = sn.Title
			v.Channel = sn.ChannelTitle
			v.Description = sn.Description
			if t, err := time.Parse(time.RFC3339, sn.PublishedAt); err == nil {
				v.PublishedAt = t
			}
			v.Thumbnail = pickThumb(sn.Thumbnails)
		}
		if st := item.Statistics; st != nil {
			v.Views = int64(st.ViewCount)
			v.Likes = int64(st.LikeCount)
		}
		if cd := item.ContentDetails; cd != nil {
			v.DurationSecs = ParseDuration(cd.Duration)
			v.Duration = FormatDuration(v.DurationSecs)
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// pickThumb prefers the medium thumbnail and falls back to the default one.
func pickThumb(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}

var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts an ISO 8601 duration like "PT2M3S" to seconds.
// Unparseable input yields 0.
func ParseDuration(iso string) int {
	m := durationRe.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	secs := 0
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		secs += n * mult
	}
	return secs
}

// FormatDuration renders seconds as "M:SS", or "H:MM:SS" past an hour.
func FormatDuration(secs int) string {
	if secs <= 0 {
		return "N/A"
	}
	h := secs / 3600
	m := secs % 3600 / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
