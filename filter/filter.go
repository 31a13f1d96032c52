// Package filter separates genuine cover performances from search noise.
package filter

import (
	"strings"

	"github.com/mager/coverscope/coverscope"
)

// MinDurationSecs excludes shorts and teaser-length uploads. A duration of
// zero means the platform did not report one and the rule is skipped.
const MinDurationSecs = 60

// Rule names for non-keyword exclusions.
const (
	RuleShortDuration = "short-duration"
	RuleAmbiguous     = "ambiguous"
)

// coverKeywords admit a video as a cover on first match. Matching lowercases
// the title, which leaves the Japanese terms untouched.
var coverKeywords = []string{
	"cover", "acoustic", "band cover", "piano cover",
	"guitar cover", "drum cover", "instrumental cover",
	"vocals cover", "acoustic version", "arrangement",
	"cover version", "cover by",

	"歌ってみた",        // tried singing
	"弾いてみた",        // tried playing
	"叩いてみた",        // tried drumming
	"弾き語り",          // play-and-sing
	"弾き語ってみた",
	"カバー",
	"アレンジ",
	"ピアノ",
	"ギター",
	"バンドカバー",
	"インスト",
	"アコースティック",
	"歌わせていただきました",
}

// noiseKeywords exclude a video; the matched keyword becomes the rule name.
var noiseKeywords = []string{
	"official music video", "official video", "mv", "m/v",
	"official audio", "lyric", "lyrics", "karaoke",
	"remix", "slowed", "reverb", "reaction",
	"live", "performance", "short", "shorts",
	"teaser", "trailer", "full album", "concert",

	"公式",          // official
	"ミュージックビデオ", // music video
	"歌詞",          // lyrics
	"カラオケ",
	"ライブ",
	"生放送",        // live stream
	"ショート",
}

// Decide applies the ordered exclusion rules to a single video.
func Decide(v coverscope.Video) coverscope.FilterDecision {
	if v.DurationSecs > 0 && v.DurationSecs < MinDurationSecs {
		return coverscope.FilterDecision{Rule: RuleShortDuration}
	}

	lower := strings.ToLower(v.Title)

	for _, kw := range coverKeywords {
		if strings.Contains(lower, kw) {
			return coverscope.FilterDecision{IsCover: true}
		}
	}
	for _, kw := range noiseKeywords {
		if strings.Contains(lower, kw) {
			return coverscope.FilterDecision{Rule: kw}
		}
	}

	// Titles that match nothing are noise, not covers.
	return coverscope.FilterDecision{Rule: RuleAmbiguous}
}

// Apply filters videos, preserving input order among survivors, and returns
// one decision per input record.
func Apply(videos []coverscope.Video) ([]coverscope.Video, []coverscope.FilterDecision) {
	covers := make([]coverscope.Video, 0, len(videos))
	decisions := make([]coverscope.FilterDecision, len(videos))
	for i, v := range videos {
		d := Decide(v)
		decisions[i] = d
		if d.IsCover {
			covers = append(covers, v)
		}
	}
	return covers, decisions
}
