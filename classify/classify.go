// Package classify assigns each cover a fixed category from keyword rules.
package classify

import (
	"strings"

	"github.com/mager/coverscope/coverscope"
)

var (
	Acoustic     = coverscope.CoverType{Name: "Acoustic / Soft", Icon: "bi bi-music-note-beamed"}
	Band         = coverscope.CoverType{Name: "Band / Full Arrangement", Icon: "bi bi-people-fill"}
	Vocal        = coverscope.CoverType{Name: "Vocal cover", Icon: "bi bi-mic-fill"}
	Instrumental = coverscope.CoverType{Name: "Instrumental", Icon: "bi bi-music-note-list"}
	Other        = coverscope.CoverType{Name: "Other / Remix", Icon: "bi bi-question-circle-fill"}
)

// Keyword buckets, English plus Japanese. All entries are lowercase; matching
// lowercases the input, which leaves Japanese text untouched.
var (
	acousticKeywords = []string{
		"acoustic", "acoustic version", "unplugged", "アコースティック", "アコギ",
	}
	bandKeywords = []string{
		"band", "full band", "arrange", "arrangement",
		"バンドカバー", "編成", "full arrangement", "アレンジ",
	}
	vocalKeywords = []string{
		"vocal", "vocals", "a cappella", "a-capella", "vocal cover", "sing",
		"歌ってみた", "ボーカル", "ボーカルカバー", "アカペラ", "歌わせていただきました",
	}
	instrumentalKeywords = []string{
		"instrumental", "inst", "instrumental cover", "piano", "guitar",
		"drum", "bass", "solo", "弾いてみた", "インスト", "ピアノ", "ギター",
	}
)

// Category classifies one cover by scanning title and description in a fixed
// priority order: acoustic, band, vocal, instrumental. The title is counted
// twice to give it more weight than the description. First match wins; covers
// matching nothing fall back to Other.
func Category(v coverscope.Video) coverscope.CoverType {
	text := strings.ToLower(v.Title + " " + v.Title + " " + v.Description)

	switch {
	case matchAny(text, acousticKeywords):
		return Acoustic
	case matchAny(text, bandKeywords):
		return Band
	case matchAny(text, vocalKeywords):
		return Vocal
	case matchAny(text, instrumentalKeywords):
		return Instrumental
	}
	return Other
}

// Groups returns each category's keyword bucket keyed by display name.
// The clustering pass uses these to name unsupervised clusters.
func Groups() map[string][]string {
	return map[string][]string{
		Vocal.Name:        vocalKeywords,
		Instrumental.Name: instrumentalKeywords,
		Acoustic.Name:     acousticKeywords,
		Band.Name:         bandKeywords,
	}
}

func matchAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
