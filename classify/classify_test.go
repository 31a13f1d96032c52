package classify

import (
	"testing"

	"github.com/mager/coverscope/coverscope"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		title string
		desc  string
		want  coverscope.CoverType
	}{
		{"Imagine (Acoustic Cover)", "", Acoustic},
		{"Imagine - Full Band Cover", "", Band},
		{"Imagine vocal cover", "", Vocal},
		{"Imagine piano cover", "", Instrumental},
		{"Imagine cover", "recorded on my guitar", Instrumental},
		{"Imagine cover", "", Other},
		{"Imagine 歌ってみた", "", Vocal},
		{"Imagine 弾いてみた", "", Instrumental},
		{"Imagine アコギで", "", Acoustic},
		{"Imagine バンドカバー", "", Band},
	}

	for _, c := range cases {
		v := coverscope.Video{Title: c.title, Description: c.desc}
		if got := Category(v); got != c.want {
			t.Errorf("Category(%q, %q) = %q, want %q", c.title, c.desc, got.Name, c.want.Name)
		}
	}
}

// Acoustic outranks vocal and instrumental when several buckets match.
func TestCategoryPriority(t *testing.T) {
	v := coverscope.Video{Title: "Imagine acoustic vocal piano cover"}
	if got := Category(v); got != Acoustic {
		t.Errorf("Category = %q, want %q", got.Name, Acoustic.Name)
	}

	v = coverscope.Video{Title: "Imagine full band vocal cover"}
	if got := Category(v); got != Band {
		t.Errorf("Category = %q, want %q", got.Name, Band.Name)
	}
}

func TestCategoryDeterministic(t *testing.T) {
	v := coverscope.Video{Title: "Imagine (Acoustic Cover)", Description: "an unplugged take"}
	first := Category(v)
	for i := 0; i < 10; i++ {
		if Category(v) != first {
			t.Fatal("Category is not deterministic")
		}
	}
}

func TestGroups(t *testing.T) {
	g := Groups()
	for _, name := range []string{Vocal.Name, Instrumental.Name, Acoustic.Name, Band.Name} {
		if len(g[name]) == 0 {
			t.Errorf("Groups()[%q] is empty", name)
		}
	}
}
