package util

import (
	"reflect"
	"testing"
)

func TestRankByCount(t *testing.T) {
	counts := map[string]int{"piano": 3, "vocal": 5, "band": 3, "acoustic": 1}
	got := RankByCount(counts)
	want := []string{"vocal", "band", "piano", "acoustic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankByCount = %v, want %v", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("a longer title here", 8); got != "a longer…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("歌ってみた動画です", 4); got != "歌ってみ…" {
		t.Errorf("Truncate = %q", got)
	}
}
