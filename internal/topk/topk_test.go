package topk

import (
	"reflect"
	"testing"
)

type scored struct {
	id    int
	score float64
}

func byScoreThenID(a, b scored) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.id > b.id // lower id ranks better -> higher id is "worse"
}

func TestSelectOrdersByScore(t *testing.T) {
	items := []scored{{1, 0.2}, {2, 0.9}, {3, 0.5}, {4, 0.7}}
	got := Select(items, 2, byScoreThenID)
	want := []scored{{2, 0.9}, {4, 0.7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}
}

func TestSelectTieBreak(t *testing.T) {
	items := []scored{{5, 0.5}, {1, 0.5}, {3, 0.5}}
	got := Select(items, 2, byScoreThenID)
	want := []scored{{1, 0.5}, {3, 0.5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select with ties = %v, want %v", got, want)
	}
}

func TestSelectKLargerThanInput(t *testing.T) {
	items := []scored{{1, 0.1}, {2, 0.2}}
	got := Select(items, 10, byScoreThenID)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
}

func TestSelectZeroOrEmpty(t *testing.T) {
	if got := Select([]scored{{1, 1}}, 0, byScoreThenID); len(got) != 0 {
		t.Errorf("k=0 should return empty, got %v", got)
	}
	if got := Select([]scored{}, 5, byScoreThenID); len(got) != 0 {
		t.Errorf("empty input should return empty, got %v", got)
	}
}
