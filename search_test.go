package fuzzdex

import (
	"errors"
	"testing"
)

func TestSearchEdgeCases(t *testing.T) {
	dex := New()
	mustAdd(t, dex, "one two three", 1)
	dex.Finish()

	t.Run("empty must after normalization", func(t *testing.T) {
		results, err := dex.Search("   ---   ", nil, nil, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected empty results, got %+v", results)
		}
	})

	t.Run("limit zero", func(t *testing.T) {
		results, err := dex.Search("one", nil, nil, nil, intPtr(0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected empty results for limit=0, got %+v", results)
		}
	})

	t.Run("unknown constraint", func(t *testing.T) {
		results, err := dex.Search("one", nil, u64Ptr(999), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected empty results for unknown constraint, got %+v", results)
		}
	})

	t.Run("negative max_distance is invalid", func(t *testing.T) {
		_, err := dex.Search("one", nil, nil, intPtr(-1), nil)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("negative limit is invalid", func(t *testing.T) {
		_, err := dex.Search("one", nil, nil, nil, intPtr(-1))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestSearchNoPhrasesAdded(t *testing.T) {
	dex := New()
	dex.Finish()

	results, err := dex.Search("anything", nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results for empty index, got %+v", results)
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	dex := New()
	for i := uint64(1); i <= 10; i++ {
		mustAdd(t, dex, "common token phrase", i)
	}
	dex.Finish()

	results, err := dex.Search("common", nil, nil, nil, intPtr(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Search with limit=3 returned %d results, want 3", len(results))
	}
}

func TestSearchShortMustTokenSkipsPrefilter(t *testing.T) {
	dex := New()
	mustAdd(t, dex, "a b c", 1)
	dex.Finish()

	results, err := dex.Search("a", nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Distance != 0 {
		t.Errorf("Search(a) = %+v, want one exact match", results)
	}
}
