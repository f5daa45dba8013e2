package timewindow

import (
	"testing"
	"time"

	"github.com/abhisek/moodlog/internal/store"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestResolvePresets(t *testing.T) {
	tests := []struct {
		preset    Preset
		wantStart time.Time
	}{
		{AllTime, time.Time{}},
		{LastWeek, now.AddDate(0, 0, -7)},
		{LastMonth, now.AddDate(0, 0, -30)},
		{LastYear, now.AddDate(0, 0, -365)},
	}

	for _, tt := range tests {
		w, err := Resolve(tt.preset, now)
		if err != nil {
			t.Errorf("%s: Resolve: %v", tt.preset, err)
			continue
		}
		if !w.Start.Equal(tt.wantStart) {
			t.Errorf("%s: start = %v, want %v", tt.preset, w.Start, tt.wantStart)
		}
		if !w.End.Equal(now) {
			t.Errorf("%s: end = %v, want %v", tt.preset, w.End, now)
		}
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	if _, err := Resolve(Preset("fortnight"), now); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestContainsInclusiveBounds(t *testing.T) {
	w := Custom(now.Add(-time.Hour), now)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"before start", now.Add(-2 * time.Hour), false},
		{"exactly start", now.Add(-time.Hour), true},
		{"inside", now.Add(-30 * time.Minute), true},
		{"exactly end", now, true},
		{"after end", now.Add(time.Second), false},
	}

	for _, tt := range tests {
		if got := w.Contains(tt.t); got != tt.want {
			t.Errorf("%s: Contains = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func entriesAt(offsets ...time.Duration) []store.Entry {
	entries := make([]store.Entry, 0, len(offsets))
	for i, off := range offsets {
		entries = append(entries, store.Entry{ID: i + 1, Score: i, Timestamp: now.Add(off)})
	}
	return entries
}

func TestFilterPreservesOrder(t *testing.T) {
	// Newest first, matching the repository contract.
	entries := entriesAt(0, -time.Hour, -48*time.Hour, -400*24*time.Hour)

	w, err := Resolve(LastWeek, now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := Filter(entries, w)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ID <= got[i-1].ID {
			t.Errorf("order changed at %d: %+v", i, got)
		}
	}
}

func TestFilterAllTimeKeepsEverything(t *testing.T) {
	entries := entriesAt(0, -24*time.Hour, -1000*24*time.Hour)

	w, err := Resolve(AllTime, now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := Filter(entries, w)
	if len(got) != len(entries) {
		t.Errorf("got %d entries, want %d", len(got), len(entries))
	}
}

func TestFilterInvertedCustomWindow(t *testing.T) {
	entries := entriesAt(0, -time.Hour)

	w := Custom(now, now.Add(-24*time.Hour))
	got := Filter(entries, w)
	if len(got) != 0 {
		t.Errorf("inverted window returned %d entries, want 0", len(got))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	w, err := Resolve(LastMonth, now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := Filter(nil, w); len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}
