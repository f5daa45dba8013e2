package history

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/store"
	"github.com/abhisek/moodlog/internal/timewindow"
)

type fakeProvider struct {
	entries map[string][]store.Entry
}

type fakeRepo struct {
	entries []store.Entry
}

func (f *fakeRepo) Save(context.Context, int, string) (int, error) { return 0, nil }
func (f *fakeRepo) ListAll(context.Context) ([]store.Entry, error) { return f.entries, nil }

func (p *fakeProvider) RepoFor(id string) store.ScoreRepo {
	return &fakeRepo{entries: p.entries[id]}
}

func newTestScreen(entries map[string][]store.Entry) *HistoryScreen {
	registry := screening.NewRegistry(screening.Builtin()...)
	return New(registry, &fakeProvider{entries: entries}, timewindow.AllTime)
}

func TestLoadPopulatesEntries(t *testing.T) {
	now := time.Now()
	s := newTestScreen(map[string][]store.Entry{
		"depression": {
			{ID: 2, Score: 12, Category: "Mild depression", Timestamp: now},
			{ID: 1, Score: 30, Category: "Moderate depression", Timestamp: now.Add(-time.Hour)},
		},
	})

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should return a load command")
	}
	updated, _ := s.Update(cmd())
	s = updated.(*HistoryScreen)

	if !s.loaded {
		t.Fatal("expected loaded after loadedMsg")
	}
	if len(s.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(s.entries))
	}
}

func TestStaleLoadIsIgnored(t *testing.T) {
	s := newTestScreen(nil)

	// A load for an instrument that is no longer selected must not land.
	updated, _ := s.Update(loadedMsg{InstrumentID: "anxiety", Entries: []store.Entry{{ID: 1}}})
	s = updated.(*HistoryScreen)

	if s.loaded {
		t.Fatal("stale loadedMsg should be dropped")
	}
}

func TestWindowForPresets(t *testing.T) {
	s := newTestScreen(nil)

	// Default is All Time: zero start, matches everything.
	w := s.window()
	if !w.Start.IsZero() {
		t.Fatalf("all-time window start = %v, want zero", w.Start)
	}

	// An unapplied custom range matches nothing but a zero timestamp.
	s.rangeIdx = len(s.ranges) - 1
	w = s.window()
	if w.Contains(time.Now()) {
		t.Fatal("unapplied custom window should not match current time")
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-02-10", false)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parseDate = %v, want %v", got, want)
	}

	got, err = parseDate("2026-02-10", true)
	if err != nil {
		t.Fatalf("parseDate end of day: %v", err)
	}
	want = time.Date(2026, 2, 10, 23, 59, 59, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parseDate end of day = %v, want %v", got, want)
	}

	got, err = parseDate("2026-02-10 14:30", false)
	if err != nil {
		t.Fatalf("parseDate with time: %v", err)
	}
	want = time.Date(2026, 2, 10, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parseDate with time = %v, want %v", got, want)
	}

	if _, err := parseDate("next tuesday", false); err == nil {
		t.Fatal("expected an error for an unparseable date")
	}
}

func TestCategoryIndex(t *testing.T) {
	in := screening.Builtin()[0]

	if got := categoryIndex(in, in.Bands[2].Label); got != 2 {
		t.Fatalf("categoryIndex = %d, want 2", got)
	}
	// Labels from an older instrument revision fall back to the first band.
	if got := categoryIndex(in, "No longer a band"); got != 0 {
		t.Fatalf("categoryIndex unknown = %d, want 0", got)
	}
}
