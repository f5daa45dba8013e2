package store

import (
	"context"
	"strings"
	"testing"
	"time"
)

// openTestStore opens a named in-memory database so each test gets its own
// isolated store while all pool connections still see the same data.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSaveAndListRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repos := map[string]ScoreRepo{
		"checklist": s.ChecklistRepo(),
		"gad7":      s.Gad7Repo(),
	}

	for name, repo := range repos {
		entries, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("%s: list (empty): %v", name, err)
		}
		if len(entries) != 0 {
			t.Fatalf("%s: expected empty list, got %d entries", name, len(entries))
		}

		id, err := repo.Save(ctx, 28, "Moderate depression")
		if err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}
		if id <= 0 {
			t.Errorf("%s: id = %d, want positive", name, id)
		}

		entries, err = repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("%s: list: %v", name, err)
		}
		if len(entries) != 1 {
			t.Fatalf("%s: got %d entries, want 1", name, len(entries))
		}
		e := entries[0]
		if e.ID != id || e.Score != 28 || e.Category != "Moderate depression" {
			t.Errorf("%s: entry = %+v", name, e)
		}
		if e.Timestamp.IsZero() {
			t.Errorf("%s: entry has zero timestamp", name)
		}
		if !e.Timestamp.Equal(e.Timestamp.Truncate(time.Second)) {
			t.Errorf("%s: timestamp %v not at second resolution", name, e.Timestamp)
		}
	}
}

func TestSaveAssignsIncreasingIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ChecklistRepo()

	prev := 0
	for i := 0; i < 5; i++ {
		id, err := repo.Save(ctx, i, "No Depression")
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if id <= prev {
			t.Errorf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestListAllNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Gad7Repo()

	for i := 0; i < 3; i++ {
		if _, err := repo.Save(ctx, i, "Minimal anxiety"); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	entries, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Errorf("entries out of order at %d: %v after %v", i, entries[i].Timestamp, entries[i-1].Timestamp)
		}
		// Same-second saves fall back to id ordering.
		if entries[i].Timestamp.Equal(entries[i-1].Timestamp) && entries[i].ID > entries[i-1].ID {
			t.Errorf("same-timestamp entries out of id order at %d", i)
		}
	}
}

func TestInstrumentTablesAreIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.ChecklistRepo().Save(ctx, 42, "Moderate depression"); err != nil {
		t.Fatalf("save checklist: %v", err)
	}

	entries, err := s.Gad7Repo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list gad7: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("gad7 list sees checklist entries: %d", len(entries))
	}
}

func TestCustomRepoPartitionsByInstrument(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := s.RepoFor("mood3")
	b := s.RepoFor("sleep5")

	if _, err := a.Save(ctx, 4, "Strained"); err != nil {
		t.Fatalf("save mood3: %v", err)
	}
	if _, err := b.Save(ctx, 1, "Rested"); err != nil {
		t.Fatalf("save sleep5: %v", err)
	}

	entries, err := a.ListAll(ctx)
	if err != nil {
		t.Fatalf("list mood3: %v", err)
	}
	if len(entries) != 1 || entries[0].Category != "Strained" {
		t.Errorf("mood3 entries = %+v", entries)
	}
}

func TestRepoForBuiltins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.RepoFor("depression").Save(ctx, 5, "No Depression"); err != nil {
		t.Fatalf("save via RepoFor: %v", err)
	}

	entries, err := s.ChecklistRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("RepoFor(depression) did not write the checklist table")
	}
}
