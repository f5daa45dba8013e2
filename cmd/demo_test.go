package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/store"
)

func TestRunDemoSavesAndListsBack(t *testing.T) {
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	registry := screening.NewRegistry(screening.Builtin()...)
	var out bytes.Buffer

	if err := runDemo(context.Background(), &out, registry, st); err != nil {
		t.Fatalf("runDemo: %v", err)
	}

	// Every sample check-in ends up stored.
	for _, in := range registry.All() {
		entries, err := st.RepoFor(in.ID).ListAll(context.Background())
		if err != nil {
			t.Fatalf("ListAll %s: %v", in.ID, err)
		}
		if len(entries) != len(demoResponses[in.ID]) {
			t.Fatalf("%s entries = %d, want %d", in.ID, len(entries), len(demoResponses[in.ID]))
		}
	}

	// The first depression sample scores 28 -> Moderate depression.
	got := out.String()
	if !strings.Contains(got, "Burns Depression Checklist #1: 28/100 — Moderate depression") {
		t.Errorf("output missing the first save line:\n%s", got)
	}

	// The stored rows are read back and printed per instrument.
	if !strings.Contains(got, "Burns Depression Checklist — 3 stored entries, newest first:") {
		t.Errorf("output missing the depression retrieval section:\n%s", got)
	}
	if !strings.Contains(got, "GAD-7 Anxiety Questionnaire — 3 stored entries, newest first:") {
		t.Errorf("output missing the anxiety retrieval section:\n%s", got)
	}
	if strings.Count(got, "  #") != 6 {
		t.Errorf("expected 6 listed entry rows, got:\n%s", got)
	}
}
