package screening

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validCatalog = `{
	"instruments": [
		{
			"id": "mood3",
			"name": "Three-item mood check",
			"max_item_value": 2,
			"scale_labels": ["Never", "Sometimes", "Often"],
			"questions": ["Feeling low", "Feeling flat", "Feeling irritable"],
			"bands": [
				{"low": 0, "high": 2, "label": "Steady"},
				{"low": 3, "high": 6, "label": "Strained"}
			]
		}
	]
}`

func TestParseCatalogValid(t *testing.T) {
	instruments, err := parseCatalog([]byte(validCatalog))
	if err != nil {
		t.Fatalf("parseCatalog: %v", err)
	}
	if len(instruments) != 1 {
		t.Fatalf("got %d instruments, want 1", len(instruments))
	}

	in := instruments[0]
	if in.ID != "mood3" {
		t.Errorf("id = %q, want mood3", in.ID)
	}
	if in.ItemCount() != 3 {
		t.Errorf("item count = %d, want 3", in.ItemCount())
	}
	if in.MaxScore() != 6 {
		t.Errorf("max score = %d, want 6", in.MaxScore())
	}
	if c := Classify(in, 3); c.Label() != "Strained" {
		t.Errorf("Classify(3) = %q, want Strained", c.Label())
	}
}

func TestParseCatalogRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(string) string
	}{
		{"not json", func(s string) string { return "{" }},
		{"missing name", func(s string) string { return strings.Replace(s, `"name": "Three-item mood check",`, "", 1) }},
		{"uppercase id", func(s string) string { return strings.Replace(s, `"mood3"`, `"Mood3"`, 1) }},
		{"band gap", func(s string) string { return strings.Replace(s, `{"low": 3, "high": 6`, `{"low": 4, "high": 6`, 1) }},
		{"band short", func(s string) string { return strings.Replace(s, `"high": 6`, `"high": 5`, 1) }},
		{"band overlap", func(s string) string { return strings.Replace(s, `{"low": 3, "high": 6`, `{"low": 2, "high": 6`, 1) }},
		{"wrong scale labels", func(s string) string { return strings.Replace(s, `, "Often"`, "", 1) }},
	}

	for _, tt := range tests {
		_, err := parseCatalog([]byte(tt.mutate(validCatalog)))
		if err == nil {
			t.Errorf("%s: expected error, got none", tt.name)
		}
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instruments.json")
	if err := os.WriteFile(path, []byte(validCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	instruments, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(instruments) != 1 || instruments[0].ID != "mood3" {
		t.Fatalf("unexpected instruments: %+v", instruments)
	}
}

func TestRegistryMergeAndShadowing(t *testing.T) {
	custom := &Instrument{
		ID:           "depression", // collides with built-in
		Name:         "Shadow",
		MaxItemValue: 1,
		ScaleLabels:  []string{"No", "Yes"},
		Questions:    []string{"q"},
		Bands:        []Band{{0, 1, "x"}},
	}

	r := NewRegistry(append(Builtin(), custom)...)
	if got := len(r.All()); got != 2 {
		t.Fatalf("registry size = %d, want 2", got)
	}
	in, ok := r.ByID("depression")
	if !ok {
		t.Fatal("depression not registered")
	}
	if in.Name != Depression.Name {
		t.Errorf("built-in was shadowed by custom instrument: %q", in.Name)
	}
}
