package screening

import (
	"encoding/json"
	"fmt"
	"os"
)

// catalogFile is the decoded form of a user-defined instrument catalog.
type catalogFile struct {
	Instruments []catalogInstrument `json:"instruments"`
}

type catalogInstrument struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	MaxItemValue int           `json:"max_item_value"`
	ScaleLabels  []string      `json:"scale_labels"`
	Questions    []string      `json:"questions"`
	Bands        []catalogBand `json:"bands"`
}

type catalogBand struct {
	Low   int    `json:"low"`
	High  int    `json:"high"`
	Label string `json:"label"`
}

// LoadCatalog reads a JSON instrument catalog from path, validates it
// against the embedded schema, and returns the instruments it defines.
// A file that fails validation is rejected whole; no partial catalog is
// ever returned.
func LoadCatalog(path string) ([]*Instrument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instrument catalog: %w", err)
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) ([]*Instrument, error) {
	if err := validateCatalog(raw); err != nil {
		return nil, err
	}

	var cf catalogFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode instrument catalog: %w", err)
	}

	instruments := make([]*Instrument, 0, len(cf.Instruments))
	for _, ci := range cf.Instruments {
		in := &Instrument{
			ID:           ci.ID,
			Name:         ci.Name,
			MaxItemValue: ci.MaxItemValue,
			ScaleLabels:  ci.ScaleLabels,
			Questions:    ci.Questions,
		}
		for _, b := range ci.Bands {
			in.Bands = append(in.Bands, Band(b))
		}
		if err := checkInstrument(in); err != nil {
			return nil, fmt.Errorf("instrument %q: %w", ci.ID, err)
		}
		instruments = append(instruments, in)
	}
	return instruments, nil
}

// checkInstrument enforces the structural invariants the schema cannot:
// one scale label per rating value, and a band table that covers
// [0, MaxScore] in order with no gaps or overlaps.
func checkInstrument(in *Instrument) error {
	if got, want := len(in.ScaleLabels), in.MaxItemValue+1; got != want {
		return fmt.Errorf("expected %d scale labels for ratings 0-%d, got %d", want, in.MaxItemValue, got)
	}

	next := 0
	for i, b := range in.Bands {
		if b.Low != next {
			return fmt.Errorf("band %d starts at %d, expected %d", i+1, b.Low, next)
		}
		if b.High < b.Low {
			return fmt.Errorf("band %d has high %d below low %d", i+1, b.High, b.Low)
		}
		next = b.High + 1
	}
	if next != in.MaxScore()+1 {
		return fmt.Errorf("bands end at %d, expected %d", next-1, in.MaxScore())
	}
	return nil
}
