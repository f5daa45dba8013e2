package screening

import "testing"

func TestClassifyDepressionBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "No Depression"},
		{5, "No Depression"},
		{6, "Normal but unhappy"},
		{10, "Normal but unhappy"},
		{11, "Mild depression"},
		{25, "Mild depression"},
		{26, "Moderate depression"},
		{28, "Moderate depression"},
		{50, "Moderate depression"},
		{51, "Severe depression"},
		{75, "Severe depression"},
		{76, "Extreme depression"},
		{100, "Extreme depression"},
	}

	for _, tt := range tests {
		c := Classify(Depression, tt.score)
		if c.OutOfRange {
			t.Errorf("Classify(%d) out of range, want %q", tt.score, tt.want)
			continue
		}
		if c.Label() != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, c.Label(), tt.want)
		}
	}
}

func TestClassifyAnxietyBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Minimal anxiety"},
		{4, "Minimal anxiety"},
		{5, "Mild anxiety"},
		{9, "Mild anxiety"},
		{10, "Moderate anxiety"},
		{14, "Moderate anxiety"},
		{15, "Severe anxiety"},
		{21, "Severe anxiety"},
	}

	for _, tt := range tests {
		c := Classify(Anxiety, tt.score)
		if c.OutOfRange {
			t.Errorf("Classify(%d) out of range, want %q", tt.score, tt.want)
			continue
		}
		if c.Label() != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, c.Label(), tt.want)
		}
	}
}

// Every score a valid vector can produce must land in exactly one band.
func TestClassifyTotalCoverage(t *testing.T) {
	for _, in := range Builtin() {
		for score := 0; score <= in.MaxScore(); score++ {
			matches := 0
			for _, b := range in.Bands {
				if b.Contains(score) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("%s: score %d matches %d bands, want 1", in.ID, score, matches)
			}
		}
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	tests := []struct {
		instrument *Instrument
		score      int
	}{
		{Depression, -1},
		{Depression, 101},
		{Anxiety, -1},
		{Anxiety, 22},
	}

	for _, tt := range tests {
		c := Classify(tt.instrument, tt.score)
		if !c.OutOfRange {
			t.Errorf("%s: Classify(%d).OutOfRange = false, want true", tt.instrument.ID, tt.score)
		}
		if c.Label() != InvalidScoreLabel {
			t.Errorf("%s: Classify(%d).Label() = %q, want %q", tt.instrument.ID, tt.score, c.Label(), InvalidScoreLabel)
		}
	}
}

func TestBuiltinInstrumentShape(t *testing.T) {
	if got := Depression.ItemCount(); got != 25 {
		t.Errorf("depression item count = %d, want 25", got)
	}
	if got := Depression.MaxScore(); got != 100 {
		t.Errorf("depression max score = %d, want 100", got)
	}
	if got := Anxiety.ItemCount(); got != 7 {
		t.Errorf("anxiety item count = %d, want 7", got)
	}
	if got := Anxiety.MaxScore(); got != 21 {
		t.Errorf("anxiety max score = %d, want 21", got)
	}

	for _, in := range Builtin() {
		if err := checkInstrument(in); err != nil {
			t.Errorf("%s: %v", in.ID, err)
		}
	}
}
