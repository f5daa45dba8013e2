package screening

import (
	"errors"
	"testing"
)

func TestScoreDepressionSample(t *testing.T) {
	responses := []int{2, 1, 0, 2, 1, 3, 2, 1, 0, 2, 1, 0, 2, 1, 3, 2, 1, 0, 2, 1, 0, 2, 1, 0, 0}
	got, err := Score(Depression, responses)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 28 {
		t.Errorf("score = %d, want 28", got)
	}
}

func TestScoreAnxietySample(t *testing.T) {
	got, err := Score(Anxiety, []int{1, 2, 3, 2, 1, 0, 1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
}

func TestScoreExtremes(t *testing.T) {
	tests := []struct {
		name       string
		instrument *Instrument
		value      int
		want       int
	}{
		{"depression all zero", Depression, 0, 0},
		{"depression all max", Depression, 4, 100},
		{"anxiety all zero", Anxiety, 0, 0},
		{"anxiety all max", Anxiety, 3, 21},
	}

	for _, tt := range tests {
		responses := make([]int, tt.instrument.ItemCount())
		for i := range responses {
			responses[i] = tt.value
		}
		got, err := Score(tt.instrument, responses)
		if err != nil {
			t.Errorf("%s: Score: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: score = %d, want %d", tt.name, got, tt.want)
		}
		if got != tt.instrument.MaxScore() && tt.value == tt.instrument.MaxItemValue {
			t.Errorf("%s: max score mismatch: %d vs %d", tt.name, got, tt.instrument.MaxScore())
		}
	}
}

func TestScoreWrongLength(t *testing.T) {
	tests := []struct {
		name       string
		instrument *Instrument
		length     int
	}{
		{"depression too short", Depression, 24},
		{"depression too long", Depression, 26},
		{"depression empty", Depression, 0},
		{"anxiety too short", Anxiety, 6},
		{"anxiety too long", Anxiety, 8},
	}

	for _, tt := range tests {
		_, err := Score(tt.instrument, make([]int, tt.length))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want ValidationError", tt.name, err)
		}
	}
}

func TestScoreOutOfRangeItem(t *testing.T) {
	tests := []struct {
		name       string
		instrument *Instrument
		index      int
		value      int
	}{
		{"depression above max", Depression, 0, 5},
		{"depression negative", Depression, 12, -1},
		{"anxiety above max", Anxiety, 6, 4},
		{"anxiety negative", Anxiety, 3, -2},
	}

	for _, tt := range tests {
		responses := make([]int, tt.instrument.ItemCount())
		responses[tt.index] = tt.value
		_, err := Score(tt.instrument, responses)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want ValidationError", tt.name, err)
		}
	}
}
