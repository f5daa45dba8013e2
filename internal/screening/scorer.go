package screening

import "fmt"

// ValidationError reports a response vector that cannot be scored. The
// vector is rejected as a whole; nothing is clamped or truncated.
type ValidationError struct {
	Instrument string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Instrument, e.Reason)
}

// Score validates responses against the instrument and returns their sum.
// The vector must have exactly ItemCount elements, each within
// [0, MaxItemValue]. No weighting or normalization is applied, so the
// result is always within [0, MaxScore].
func Score(in *Instrument, responses []int) (int, error) {
	if len(responses) != in.ItemCount() {
		return 0, &ValidationError{
			Instrument: in.ID,
			Reason:     fmt.Sprintf("expected %d responses, got %d", in.ItemCount(), len(responses)),
		}
	}

	total := 0
	for i, v := range responses {
		if v < 0 || v > in.MaxItemValue {
			return 0, &ValidationError{
				Instrument: in.ID,
				Reason:     fmt.Sprintf("response %d is %d, must be between 0 and %d", i+1, v, in.MaxItemValue),
			}
		}
		total += v
	}
	return total, nil
}
