package screening

// InvalidScoreLabel is the display label for an out-of-range classification.
// It is a defensive fallback: Score already bounds every valid submission,
// so it can only appear if a score bypassed the scorer.
const InvalidScoreLabel = "Invalid score"

// Classification is the result of classifying a score. It is either a band
// match or an explicit out-of-range variant; callers that need the band
// must check OutOfRange rather than compare display labels.
type Classification struct {
	Band       Band
	OutOfRange bool
}

// Label returns the severity label to display.
func (c Classification) Label() string {
	if c.OutOfRange {
		return InvalidScoreLabel
	}
	return c.Band.Label
}

// Classify selects the first band of the instrument's ordered table that
// contains score. Deterministic, no side effects.
func Classify(in *Instrument, score int) Classification {
	for _, b := range in.Bands {
		if b.Contains(score) {
			return Classification{Band: b}
		}
	}
	return Classification{OutOfRange: true}
}
