package timewindow

import (
	"fmt"
	"time"

	"github.com/abhisek/moodlog/internal/store"
)

// Preset names a relative time range for filtering history.
type Preset string

const (
	AllTime   Preset = "all"
	LastWeek  Preset = "week"
	LastMonth Preset = "month"
	LastYear  Preset = "year"
)

// Presets returns the named presets in display order.
func Presets() []Preset {
	return []Preset{AllTime, LastWeek, LastMonth, LastYear}
}

// DisplayName returns the label shown for a preset.
func (p Preset) DisplayName() string {
	switch p {
	case AllTime:
		return "All Time"
	case LastWeek:
		return "Last Week"
	case LastMonth:
		return "Last Month"
	case LastYear:
		return "Last Year"
	default:
		return string(p)
	}
}

// Window is an inclusive time range. It is transient: resolved per query,
// never persisted.
type Window struct {
	Start time.Time
	End   time.Time
}

// Resolve derives a window from a preset relative to now. AllTime starts at
// the zero time so every representable timestamp is included.
func Resolve(p Preset, now time.Time) (Window, error) {
	switch p {
	case AllTime:
		return Window{End: now}, nil
	case LastWeek:
		return Window{Start: now.AddDate(0, 0, -7), End: now}, nil
	case LastMonth:
		return Window{Start: now.AddDate(0, 0, -30), End: now}, nil
	case LastYear:
		return Window{Start: now.AddDate(0, 0, -365), End: now}, nil
	default:
		return Window{}, fmt.Errorf("unknown time range %q", string(p))
	}
}

// Custom builds a window from explicit bounds. An inverted range (end
// before start) is allowed; it simply matches nothing.
func Custom(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) || t.After(w.End) {
		return false
	}
	return true
}

// Filter returns the entries whose timestamps fall inside the window,
// preserving input order. An inverted window yields an empty result.
func Filter(entries []store.Entry, w Window) []store.Entry {
	filtered := make([]store.Entry, 0, len(entries))
	for _, e := range entries {
		if w.Contains(e.Timestamp) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
