package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodlog/internal/router"
	"github.com/abhisek/moodlog/internal/screen"
	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/store"
	"github.com/abhisek/moodlog/internal/timewindow"
	"github.com/abhisek/moodlog/internal/ui/components"
	"github.com/abhisek/moodlog/internal/ui/layout"
	"github.com/abhisek/moodlog/internal/ui/theme"
)

// RepoProvider resolves the persistence repo for an instrument.
type RepoProvider interface {
	RepoFor(instrumentID string) store.ScoreRepo
}

// loadedMsg carries the entries fetched for one instrument.
type loadedMsg struct {
	InstrumentID string
	Entries      []store.Entry
	Err          error
}

// customRange is the sentinel position after the presets in the range cycle.
const customRange = "custom"

// HistoryScreen shows past check-ins for one instrument at a time: a score
// chart plus the most recent entries, filtered by a time range.
type HistoryScreen struct {
	registry *screening.Registry
	repos    RepoProvider

	instruments []*screening.Instrument
	instIdx     int

	ranges   []string // preset ids plus customRange
	rangeIdx int

	// Custom range editing state. The applied window is only used while
	// ranges[rangeIdx] == customRange and customApplied is set.
	fromInput     components.TextInput
	toInput       components.TextInput
	editingCustom bool
	onToField     bool
	customWindow  timewindow.Window
	customApplied bool
	customErr     string

	entries []store.Entry
	loaded  bool
	loadErr error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen showing the first instrument with the
// given preset selected.
func New(registry *screening.Registry, repos RepoProvider, initial timewindow.Preset) *HistoryScreen {
	ranges := make([]string, 0, len(timewindow.Presets())+1)
	rangeIdx := 0
	for i, p := range timewindow.Presets() {
		if p == initial {
			rangeIdx = i
		}
		ranges = append(ranges, string(p))
	}
	ranges = append(ranges, customRange)

	return &HistoryScreen{
		registry:    registry,
		repos:       repos,
		instruments: registry.All(),
		ranges:      ranges,
		rangeIdx:    rangeIdx,
		fromInput:   components.NewTextInput("2026-01-01", 16),
		toInput:     components.NewTextInput("2026-12-31", 16),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.editingCustom {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next/Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Instrument"},
		{Key: "←→", Description: "Range"},
		{Key: "Esc", Description: "Back"},
	}
}

// instrument returns the currently selected instrument.
func (s *HistoryScreen) instrument() *screening.Instrument {
	return s.instruments[s.instIdx]
}

// load fetches all entries for the current instrument. Range filtering
// happens in memory afterwards, so switching ranges never re-queries.
func (s *HistoryScreen) load() tea.Cmd {
	id := s.instrument().ID
	repo := s.repos.RepoFor(id)
	return func() tea.Msg {
		entries, err := repo.ListAll(context.Background())
		return loadedMsg{InstrumentID: id, Entries: entries, Err: err}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		// A stale load can arrive after the user tabs away.
		if msg.InstrumentID != s.instrument().ID {
			return s, nil
		}
		s.loaded = true
		s.loadErr = msg.Err
		s.entries = msg.Entries
		return s, nil

	case tea.KeyMsg:
		if s.editingCustom {
			return s.updateCustomEditor(msg)
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.instIdx = (s.instIdx + 1) % len(s.instruments)
			s.loaded = false
			s.entries = nil
			return s, s.load()
		case "left", "h":
			s.rangeIdx = (s.rangeIdx + len(s.ranges) - 1) % len(s.ranges)
			return s, s.onRangeChanged()
		case "right", "l":
			s.rangeIdx = (s.rangeIdx + 1) % len(s.ranges)
			return s, s.onRangeChanged()
		case "enter":
			if s.ranges[s.rangeIdx] == customRange {
				return s, s.beginCustomEdit()
			}
		}
	}

	return s, nil
}

// onRangeChanged opens the editor when the cycle lands on the custom range
// without an applied window yet.
func (s *HistoryScreen) onRangeChanged() tea.Cmd {
	if s.ranges[s.rangeIdx] == customRange && !s.customApplied {
		return s.beginCustomEdit()
	}
	return nil
}

func (s *HistoryScreen) beginCustomEdit() tea.Cmd {
	s.editingCustom = true
	s.onToField = false
	s.customErr = ""
	s.toInput.Model.Blur()
	return s.fromInput.Model.Focus()
}

func (s *HistoryScreen) updateCustomEditor(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editingCustom = false
		if !s.customApplied {
			// Nothing applied yet; fall back to All Time.
			s.rangeIdx = 0
		}
		return s, nil
	case "enter", "tab":
		if !s.onToField {
			s.onToField = true
			s.fromInput.Model.Blur()
			return s, s.toInput.Model.Focus()
		}
		return s, s.applyCustomRange()
	}

	var cmd tea.Cmd
	if s.onToField {
		s.toInput, cmd = s.toInput.Update(msg)
	} else {
		s.fromInput, cmd = s.fromInput.Update(msg)
	}
	return s, cmd
}

// applyCustomRange parses both date fields and, when valid, applies the
// window. An inverted window is accepted and simply matches nothing.
func (s *HistoryScreen) applyCustomRange() tea.Cmd {
	from, err := parseDate(s.fromInput.Value(), false)
	if err != nil {
		s.customErr = "From date must look like 2026-01-31"
		s.fromInput.Submit(false)
		return nil
	}
	s.fromInput.Submit(true)

	to, err := parseDate(s.toInput.Value(), true)
	if err != nil {
		s.customErr = "To date must look like 2026-01-31"
		s.toInput.Submit(false)
		return nil
	}
	s.toInput.Submit(true)

	s.customWindow = timewindow.Custom(from, to)
	s.customApplied = true
	s.editingCustom = false
	s.customErr = ""
	s.toInput.Model.Blur()
	return nil
}

// parseDate accepts "2006-01-02 15:04" or a bare date. A bare "to" date is
// stretched to the end of that day so the bound stays inclusive.
func parseDate(value string, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}

// window resolves the active time window.
func (s *HistoryScreen) window() timewindow.Window {
	if s.ranges[s.rangeIdx] == customRange {
		if s.customApplied {
			return s.customWindow
		}
		return timewindow.Window{}
	}
	w, err := timewindow.Resolve(timewindow.Preset(s.ranges[s.rangeIdx]), time.Now())
	if err != nil {
		return timewindow.Window{}
	}
	return w
}

// rangeLabel names the active range for the selector row.
func (s *HistoryScreen) rangeLabel(id string) string {
	if id == customRange {
		if s.customApplied {
			return fmt.Sprintf("%s → %s",
				s.customWindow.Start.Format("Jan 02"),
				s.customWindow.End.Format("Jan 02"))
		}
		return "Custom"
	}
	return timewindow.Preset(id).DisplayName()
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.selectorRow()))
	b.WriteString("\n\n")

	if s.editingCustom {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.customEditorView(width)))
		return b.String()
	}

	if !s.loaded {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Loading...")))
		return b.String()
	}
	if s.loadErr != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render("Could not load history: "+s.loadErr.Error())))
		return b.String()
	}

	filtered := timewindow.Filter(s.entries, s.window())

	chartWidth := min(width-6, 76)
	chartHeight := 9
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewChart(chartPoints(filtered), s.instrument().MaxScore(), chartWidth, chartHeight).View()))
	b.WriteString("\n\n")

	b.WriteString(s.entryList(filtered, width, height))
	return b.String()
}

// selectorRow shows the instrument tabs and the active range.
func (s *HistoryScreen) selectorRow() string {
	var tabs []string
	for i, in := range s.instruments {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.instIdx {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(in.Name))
	}

	rangeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	row := strings.Join(tabs, theme.Hint.Render("  ·  "))
	row += theme.Hint.Render("    range: ")
	row += rangeStyle.Render("◂ " + s.rangeLabel(s.ranges[s.rangeIdx]) + " ▸")
	return row
}

func (s *HistoryScreen) customEditorView(width int) string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	content := label.Render("Custom range") + "\n\n" +
		theme.Hint.Render("Dates as 2026-01-31, optionally with a time (2026-01-31 14:30).") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("From: ") + s.fromInput.View() + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  To: ") + s.toInput.View()

	if s.customErr != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.customErr)
	}

	return theme.Card.Width(min(width-8, 56)).Render(content)
}

// entryList renders the newest entries, capped to the remaining height.
func (s *HistoryScreen) entryList(entries []store.Entry, width, height int) string {
	if len(entries) == 0 {
		return ""
	}

	maxRows := height - 16
	if maxRows < 3 {
		maxRows = 3
	}

	var b strings.Builder
	in := s.instrument()
	ts := lipgloss.NewStyle().Foreground(theme.TextDim)
	sc := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	shown := entries
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	for _, e := range shown {
		line := fmt.Sprintf("  %s   %s   %s",
			ts.Render(e.Timestamp.Format("Mon, Jan 02 2006 15:04")),
			sc.Render(fmt.Sprintf("%3d/%d", e.Score, in.MaxScore())),
			lipgloss.NewStyle().
				Foreground(theme.SeverityColor(categoryIndex(in, e.Category), len(in.Bands))).
				Render(e.Category))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	if len(entries) > maxRows {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("  ...and %d more", len(entries)-maxRows))))
	}
	return b.String()
}

// chartPoints converts entries to chart points.
func chartPoints(entries []store.Entry) []components.Point {
	points := make([]components.Point, len(entries))
	for i, e := range entries {
		points[i] = components.Point{Time: e.Timestamp, Value: e.Score}
	}
	return points
}

// categoryIndex finds the band whose label matches a stored category.
// Stored labels survive instrument edits, so an unmatched label is possible
// and falls back to the first band.
func categoryIndex(in *screening.Instrument, category string) int {
	for i, b := range in.Bands {
		if b.Label == category {
			return i
		}
	}
	return 0
}
