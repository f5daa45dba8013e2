package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodlog/internal/router"
	"github.com/abhisek/moodlog/internal/screen"
	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/screens/history"
	"github.com/abhisek/moodlog/internal/screens/questionnaire"
	"github.com/abhisek/moodlog/internal/store"
	"github.com/abhisek/moodlog/internal/timewindow"
	"github.com/abhisek/moodlog/internal/ui/components"
	"github.com/abhisek/moodlog/internal/ui/layout"
	"github.com/abhisek/moodlog/internal/ui/theme"
)

// instrumentStat summarizes one instrument's history for the welcome card.
type instrumentStat struct {
	Count  int
	Latest *store.Entry
}

// statsMsg carries per-instrument summaries keyed by instrument id.
type statsMsg struct {
	Stats map[string]instrumentStat
}

// HomeScreen is the landing screen: one check-in entry per instrument,
// history, and exit.
type HomeScreen struct {
	registry     *screening.Registry
	repos        history.RepoProvider
	defaultRange timewindow.Preset

	menu  components.Menu
	stats map[string]instrumentStat
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(registry *screening.Registry, repos history.RepoProvider, defaultRange timewindow.Preset) *HomeScreen {
	s := &HomeScreen{
		registry:     registry,
		repos:        repos,
		defaultRange: defaultRange,
	}

	var items []components.MenuItem
	for _, in := range registry.All() {
		items = append(items, components.MenuItem{
			Label: in.Name + " check-in",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: questionnaire.New(in, repos.RepoFor(in.ID)),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "History",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(registry, repos, defaultRange),
				}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.loadStats()
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

// loadStats fetches a small summary per instrument. Errors are ignored:
// the card is decoration and the menu works without it.
func (s *HomeScreen) loadStats() tea.Cmd {
	instruments := s.registry.All()
	repos := s.repos
	return func() tea.Msg {
		stats := make(map[string]instrumentStat, len(instruments))
		for _, in := range instruments {
			entries, err := repos.RepoFor(in.ID).ListAll(context.Background())
			if err != nil {
				continue
			}
			st := instrumentStat{Count: len(entries)}
			if len(entries) > 0 {
				st.Latest = &entries[0]
			}
			stats[in.ID] = st
		}
		return statsMsg{Stats: stats}
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		s.stats = msg.Stats
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("How are you feeling today?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("A private place to track your mood over time"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	b.WriteString("\n")

	if card := s.statsCard(width); card != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	}

	return b.String()
}

// statsCard summarizes each instrument's recorded history.
func (s *HomeScreen) statsCard(width int) string {
	if len(s.stats) == 0 {
		return ""
	}

	var lines []string
	for _, in := range s.registry.All() {
		st, ok := s.stats[in.ID]
		if !ok {
			continue
		}
		name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(in.Name)
		if st.Count == 0 {
			lines = append(lines, fmt.Sprintf("%s  %s", name,
				theme.Hint.Render("no check-ins yet")))
			continue
		}
		latest := fmt.Sprintf("%d check-in%s · last: %s (%s)",
			st.Count, plural(st.Count),
			st.Latest.Category,
			st.Latest.Timestamp.Format("Jan 02"))
		lines = append(lines, fmt.Sprintf("%s  %s", name,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(latest)))
	}
	if len(lines) == 0 {
		return ""
	}

	return theme.Card.Width(min(width-8, 64)).Render(strings.Join(lines, "\n"))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
