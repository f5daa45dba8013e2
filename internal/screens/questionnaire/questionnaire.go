package questionnaire

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodlog/internal/router"
	"github.com/abhisek/moodlog/internal/screen"
	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/store"
	"github.com/abhisek/moodlog/internal/ui/components"
	"github.com/abhisek/moodlog/internal/ui/layout"
	"github.com/abhisek/moodlog/internal/ui/theme"
)

// submittedMsg reports the outcome of scoring and persisting a check-in.
type submittedMsg struct {
	EntryID        int
	Score          int
	Classification screening.Classification
	Err            error
}

// QuestionnaireScreen steps through one instrument's questions and submits
// the collected responses.
type QuestionnaireScreen struct {
	instrument *screening.Instrument
	repo       store.ScoreRepo

	rating    components.RatingScale
	responses []int
	current   int

	submitting bool
	result     *submittedMsg
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates a questionnaire screen for the instrument.
func New(in *screening.Instrument, repo store.ScoreRepo) *QuestionnaireScreen {
	return &QuestionnaireScreen{
		instrument: in,
		repo:       repo,
		rating:     components.NewRatingScale(in.Questions[0], in.ScaleLabels),
		responses:  make([]int, 0, in.ItemCount()),
	}
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionnaireScreen) Title() string {
	return s.instrument.Name
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/0-9", Description: "Rate"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		s.submitting = false
		s.result = &msg
		return s, nil

	case tea.KeyMsg:
		if s.result != nil {
			switch msg.String() {
			case "enter", "esc":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if s.submitting || s.result != nil {
		return s, nil
	}

	var cmd tea.Cmd
	s.rating, cmd = s.rating.Update(msg)
	if !s.rating.Submitted {
		return s, cmd
	}

	s.responses = append(s.responses, s.rating.Value())
	if s.current < s.instrument.ItemCount()-1 {
		s.current++
		s.rating.Reset(s.instrument.Questions[s.current])
		return s, cmd
	}

	s.submitting = true
	return s, s.submit()
}

// submit scores, classifies, and persists the collected responses. A
// validation failure aborts before anything touches storage.
func (s *QuestionnaireScreen) submit() tea.Cmd {
	responses := make([]int, len(s.responses))
	copy(responses, s.responses)

	return func() tea.Msg {
		score, err := screening.Score(s.instrument, responses)
		if err != nil {
			return submittedMsg{Err: err}
		}

		cls := screening.Classify(s.instrument, score)
		id, err := s.repo.Save(context.Background(), score, cls.Label())
		if err != nil {
			return submittedMsg{Err: err}
		}

		return submittedMsg{EntryID: id, Score: score, Classification: cls}
	}
}

func (s *QuestionnaireScreen) View(width, height int) string {
	if s.result != nil {
		return s.resultView(width)
	}
	if s.submitting {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Saving...")
	}

	var b strings.Builder
	b.WriteString("\n")

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.current+1, s.instrument.ItemCount()),
		float64(s.current)/float64(s.instrument.ItemCount()),
		false,
		min(width-8, 60),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 70)).Render(s.rating.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}

func (s *QuestionnaireScreen) resultView(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.result.Err != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render("Could not save your check-in: "+s.result.Err.Error())))
		return b.String()
	}

	cls := s.result.Classification
	scoreLine := fmt.Sprintf("Your total score is %d out of %d", s.result.Score, s.instrument.MaxScore())
	categoryLine := lipgloss.NewStyle().
		Foreground(theme.SeverityColor(s.bandIndex(cls), len(s.instrument.Bands))).
		Bold(true).
		Render(cls.Label())

	content := lipgloss.NewStyle().Foreground(theme.Text).Render(scoreLine) +
		"\n\n" + categoryLine + "\n\n" +
		theme.Hint.Render("Saved. Your history is under History on the home screen.")

	card := theme.Card.Width(min(width-8, 60)).Render(content)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}

// bandIndex locates the classified band within the instrument's table for
// severity coloring.
func (s *QuestionnaireScreen) bandIndex(cls screening.Classification) int {
	if cls.OutOfRange {
		return len(s.instrument.Bands) - 1
	}
	for i, b := range s.instrument.Bands {
		if b == cls.Band {
			return i
		}
	}
	return 0
}
