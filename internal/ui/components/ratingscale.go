package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodlog/internal/ui/theme"
)

// RatingScale is a selector for one questionnaire item: a rating from 0 to
// len(Labels)-1, each value paired with its scale label.
type RatingScale struct {
	Question  string
	Labels    []string
	Selected  int
	Submitted bool
}

// NewRatingScale creates a rating selector for a question.
func NewRatingScale(question string, labels []string) RatingScale {
	return RatingScale{
		Question: question,
		Labels:   labels,
	}
}

// Init returns nil.
func (r RatingScale) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Number keys jump
// straight to a rating.
func (r RatingScale) Update(msg tea.Msg) (RatingScale, tea.Cmd) {
	if r.Submitted {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if r.Selected > 0 {
			r.Selected--
		}
	case "down", "j":
		if r.Selected < len(r.Labels)-1 {
			r.Selected++
		}
	case "enter":
		r.Submitted = true
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			n := int(key[0] - '0')
			if n < len(r.Labels) {
				r.Selected = n
			}
		}
	}

	return r, nil
}

// View renders the question and its rating options.
func (r RatingScale) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(r.Question) + "\n\n"

	for i, label := range r.Labels {
		prefix := "  "
		if i == r.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i, label)

		if i == r.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Value returns the currently selected rating.
func (r RatingScale) Value() int {
	return r.Selected
}

// Reset prepares the component for the next question.
func (r *RatingScale) Reset(question string) {
	r.Question = question
	r.Selected = 0
	r.Submitted = false
}
