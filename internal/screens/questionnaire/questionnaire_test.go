package questionnaire

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/store"
)

type fakeRepo struct {
	savedScore    int
	savedCategory string
	saves         int
	err           error
}

func (f *fakeRepo) Save(_ context.Context, score int, category string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saves++
	f.savedScore = score
	f.savedCategory = category
	return f.saves, nil
}

func (f *fakeRepo) ListAll(context.Context) ([]store.Entry, error) { return nil, nil }

func testInstrument() *screening.Instrument {
	return &screening.Instrument{
		ID:           "calm3",
		Name:         "Calm Check",
		MaxItemValue: 2,
		ScaleLabels:  []string{"Not at all", "Somewhat", "A lot"},
		Questions:    []string{"Feeling tense?", "Feeling restless?"},
		Bands: []screening.Band{
			{Low: 0, High: 1, Label: "Settled"},
			{Low: 2, High: 4, Label: "Uneasy"},
		},
	}
}

func enter() tea.Msg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestQuestionnaireAdvancesThroughQuestions(t *testing.T) {
	repo := &fakeRepo{}
	s := New(testInstrument(), repo)

	if s.current != 0 {
		t.Fatalf("current = %d, want 0", s.current)
	}

	updated, cmd := s.Update(enter())
	s = updated.(*QuestionnaireScreen)
	if cmd != nil {
		t.Fatal("expected no command after first answer")
	}
	if s.current != 1 {
		t.Fatalf("current = %d, want 1 after first answer", s.current)
	}
	if len(s.responses) != 1 || s.responses[0] != 0 {
		t.Fatalf("responses = %v, want [0]", s.responses)
	}
}

func TestQuestionnaireSubmitsAfterLastQuestion(t *testing.T) {
	repo := &fakeRepo{}
	s := New(testInstrument(), repo)

	updated, _ := s.Update(enter())
	s = updated.(*QuestionnaireScreen)
	updated, cmd := s.Update(enter())
	s = updated.(*QuestionnaireScreen)

	if !s.submitting {
		t.Fatal("expected screen to be submitting after the last answer")
	}
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	msg, ok := cmd().(submittedMsg)
	if !ok {
		t.Fatalf("submit command returned %T, want submittedMsg", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("unexpected submit error: %v", msg.Err)
	}
	if msg.Score != 0 {
		t.Fatalf("score = %d, want 0", msg.Score)
	}
	if msg.Classification.Label() != "Settled" {
		t.Fatalf("label = %q, want Settled", msg.Classification.Label())
	}
	if repo.savedCategory != "Settled" {
		t.Fatalf("saved category = %q, want Settled", repo.savedCategory)
	}

	updated, _ = s.Update(msg)
	s = updated.(*QuestionnaireScreen)
	if s.result == nil {
		t.Fatal("expected result to be set after submittedMsg")
	}
}

func TestQuestionnaireSaveFailureSurfaces(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk full")}
	s := New(testInstrument(), repo)

	updated, _ := s.Update(enter())
	s = updated.(*QuestionnaireScreen)
	_, cmd := s.Update(enter())

	msg := cmd().(submittedMsg)
	if msg.Err == nil {
		t.Fatal("expected an error when the repo fails")
	}
}

func TestBandIndex(t *testing.T) {
	in := testInstrument()
	s := New(in, &fakeRepo{})

	cls := screening.Classify(in, 3)
	if got := s.bandIndex(cls); got != 1 {
		t.Fatalf("bandIndex = %d, want 1", got)
	}

	oob := screening.Classify(in, 99)
	if got := s.bandIndex(oob); got != len(in.Bands)-1 {
		t.Fatalf("bandIndex out of range = %d, want %d", got, len(in.Bands)-1)
	}
}
