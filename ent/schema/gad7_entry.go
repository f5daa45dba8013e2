package schema

import (
	"entgo.io/ent"
)

// Gad7Entry records one GAD-7 anxiety questionnaire submission.
// Rows are append-only; there is no update or delete path.
type Gad7Entry struct {
	ent.Schema
}

func (Gad7Entry) Mixin() []ent.Mixin {
	return []ent.Mixin{ScoreEntryMixin{}}
}
