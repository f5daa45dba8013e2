package schema

import (
	"entgo.io/ent"
)

// ChecklistEntry records one Burns Depression Checklist submission.
// Rows are append-only; there is no update or delete path.
type ChecklistEntry struct {
	ent.Schema
}

func (ChecklistEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{ScoreEntryMixin{}}
}
