package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// ScoreEntryMixin provides the fields shared by all instrument entry types.
// Every instrument entity should include this mixin so entries carry the
// same score/category/timestamp shape regardless of instrument.
type ScoreEntryMixin struct {
	mixin.Schema
}

func (ScoreEntryMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int("score").
			NonNegative().
			Immutable().
			Comment("Total raw score for the submission"),
		field.String("category").
			NotEmpty().
			Immutable().
			Comment("Severity label computed at insert time; never recomputed"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock time of the submission, second resolution"),
	}
}

func (ScoreEntryMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
