package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CustomEntry records one submission for a user-defined instrument.
// Built-in instruments keep their own tables; user catalogs share this one,
// partitioned by instrument_id.
type CustomEntry struct {
	ent.Schema
}

func (CustomEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{ScoreEntryMixin{}}
}

func (CustomEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("instrument_id").
			NotEmpty().
			Immutable().
			Comment("ID of the user-defined instrument this entry belongs to"),
	}
}

func (CustomEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instrument_id"),
	}
}
