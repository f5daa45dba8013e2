// Code generated by ent, DO NOT EDIT.

package customentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moodlog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLTE(FieldID, id))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldScore, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldCategory, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldTimestamp, v))
}

// InstrumentID applies equality check predicate on the "instrument_id" field. It's identical to InstrumentIDEQ.
func InstrumentID(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldInstrumentID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLTE(FieldScore, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldContainsFold(FieldCategory, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLTE(FieldTimestamp, v))
}

// InstrumentIDEQ applies the EQ predicate on the "instrument_id" field.
func InstrumentIDEQ(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEQ(FieldInstrumentID, v))
}

// InstrumentIDNEQ applies the NEQ predicate on the "instrument_id" field.
func InstrumentIDNEQ(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNEQ(FieldInstrumentID, v))
}

// InstrumentIDIn applies the In predicate on the "instrument_id" field.
func InstrumentIDIn(vs ...string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldIn(FieldInstrumentID, vs...))
}

// InstrumentIDNotIn applies the NotIn predicate on the "instrument_id" field.
func InstrumentIDNotIn(vs ...string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldNotIn(FieldInstrumentID, vs...))
}

// InstrumentIDGT applies the GT predicate on the "instrument_id" field.
func InstrumentIDGT(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGT(FieldInstrumentID, v))
}

// InstrumentIDGTE applies the GTE predicate on the "instrument_id" field.
func InstrumentIDGTE(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldGTE(FieldInstrumentID, v))
}

// InstrumentIDLT applies the LT predicate on the "instrument_id" field.
func InstrumentIDLT(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLT(FieldInstrumentID, v))
}

// InstrumentIDLTE applies the LTE predicate on the "instrument_id" field.
func InstrumentIDLTE(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldLTE(FieldInstrumentID, v))
}

// InstrumentIDContains applies the Contains predicate on the "instrument_id" field.
func InstrumentIDContains(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldContains(FieldInstrumentID, v))
}

// InstrumentIDHasPrefix applies the HasPrefix predicate on the "instrument_id" field.
func InstrumentIDHasPrefix(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldHasPrefix(FieldInstrumentID, v))
}

// InstrumentIDHasSuffix applies the HasSuffix predicate on the "instrument_id" field.
func InstrumentIDHasSuffix(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldHasSuffix(FieldInstrumentID, v))
}

// InstrumentIDEqualFold applies the EqualFold predicate on the "instrument_id" field.
func InstrumentIDEqualFold(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldEqualFold(FieldInstrumentID, v))
}

// InstrumentIDContainsFold applies the ContainsFold predicate on the "instrument_id" field.
func InstrumentIDContainsFold(v string) predicate.CustomEntry {
	return predicate.CustomEntry(sql.FieldContainsFold(FieldInstrumentID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CustomEntry) predicate.CustomEntry {
	return predicate.CustomEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CustomEntry) predicate.CustomEntry {
	return predicate.CustomEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CustomEntry) predicate.CustomEntry {
	return predicate.CustomEntry(sql.NotPredicates(p))
}
