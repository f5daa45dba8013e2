// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/moodlog/ent/checklistentry"
	"github.com/abhisek/moodlog/ent/customentry"
	"github.com/abhisek/moodlog/ent/gad7entry"
	"github.com/abhisek/moodlog/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checklistentryMixin := schema.ChecklistEntry{}.Mixin()
	checklistentryMixinFields0 := checklistentryMixin[0].Fields()
	_ = checklistentryMixinFields0
	checklistentryFields := schema.ChecklistEntry{}.Fields()
	_ = checklistentryFields
	// checklistentryDescScore is the schema descriptor for score field.
	checklistentryDescScore := checklistentryMixinFields0[0].Descriptor()
	// checklistentry.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	checklistentry.ScoreValidator = checklistentryDescScore.Validators[0].(func(int) error)
	// checklistentryDescCategory is the schema descriptor for category field.
	checklistentryDescCategory := checklistentryMixinFields0[1].Descriptor()
	// checklistentry.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	checklistentry.CategoryValidator = checklistentryDescCategory.Validators[0].(func(string) error)
	// checklistentryDescTimestamp is the schema descriptor for timestamp field.
	checklistentryDescTimestamp := checklistentryMixinFields0[2].Descriptor()
	// checklistentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	checklistentry.DefaultTimestamp = checklistentryDescTimestamp.Default.(func() time.Time)
	customentryMixin := schema.CustomEntry{}.Mixin()
	customentryMixinFields0 := customentryMixin[0].Fields()
	_ = customentryMixinFields0
	customentryFields := schema.CustomEntry{}.Fields()
	_ = customentryFields
	// customentryDescScore is the schema descriptor for score field.
	customentryDescScore := customentryMixinFields0[0].Descriptor()
	// customentry.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	customentry.ScoreValidator = customentryDescScore.Validators[0].(func(int) error)
	// customentryDescCategory is the schema descriptor for category field.
	customentryDescCategory := customentryMixinFields0[1].Descriptor()
	// customentry.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	customentry.CategoryValidator = customentryDescCategory.Validators[0].(func(string) error)
	// customentryDescTimestamp is the schema descriptor for timestamp field.
	customentryDescTimestamp := customentryMixinFields0[2].Descriptor()
	// customentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	customentry.DefaultTimestamp = customentryDescTimestamp.Default.(func() time.Time)
	// customentryDescInstrumentID is the schema descriptor for instrument_id field.
	customentryDescInstrumentID := customentryFields[0].Descriptor()
	// customentry.InstrumentIDValidator is a validator for the "instrument_id" field. It is called by the builders before save.
	customentry.InstrumentIDValidator = customentryDescInstrumentID.Validators[0].(func(string) error)
	gad7entryMixin := schema.Gad7Entry{}.Mixin()
	gad7entryMixinFields0 := gad7entryMixin[0].Fields()
	_ = gad7entryMixinFields0
	gad7entryFields := schema.Gad7Entry{}.Fields()
	_ = gad7entryFields
	// gad7entryDescScore is the schema descriptor for score field.
	gad7entryDescScore := gad7entryMixinFields0[0].Descriptor()
	// gad7entry.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	gad7entry.ScoreValidator = gad7entryDescScore.Validators[0].(func(int) error)
	// gad7entryDescCategory is the schema descriptor for category field.
	gad7entryDescCategory := gad7entryMixinFields0[1].Descriptor()
	// gad7entry.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	gad7entry.CategoryValidator = gad7entryDescCategory.Validators[0].(func(string) error)
	// gad7entryDescTimestamp is the schema descriptor for timestamp field.
	gad7entryDescTimestamp := gad7entryMixinFields0[2].Descriptor()
	// gad7entry.DefaultTimestamp holds the default value on creation for the timestamp field.
	gad7entry.DefaultTimestamp = gad7entryDescTimestamp.Default.(func() time.Time)
}
