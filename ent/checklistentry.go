// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moodlog/ent/checklistentry"
)

// ChecklistEntry is the model entity for the ChecklistEntry schema.
type ChecklistEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Total raw score for the submission
	Score int `json:"score,omitempty"`
	// Severity label computed at insert time; never recomputed
	Category string `json:"category,omitempty"`
	// Wall-clock time of the submission, second resolution
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChecklistEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checklistentry.FieldID, checklistentry.FieldScore:
			values[i] = new(sql.NullInt64)
		case checklistentry.FieldCategory:
			values[i] = new(sql.NullString)
		case checklistentry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChecklistEntry fields.
func (_m *ChecklistEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checklistentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case checklistentry.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case checklistentry.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case checklistentry.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChecklistEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ChecklistEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChecklistEntry.
// Note that you need to call ChecklistEntry.Unwrap() before calling this method if this ChecklistEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChecklistEntry) Update() *ChecklistEntryUpdateOne {
	return NewChecklistEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChecklistEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChecklistEntry) Unwrap() *ChecklistEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChecklistEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChecklistEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ChecklistEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChecklistEntries is a parsable slice of ChecklistEntry.
type ChecklistEntries []*ChecklistEntry
