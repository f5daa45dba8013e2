// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moodlog/ent/customentry"
)

// CustomEntry is the model entity for the CustomEntry schema.
type CustomEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Total raw score for the submission
	Score int `json:"score,omitempty"`
	// Severity label computed at insert time; never recomputed
	Category string `json:"category,omitempty"`
	// Wall-clock time of the submission, second resolution
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ID of the user-defined instrument this entry belongs to
	InstrumentID string `json:"instrument_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CustomEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case customentry.FieldID, customentry.FieldScore:
			values[i] = new(sql.NullInt64)
		case customentry.FieldCategory, customentry.FieldInstrumentID:
			values[i] = new(sql.NullString)
		case customentry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CustomEntry fields.
func (_m *CustomEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case customentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case customentry.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case customentry.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case customentry.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case customentry.FieldInstrumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instrument_id", values[i])
			} else if value.Valid {
				_m.InstrumentID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CustomEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CustomEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CustomEntry.
// Note that you need to call CustomEntry.Unwrap() before calling this method if this CustomEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CustomEntry) Update() *CustomEntryUpdateOne {
	return NewCustomEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CustomEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CustomEntry) Unwrap() *CustomEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CustomEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CustomEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CustomEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("instrument_id=")
	builder.WriteString(_m.InstrumentID)
	builder.WriteByte(')')
	return builder.String()
}

// CustomEntries is a parsable slice of CustomEntry.
type CustomEntries []*CustomEntry
