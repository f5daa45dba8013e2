// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moodlog/ent/gad7entry"
)

// Gad7Entry is the model entity for the Gad7Entry schema.
type Gad7Entry struct {
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
func (*Gad7Entry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gad7entry.FieldID, gad7entry.FieldScore:
			values[i] = new(sql.NullInt64)
		case gad7entry.FieldCategory:
			values[i] = new(sql.NullString)
		case gad7entry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Gad7Entry fields.
func (_m *Gad7Entry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gad7entry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gad7entry.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case gad7entry.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case gad7entry.FieldTimestamp:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Gad7Entry.
// This includes values selected through modifiers, order, etc.
func (_m *Gad7Entry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Gad7Entry.
// Note that you need to call Gad7Entry.Unwrap() before calling this method if this Gad7Entry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Gad7Entry) Update() *Gad7EntryUpdateOne {
	return NewGad7EntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Gad7Entry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Gad7Entry) Unwrap() *Gad7Entry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Gad7Entry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Gad7Entry) String() string {
	var builder strings.Builder
	builder.WriteString("Gad7Entry(")
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

// Gad7Entries is a parsable slice of Gad7Entry.
type Gad7Entries []*Gad7Entry
