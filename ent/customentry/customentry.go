// Code generated by ent, DO NOT EDIT.

package customentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the customentry type in the database.
	Label = "custom_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldInstrumentID holds the string denoting the instrument_id field in the database.
	FieldInstrumentID = "instrument_id"
	// Table holds the table name of the customentry in the database.
	Table = "custom_entries"
)

// Columns holds all SQL columns for customentry fields.
var Columns = []string{
	FieldID,
	FieldScore,
	FieldCategory,
	FieldTimestamp,
	FieldInstrumentID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// InstrumentIDValidator is a validator for the "instrument_id" field. It is called by the builders before save.
	InstrumentIDValidator func(string) error
)

// OrderOption defines the ordering options for the CustomEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByInstrumentID orders the results by the instrument_id field.
func ByInstrumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstrumentID, opts...).ToFunc()
}
