// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChecklistEntry is the predicate function for checklistentry builders.
type ChecklistEntry func(*sql.Selector)

// CustomEntry is the predicate function for customentry builders.
type CustomEntry func(*sql.Selector)

// Gad7Entry is the predicate function for gad7entry builders.
type Gad7Entry func(*sql.Selector)
