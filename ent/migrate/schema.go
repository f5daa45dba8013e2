// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChecklistEntriesColumns holds the columns for the "checklist_entries" table.
	ChecklistEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// ChecklistEntriesTable holds the schema information for the "checklist_entries" table.
	ChecklistEntriesTable = &schema.Table{
		Name:       "checklist_entries",
		Columns:    ChecklistEntriesColumns,
		PrimaryKey: []*schema.Column{ChecklistEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checklistentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChecklistEntriesColumns[3]},
			},
		},
	}
	// CustomEntriesColumns holds the columns for the "custom_entries" table.
	CustomEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "instrument_id", Type: field.TypeString},
	}
	// CustomEntriesTable holds the schema information for the "custom_entries" table.
	CustomEntriesTable = &schema.Table{
		Name:       "custom_entries",
		Columns:    CustomEntriesColumns,
		PrimaryKey: []*schema.Column{CustomEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CustomEntriesColumns[3]},
			},
			{
				Name:    "customentry_instrument_id",
				Unique:  false,
				Columns: []*schema.Column{CustomEntriesColumns[4]},
			},
		},
	}
	// Gad7entriesColumns holds the columns for the "gad7entries" table.
	Gad7entriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// Gad7entriesTable holds the schema information for the "gad7entries" table.
	Gad7entriesTable = &schema.Table{
		Name:       "gad7entries",
		Columns:    Gad7entriesColumns,
		PrimaryKey: []*schema.Column{Gad7entriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gad7entry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{Gad7entriesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChecklistEntriesTable,
		CustomEntriesTable,
		Gad7entriesTable,
	}
)

func init() {
}
