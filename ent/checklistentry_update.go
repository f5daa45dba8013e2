// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moodlog/ent/checklistentry"
	"github.com/abhisek/moodlog/ent/predicate"
)

// ChecklistEntryUpdate is the builder for updating ChecklistEntry entities.
type ChecklistEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ChecklistEntryMutation
}

// Where appends a list predicates to the ChecklistEntryUpdate builder.
func (_u *ChecklistEntryUpdate) Where(ps ...predicate.ChecklistEntry) *ChecklistEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ChecklistEntryMutation object of the builder.
func (_u *ChecklistEntryUpdate) Mutation() *ChecklistEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChecklistEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChecklistEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChecklistEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(checklistentry.Table, checklistentry.Columns, sqlgraph.NewFieldSpec(checklistentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklistentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChecklistEntryUpdateOne is the builder for updating a single ChecklistEntry entity.
type ChecklistEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChecklistEntryMutation
}

// Mutation returns the ChecklistEntryMutation object of the builder.
func (_u *ChecklistEntryUpdateOne) Mutation() *ChecklistEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChecklistEntryUpdate builder.
func (_u *ChecklistEntryUpdateOne) Where(ps ...predicate.ChecklistEntry) *ChecklistEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChecklistEntryUpdateOne) Select(field string, fields ...string) *ChecklistEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChecklistEntry entity.
func (_u *ChecklistEntryUpdateOne) Save(ctx context.Context) (*ChecklistEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistEntryUpdateOne) SaveX(ctx context.Context) *ChecklistEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChecklistEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChecklistEntryUpdateOne) sqlSave(ctx context.Context) (_node *ChecklistEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(checklistentry.Table, checklistentry.Columns, sqlgraph.NewFieldSpec(checklistentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChecklistEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checklistentry.FieldID)
		for _, f := range fields {
			if !checklistentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checklistentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &ChecklistEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklistentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
