// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moodlog/ent/checklistentry"
	"github.com/abhisek/moodlog/ent/predicate"
)

// ChecklistEntryDelete is the builder for deleting a ChecklistEntry entity.
type ChecklistEntryDelete struct {
	config
	hooks    []Hook
	mutation *ChecklistEntryMutation
}

// Where appends a list predicates to the ChecklistEntryDelete builder.
func (_d *ChecklistEntryDelete) Where(ps ...predicate.ChecklistEntry) *ChecklistEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChecklistEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChecklistEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChecklistEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(checklistentry.Table, sqlgraph.NewFieldSpec(checklistentry.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChecklistEntryDeleteOne is the builder for deleting a single ChecklistEntry entity.
type ChecklistEntryDeleteOne struct {
	_d *ChecklistEntryDelete
}

// Where appends a list predicates to the ChecklistEntryDelete builder.
func (_d *ChecklistEntryDeleteOne) Where(ps ...predicate.ChecklistEntry) *ChecklistEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChecklistEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{checklistentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChecklistEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
