// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moodlog/ent/gad7entry"
	"github.com/abhisek/moodlog/ent/predicate"
)

// Gad7EntryDelete is the builder for deleting a Gad7Entry entity.
type Gad7EntryDelete struct {
	config
	hooks    []Hook
	mutation *Gad7EntryMutation
}

// Where appends a list predicates to the Gad7EntryDelete builder.
func (_d *Gad7EntryDelete) Where(ps ...predicate.Gad7Entry) *Gad7EntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *Gad7EntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *Gad7EntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *Gad7EntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gad7entry.Table, sqlgraph.NewFieldSpec(gad7entry.FieldID, field.TypeInt))
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

// Gad7EntryDeleteOne is the builder for deleting a single Gad7Entry entity.
type Gad7EntryDeleteOne struct {
	_d *Gad7EntryDelete
}

// Where appends a list predicates to the Gad7EntryDelete builder.
func (_d *Gad7EntryDeleteOne) Where(ps ...predicate.Gad7Entry) *Gad7EntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *Gad7EntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gad7entry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *Gad7EntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
