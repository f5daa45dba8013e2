// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moodlog/ent/gad7entry"
	"github.com/abhisek/moodlog/ent/predicate"
)

// Gad7EntryUpdate is the builder for updating Gad7Entry entities.
type Gad7EntryUpdate struct {
	config
	hooks    []Hook
	mutation *Gad7EntryMutation
}

// Where appends a list predicates to the Gad7EntryUpdate builder.
func (_u *Gad7EntryUpdate) Where(ps ...predicate.Gad7Entry) *Gad7EntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the Gad7EntryMutation object of the builder.
func (_u *Gad7EntryUpdate) Mutation() *Gad7EntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *Gad7EntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *Gad7EntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *Gad7EntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *Gad7EntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *Gad7EntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gad7entry.Table, gad7entry.Columns, sqlgraph.NewFieldSpec(gad7entry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gad7entry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Gad7EntryUpdateOne is the builder for updating a single Gad7Entry entity.
type Gad7EntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *Gad7EntryMutation
}

// Mutation returns the Gad7EntryMutation object of the builder.
func (_u *Gad7EntryUpdateOne) Mutation() *Gad7EntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the Gad7EntryUpdate builder.
func (_u *Gad7EntryUpdateOne) Where(ps ...predicate.Gad7Entry) *Gad7EntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *Gad7EntryUpdateOne) Select(field string, fields ...string) *Gad7EntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Gad7Entry entity.
func (_u *Gad7EntryUpdateOne) Save(ctx context.Context) (*Gad7Entry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *Gad7EntryUpdateOne) SaveX(ctx context.Context) *Gad7Entry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *Gad7EntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *Gad7EntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *Gad7EntryUpdateOne) sqlSave(ctx context.Context) (_node *Gad7Entry, err error) {
	_spec := sqlgraph.NewUpdateSpec(gad7entry.Table, gad7entry.Columns, sqlgraph.NewFieldSpec(gad7entry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Gad7Entry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gad7entry.FieldID)
		for _, f := range fields {
			if !gad7entry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gad7entry.FieldID {
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
	_node = &Gad7Entry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gad7entry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
