// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moodlog/ent/gad7entry"
)

// Gad7EntryCreate is the builder for creating a Gad7Entry entity.
type Gad7EntryCreate struct {
	config
	mutation *Gad7EntryMutation
	hooks    []Hook
}

// SetScore sets the "score" field.
func (_c *Gad7EntryCreate) SetScore(v int) *Gad7EntryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *Gad7EntryCreate) SetCategory(v string) *Gad7EntryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *Gad7EntryCreate) SetTimestamp(v time.Time) *Gad7EntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *Gad7EntryCreate) SetNillableTimestamp(v *time.Time) *Gad7EntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the Gad7EntryMutation object of the builder.
func (_c *Gad7EntryCreate) Mutation() *Gad7EntryMutation {
	return _c.mutation
}

// Save creates the Gad7Entry in the database.
func (_c *Gad7EntryCreate) Save(ctx context.Context) (*Gad7Entry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *Gad7EntryCreate) SaveX(ctx context.Context) *Gad7Entry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *Gad7EntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *Gad7EntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *Gad7EntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gad7entry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *Gad7EntryCreate) check() error {
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Gad7Entry.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := gad7entry.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Gad7Entry.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Gad7Entry.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := gad7entry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Gad7Entry.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Gad7Entry.timestamp"`)}
	}
	return nil
}

func (_c *Gad7EntryCreate) sqlSave(ctx context.Context) (*Gad7Entry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *Gad7EntryCreate) createSpec() (*Gad7Entry, *sqlgraph.CreateSpec) {
	var (
		_node = &Gad7Entry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gad7entry.Table, sqlgraph.NewFieldSpec(gad7entry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gad7entry.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(gad7entry.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gad7entry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// Gad7EntryCreateBulk is the builder for creating many Gad7Entry entities in bulk.
type Gad7EntryCreateBulk struct {
	config
	err      error
	builders []*Gad7EntryCreate
}

// Save creates the Gad7Entry entities in the database.
func (_c *Gad7EntryCreateBulk) Save(ctx context.Context) ([]*Gad7Entry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Gad7Entry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*Gad7EntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *Gad7EntryCreateBulk) SaveX(ctx context.Context) []*Gad7Entry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *Gad7EntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *Gad7EntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
