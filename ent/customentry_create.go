// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moodlog/ent/customentry"
)

// CustomEntryCreate is the builder for creating a CustomEntry entity.
type CustomEntryCreate struct {
	config
	mutation *CustomEntryMutation
	hooks    []Hook
}

// SetScore sets the "score" field.
func (_c *CustomEntryCreate) SetScore(v int) *CustomEntryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CustomEntryCreate) SetCategory(v string) *CustomEntryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CustomEntryCreate) SetTimestamp(v time.Time) *CustomEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CustomEntryCreate) SetNillableTimestamp(v *time.Time) *CustomEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetInstrumentID sets the "instrument_id" field.
func (_c *CustomEntryCreate) SetInstrumentID(v string) *CustomEntryCreate {
	_c.mutation.SetInstrumentID(v)
	return _c
}

// Mutation returns the CustomEntryMutation object of the builder.
func (_c *CustomEntryCreate) Mutation() *CustomEntryMutation {
	return _c.mutation
}

// Save creates the CustomEntry in the database.
func (_c *CustomEntryCreate) Save(ctx context.Context) (*CustomEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CustomEntryCreate) SaveX(ctx context.Context) *CustomEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CustomEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := customentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CustomEntryCreate) check() error {
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CustomEntry.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := customentry.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CustomEntry.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CustomEntry.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := customentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CustomEntry.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CustomEntry.timestamp"`)}
	}
	if _, ok := _c.mutation.InstrumentID(); !ok {
		return &ValidationError{Name: "instrument_id", err: errors.New(`ent: missing required field "CustomEntry.instrument_id"`)}
	}
	if v, ok := _c.mutation.InstrumentID(); ok {
		if err := customentry.InstrumentIDValidator(v); err != nil {
			return &ValidationError{Name: "instrument_id", err: fmt.Errorf(`ent: validator failed for field "CustomEntry.instrument_id": %w`, err)}
		}
	}
	return nil
}

func (_c *CustomEntryCreate) sqlSave(ctx context.Context) (*CustomEntry, error) {
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

func (_c *CustomEntryCreate) createSpec() (*CustomEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CustomEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(customentry.Table, sqlgraph.NewFieldSpec(customentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(customentry.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(customentry.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(customentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.InstrumentID(); ok {
		_spec.SetField(customentry.FieldInstrumentID, field.TypeString, value)
		_node.InstrumentID = value
	}
	return _node, _spec
}

// CustomEntryCreateBulk is the builder for creating many CustomEntry entities in bulk.
type CustomEntryCreateBulk struct {
	config
	err      error
	builders []*CustomEntryCreate
}

// Save creates the CustomEntry entities in the database.
func (_c *CustomEntryCreateBulk) Save(ctx context.Context) ([]*CustomEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CustomEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CustomEntryMutation)
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
func (_c *CustomEntryCreateBulk) SaveX(ctx context.Context) []*CustomEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
