// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/moodlog/ent/checklistentry"
)

// ChecklistEntryCreate is the builder for creating a ChecklistEntry entity.
type ChecklistEntryCreate struct {
	config
	mutation *ChecklistEntryMutation
	hooks    []Hook
}

// SetScore sets the "score" field.
func (_c *ChecklistEntryCreate) SetScore(v int) *ChecklistEntryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ChecklistEntryCreate) SetCategory(v string) *ChecklistEntryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChecklistEntryCreate) SetTimestamp(v time.Time) *ChecklistEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChecklistEntryCreate) SetNillableTimestamp(v *time.Time) *ChecklistEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the ChecklistEntryMutation object of the builder.
func (_c *ChecklistEntryCreate) Mutation() *ChecklistEntryMutation {
	return _c.mutation
}

// Save creates the ChecklistEntry in the database.
func (_c *ChecklistEntryCreate) Save(ctx context.Context) (*ChecklistEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChecklistEntryCreate) SaveX(ctx context.Context) *ChecklistEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChecklistEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checklistentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChecklistEntryCreate) check() error {
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ChecklistEntry.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := checklistentry.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ChecklistEntry.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ChecklistEntry.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := checklistentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ChecklistEntry.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChecklistEntry.timestamp"`)}
	}
	return nil
}

func (_c *ChecklistEntryCreate) sqlSave(ctx context.Context) (*ChecklistEntry, error) {
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

func (_c *ChecklistEntryCreate) createSpec() (*ChecklistEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ChecklistEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checklistentry.Table, sqlgraph.NewFieldSpec(checklistentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(checklistentry.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(checklistentry.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checklistentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// ChecklistEntryCreateBulk is the builder for creating many ChecklistEntry entities in bulk.
type ChecklistEntryCreateBulk struct {
	config
	err      error
	builders []*ChecklistEntryCreate
}

// Save creates the ChecklistEntry entities in the database.
func (_c *ChecklistEntryCreateBulk) Save(ctx context.Context) ([]*ChecklistEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChecklistEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChecklistEntryMutation)
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
func (_c *ChecklistEntryCreateBulk) SaveX(ctx context.Context) []*ChecklistEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
