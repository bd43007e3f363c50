// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/railz/ent/scoreevent"
)

// ScoreEventCreate is the builder for creating a ScoreEvent entity.
type ScoreEventCreate struct {
	config
	mutation *ScoreEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScoreEventCreate) SetSequence(v int64) *ScoreEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScoreEventCreate) SetTimestamp(v time.Time) *ScoreEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableTimestamp(v *time.Time) *ScoreEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTutorialID sets the "tutorial_id" field.
func (_c *ScoreEventCreate) SetTutorialID(v string) *ScoreEventCreate {
	_c.mutation.SetTutorialID(v)
	return _c
}

// SetFromScore sets the "from_score" field.
func (_c *ScoreEventCreate) SetFromScore(v int) *ScoreEventCreate {
	_c.mutation.SetFromScore(v)
	return _c
}

// SetToScore sets the "to_score" field.
func (_c *ScoreEventCreate) SetToScore(v int) *ScoreEventCreate {
	_c.mutation.SetToScore(v)
	return _c
}

// SetFromState sets the "from_state" field.
func (_c *ScoreEventCreate) SetFromState(v string) *ScoreEventCreate {
	_c.mutation.SetFromState(v)
	return _c
}

// SetToState sets the "to_state" field.
func (_c *ScoreEventCreate) SetToState(v string) *ScoreEventCreate {
	_c.mutation.SetToState(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *ScoreEventCreate) SetTrigger(v string) *ScoreEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ScoreEventCreate) SetSessionID(v string) *ScoreEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableSessionID(v *string) *ScoreEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_c *ScoreEventCreate) Mutation() *ScoreEventMutation {
	return _c.mutation
}

// Save creates the ScoreEvent in the database.
func (_c *ScoreEventCreate) Save(ctx context.Context) (*ScoreEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreEventCreate) SaveX(ctx context.Context) *ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scoreevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScoreEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScoreEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TutorialID(); !ok {
		return &ValidationError{Name: "tutorial_id", err: errors.New(`ent: missing required field "ScoreEvent.tutorial_id"`)}
	}
	if v, ok := _c.mutation.TutorialID(); ok {
		if err := scoreevent.TutorialIDValidator(v); err != nil {
			return &ValidationError{Name: "tutorial_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.tutorial_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromScore(); !ok {
		return &ValidationError{Name: "from_score", err: errors.New(`ent: missing required field "ScoreEvent.from_score"`)}
	}
	if _, ok := _c.mutation.ToScore(); !ok {
		return &ValidationError{Name: "to_score", err: errors.New(`ent: missing required field "ScoreEvent.to_score"`)}
	}
	if _, ok := _c.mutation.FromState(); !ok {
		return &ValidationError{Name: "from_state", err: errors.New(`ent: missing required field "ScoreEvent.from_state"`)}
	}
	if v, ok := _c.mutation.FromState(); ok {
		if err := scoreevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.from_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToState(); !ok {
		return &ValidationError{Name: "to_state", err: errors.New(`ent: missing required field "ScoreEvent.to_state"`)}
	}
	if v, ok := _c.mutation.ToState(); ok {
		if err := scoreevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.to_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "ScoreEvent.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := scoreevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_c *ScoreEventCreate) sqlSave(ctx context.Context) (*ScoreEvent, error) {
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

func (_c *ScoreEventCreate) createSpec() (*ScoreEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoreevent.Table, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scoreevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scoreevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TutorialID(); ok {
		_spec.SetField(scoreevent.FieldTutorialID, field.TypeString, value)
		_node.TutorialID = value
	}
	if value, ok := _c.mutation.FromScore(); ok {
		_spec.SetField(scoreevent.FieldFromScore, field.TypeInt, value)
		_node.FromScore = value
	}
	if value, ok := _c.mutation.ToScore(); ok {
		_spec.SetField(scoreevent.FieldToScore, field.TypeInt, value)
		_node.ToScore = value
	}
	if value, ok := _c.mutation.FromState(); ok {
		_spec.SetField(scoreevent.FieldFromState, field.TypeString, value)
		_node.FromState = value
	}
	if value, ok := _c.mutation.ToState(); ok {
		_spec.SetField(scoreevent.FieldToState, field.TypeString, value)
		_node.ToState = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(scoreevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ScoreEventCreateBulk is the builder for creating many ScoreEvent entities in bulk.
type ScoreEventCreateBulk struct {
	config
	err      error
	builders []*ScoreEventCreate
}

// Save creates the ScoreEvent entities in the database.
func (_c *ScoreEventCreateBulk) Save(ctx context.Context) ([]*ScoreEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreEventMutation)
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
func (_c *ScoreEventCreateBulk) SaveX(ctx context.Context) []*ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
