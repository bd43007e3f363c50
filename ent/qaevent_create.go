// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/railz/ent/qaevent"
)

// QAEventCreate is the builder for creating a QAEvent entity.
type QAEventCreate struct {
	config
	mutation *QAEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QAEventCreate) SetSequence(v int64) *QAEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QAEventCreate) SetTimestamp(v time.Time) *QAEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QAEventCreate) SetNillableTimestamp(v *time.Time) *QAEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTutorialID sets the "tutorial_id" field.
func (_c *QAEventCreate) SetTutorialID(v string) *QAEventCreate {
	_c.mutation.SetTutorialID(v)
	return _c
}

// SetNillableTutorialID sets the "tutorial_id" field if the given value is not nil.
func (_c *QAEventCreate) SetNillableTutorialID(v *string) *QAEventCreate {
	if v != nil {
		_c.SetTutorialID(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QAEventCreate) SetQuestion(v string) *QAEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QAEventCreate) SetAnswer(v string) *QAEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *QAEventCreate) SetNillableAnswer(v *string) *QAEventCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *QAEventCreate) SetSource(v string) *QAEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// Mutation returns the QAEventMutation object of the builder.
func (_c *QAEventCreate) Mutation() *QAEventMutation {
	return _c.mutation
}

// Save creates the QAEvent in the database.
func (_c *QAEventCreate) Save(ctx context.Context) (*QAEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QAEventCreate) SaveX(ctx context.Context) *QAEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QAEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QAEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QAEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := qaevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Answer(); !ok {
		v := qaevent.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QAEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QAEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QAEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QAEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := qaevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QAEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "QAEvent.answer"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "QAEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := qaevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QAEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_c *QAEventCreate) sqlSave(ctx context.Context) (*QAEvent, error) {
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

func (_c *QAEventCreate) createSpec() (*QAEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QAEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(qaevent.Table, sqlgraph.NewFieldSpec(qaevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(qaevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(qaevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TutorialID(); ok {
		_spec.SetField(qaevent.FieldTutorialID, field.TypeString, value)
		_node.TutorialID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(qaevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(qaevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(qaevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// QAEventCreateBulk is the builder for creating many QAEvent entities in bulk.
type QAEventCreateBulk struct {
	config
	err      error
	builders []*QAEventCreate
}

// Save creates the QAEvent entities in the database.
func (_c *QAEventCreateBulk) Save(ctx context.Context) ([]*QAEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QAEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QAEventMutation)
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
func (_c *QAEventCreateBulk) SaveX(ctx context.Context) []*QAEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QAEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QAEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
