// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/railz/ent/predicate"
	"github.com/abhisek/railz/ent/scoreevent"
)

// ScoreEventUpdate is the builder for updating ScoreEvent entities.
type ScoreEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreEventMutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdate) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTutorialID sets the "tutorial_id" field.
func (_u *ScoreEventUpdate) SetTutorialID(v string) *ScoreEventUpdate {
	_u.mutation.SetTutorialID(v)
	return _u
}

// SetNillableTutorialID sets the "tutorial_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableTutorialID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetTutorialID(*v)
	}
	return _u
}

// SetFromScore sets the "from_score" field.
func (_u *ScoreEventUpdate) SetFromScore(v int) *ScoreEventUpdate {
	_u.mutation.ResetFromScore()
	_u.mutation.SetFromScore(v)
	return _u
}

// SetNillableFromScore sets the "from_score" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableFromScore(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetFromScore(*v)
	}
	return _u
}

// AddFromScore adds value to the "from_score" field.
func (_u *ScoreEventUpdate) AddFromScore(v int) *ScoreEventUpdate {
	_u.mutation.AddFromScore(v)
	return _u
}

// SetToScore sets the "to_score" field.
func (_u *ScoreEventUpdate) SetToScore(v int) *ScoreEventUpdate {
	_u.mutation.ResetToScore()
	_u.mutation.SetToScore(v)
	return _u
}

// SetNillableToScore sets the "to_score" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableToScore(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetToScore(*v)
	}
	return _u
}

// AddToScore adds value to the "to_score" field.
func (_u *ScoreEventUpdate) AddToScore(v int) *ScoreEventUpdate {
	_u.mutation.AddToScore(v)
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *ScoreEventUpdate) SetFromState(v string) *ScoreEventUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableFromState(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *ScoreEventUpdate) SetToState(v string) *ScoreEventUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableToState(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ScoreEventUpdate) SetTrigger(v string) *ScoreEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableTrigger(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdate) SetSessionID(v string) *ScoreEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableSessionID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ScoreEventUpdate) ClearSessionID() *ScoreEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdate) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdate) check() error {
	if v, ok := _u.mutation.TutorialID(); ok {
		if err := scoreevent.TutorialIDValidator(v); err != nil {
			return &ValidationError{Name: "tutorial_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.tutorial_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := scoreevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := scoreevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := scoreevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TutorialID(); ok {
		_spec.SetField(scoreevent.FieldTutorialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromScore(); ok {
		_spec.SetField(scoreevent.FieldFromScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromScore(); ok {
		_spec.AddField(scoreevent.FieldFromScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToScore(); ok {
		_spec.SetField(scoreevent.FieldToScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToScore(); ok {
		_spec.AddField(scoreevent.FieldToScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(scoreevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(scoreevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(scoreevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(scoreevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreEventUpdateOne is the builder for updating a single ScoreEvent entity.
type ScoreEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreEventMutation
}

// SetTutorialID sets the "tutorial_id" field.
func (_u *ScoreEventUpdateOne) SetTutorialID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetTutorialID(v)
	return _u
}

// SetNillableTutorialID sets the "tutorial_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableTutorialID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetTutorialID(*v)
	}
	return _u
}

// SetFromScore sets the "from_score" field.
func (_u *ScoreEventUpdateOne) SetFromScore(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetFromScore()
	_u.mutation.SetFromScore(v)
	return _u
}

// SetNillableFromScore sets the "from_score" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableFromScore(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetFromScore(*v)
	}
	return _u
}

// AddFromScore adds value to the "from_score" field.
func (_u *ScoreEventUpdateOne) AddFromScore(v int) *ScoreEventUpdateOne {
	_u.mutation.AddFromScore(v)
	return _u
}

// SetToScore sets the "to_score" field.
func (_u *ScoreEventUpdateOne) SetToScore(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetToScore()
	_u.mutation.SetToScore(v)
	return _u
}

// SetNillableToScore sets the "to_score" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableToScore(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetToScore(*v)
	}
	return _u
}

// AddToScore adds value to the "to_score" field.
func (_u *ScoreEventUpdateOne) AddToScore(v int) *ScoreEventUpdateOne {
	_u.mutation.AddToScore(v)
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *ScoreEventUpdateOne) SetFromState(v string) *ScoreEventUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableFromState(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *ScoreEventUpdateOne) SetToState(v string) *ScoreEventUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableToState(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ScoreEventUpdateOne) SetTrigger(v string) *ScoreEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableTrigger(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdateOne) SetSessionID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableSessionID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ScoreEventUpdateOne) ClearSessionID() *ScoreEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdateOne) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdateOne) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreEventUpdateOne) Select(field string, fields ...string) *ScoreEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreEvent entity.
func (_u *ScoreEventUpdateOne) Save(ctx context.Context) (*ScoreEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) SaveX(ctx context.Context) *ScoreEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdateOne) check() error {
	if v, ok := _u.mutation.TutorialID(); ok {
		if err := scoreevent.TutorialIDValidator(v); err != nil {
			return &ValidationError{Name: "tutorial_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.tutorial_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := scoreevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := scoreevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := scoreevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdateOne) sqlSave(ctx context.Context) (_node *ScoreEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreevent.FieldID)
		for _, f := range fields {
			if !scoreevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreevent.FieldID {
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
	if value, ok := _u.mutation.TutorialID(); ok {
		_spec.SetField(scoreevent.FieldTutorialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromScore(); ok {
		_spec.SetField(scoreevent.FieldFromScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromScore(); ok {
		_spec.AddField(scoreevent.FieldFromScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToScore(); ok {
		_spec.SetField(scoreevent.FieldToScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToScore(); ok {
		_spec.AddField(scoreevent.FieldToScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(scoreevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(scoreevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(scoreevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(scoreevent.FieldSessionID, field.TypeString)
	}
	_node = &ScoreEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
