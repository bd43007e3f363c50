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
	"github.com/abhisek/railz/ent/qaevent"
)

// QAEventUpdate is the builder for updating QAEvent entities.
type QAEventUpdate struct {
	config
	hooks    []Hook
	mutation *QAEventMutation
}

// Where appends a list predicates to the QAEventUpdate builder.
func (_u *QAEventUpdate) Where(ps ...predicate.QAEvent) *QAEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTutorialID sets the "tutorial_id" field.
func (_u *QAEventUpdate) SetTutorialID(v string) *QAEventUpdate {
	_u.mutation.SetTutorialID(v)
	return _u
}

// SetNillableTutorialID sets the "tutorial_id" field if the given value is not nil.
func (_u *QAEventUpdate) SetNillableTutorialID(v *string) *QAEventUpdate {
	if v != nil {
		_u.SetTutorialID(*v)
	}
	return _u
}

// ClearTutorialID clears the value of the "tutorial_id" field.
func (_u *QAEventUpdate) ClearTutorialID() *QAEventUpdate {
	_u.mutation.ClearTutorialID()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QAEventUpdate) SetQuestion(v string) *QAEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QAEventUpdate) SetNillableQuestion(v *string) *QAEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QAEventUpdate) SetAnswer(v string) *QAEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QAEventUpdate) SetNillableAnswer(v *string) *QAEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QAEventUpdate) SetSource(v string) *QAEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QAEventUpdate) SetNillableSource(v *string) *QAEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the QAEventMutation object of the builder.
func (_u *QAEventUpdate) Mutation() *QAEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QAEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QAEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QAEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QAEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QAEventUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := qaevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QAEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := qaevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QAEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *QAEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qaevent.Table, qaevent.Columns, sqlgraph.NewFieldSpec(qaevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TutorialID(); ok {
		_spec.SetField(qaevent.FieldTutorialID, field.TypeString, value)
	}
	if _u.mutation.TutorialIDCleared() {
		_spec.ClearField(qaevent.FieldTutorialID, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(qaevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(qaevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(qaevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qaevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QAEventUpdateOne is the builder for updating a single QAEvent entity.
type QAEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QAEventMutation
}

// SetTutorialID sets the "tutorial_id" field.
func (_u *QAEventUpdateOne) SetTutorialID(v string) *QAEventUpdateOne {
	_u.mutation.SetTutorialID(v)
	return _u
}

// SetNillableTutorialID sets the "tutorial_id" field if the given value is not nil.
func (_u *QAEventUpdateOne) SetNillableTutorialID(v *string) *QAEventUpdateOne {
	if v != nil {
		_u.SetTutorialID(*v)
	}
	return _u
}

// ClearTutorialID clears the value of the "tutorial_id" field.
func (_u *QAEventUpdateOne) ClearTutorialID() *QAEventUpdateOne {
	_u.mutation.ClearTutorialID()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QAEventUpdateOne) SetQuestion(v string) *QAEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QAEventUpdateOne) SetNillableQuestion(v *string) *QAEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QAEventUpdateOne) SetAnswer(v string) *QAEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QAEventUpdateOne) SetNillableAnswer(v *string) *QAEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QAEventUpdateOne) SetSource(v string) *QAEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QAEventUpdateOne) SetNillableSource(v *string) *QAEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the QAEventMutation object of the builder.
func (_u *QAEventUpdateOne) Mutation() *QAEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QAEventUpdate builder.
func (_u *QAEventUpdateOne) Where(ps ...predicate.QAEvent) *QAEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QAEventUpdateOne) Select(field string, fields ...string) *QAEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QAEvent entity.
func (_u *QAEventUpdateOne) Save(ctx context.Context) (*QAEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QAEventUpdateOne) SaveX(ctx context.Context) *QAEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QAEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QAEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QAEventUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := qaevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "QAEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := qaevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QAEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *QAEventUpdateOne) sqlSave(ctx context.Context) (_node *QAEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qaevent.Table, qaevent.Columns, sqlgraph.NewFieldSpec(qaevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QAEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qaevent.FieldID)
		for _, f := range fields {
			if !qaevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qaevent.FieldID {
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
		_spec.SetField(qaevent.FieldTutorialID, field.TypeString, value)
	}
	if _u.mutation.TutorialIDCleared() {
		_spec.ClearField(qaevent.FieldTutorialID, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(qaevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(qaevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(qaevent.FieldSource, field.TypeString, value)
	}
	_node = &QAEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qaevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
