// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkhanna/examind/ent/predicate"
	"github.com/nkhanna/examind/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seu *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetSessionID sets the "session_id" field.
func (seu *SessionEventUpdate) SetSessionID(s string) *SessionEventUpdate {
	seu.mutation.SetSessionID(s)
	return seu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableSessionID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetSessionID(*s)
	}
	return seu
}

// SetStudentID sets the "student_id" field.
func (seu *SessionEventUpdate) SetStudentID(i int) *SessionEventUpdate {
	seu.mutation.ResetStudentID()
	seu.mutation.SetStudentID(i)
	return seu
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableStudentID(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetStudentID(*i)
	}
	return seu
}

// AddStudentID adds i to the "student_id" field.
func (seu *SessionEventUpdate) AddStudentID(i int) *SessionEventUpdate {
	seu.mutation.AddStudentID(i)
	return seu
}

// SetAction sets the "action" field.
func (seu *SessionEventUpdate) SetAction(s string) *SessionEventUpdate {
	seu.mutation.SetAction(s)
	return seu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableAction(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetAction(*s)
	}
	return seu
}

// SetQuestionsServed sets the "questions_served" field.
func (seu *SessionEventUpdate) SetQuestionsServed(i int) *SessionEventUpdate {
	seu.mutation.ResetQuestionsServed()
	seu.mutation.SetQuestionsServed(i)
	return seu
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableQuestionsServed(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetQuestionsServed(*i)
	}
	return seu
}

// AddQuestionsServed adds i to the "questions_served" field.
func (seu *SessionEventUpdate) AddQuestionsServed(i int) *SessionEventUpdate {
	seu.mutation.AddQuestionsServed(i)
	return seu
}

// SetCorrectAnswers sets the "correct_answers" field.
func (seu *SessionEventUpdate) SetCorrectAnswers(i int) *SessionEventUpdate {
	seu.mutation.ResetCorrectAnswers()
	seu.mutation.SetCorrectAnswers(i)
	return seu
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableCorrectAnswers(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetCorrectAnswers(*i)
	}
	return seu
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (seu *SessionEventUpdate) AddCorrectAnswers(i int) *SessionEventUpdate {
	seu.mutation.AddCorrectAnswers(i)
	return seu
}

// SetFinalAbility sets the "final_ability" field.
func (seu *SessionEventUpdate) SetFinalAbility(f float64) *SessionEventUpdate {
	seu.mutation.ResetFinalAbility()
	seu.mutation.SetFinalAbility(f)
	return seu
}

// SetNillableFinalAbility sets the "final_ability" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableFinalAbility(f *float64) *SessionEventUpdate {
	if f != nil {
		seu.SetFinalAbility(*f)
	}
	return seu
}

// AddFinalAbility adds f to the "final_ability" field.
func (seu *SessionEventUpdate) AddFinalAbility(f float64) *SessionEventUpdate {
	seu.mutation.AddFinalAbility(f)
	return seu
}

// Mutation returns the SessionEventMutation object of the builder.
func (seu *SessionEventUpdate) Mutation() *SessionEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SessionEventUpdate) check() error {
	if v, ok := seu.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seu *SessionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seu.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedStudentID(); ok {
		_spec.AddField(sessionevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := seu.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seu.mutation.QuestionsServed(); ok {
		_spec.SetField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := seu.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seu.mutation.FinalAbility(); ok {
		_spec.SetField(sessionevent.FieldFinalAbility, field.TypeFloat64, value)
	}
	if value, ok := seu.mutation.AddedFinalAbility(); ok {
		_spec.AddField(sessionevent.FieldFinalAbility, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (seuo *SessionEventUpdateOne) SetSessionID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetSessionID(s)
	return seuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableSessionID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetSessionID(*s)
	}
	return seuo
}

// SetStudentID sets the "student_id" field.
func (seuo *SessionEventUpdateOne) SetStudentID(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetStudentID()
	seuo.mutation.SetStudentID(i)
	return seuo
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableStudentID(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetStudentID(*i)
	}
	return seuo
}

// AddStudentID adds i to the "student_id" field.
func (seuo *SessionEventUpdateOne) AddStudentID(i int) *SessionEventUpdateOne {
	seuo.mutation.AddStudentID(i)
	return seuo
}

// SetAction sets the "action" field.
func (seuo *SessionEventUpdateOne) SetAction(s string) *SessionEventUpdateOne {
	seuo.mutation.SetAction(s)
	return seuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableAction(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetAction(*s)
	}
	return seuo
}

// SetQuestionsServed sets the "questions_served" field.
func (seuo *SessionEventUpdateOne) SetQuestionsServed(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetQuestionsServed()
	seuo.mutation.SetQuestionsServed(i)
	return seuo
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableQuestionsServed(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetQuestionsServed(*i)
	}
	return seuo
}

// AddQuestionsServed adds i to the "questions_served" field.
func (seuo *SessionEventUpdateOne) AddQuestionsServed(i int) *SessionEventUpdateOne {
	seuo.mutation.AddQuestionsServed(i)
	return seuo
}

// SetCorrectAnswers sets the "correct_answers" field.
func (seuo *SessionEventUpdateOne) SetCorrectAnswers(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetCorrectAnswers()
	seuo.mutation.SetCorrectAnswers(i)
	return seuo
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableCorrectAnswers(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetCorrectAnswers(*i)
	}
	return seuo
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (seuo *SessionEventUpdateOne) AddCorrectAnswers(i int) *SessionEventUpdateOne {
	seuo.mutation.AddCorrectAnswers(i)
	return seuo
}

// SetFinalAbility sets the "final_ability" field.
func (seuo *SessionEventUpdateOne) SetFinalAbility(f float64) *SessionEventUpdateOne {
	seuo.mutation.ResetFinalAbility()
	seuo.mutation.SetFinalAbility(f)
	return seuo
}

// SetNillableFinalAbility sets the "final_ability" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableFinalAbility(f *float64) *SessionEventUpdateOne {
	if f != nil {
		seuo.SetFinalAbility(*f)
	}
	return seuo
}

// AddFinalAbility adds f to the "final_ability" field.
func (seuo *SessionEventUpdateOne) AddFinalAbility(f float64) *SessionEventUpdateOne {
	seuo.mutation.AddFinalAbility(f)
	return seuo
}

// Mutation returns the SessionEventMutation object of the builder.
func (seuo *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seuo *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SessionEvent entity.
func (seuo *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SessionEventUpdateOne) check() error {
	if v, ok := seuo.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seuo *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedStudentID(); ok {
		_spec.AddField(sessionevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seuo.mutation.QuestionsServed(); ok {
		_spec.SetField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.FinalAbility(); ok {
		_spec.SetField(sessionevent.FieldFinalAbility, field.TypeFloat64, value)
	}
	if value, ok := seuo.mutation.AddedFinalAbility(); ok {
		_spec.AddField(sessionevent.FieldFinalAbility, field.TypeFloat64, value)
	}
	_node = &SessionEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
