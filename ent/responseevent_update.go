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
	"github.com/nkhanna/examind/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (reu *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	reu.mutation.Where(ps...)
	return reu
}

// SetSessionID sets the "session_id" field.
func (reu *ResponseEventUpdate) SetSessionID(s string) *ResponseEventUpdate {
	reu.mutation.SetSessionID(s)
	return reu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (reu *ResponseEventUpdate) SetNillableSessionID(s *string) *ResponseEventUpdate {
	if s != nil {
		reu.SetSessionID(*s)
	}
	return reu
}

// SetStudentID sets the "student_id" field.
func (reu *ResponseEventUpdate) SetStudentID(i int) *ResponseEventUpdate {
	reu.mutation.ResetStudentID()
	reu.mutation.SetStudentID(i)
	return reu
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (reu *ResponseEventUpdate) SetNillableStudentID(i *int) *ResponseEventUpdate {
	if i != nil {
		reu.SetStudentID(*i)
	}
	return reu
}

// AddStudentID adds i to the "student_id" field.
func (reu *ResponseEventUpdate) AddStudentID(i int) *ResponseEventUpdate {
	reu.mutation.AddStudentID(i)
	return reu
}

// SetQuestionID sets the "question_id" field.
func (reu *ResponseEventUpdate) SetQuestionID(i int) *ResponseEventUpdate {
	reu.mutation.ResetQuestionID()
	reu.mutation.SetQuestionID(i)
	return reu
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (reu *ResponseEventUpdate) SetNillableQuestionID(i *int) *ResponseEventUpdate {
	if i != nil {
		reu.SetQuestionID(*i)
	}
	return reu
}

// AddQuestionID adds i to the "question_id" field.
func (reu *ResponseEventUpdate) AddQuestionID(i int) *ResponseEventUpdate {
	reu.mutation.AddQuestionID(i)
	return reu
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (reu *ResponseEventUpdate) SetDifficultyLevel(i int) *ResponseEventUpdate {
	reu.mutation.ResetDifficultyLevel()
	reu.mutation.SetDifficultyLevel(i)
	return reu
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (reu *ResponseEventUpdate) SetNillableDifficultyLevel(i *int) *ResponseEventUpdate {
	if i != nil {
		reu.SetDifficultyLevel(*i)
	}
	return reu
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (reu *ResponseEventUpdate) AddDifficultyLevel(i int) *ResponseEventUpdate {
	reu.mutation.AddDifficultyLevel(i)
	return reu
}

// SetCorrect sets the "correct" field.
func (reu *ResponseEventUpdate) SetCorrect(b bool) *ResponseEventUpdate {
	reu.mutation.SetCorrect(b)
	return reu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (reu *ResponseEventUpdate) SetNillableCorrect(b *bool) *ResponseEventUpdate {
	if b != nil {
		reu.SetCorrect(*b)
	}
	return reu
}

// SetTimeTaken sets the "time_taken" field.
func (reu *ResponseEventUpdate) SetTimeTaken(i int) *ResponseEventUpdate {
	reu.mutation.ResetTimeTaken()
	reu.mutation.SetTimeTaken(i)
	return reu
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (reu *ResponseEventUpdate) SetNillableTimeTaken(i *int) *ResponseEventUpdate {
	if i != nil {
		reu.SetTimeTaken(*i)
	}
	return reu
}

// AddTimeTaken adds i to the "time_taken" field.
func (reu *ResponseEventUpdate) AddTimeTaken(i int) *ResponseEventUpdate {
	reu.mutation.AddTimeTaken(i)
	return reu
}

// Mutation returns the ResponseEventMutation object of the builder.
func (reu *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return reu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (reu *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, reu.sqlSave, reu.mutation, reu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reu *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := reu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (reu *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := reu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reu *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := reu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reu *ResponseEventUpdate) check() error {
	if v, ok := reu.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.DifficultyLevel(); ok {
		if err := responseevent.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.difficulty_level": %w`, err)}
		}
	}
	if v, ok := reu.mutation.TimeTaken(); ok {
		if err := responseevent.TimeTakenValidator(v); err != nil {
			return &ValidationError{Name: "time_taken", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.time_taken": %w`, err)}
		}
	}
	return nil
}

func (reu *ResponseEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := reu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := reu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reu.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := reu.mutation.StudentID(); ok {
		_spec.SetField(responseevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedStudentID(); ok {
		_spec.AddField(responseevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := reu.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedQuestionID(); ok {
		_spec.AddField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := reu.mutation.DifficultyLevel(); ok {
		_spec.SetField(responseevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(responseevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := reu.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := reu.mutation.TimeTaken(); ok {
		_spec.SetField(responseevent.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedTimeTaken(); ok {
		_spec.AddField(responseevent.FieldTimeTaken, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, reu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	reu.mutation.done = true
	return n, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (reuo *ResponseEventUpdateOne) SetSessionID(s string) *ResponseEventUpdateOne {
	reuo.mutation.SetSessionID(s)
	return reuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (reuo *ResponseEventUpdateOne) SetNillableSessionID(s *string) *ResponseEventUpdateOne {
	if s != nil {
		reuo.SetSessionID(*s)
	}
	return reuo
}

// SetStudentID sets the "student_id" field.
func (reuo *ResponseEventUpdateOne) SetStudentID(i int) *ResponseEventUpdateOne {
	reuo.mutation.ResetStudentID()
	reuo.mutation.SetStudentID(i)
	return reuo
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (reuo *ResponseEventUpdateOne) SetNillableStudentID(i *int) *ResponseEventUpdateOne {
	if i != nil {
		reuo.SetStudentID(*i)
	}
	return reuo
}

// AddStudentID adds i to the "student_id" field.
func (reuo *ResponseEventUpdateOne) AddStudentID(i int) *ResponseEventUpdateOne {
	reuo.mutation.AddStudentID(i)
	return reuo
}

// SetQuestionID sets the "question_id" field.
func (reuo *ResponseEventUpdateOne) SetQuestionID(i int) *ResponseEventUpdateOne {
	reuo.mutation.ResetQuestionID()
	reuo.mutation.SetQuestionID(i)
	return reuo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (reuo *ResponseEventUpdateOne) SetNillableQuestionID(i *int) *ResponseEventUpdateOne {
	if i != nil {
		reuo.SetQuestionID(*i)
	}
	return reuo
}

// AddQuestionID adds i to the "question_id" field.
func (reuo *ResponseEventUpdateOne) AddQuestionID(i int) *ResponseEventUpdateOne {
	reuo.mutation.AddQuestionID(i)
	return reuo
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (reuo *ResponseEventUpdateOne) SetDifficultyLevel(i int) *ResponseEventUpdateOne {
	reuo.mutation.ResetDifficultyLevel()
	reuo.mutation.SetDifficultyLevel(i)
	return reuo
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (reuo *ResponseEventUpdateOne) SetNillableDifficultyLevel(i *int) *ResponseEventUpdateOne {
	if i != nil {
		reuo.SetDifficultyLevel(*i)
	}
	return reuo
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (reuo *ResponseEventUpdateOne) AddDifficultyLevel(i int) *ResponseEventUpdateOne {
	reuo.mutation.AddDifficultyLevel(i)
	return reuo
}

// SetCorrect sets the "correct" field.
func (reuo *ResponseEventUpdateOne) SetCorrect(b bool) *ResponseEventUpdateOne {
	reuo.mutation.SetCorrect(b)
	return reuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (reuo *ResponseEventUpdateOne) SetNillableCorrect(b *bool) *ResponseEventUpdateOne {
	if b != nil {
		reuo.SetCorrect(*b)
	}
	return reuo
}

// SetTimeTaken sets the "time_taken" field.
func (reuo *ResponseEventUpdateOne) SetTimeTaken(i int) *ResponseEventUpdateOne {
	reuo.mutation.ResetTimeTaken()
	reuo.mutation.SetTimeTaken(i)
	return reuo
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (reuo *ResponseEventUpdateOne) SetNillableTimeTaken(i *int) *ResponseEventUpdateOne {
	if i != nil {
		reuo.SetTimeTaken(*i)
	}
	return reuo
}

// AddTimeTaken adds i to the "time_taken" field.
func (reuo *ResponseEventUpdateOne) AddTimeTaken(i int) *ResponseEventUpdateOne {
	reuo.mutation.AddTimeTaken(i)
	return reuo
}

// Mutation returns the ResponseEventMutation object of the builder.
func (reuo *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return reuo.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (reuo *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	reuo.mutation.Where(ps...)
	return reuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (reuo *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	reuo.fields = append([]string{field}, fields...)
	return reuo
}

// Save executes the query and returns the updated ResponseEvent entity.
func (reuo *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, reuo.sqlSave, reuo.mutation, reuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reuo *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := reuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (reuo *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := reuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reuo *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := reuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reuo *ResponseEventUpdateOne) check() error {
	if v, ok := reuo.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.DifficultyLevel(); ok {
		if err := responseevent.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.difficulty_level": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.TimeTaken(); ok {
		if err := responseevent.TimeTakenValidator(v); err != nil {
			return &ValidationError{Name: "time_taken", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.time_taken": %w`, err)}
		}
	}
	return nil
}

func (reuo *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := reuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := reuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := reuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := reuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reuo.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.StudentID(); ok {
		_spec.SetField(responseevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedStudentID(); ok {
		_spec.AddField(responseevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedQuestionID(); ok {
		_spec.AddField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.DifficultyLevel(); ok {
		_spec.SetField(responseevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(responseevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := reuo.mutation.TimeTaken(); ok {
		_spec.SetField(responseevent.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedTimeTaken(); ok {
		_spec.AddField(responseevent.FieldTimeTaken, field.TypeInt, value)
	}
	_node = &ResponseEvent{config: reuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, reuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	reuo.mutation.done = true
	return _node, nil
}
