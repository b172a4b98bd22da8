// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nkhanna/examind/ent/predicate"
	"github.com/nkhanna/examind/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (qu *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	qu.mutation.Where(ps...)
	return qu
}

// SetText sets the "text" field.
func (qu *QuestionUpdate) SetText(s string) *QuestionUpdate {
	qu.mutation.SetText(s)
	return qu
}

// SetNillableText sets the "text" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableText(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetText(*s)
	}
	return qu
}

// SetOptions sets the "options" field.
func (qu *QuestionUpdate) SetOptions(s []string) *QuestionUpdate {
	qu.mutation.SetOptions(s)
	return qu
}

// AppendOptions appends s to the "options" field.
func (qu *QuestionUpdate) AppendOptions(s []string) *QuestionUpdate {
	qu.mutation.AppendOptions(s)
	return qu
}

// SetCorrectOption sets the "correct_option" field.
func (qu *QuestionUpdate) SetCorrectOption(s string) *QuestionUpdate {
	qu.mutation.SetCorrectOption(s)
	return qu
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableCorrectOption(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetCorrectOption(*s)
	}
	return qu
}

// SetTopic sets the "topic" field.
func (qu *QuestionUpdate) SetTopic(s string) *QuestionUpdate {
	qu.mutation.SetTopic(s)
	return qu
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableTopic(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetTopic(*s)
	}
	return qu
}

// SetDifficulty sets the "difficulty" field.
func (qu *QuestionUpdate) SetDifficulty(s string) *QuestionUpdate {
	qu.mutation.SetDifficulty(s)
	return qu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableDifficulty(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetDifficulty(*s)
	}
	return qu
}

// SetDiscrimination sets the "discrimination" field.
func (qu *QuestionUpdate) SetDiscrimination(f float64) *QuestionUpdate {
	qu.mutation.ResetDiscrimination()
	qu.mutation.SetDiscrimination(f)
	return qu
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableDiscrimination(f *float64) *QuestionUpdate {
	if f != nil {
		qu.SetDiscrimination(*f)
	}
	return qu
}

// AddDiscrimination adds f to the "discrimination" field.
func (qu *QuestionUpdate) AddDiscrimination(f float64) *QuestionUpdate {
	qu.mutation.AddDiscrimination(f)
	return qu
}

// Mutation returns the QuestionMutation object of the builder.
func (qu *QuestionUpdate) Mutation() *QuestionMutation {
	return qu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qu *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qu.sqlSave, qu.mutation, qu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qu *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := qu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qu *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := qu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qu *QuestionUpdate) ExecX(ctx context.Context) {
	if err := qu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qu *QuestionUpdate) check() error {
	if v, ok := qu.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := qu.mutation.CorrectOption(); ok {
		if err := question.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Question.correct_option": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Topic(); ok {
		if err := question.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Question.topic": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	return nil
}

func (qu *QuestionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := qu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qu.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := qu.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := qu.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if value, ok := qu.mutation.CorrectOption(); ok {
		_spec.SetField(question.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := qu.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := qu.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := qu.mutation.Discrimination(); ok {
		_spec.SetField(question.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := qu.mutation.AddedDiscrimination(); ok {
		_spec.AddField(question.FieldDiscrimination, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qu.mutation.done = true
	return n, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetText sets the "text" field.
func (quo *QuestionUpdateOne) SetText(s string) *QuestionUpdateOne {
	quo.mutation.SetText(s)
	return quo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableText(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetText(*s)
	}
	return quo
}

// SetOptions sets the "options" field.
func (quo *QuestionUpdateOne) SetOptions(s []string) *QuestionUpdateOne {
	quo.mutation.SetOptions(s)
	return quo
}

// AppendOptions appends s to the "options" field.
func (quo *QuestionUpdateOne) AppendOptions(s []string) *QuestionUpdateOne {
	quo.mutation.AppendOptions(s)
	return quo
}

// SetCorrectOption sets the "correct_option" field.
func (quo *QuestionUpdateOne) SetCorrectOption(s string) *QuestionUpdateOne {
	quo.mutation.SetCorrectOption(s)
	return quo
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableCorrectOption(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetCorrectOption(*s)
	}
	return quo
}

// SetTopic sets the "topic" field.
func (quo *QuestionUpdateOne) SetTopic(s string) *QuestionUpdateOne {
	quo.mutation.SetTopic(s)
	return quo
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableTopic(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetTopic(*s)
	}
	return quo
}

// SetDifficulty sets the "difficulty" field.
func (quo *QuestionUpdateOne) SetDifficulty(s string) *QuestionUpdateOne {
	quo.mutation.SetDifficulty(s)
	return quo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableDifficulty(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetDifficulty(*s)
	}
	return quo
}

// SetDiscrimination sets the "discrimination" field.
func (quo *QuestionUpdateOne) SetDiscrimination(f float64) *QuestionUpdateOne {
	quo.mutation.ResetDiscrimination()
	quo.mutation.SetDiscrimination(f)
	return quo
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableDiscrimination(f *float64) *QuestionUpdateOne {
	if f != nil {
		quo.SetDiscrimination(*f)
	}
	return quo
}

// AddDiscrimination adds f to the "discrimination" field.
func (quo *QuestionUpdateOne) AddDiscrimination(f float64) *QuestionUpdateOne {
	quo.mutation.AddDiscrimination(f)
	return quo
}

// Mutation returns the QuestionMutation object of the builder.
func (quo *QuestionUpdateOne) Mutation() *QuestionMutation {
	return quo.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (quo *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	quo.mutation.Where(ps...)
	return quo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (quo *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	quo.fields = append([]string{field}, fields...)
	return quo
}

// Save executes the query and returns the updated Question entity.
func (quo *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, quo.sqlSave, quo.mutation, quo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (quo *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := quo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (quo *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := quo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (quo *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := quo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (quo *QuestionUpdateOne) check() error {
	if v, ok := quo.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := quo.mutation.CorrectOption(); ok {
		if err := question.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Question.correct_option": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Topic(); ok {
		if err := question.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Question.topic": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	return nil
}

func (quo *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := quo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := quo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := quo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := quo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := quo.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := quo.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := quo.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if value, ok := quo.mutation.CorrectOption(); ok {
		_spec.SetField(question.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := quo.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := quo.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := quo.mutation.Discrimination(); ok {
		_spec.SetField(question.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := quo.mutation.AddedDiscrimination(); ok {
		_spec.AddField(question.FieldDiscrimination, field.TypeFloat64, value)
	}
	_node = &Question{config: quo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, quo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	quo.mutation.done = true
	return _node, nil
}
