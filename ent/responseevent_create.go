// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkhanna/examind/ent/responseevent"
)

// ResponseEventCreate is the builder for creating a ResponseEvent entity.
type ResponseEventCreate struct {
	config
	mutation *ResponseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (rec *ResponseEventCreate) SetSequence(i int64) *ResponseEventCreate {
	rec.mutation.SetSequence(i)
	return rec
}

// SetTimestamp sets the "timestamp" field.
func (rec *ResponseEventCreate) SetTimestamp(t time.Time) *ResponseEventCreate {
	rec.mutation.SetTimestamp(t)
	return rec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (rec *ResponseEventCreate) SetNillableTimestamp(t *time.Time) *ResponseEventCreate {
	if t != nil {
		rec.SetTimestamp(*t)
	}
	return rec
}

// SetSessionID sets the "session_id" field.
func (rec *ResponseEventCreate) SetSessionID(s string) *ResponseEventCreate {
	rec.mutation.SetSessionID(s)
	return rec
}

// SetStudentID sets the "student_id" field.
func (rec *ResponseEventCreate) SetStudentID(i int) *ResponseEventCreate {
	rec.mutation.SetStudentID(i)
	return rec
}

// SetQuestionID sets the "question_id" field.
func (rec *ResponseEventCreate) SetQuestionID(i int) *ResponseEventCreate {
	rec.mutation.SetQuestionID(i)
	return rec
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (rec *ResponseEventCreate) SetDifficultyLevel(i int) *ResponseEventCreate {
	rec.mutation.SetDifficultyLevel(i)
	return rec
}

// SetCorrect sets the "correct" field.
func (rec *ResponseEventCreate) SetCorrect(b bool) *ResponseEventCreate {
	rec.mutation.SetCorrect(b)
	return rec
}

// SetTimeTaken sets the "time_taken" field.
func (rec *ResponseEventCreate) SetTimeTaken(i int) *ResponseEventCreate {
	rec.mutation.SetTimeTaken(i)
	return rec
}

// Mutation returns the ResponseEventMutation object of the builder.
func (rec *ResponseEventCreate) Mutation() *ResponseEventMutation {
	return rec.mutation
}

// Save creates the ResponseEvent in the database.
func (rec *ResponseEventCreate) Save(ctx context.Context) (*ResponseEvent, error) {
	rec.defaults()
	return withHooks(ctx, rec.sqlSave, rec.mutation, rec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rec *ResponseEventCreate) SaveX(ctx context.Context) *ResponseEvent {
	v, err := rec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rec *ResponseEventCreate) Exec(ctx context.Context) error {
	_, err := rec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rec *ResponseEventCreate) ExecX(ctx context.Context) {
	if err := rec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rec *ResponseEventCreate) defaults() {
	if _, ok := rec.mutation.Timestamp(); !ok {
		v := responseevent.DefaultTimestamp()
		rec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rec *ResponseEventCreate) check() error {
	if _, ok := rec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResponseEvent.sequence"`)}
	}
	if _, ok := rec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResponseEvent.timestamp"`)}
	}
	if _, ok := rec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResponseEvent.session_id"`)}
	}
	if v, ok := rec.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "ResponseEvent.student_id"`)}
	}
	if _, ok := rec.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ResponseEvent.question_id"`)}
	}
	if v, ok := rec.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "ResponseEvent.difficulty_level"`)}
	}
	if v, ok := rec.mutation.DifficultyLevel(); ok {
		if err := responseevent.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.difficulty_level": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ResponseEvent.correct"`)}
	}
	if _, ok := rec.mutation.TimeTaken(); !ok {
		return &ValidationError{Name: "time_taken", err: errors.New(`ent: missing required field "ResponseEvent.time_taken"`)}
	}
	if v, ok := rec.mutation.TimeTaken(); ok {
		if err := responseevent.TimeTakenValidator(v); err != nil {
			return &ValidationError{Name: "time_taken", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.time_taken": %w`, err)}
		}
	}
	return nil
}

func (rec *ResponseEventCreate) sqlSave(ctx context.Context) (*ResponseEvent, error) {
	if err := rec.check(); err != nil {
		return nil, err
	}
	_node, _spec := rec.createSpec()
	if err := sqlgraph.CreateNode(ctx, rec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rec.mutation.id = &_node.ID
	rec.mutation.done = true
	return _node, nil
}

func (rec *ResponseEventCreate) createSpec() (*ResponseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResponseEvent{config: rec.config}
		_spec = sqlgraph.NewCreateSpec(responseevent.Table, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	)
	if value, ok := rec.mutation.Sequence(); ok {
		_spec.SetField(responseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := rec.mutation.Timestamp(); ok {
		_spec.SetField(responseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := rec.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := rec.mutation.StudentID(); ok {
		_spec.SetField(responseevent.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := rec.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := rec.mutation.DifficultyLevel(); ok {
		_spec.SetField(responseevent.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	if value, ok := rec.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := rec.mutation.TimeTaken(); ok {
		_spec.SetField(responseevent.FieldTimeTaken, field.TypeInt, value)
		_node.TimeTaken = value
	}
	return _node, _spec
}

// ResponseEventCreateBulk is the builder for creating many ResponseEvent entities in bulk.
type ResponseEventCreateBulk struct {
	config
	err      error
	builders []*ResponseEventCreate
}

// Save creates the ResponseEvent entities in the database.
func (recb *ResponseEventCreateBulk) Save(ctx context.Context) ([]*ResponseEvent, error) {
	if recb.err != nil {
		return nil, recb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(recb.builders))
	nodes := make([]*ResponseEvent, len(recb.builders))
	mutators := make([]Mutator, len(recb.builders))
	for i := range recb.builders {
		func(i int, root context.Context) {
			builder := recb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseEventMutation)
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
					_, err = mutators[i+1].Mutate(root, recb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, recb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, recb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (recb *ResponseEventCreateBulk) SaveX(ctx context.Context) []*ResponseEvent {
	v, err := recb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (recb *ResponseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := recb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (recb *ResponseEventCreateBulk) ExecX(ctx context.Context) {
	if err := recb.Exec(ctx); err != nil {
		panic(err)
	}
}
