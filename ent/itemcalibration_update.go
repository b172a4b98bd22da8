// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkhanna/examind/ent/itemcalibration"
	"github.com/nkhanna/examind/ent/predicate"
)

// ItemCalibrationUpdate is the builder for updating ItemCalibration entities.
type ItemCalibrationUpdate struct {
	config
	hooks    []Hook
	mutation *ItemCalibrationMutation
}

// Where appends a list predicates to the ItemCalibrationUpdate builder.
func (icu *ItemCalibrationUpdate) Where(ps ...predicate.ItemCalibration) *ItemCalibrationUpdate {
	icu.mutation.Where(ps...)
	return icu
}

// SetQuestionID sets the "question_id" field.
func (icu *ItemCalibrationUpdate) SetQuestionID(i int) *ItemCalibrationUpdate {
	icu.mutation.ResetQuestionID()
	icu.mutation.SetQuestionID(i)
	return icu
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (icu *ItemCalibrationUpdate) SetNillableQuestionID(i *int) *ItemCalibrationUpdate {
	if i != nil {
		icu.SetQuestionID(*i)
	}
	return icu
}

// AddQuestionID adds i to the "question_id" field.
func (icu *ItemCalibrationUpdate) AddQuestionID(i int) *ItemCalibrationUpdate {
	icu.mutation.AddQuestionID(i)
	return icu
}

// SetObservedDifficulty sets the "observed_difficulty" field.
func (icu *ItemCalibrationUpdate) SetObservedDifficulty(f float64) *ItemCalibrationUpdate {
	icu.mutation.ResetObservedDifficulty()
	icu.mutation.SetObservedDifficulty(f)
	return icu
}

// SetNillableObservedDifficulty sets the "observed_difficulty" field if the given value is not nil.
func (icu *ItemCalibrationUpdate) SetNillableObservedDifficulty(f *float64) *ItemCalibrationUpdate {
	if f != nil {
		icu.SetObservedDifficulty(*f)
	}
	return icu
}

// AddObservedDifficulty adds f to the "observed_difficulty" field.
func (icu *ItemCalibrationUpdate) AddObservedDifficulty(f float64) *ItemCalibrationUpdate {
	icu.mutation.AddObservedDifficulty(f)
	return icu
}

// SetDiscrimination sets the "discrimination" field.
func (icu *ItemCalibrationUpdate) SetDiscrimination(f float64) *ItemCalibrationUpdate {
	icu.mutation.ResetDiscrimination()
	icu.mutation.SetDiscrimination(f)
	return icu
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (icu *ItemCalibrationUpdate) SetNillableDiscrimination(f *float64) *ItemCalibrationUpdate {
	if f != nil {
		icu.SetDiscrimination(*f)
	}
	return icu
}

// AddDiscrimination adds f to the "discrimination" field.
func (icu *ItemCalibrationUpdate) AddDiscrimination(f float64) *ItemCalibrationUpdate {
	icu.mutation.AddDiscrimination(f)
	return icu
}

// SetSampleSize sets the "sample_size" field.
func (icu *ItemCalibrationUpdate) SetSampleSize(i int) *ItemCalibrationUpdate {
	icu.mutation.ResetSampleSize()
	icu.mutation.SetSampleSize(i)
	return icu
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (icu *ItemCalibrationUpdate) SetNillableSampleSize(i *int) *ItemCalibrationUpdate {
	if i != nil {
		icu.SetSampleSize(*i)
	}
	return icu
}

// AddSampleSize adds i to the "sample_size" field.
func (icu *ItemCalibrationUpdate) AddSampleSize(i int) *ItemCalibrationUpdate {
	icu.mutation.AddSampleSize(i)
	return icu
}

// SetLastUpdated sets the "last_updated" field.
func (icu *ItemCalibrationUpdate) SetLastUpdated(t time.Time) *ItemCalibrationUpdate {
	icu.mutation.SetLastUpdated(t)
	return icu
}

// Mutation returns the ItemCalibrationMutation object of the builder.
func (icu *ItemCalibrationUpdate) Mutation() *ItemCalibrationMutation {
	return icu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (icu *ItemCalibrationUpdate) Save(ctx context.Context) (int, error) {
	icu.defaults()
	return withHooks(ctx, icu.sqlSave, icu.mutation, icu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (icu *ItemCalibrationUpdate) SaveX(ctx context.Context) int {
	affected, err := icu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (icu *ItemCalibrationUpdate) Exec(ctx context.Context) error {
	_, err := icu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icu *ItemCalibrationUpdate) ExecX(ctx context.Context) {
	if err := icu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (icu *ItemCalibrationUpdate) defaults() {
	if _, ok := icu.mutation.LastUpdated(); !ok {
		v := itemcalibration.UpdateDefaultLastUpdated()
		icu.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (icu *ItemCalibrationUpdate) check() error {
	if v, ok := icu.mutation.QuestionID(); ok {
		if err := itemcalibration.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ItemCalibration.question_id": %w`, err)}
		}
	}
	if v, ok := icu.mutation.SampleSize(); ok {
		if err := itemcalibration.SampleSizeValidator(v); err != nil {
			return &ValidationError{Name: "sample_size", err: fmt.Errorf(`ent: validator failed for field "ItemCalibration.sample_size": %w`, err)}
		}
	}
	return nil
}

func (icu *ItemCalibrationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := icu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemcalibration.Table, itemcalibration.Columns, sqlgraph.NewFieldSpec(itemcalibration.FieldID, field.TypeInt))
	if ps := icu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := icu.mutation.QuestionID(); ok {
		_spec.SetField(itemcalibration.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := icu.mutation.AddedQuestionID(); ok {
		_spec.AddField(itemcalibration.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := icu.mutation.ObservedDifficulty(); ok {
		_spec.SetField(itemcalibration.FieldObservedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := icu.mutation.AddedObservedDifficulty(); ok {
		_spec.AddField(itemcalibration.FieldObservedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := icu.mutation.Discrimination(); ok {
		_spec.SetField(itemcalibration.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := icu.mutation.AddedDiscrimination(); ok {
		_spec.AddField(itemcalibration.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := icu.mutation.SampleSize(); ok {
		_spec.SetField(itemcalibration.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := icu.mutation.AddedSampleSize(); ok {
		_spec.AddField(itemcalibration.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := icu.mutation.LastUpdated(); ok {
		_spec.SetField(itemcalibration.FieldLastUpdated, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, icu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemcalibration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	icu.mutation.done = true
	return n, nil
}

// ItemCalibrationUpdateOne is the builder for updating a single ItemCalibration entity.
type ItemCalibrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemCalibrationMutation
}

// SetQuestionID sets the "question_id" field.
func (icuo *ItemCalibrationUpdateOne) SetQuestionID(i int) *ItemCalibrationUpdateOne {
	icuo.mutation.ResetQuestionID()
	icuo.mutation.SetQuestionID(i)
	return icuo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (icuo *ItemCalibrationUpdateOne) SetNillableQuestionID(i *int) *ItemCalibrationUpdateOne {
	if i != nil {
		icuo.SetQuestionID(*i)
	}
	return icuo
}

// AddQuestionID adds i to the "question_id" field.
func (icuo *ItemCalibrationUpdateOne) AddQuestionID(i int) *ItemCalibrationUpdateOne {
	icuo.mutation.AddQuestionID(i)
	return icuo
}

// SetObservedDifficulty sets the "observed_difficulty" field.
func (icuo *ItemCalibrationUpdateOne) SetObservedDifficulty(f float64) *ItemCalibrationUpdateOne {
	icuo.mutation.ResetObservedDifficulty()
	icuo.mutation.SetObservedDifficulty(f)
	return icuo
}

// SetNillableObservedDifficulty sets the "observed_difficulty" field if the given value is not nil.
func (icuo *ItemCalibrationUpdateOne) SetNillableObservedDifficulty(f *float64) *ItemCalibrationUpdateOne {
	if f != nil {
		icuo.SetObservedDifficulty(*f)
	}
	return icuo
}

// AddObservedDifficulty adds f to the "observed_difficulty" field.
func (icuo *ItemCalibrationUpdateOne) AddObservedDifficulty(f float64) *ItemCalibrationUpdateOne {
	icuo.mutation.AddObservedDifficulty(f)
	return icuo
}

// SetDiscrimination sets the "discrimination" field.
func (icuo *ItemCalibrationUpdateOne) SetDiscrimination(f float64) *ItemCalibrationUpdateOne {
	icuo.mutation.ResetDiscrimination()
	icuo.mutation.SetDiscrimination(f)
	return icuo
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (icuo *ItemCalibrationUpdateOne) SetNillableDiscrimination(f *float64) *ItemCalibrationUpdateOne {
	if f != nil {
		icuo.SetDiscrimination(*f)
	}
	return icuo
}

// AddDiscrimination adds f to the "discrimination" field.
func (icuo *ItemCalibrationUpdateOne) AddDiscrimination(f float64) *ItemCalibrationUpdateOne {
	icuo.mutation.AddDiscrimination(f)
	return icuo
}

// SetSampleSize sets the "sample_size" field.
func (icuo *ItemCalibrationUpdateOne) SetSampleSize(i int) *ItemCalibrationUpdateOne {
	icuo.mutation.ResetSampleSize()
	icuo.mutation.SetSampleSize(i)
	return icuo
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (icuo *ItemCalibrationUpdateOne) SetNillableSampleSize(i *int) *ItemCalibrationUpdateOne {
	if i != nil {
		icuo.SetSampleSize(*i)
	}
	return icuo
}

// AddSampleSize adds i to the "sample_size" field.
func (icuo *ItemCalibrationUpdateOne) AddSampleSize(i int) *ItemCalibrationUpdateOne {
	icuo.mutation.AddSampleSize(i)
	return icuo
}

// SetLastUpdated sets the "last_updated" field.
func (icuo *ItemCalibrationUpdateOne) SetLastUpdated(t time.Time) *ItemCalibrationUpdateOne {
	icuo.mutation.SetLastUpdated(t)
	return icuo
}

// Mutation returns the ItemCalibrationMutation object of the builder.
func (icuo *ItemCalibrationUpdateOne) Mutation() *ItemCalibrationMutation {
	return icuo.mutation
}

// Where appends a list predicates to the ItemCalibrationUpdate builder.
func (icuo *ItemCalibrationUpdateOne) Where(ps ...predicate.ItemCalibration) *ItemCalibrationUpdateOne {
	icuo.mutation.Where(ps...)
	return icuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (icuo *ItemCalibrationUpdateOne) Select(field string, fields ...string) *ItemCalibrationUpdateOne {
	icuo.fields = append([]string{field}, fields...)
	return icuo
}

// Save executes the query and returns the updated ItemCalibration entity.
func (icuo *ItemCalibrationUpdateOne) Save(ctx context.Context) (*ItemCalibration, error) {
	icuo.defaults()
	return withHooks(ctx, icuo.sqlSave, icuo.mutation, icuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (icuo *ItemCalibrationUpdateOne) SaveX(ctx context.Context) *ItemCalibration {
	node, err := icuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (icuo *ItemCalibrationUpdateOne) Exec(ctx context.Context) error {
	_, err := icuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icuo *ItemCalibrationUpdateOne) ExecX(ctx context.Context) {
	if err := icuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (icuo *ItemCalibrationUpdateOne) defaults() {
	if _, ok := icuo.mutation.LastUpdated(); !ok {
		v := itemcalibration.UpdateDefaultLastUpdated()
		icuo.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (icuo *ItemCalibrationUpdateOne) check() error {
	if v, ok := icuo.mutation.QuestionID(); ok {
		if err := itemcalibration.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ItemCalibration.question_id": %w`, err)}
		}
	}
	if v, ok := icuo.mutation.SampleSize(); ok {
		if err := itemcalibration.SampleSizeValidator(v); err != nil {
			return &ValidationError{Name: "sample_size", err: fmt.Errorf(`ent: validator failed for field "ItemCalibration.sample_size": %w`, err)}
		}
	}
	return nil
}

func (icuo *ItemCalibrationUpdateOne) sqlSave(ctx context.Context) (_node *ItemCalibration, err error) {
	if err := icuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemcalibration.Table, itemcalibration.Columns, sqlgraph.NewFieldSpec(itemcalibration.FieldID, field.TypeInt))
	id, ok := icuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemCalibration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := icuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemcalibration.FieldID)
		for _, f := range fields {
			if !itemcalibration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemcalibration.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := icuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := icuo.mutation.QuestionID(); ok {
		_spec.SetField(itemcalibration.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := icuo.mutation.AddedQuestionID(); ok {
		_spec.AddField(itemcalibration.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := icuo.mutation.ObservedDifficulty(); ok {
		_spec.SetField(itemcalibration.FieldObservedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := icuo.mutation.AddedObservedDifficulty(); ok {
		_spec.AddField(itemcalibration.FieldObservedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := icuo.mutation.Discrimination(); ok {
		_spec.SetField(itemcalibration.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := icuo.mutation.AddedDiscrimination(); ok {
		_spec.AddField(itemcalibration.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := icuo.mutation.SampleSize(); ok {
		_spec.SetField(itemcalibration.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := icuo.mutation.AddedSampleSize(); ok {
		_spec.AddField(itemcalibration.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := icuo.mutation.LastUpdated(); ok {
		_spec.SetField(itemcalibration.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &ItemCalibration{config: icuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, icuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemcalibration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	icuo.mutation.done = true
	return _node, nil
}
