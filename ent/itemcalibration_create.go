// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkhanna/examind/ent/itemcalibration"
)

// ItemCalibrationCreate is the builder for creating a ItemCalibration entity.
type ItemCalibrationCreate struct {
	config
	mutation *ItemCalibrationMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (icc *ItemCalibrationCreate) SetQuestionID(i int) *ItemCalibrationCreate {
	icc.mutation.SetQuestionID(i)
	return icc
}

// SetObservedDifficulty sets the "observed_difficulty" field.
func (icc *ItemCalibrationCreate) SetObservedDifficulty(f float64) *ItemCalibrationCreate {
	icc.mutation.SetObservedDifficulty(f)
	return icc
}

// SetDiscrimination sets the "discrimination" field.
func (icc *ItemCalibrationCreate) SetDiscrimination(f float64) *ItemCalibrationCreate {
	icc.mutation.SetDiscrimination(f)
	return icc
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (icc *ItemCalibrationCreate) SetNillableDiscrimination(f *float64) *ItemCalibrationCreate {
	if f != nil {
		icc.SetDiscrimination(*f)
	}
	return icc
}

// SetSampleSize sets the "sample_size" field.
func (icc *ItemCalibrationCreate) SetSampleSize(i int) *ItemCalibrationCreate {
	icc.mutation.SetSampleSize(i)
	return icc
}

// SetLastUpdated sets the "last_updated" field.
func (icc *ItemCalibrationCreate) SetLastUpdated(t time.Time) *ItemCalibrationCreate {
	icc.mutation.SetLastUpdated(t)
	return icc
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (icc *ItemCalibrationCreate) SetNillableLastUpdated(t *time.Time) *ItemCalibrationCreate {
	if t != nil {
		icc.SetLastUpdated(*t)
	}
	return icc
}

// Mutation returns the ItemCalibrationMutation object of the builder.
func (icc *ItemCalibrationCreate) Mutation() *ItemCalibrationMutation {
	return icc.mutation
}

// Save creates the ItemCalibration in the database.
func (icc *ItemCalibrationCreate) Save(ctx context.Context) (*ItemCalibration, error) {
	icc.defaults()
	return withHooks(ctx, icc.sqlSave, icc.mutation, icc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (icc *ItemCalibrationCreate) SaveX(ctx context.Context) *ItemCalibration {
	v, err := icc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icc *ItemCalibrationCreate) Exec(ctx context.Context) error {
	_, err := icc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icc *ItemCalibrationCreate) ExecX(ctx context.Context) {
	if err := icc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (icc *ItemCalibrationCreate) defaults() {
	if _, ok := icc.mutation.Discrimination(); !ok {
		v := itemcalibration.DefaultDiscrimination
		icc.mutation.SetDiscrimination(v)
	}
	if _, ok := icc.mutation.LastUpdated(); !ok {
		v := itemcalibration.DefaultLastUpdated()
		icc.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (icc *ItemCalibrationCreate) check() error {
	if _, ok := icc.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ItemCalibration.question_id"`)}
	}
	if v, ok := icc.mutation.QuestionID(); ok {
		if err := itemcalibration.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ItemCalibration.question_id": %w`, err)}
		}
	}
	if _, ok := icc.mutation.ObservedDifficulty(); !ok {
		return &ValidationError{Name: "observed_difficulty", err: errors.New(`ent: missing required field "ItemCalibration.observed_difficulty"`)}
	}
	if _, ok := icc.mutation.Discrimination(); !ok {
		return &ValidationError{Name: "discrimination", err: errors.New(`ent: missing required field "ItemCalibration.discrimination"`)}
	}
	if _, ok := icc.mutation.SampleSize(); !ok {
		return &ValidationError{Name: "sample_size", err: errors.New(`ent: missing required field "ItemCalibration.sample_size"`)}
	}
	if v, ok := icc.mutation.SampleSize(); ok {
		if err := itemcalibration.SampleSizeValidator(v); err != nil {
			return &ValidationError{Name: "sample_size", err: fmt.Errorf(`ent: validator failed for field "ItemCalibration.sample_size": %w`, err)}
		}
	}
	if _, ok := icc.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "ItemCalibration.last_updated"`)}
	}
	return nil
}

func (icc *ItemCalibrationCreate) sqlSave(ctx context.Context) (*ItemCalibration, error) {
	if err := icc.check(); err != nil {
		return nil, err
	}
	_node, _spec := icc.createSpec()
	if err := sqlgraph.CreateNode(ctx, icc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	icc.mutation.id = &_node.ID
	icc.mutation.done = true
	return _node, nil
}

func (icc *ItemCalibrationCreate) createSpec() (*ItemCalibration, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemCalibration{config: icc.config}
		_spec = sqlgraph.NewCreateSpec(itemcalibration.Table, sqlgraph.NewFieldSpec(itemcalibration.FieldID, field.TypeInt))
	)
	if value, ok := icc.mutation.QuestionID(); ok {
		_spec.SetField(itemcalibration.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := icc.mutation.ObservedDifficulty(); ok {
		_spec.SetField(itemcalibration.FieldObservedDifficulty, field.TypeFloat64, value)
		_node.ObservedDifficulty = value
	}
	if value, ok := icc.mutation.Discrimination(); ok {
		_spec.SetField(itemcalibration.FieldDiscrimination, field.TypeFloat64, value)
		_node.Discrimination = value
	}
	if value, ok := icc.mutation.SampleSize(); ok {
		_spec.SetField(itemcalibration.FieldSampleSize, field.TypeInt, value)
		_node.SampleSize = value
	}
	if value, ok := icc.mutation.LastUpdated(); ok {
		_spec.SetField(itemcalibration.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// ItemCalibrationCreateBulk is the builder for creating many ItemCalibration entities in bulk.
type ItemCalibrationCreateBulk struct {
	config
	err      error
	builders []*ItemCalibrationCreate
}

// Save creates the ItemCalibration entities in the database.
func (iccb *ItemCalibrationCreateBulk) Save(ctx context.Context) ([]*ItemCalibration, error) {
	if iccb.err != nil {
		return nil, iccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(iccb.builders))
	nodes := make([]*ItemCalibration, len(iccb.builders))
	mutators := make([]Mutator, len(iccb.builders))
	for i := range iccb.builders {
		func(i int, root context.Context) {
			builder := iccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemCalibrationMutation)
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
					_, err = mutators[i+1].Mutate(root, iccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, iccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, iccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (iccb *ItemCalibrationCreateBulk) SaveX(ctx context.Context) []*ItemCalibration {
	v, err := iccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (iccb *ItemCalibrationCreateBulk) Exec(ctx context.Context) error {
	_, err := iccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iccb *ItemCalibrationCreateBulk) ExecX(ctx context.Context) {
	if err := iccb.Exec(ctx); err != nil {
		panic(err)
	}
}
