// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nkhanna/examind/ent/itemcalibration"
	"github.com/nkhanna/examind/ent/predicate"
)

// ItemCalibrationDelete is the builder for deleting a ItemCalibration entity.
type ItemCalibrationDelete struct {
	config
	hooks    []Hook
	mutation *ItemCalibrationMutation
}

// Where appends a list predicates to the ItemCalibrationDelete builder.
func (icd *ItemCalibrationDelete) Where(ps ...predicate.ItemCalibration) *ItemCalibrationDelete {
	icd.mutation.Where(ps...)
	return icd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (icd *ItemCalibrationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, icd.sqlExec, icd.mutation, icd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (icd *ItemCalibrationDelete) ExecX(ctx context.Context) int {
	n, err := icd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (icd *ItemCalibrationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(itemcalibration.Table, sqlgraph.NewFieldSpec(itemcalibration.FieldID, field.TypeInt))
	if ps := icd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, icd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	icd.mutation.done = true
	return affected, err
}

// ItemCalibrationDeleteOne is the builder for deleting a single ItemCalibration entity.
type ItemCalibrationDeleteOne struct {
	icd *ItemCalibrationDelete
}

// Where appends a list predicates to the ItemCalibrationDelete builder.
func (icdo *ItemCalibrationDeleteOne) Where(ps ...predicate.ItemCalibration) *ItemCalibrationDeleteOne {
	icdo.icd.mutation.Where(ps...)
	return icdo
}

// Exec executes the deletion query.
func (icdo *ItemCalibrationDeleteOne) Exec(ctx context.Context) error {
	n, err := icdo.icd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{itemcalibration.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (icdo *ItemCalibrationDeleteOne) ExecX(ctx context.Context) {
	if err := icdo.Exec(ctx); err != nil {
		panic(err)
	}
}
