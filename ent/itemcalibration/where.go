// Code generated by ent, DO NOT EDIT.

package itemcalibration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nkhanna/examind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldQuestionID, v))
}

// ObservedDifficulty applies equality check predicate on the "observed_difficulty" field. It's identical to ObservedDifficultyEQ.
func ObservedDifficulty(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldObservedDifficulty, v))
}

// Discrimination applies equality check predicate on the "discrimination" field. It's identical to DiscriminationEQ.
func Discrimination(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldDiscrimination, v))
}

// SampleSize applies equality check predicate on the "sample_size" field. It's identical to SampleSizeEQ.
func SampleSize(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldSampleSize, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldLastUpdated, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLTE(FieldQuestionID, v))
}

// ObservedDifficultyEQ applies the EQ predicate on the "observed_difficulty" field.
func ObservedDifficultyEQ(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldObservedDifficulty, v))
}

// ObservedDifficultyNEQ applies the NEQ predicate on the "observed_difficulty" field.
func ObservedDifficultyNEQ(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNEQ(FieldObservedDifficulty, v))
}

// ObservedDifficultyIn applies the In predicate on the "observed_difficulty" field.
func ObservedDifficultyIn(vs ...float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldIn(FieldObservedDifficulty, vs...))
}

// ObservedDifficultyNotIn applies the NotIn predicate on the "observed_difficulty" field.
func ObservedDifficultyNotIn(vs ...float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNotIn(FieldObservedDifficulty, vs...))
}

// ObservedDifficultyGT applies the GT predicate on the "observed_difficulty" field.
func ObservedDifficultyGT(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGT(FieldObservedDifficulty, v))
}

// ObservedDifficultyGTE applies the GTE predicate on the "observed_difficulty" field.
func ObservedDifficultyGTE(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGTE(FieldObservedDifficulty, v))
}

// ObservedDifficultyLT applies the LT predicate on the "observed_difficulty" field.
func ObservedDifficultyLT(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLT(FieldObservedDifficulty, v))
}

// ObservedDifficultyLTE applies the LTE predicate on the "observed_difficulty" field.
func ObservedDifficultyLTE(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLTE(FieldObservedDifficulty, v))
}

// DiscriminationEQ applies the EQ predicate on the "discrimination" field.
func DiscriminationEQ(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldDiscrimination, v))
}

// DiscriminationNEQ applies the NEQ predicate on the "discrimination" field.
func DiscriminationNEQ(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNEQ(FieldDiscrimination, v))
}

// DiscriminationIn applies the In predicate on the "discrimination" field.
func DiscriminationIn(vs ...float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldIn(FieldDiscrimination, vs...))
}

// DiscriminationNotIn applies the NotIn predicate on the "discrimination" field.
func DiscriminationNotIn(vs ...float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNotIn(FieldDiscrimination, vs...))
}

// DiscriminationGT applies the GT predicate on the "discrimination" field.
func DiscriminationGT(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGT(FieldDiscrimination, v))
}

// DiscriminationGTE applies the GTE predicate on the "discrimination" field.
func DiscriminationGTE(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGTE(FieldDiscrimination, v))
}

// DiscriminationLT applies the LT predicate on the "discrimination" field.
func DiscriminationLT(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLT(FieldDiscrimination, v))
}

// DiscriminationLTE applies the LTE predicate on the "discrimination" field.
func DiscriminationLTE(v float64) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLTE(FieldDiscrimination, v))
}

// SampleSizeEQ applies the EQ predicate on the "sample_size" field.
func SampleSizeEQ(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldSampleSize, v))
}

// SampleSizeNEQ applies the NEQ predicate on the "sample_size" field.
func SampleSizeNEQ(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNEQ(FieldSampleSize, v))
}

// SampleSizeIn applies the In predicate on the "sample_size" field.
func SampleSizeIn(vs ...int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldIn(FieldSampleSize, vs...))
}

// SampleSizeNotIn applies the NotIn predicate on the "sample_size" field.
func SampleSizeNotIn(vs ...int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNotIn(FieldSampleSize, vs...))
}

// SampleSizeGT applies the GT predicate on the "sample_size" field.
func SampleSizeGT(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGT(FieldSampleSize, v))
}

// SampleSizeGTE applies the GTE predicate on the "sample_size" field.
func SampleSizeGTE(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGTE(FieldSampleSize, v))
}

// SampleSizeLT applies the LT predicate on the "sample_size" field.
func SampleSizeLT(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLT(FieldSampleSize, v))
}

// SampleSizeLTE applies the LTE predicate on the "sample_size" field.
func SampleSizeLTE(v int) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLTE(FieldSampleSize, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemCalibration) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemCalibration) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemCalibration) predicate.ItemCalibration {
	return predicate.ItemCalibration(sql.NotPredicates(p))
}
