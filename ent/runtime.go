// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nkhanna/examind/ent/itemcalibration"
	"github.com/nkhanna/examind/ent/question"
	"github.com/nkhanna/examind/ent/responseevent"
	"github.com/nkhanna/examind/ent/schema"
	"github.com/nkhanna/examind/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	itemcalibrationFields := schema.ItemCalibration{}.Fields()
	_ = itemcalibrationFields
	// itemcalibrationDescQuestionID is the schema descriptor for question_id field.
	itemcalibrationDescQuestionID := itemcalibrationFields[0].Descriptor()
	// itemcalibration.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	itemcalibration.QuestionIDValidator = itemcalibrationDescQuestionID.Validators[0].(func(int) error)
	// itemcalibrationDescDiscrimination is the schema descriptor for discrimination field.
	itemcalibrationDescDiscrimination := itemcalibrationFields[2].Descriptor()
	// itemcalibration.DefaultDiscrimination holds the default value on creation for the discrimination field.
	itemcalibration.DefaultDiscrimination = itemcalibrationDescDiscrimination.Default.(float64)
	// itemcalibrationDescSampleSize is the schema descriptor for sample_size field.
	itemcalibrationDescSampleSize := itemcalibrationFields[3].Descriptor()
	// itemcalibration.SampleSizeValidator is a validator for the "sample_size" field. It is called by the builders before save.
	itemcalibration.SampleSizeValidator = itemcalibrationDescSampleSize.Validators[0].(func(int) error)
	// itemcalibrationDescLastUpdated is the schema descriptor for last_updated field.
	itemcalibrationDescLastUpdated := itemcalibrationFields[4].Descriptor()
	// itemcalibration.DefaultLastUpdated holds the default value on creation for the last_updated field.
	itemcalibration.DefaultLastUpdated = itemcalibrationDescLastUpdated.Default.(func() time.Time)
	// itemcalibration.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	itemcalibration.UpdateDefaultLastUpdated = itemcalibrationDescLastUpdated.UpdateDefault.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescCorrectOption is the schema descriptor for correct_option field.
	questionDescCorrectOption := questionFields[3].Descriptor()
	// question.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	question.CorrectOptionValidator = questionDescCorrectOption.Validators[0].(func(string) error)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[4].Descriptor()
	// question.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	question.TopicValidator = questionDescTopic.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescDiscrimination is the schema descriptor for discrimination field.
	questionDescDiscrimination := questionFields[6].Descriptor()
	// question.DefaultDiscrimination holds the default value on creation for the discrimination field.
	question.DefaultDiscrimination = questionDescDiscrimination.Default.(float64)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(int) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescQuestionID is the schema descriptor for question_id field.
	responseeventDescQuestionID := responseeventFields[2].Descriptor()
	// responseevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	responseevent.QuestionIDValidator = responseeventDescQuestionID.Validators[0].(func(int) error)
	// responseeventDescDifficultyLevel is the schema descriptor for difficulty_level field.
	responseeventDescDifficultyLevel := responseeventFields[3].Descriptor()
	// responseevent.DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	responseevent.DifficultyLevelValidator = responseeventDescDifficultyLevel.Validators[0].(func(int) error)
	// responseeventDescTimeTaken is the schema descriptor for time_taken field.
	responseeventDescTimeTaken := responseeventFields[5].Descriptor()
	// responseevent.TimeTakenValidator is a validator for the "time_taken" field. It is called by the builders before save.
	responseevent.TimeTakenValidator = responseeventDescTimeTaken.Validators[0].(func(int) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescFinalAbility is the schema descriptor for final_ability field.
	sessioneventDescFinalAbility := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultFinalAbility holds the default value on creation for the final_ability field.
	sessionevent.DefaultFinalAbility = sessioneventDescFinalAbility.Default.(float64)
}
