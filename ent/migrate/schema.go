// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ItemCalibrationsColumns holds the columns for the "item_calibrations" table.
	ItemCalibrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeInt, Unique: true},
		{Name: "observed_difficulty", Type: field.TypeFloat64},
		{Name: "discrimination", Type: field.TypeFloat64, Default: 1},
		{Name: "sample_size", Type: field.TypeInt},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// ItemCalibrationsTable holds the schema information for the "item_calibrations" table.
	ItemCalibrationsTable = &schema.Table{
		Name:       "item_calibrations",
		Columns:    ItemCalibrationsColumns,
		PrimaryKey: []*schema.Column{ItemCalibrationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemcalibration_question_id",
				Unique:  false,
				Columns: []*schema.Column{ItemCalibrationsColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_option", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "discrimination", Type: field.TypeFloat64, Default: 1},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_topic",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[4]},
			},
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[5]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "difficulty_level", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_taken", Type: field.TypeInt},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{ResponseEventsColumns[3], ResponseEventsColumns[5]},
			},
			{
				Name:    "responseevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
			{
				Name:    "responseevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "final_ability", Type: field.TypeFloat64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ItemCalibrationsTable,
		QuestionsTable,
		ResponseEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
