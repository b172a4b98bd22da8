package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records one answer within a session. The unique
// (session_id, question_id) index enforces the append-once contract at
// the storage layer; a duplicate insert fails with a constraint error.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("student_id"),
		field.Int("question_id").
			Positive(),
		field.Int("difficulty_level").
			Range(1, 3).
			Comment("1=Easy, 2=Medium, 3=Hard"),
		field.Bool("correct"),
		field.Int("time_taken").
			NonNegative().
			Comment("Seconds spent on the question"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id").Unique(),
		index.Fields("question_id"),
		index.Fields("student_id"),
	}
}
