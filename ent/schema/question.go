package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a four-option multiple choice item in the bank. The entity
// id is the question's own id from the import file.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive().
			Immutable().
			Comment("Question id from the import file"),
		field.Text("text").
			NotEmpty().
			Comment("The question as shown to the examinee"),
		field.Strings("options").
			Comment("Exactly four answer options, in display order"),
		field.String("correct_option").
			NotEmpty().
			Comment("Correct option letter: a, b, c, or d"),
		field.String("topic").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("Easy, Medium, or Hard"),
		field.Float("discrimination").
			Default(1.0).
			Comment("Static discrimination parameter for the IRT model"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("difficulty"),
	}
}
