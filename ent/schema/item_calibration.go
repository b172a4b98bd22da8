package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemCalibration holds the empirically observed parameters for one
// question, recomputed as responses accumulate.
type ItemCalibration struct {
	ent.Schema
}

func (ItemCalibration) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id").
			Positive().
			Unique(),
		field.Float("observed_difficulty").
			Comment("1 - success rate over the observed sample"),
		field.Float("discrimination").
			Default(1.0),
		field.Int("sample_size").
			Positive(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ItemCalibration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
