// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nkhanna/examind/ent/itemcalibration"
)

// ItemCalibration is the model entity for the ItemCalibration schema.
type ItemCalibration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID int `json:"question_id,omitempty"`
	// 1 - success rate over the observed sample
	ObservedDifficulty float64 `json:"observed_difficulty,omitempty"`
	// Discrimination holds the value of the "discrimination" field.
	Discrimination float64 `json:"discrimination,omitempty"`
	// SampleSize holds the value of the "sample_size" field.
	SampleSize int `json:"sample_size,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemCalibration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemcalibration.FieldObservedDifficulty, itemcalibration.FieldDiscrimination:
			values[i] = new(sql.NullFloat64)
		case itemcalibration.FieldID, itemcalibration.FieldQuestionID, itemcalibration.FieldSampleSize:
			values[i] = new(sql.NullInt64)
		case itemcalibration.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemCalibration fields.
func (ic *ItemCalibration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemcalibration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ic.ID = int(value.Int64)
		case itemcalibration.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				ic.QuestionID = int(value.Int64)
			}
		case itemcalibration.FieldObservedDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field observed_difficulty", values[i])
			} else if value.Valid {
				ic.ObservedDifficulty = value.Float64
			}
		case itemcalibration.FieldDiscrimination:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discrimination", values[i])
			} else if value.Valid {
				ic.Discrimination = value.Float64
			}
		case itemcalibration.FieldSampleSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_size", values[i])
			} else if value.Valid {
				ic.SampleSize = int(value.Int64)
			}
		case itemcalibration.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				ic.LastUpdated = value.Time
			}
		default:
			ic.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemCalibration.
// This includes values selected through modifiers, order, etc.
func (ic *ItemCalibration) Value(name string) (ent.Value, error) {
	return ic.selectValues.Get(name)
}

// Update returns a builder for updating this ItemCalibration.
// Note that you need to call ItemCalibration.Unwrap() before calling this method if this ItemCalibration
// was returned from a transaction, and the transaction was committed or rolled back.
func (ic *ItemCalibration) Update() *ItemCalibrationUpdateOne {
	return NewItemCalibrationClient(ic.config).UpdateOne(ic)
}

// Unwrap unwraps the ItemCalibration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ic *ItemCalibration) Unwrap() *ItemCalibration {
	_tx, ok := ic.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemCalibration is not a transactional entity")
	}
	ic.config.driver = _tx.drv
	return ic
}

// String implements the fmt.Stringer.
func (ic *ItemCalibration) String() string {
	var builder strings.Builder
	builder.WriteString("ItemCalibration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ic.ID))
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", ic.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("observed_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", ic.ObservedDifficulty))
	builder.WriteString(", ")
	builder.WriteString("discrimination=")
	builder.WriteString(fmt.Sprintf("%v", ic.Discrimination))
	builder.WriteString(", ")
	builder.WriteString("sample_size=")
	builder.WriteString(fmt.Sprintf("%v", ic.SampleSize))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(ic.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ItemCalibrations is a parsable slice of ItemCalibration.
type ItemCalibrations []*ItemCalibration
