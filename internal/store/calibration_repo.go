package store

import (
	"context"
	"fmt"

	"github.com/nkhanna/examind/ent"
	"github.com/nkhanna/examind/ent/itemcalibration"
	"github.com/nkhanna/examind/internal/calibration"
	"github.com/nkhanna/examind/internal/exam"
)

// CalibrationRepo implements calibration.Store over the item calibration
// table.
type CalibrationRepo struct {
	client *ent.Client
}

func (r *CalibrationRepo) Get(ctx context.Context, questionID int) (*calibration.ItemCalibration, error) {
	row, err := r.client.ItemCalibration.Query().
		Where(itemcalibration.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, exam.ErrNotFound
		}
		return nil, fmt.Errorf("get calibration %d: %w", questionID, err)
	}

	return &calibration.ItemCalibration{
		QuestionID:         row.QuestionID,
		ObservedDifficulty: row.ObservedDifficulty,
		Discrimination:     row.Discrimination,
		SampleSize:         row.SampleSize,
		LastUpdated:        row.LastUpdated,
	}, nil
}

func (r *CalibrationRepo) Upsert(ctx context.Context, c calibration.ItemCalibration) error {
	existing, err := r.client.ItemCalibration.Query().
		Where(itemcalibration.QuestionID(c.QuestionID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup calibration %d: %w", c.QuestionID, err)
	}

	if existing != nil {
		err = r.client.ItemCalibration.UpdateOne(existing).
			SetObservedDifficulty(c.ObservedDifficulty).
			SetDiscrimination(c.Discrimination).
			SetSampleSize(c.SampleSize).
			SetLastUpdated(c.LastUpdated).
			Exec(ctx)
	} else {
		err = r.client.ItemCalibration.Create().
			SetQuestionID(c.QuestionID).
			SetObservedDifficulty(c.ObservedDifficulty).
			SetDiscrimination(c.Discrimination).
			SetSampleSize(c.SampleSize).
			SetLastUpdated(c.LastUpdated).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("upsert calibration %d: %w", c.QuestionID, err)
	}
	return nil
}

// All returns every stored calibration, ordered by question id.
func (r *CalibrationRepo) All(ctx context.Context) ([]calibration.ItemCalibration, error) {
	rows, err := r.client.ItemCalibration.Query().
		Order(ent.Asc(itemcalibration.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query calibrations: %w", err)
	}

	out := make([]calibration.ItemCalibration, 0, len(rows))
	for _, row := range rows {
		out = append(out, calibration.ItemCalibration{
			QuestionID:         row.QuestionID,
			ObservedDifficulty: row.ObservedDifficulty,
			Discrimination:     row.Discrimination,
			SampleSize:         row.SampleSize,
			LastUpdated:        row.LastUpdated,
		})
	}
	return out, nil
}
