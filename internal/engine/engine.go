// Package engine is the adaptive testing engine's public surface: it wires
// the question bank, response log, ability estimation, item selection, and
// reporting behind three operations, serializing them per session.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/nkhanna/examind/internal/bank"
	"github.com/nkhanna/examind/internal/calibration"
	"github.com/nkhanna/examind/internal/exam"
	"github.com/nkhanna/examind/internal/report"
	"github.com/nkhanna/examind/internal/selector"
	"github.com/nkhanna/examind/internal/session"
)

// timeNow is swappable in tests.
var timeNow = time.Now

// Engine coordinates one adaptive exam deployment. All methods are safe
// for concurrent use; calls for the same session are processed in
// submission order.
type Engine struct {
	bank         bank.Bank
	log          exam.ResponseLog
	calibrations calibration.Store
	tracker      *session.Tracker
	sel          *selector.Selector
	locks        *keyedMutex
	logger       *zap.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	cfg          selector.Config
	rng          *rand.Rand
	calibrations calibration.Store
	logger       *zap.Logger
}

// WithConfig overrides the default selection parameters.
func WithConfig(cfg selector.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithRand injects the random source used for selection jitter. Seed it
// for reproducible selection.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithCalibrationStore attaches a store of empirical item parameters.
// When present, recorded responses feed item calibration and selection
// uses calibrated discrimination.
func WithCalibrationStore(s calibration.Store) Option {
	return func(o *options) { o.calibrations = s }
}

// WithLogger attaches a structured logger for selection diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates an Engine over the given question bank and response log.
func New(b bank.Bank, log exam.ResponseLog, opts ...Option) *Engine {
	o := options{
		cfg:    selector.DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &Engine{
		bank:         b,
		log:          log,
		calibrations: o.calibrations,
		tracker:      session.NewTracker(log),
		sel:          selector.New(o.cfg, o.rng, o.calibrations),
		locks:        newKeyedMutex(),
		logger:       o.logger,
	}
}

// Tracker exposes the session tracker, for out-of-band housekeeping such
// as expiry sweeps.
func (e *Engine) Tracker() *session.Tracker {
	return e.tracker
}

// SelectNextQuestion returns the next question for the session, creating
// the session on first call. A nil question with a nil error signals
// natural exam completion; the session is marked Completed at that point.
func (e *Engine) SelectNextQuestion(ctx context.Context, studentID int, sessionID string, excludeTopics map[string]bool) (*bank.Question, error) {
	unlock := e.locks.Lock(sessionID)
	defer unlock()

	sess := e.tracker.GetOrCreate(sessionID, studentID)
	if sess.Completed() {
		return nil, exam.ErrInvalidState
	}

	history, err := e.log.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}

	answered := make(map[int]bool, len(history))
	for _, r := range history {
		answered[r.QuestionID] = true
	}

	candidates, err := e.bank.Candidates(ctx, answered, excludeTopics, nil)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	sel, err := e.sel.SelectNext(ctx, history, candidates, excludeTopics)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		e.tracker.Complete(sessionID)
		e.logger.Info("session complete",
			zap.String("session_id", sessionID),
			zap.Int("responses", len(history)),
		)
		return nil, nil
	}

	e.tracker.MarkOffered(sessionID, sel.Question.ID)
	e.logger.Debug("selected question",
		zap.String("session_id", sessionID),
		zap.Int("question_id", sel.Question.ID),
		zap.String("difficulty", string(sel.Question.Difficulty)),
		zap.String("target", string(sel.Target)),
		zap.Float64("theta", sel.Theta),
		zap.Float64("expected_probability", sel.ExpectedProbability),
		zap.Float64("information", sel.Information),
	)

	q := sel.Question
	return &q, nil
}

// RecordResponse validates and durably records an answer, returning the
// updated performance analysis. Duplicate submissions for a question are
// absorbed without double-counting.
func (e *Engine) RecordResponse(ctx context.Context, studentID int, sessionID string, questionID int, selectedOption string, timeTaken int) (*session.Result, error) {
	unlock := e.locks.Lock(sessionID)
	defer unlock()

	sess, err := e.tracker.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	q, err := e.bank.Get(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", questionID, err)
	}

	res, err := e.tracker.Record(ctx, sess, q, selectedOption, timeTaken)
	if err != nil {
		return nil, err
	}

	if !res.Duplicate {
		e.recalibrate(ctx, questionID)
	}

	e.logger.Debug("recorded response",
		zap.String("session_id", sessionID),
		zap.Int("question_id", questionID),
		zap.Bool("correct", res.Correct),
		zap.Bool("duplicate", res.Duplicate),
		zap.Float64("ability", res.NewAbility),
		zap.String("trend", string(res.Trend)),
	)
	return res, nil
}

// GenerateSessionReport builds the performance report for a session.
// Reading a report is idempotent; a session with no recorded responses
// yields exam.ErrNotFound.
func (e *Engine) GenerateSessionReport(ctx context.Context, studentID int, sessionID string) (*report.Report, error) {
	history, err := e.log.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}
	return report.Generate(sessionID, studentID, history)
}

// ExpireSession marks a session Completed out-of-band, e.g. from an
// inactivity sweep. Any later select or record call fails with
// exam.ErrInvalidState.
func (e *Engine) ExpireSession(sessionID string) {
	unlock := e.locks.Lock(sessionID)
	defer unlock()

	e.tracker.Complete(sessionID)
	e.logger.Info("session expired", zap.String("session_id", sessionID))
}

// recalibrate refreshes the item's empirical parameters once enough
// responses have accumulated. Calibration is advisory: failures are
// logged and never surface to the caller.
func (e *Engine) recalibrate(ctx context.Context, questionID int) {
	if e.calibrations == nil {
		return
	}

	responses, err := e.log.ByQuestion(ctx, questionID)
	if err != nil {
		e.logger.Warn("calibration query failed",
			zap.Int("question_id", questionID), zap.Error(err))
		return
	}

	c, ok := calibration.Compute(questionID, responses, timeNow())
	if !ok {
		return
	}
	if err := e.calibrations.Upsert(ctx, c); err != nil && !errors.Is(err, context.Canceled) {
		e.logger.Warn("calibration upsert failed",
			zap.Int("question_id", questionID), zap.Error(err))
	}
}
