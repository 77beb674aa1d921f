package service

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

// UrgeInput is the presentation-supplied payload for one urge event.
// IDs, timestamps, and the date bucket are generated here, never
// accepted from the caller.
type UrgeInput struct {
	AddictionType  string
	WasResisted    bool
	UrgeIntensity  *int
	Trigger        string
	Location       string
	MoodBefore     *int
	MoodAfter      *int
	CopingStrategy string
}

// UrgeResult carries the log plus the freshly derived state the UI
// needs for feedback.
type UrgeResult struct {
	Log     *model.AddictionLog
	Metrics *model.ResistanceMetrics
	Streak  *model.Streak
	Score   int
	Level   string
	Message string
}

type AddictionService struct {
	db      *sqlx.DB
	logs    repository.AddictionRepository
	metrics repository.ResistanceRepository
	streaks repository.StreakRepository
}

func NewAddictionService(
	db *sqlx.DB,
	logs repository.AddictionRepository,
	metrics repository.ResistanceRepository,
	streaks repository.StreakRepository,
) *AddictionService {
	return &AddictionService{
		db:      db,
		logs:    logs,
		metrics: metrics,
		streaks: streaks,
	}
}

// LogUrge records an urge event and its derived state — resistance
// metrics and the per-type streak — in one transaction, so a crash
// mid-sequence can't leave metrics stale relative to the log.
func (s *AddictionService) LogUrge(input UrgeInput) (*UrgeResult, error) {
	err := model.ValidateAddictionType(input.AddictionType)
	if err != nil {
		return nil, err
	}
	err = validateScale("urge intensity", input.UrgeIntensity)
	if err != nil {
		return nil, err
	}
	err = validateScale("mood before", input.MoodBefore)
	if err != nil {
		return nil, err
	}
	err = validateScale("mood after", input.MoodAfter)
	if err != nil {
		return nil, err
	}

	log := &model.AddictionLog{
		Date:           model.Today(),
		AddictionType:  input.AddictionType,
		EventType:      model.EventTypeUrge,
		WasResisted:    input.WasResisted,
		UrgeIntensity:  input.UrgeIntensity,
		Trigger:        input.Trigger,
		Location:       input.Location,
		MoodBefore:     input.MoodBefore,
		MoodAfter:      input.MoodAfter,
		CopingStrategy: input.CopingStrategy,
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = s.logs.WithTx(tx).Create(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create urge log: %w", err)
	}

	metrics, score, err := applyUrgeEvent(s.metrics.WithTx(tx), log)
	if err != nil {
		return nil, err
	}

	streak, err := recordResistance(s.streaks.WithTx(tx), log.AddictionType, log.WasResisted)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit urge log: %w", err)
	}

	slog.Debug("urge logged",
		"type", log.AddictionType,
		"resisted", log.WasResisted,
		"score", score,
		"streak", streak.CurrentStreak,
	)

	return &UrgeResult{
		Log:     log,
		Metrics: metrics,
		Streak:  streak,
		Score:   score,
		Level:   LevelFor(metrics.ResistanceRate, metrics.TotalResisted),
		Message: EncouragementFor(metrics, log),
	}, nil
}

func (s *AddictionService) ByID(id string) (*model.AddictionLog, error) {
	return s.logs.ByID(id)
}

func (s *AddictionService) ByDate(date string) ([]*model.AddictionLog, error) {
	return s.logs.ByDate(date)
}

func (s *AddictionService) ByType(addictionType string, limit int) ([]*model.AddictionLog, error) {
	err := model.ValidateAddictionType(addictionType)
	if err != nil {
		return nil, err
	}
	return s.logs.ByType(addictionType, limit)
}

func (s *AddictionService) Recent(limit int) ([]*model.AddictionLog, error) {
	return s.logs.Recent(limit)
}

func (s *AddictionService) ByDateRange(start, end string) ([]*model.AddictionLog, error) {
	return s.logs.ByDateRange(start, end)
}

// Delete removes the log row only. Derived metrics are append-only
// aggregates and are not rewound.
func (s *AddictionService) Delete(id string) error {
	return s.logs.Delete(id)
}

func (s *AddictionService) ResistedToday() (int, error) {
	return s.logs.ResistedCountOnDate(model.Today())
}

func validateScale(field string, value *int) error {
	if value == nil {
		return nil
	}
	if *value < 1 || *value > 5 {
		return fmt.Errorf("%s must be between 1 and 5, got %d", field, *value)
	}
	return nil
}
