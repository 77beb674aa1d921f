package service

import (
	"fmt"
	"log/slog"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

type SleepInput struct {
	BedTime       string // "22:30"
	WakeTime      string // "06:45"
	Quality       int    // 1-5
	Interruptions int
	DreamRecall   bool
	Environment   string
}

type SleepService struct {
	repo    repository.SleepRepository
	streaks *StreakService
}

func NewSleepService(repo repository.SleepRepository, streaks *StreakService) *SleepService {
	return &SleepService{repo: repo, streaks: streaks}
}

// Log stores a sleep log for today and ticks the sleep logging streak.
// Duration is derived from the clock times; wake is assumed next-day
// when it reads earlier than bedtime.
func (s *SleepService) Log(input SleepInput) (*model.SleepLog, error) {
	if input.Quality < 1 || input.Quality > 5 {
		return nil, fmt.Errorf("sleep quality must be between 1 and 5, got %d", input.Quality)
	}
	if input.Interruptions < 0 {
		return nil, fmt.Errorf("interruptions must not be negative, got %d", input.Interruptions)
	}

	log := &model.SleepLog{
		Date:          model.Today(),
		BedTime:       input.BedTime,
		WakeTime:      input.WakeTime,
		DurationHours: model.SleepDuration(input.BedTime, input.WakeTime),
		Quality:       input.Quality,
		Interruptions: input.Interruptions,
		DreamRecall:   input.DreamRecall,
		Environment:   input.Environment,
	}

	err := s.repo.Create(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep log: %w", err)
	}

	_, err = s.streaks.RecordDailyActivity(model.BehaviorSleep)
	if err != nil {
		// The log itself is saved; a failed streak tick degrades to a
		// stale counter rather than a failed write.
		slog.Error("failed to update sleep streak", "error", err)
	}

	return log, nil
}

func (s *SleepService) ByID(id string) (*model.SleepLog, error) {
	return s.repo.ByID(id)
}

func (s *SleepService) ByDate(date string) (*model.SleepLog, error) {
	return s.repo.ByDate(date)
}

func (s *SleepService) Recent(limit int) ([]*model.SleepLog, error) {
	return s.repo.Recent(limit)
}

func (s *SleepService) ByDateRange(start, end string) ([]*model.SleepLog, error) {
	return s.repo.ByDateRange(start, end)
}

// Update applies a sparse update. When either clock time changes the
// duration is recomputed against the stored value of the other.
func (s *SleepService) Update(id string, update repository.SleepUpdate) error {
	if update.Quality != nil && (*update.Quality < 1 || *update.Quality > 5) {
		return fmt.Errorf("sleep quality must be between 1 and 5, got %d", *update.Quality)
	}

	if update.BedTime != nil || update.WakeTime != nil {
		existing, err := s.repo.ByID(id)
		if err != nil {
			return err
		}
		bed := existing.BedTime
		wake := existing.WakeTime
		if update.BedTime != nil {
			bed = *update.BedTime
		}
		if update.WakeTime != nil {
			wake = *update.WakeTime
		}
		duration := model.SleepDuration(bed, wake)
		update.DurationHours = &duration
	}

	return s.repo.Update(id, update)
}

func (s *SleepService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *SleepService) Stats(days int) (*model.SleepStats, error) {
	return s.repo.Stats(days)
}
