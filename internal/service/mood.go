package service

import (
	"fmt"
	"log/slog"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

type MoodInput struct {
	Mood    int // 1-5
	Energy  int // 1-5
	Stress  int // 1-5
	Tags    []string
	Context string
}

type MoodService struct {
	repo    repository.MoodRepository
	streaks *StreakService
}

func NewMoodService(repo repository.MoodRepository, streaks *StreakService) *MoodService {
	return &MoodService{repo: repo, streaks: streaks}
}

// Log stores a mood check-in for today and ticks the mood logging
// streak. Multiple check-ins per day are allowed; the streak still
// advances at most once.
func (s *MoodService) Log(input MoodInput) (*model.MoodLog, error) {
	for field, v := range map[string]int{"mood": input.Mood, "energy": input.Energy, "stress": input.Stress} {
		if v < 1 || v > 5 {
			return nil, fmt.Errorf("%s must be between 1 and 5, got %d", field, v)
		}
	}

	log := &model.MoodLog{
		Date:    model.Today(),
		Mood:    input.Mood,
		Energy:  input.Energy,
		Stress:  input.Stress,
		Tags:    model.StringList(input.Tags),
		Context: input.Context,
	}

	err := s.repo.Create(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood log: %w", err)
	}

	_, err = s.streaks.RecordDailyActivity(model.BehaviorMoodLogging)
	if err != nil {
		slog.Error("failed to update mood streak", "error", err)
	}

	return log, nil
}

func (s *MoodService) ByID(id string) (*model.MoodLog, error) {
	return s.repo.ByID(id)
}

func (s *MoodService) ByDate(date string) ([]*model.MoodLog, error) {
	return s.repo.ByDate(date)
}

func (s *MoodService) Recent(limit int) ([]*model.MoodLog, error) {
	return s.repo.Recent(limit)
}

func (s *MoodService) ByDateRange(start, end string) ([]*model.MoodLog, error) {
	return s.repo.ByDateRange(start, end)
}

func (s *MoodService) Update(id string, update repository.MoodUpdate) error {
	for field, v := range map[string]*int{"mood": update.Mood, "energy": update.Energy, "stress": update.Stress} {
		if v != nil && (*v < 1 || *v > 5) {
			return fmt.Errorf("%s must be between 1 and 5, got %d", field, *v)
		}
	}
	return s.repo.Update(id, update)
}

func (s *MoodService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *MoodService) Stats(days int) (*model.MoodStats, error) {
	return s.repo.Stats(days)
}

func (s *MoodService) TagCounts(days int) ([]model.TagCount, error) {
	return s.repo.TagCounts(days)
}

// AverageMoodOnDate folds every check-in of one day into a single
// average, zero when none exist.
func (s *MoodService) AverageMoodOnDate(date string) (float64, error) {
	logs, err := s.repo.ByDate(date)
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, nil
	}

	sum := 0
	for _, log := range logs {
		sum += log.Mood
	}
	return float64(sum) / float64(len(logs)), nil
}
