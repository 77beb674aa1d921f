package service

import (
	"fmt"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

type HabitInput struct {
	Name         string
	Category     string
	TrackingType string
	TargetValue  float64
	Unit         string
}

type CompletionInput struct {
	HabitID      string
	CurrentValue float64
	Difficulty   int // 1-5, defaults to 3
	Notes        string
}

// DailyHabit pairs a habit with its completion row for one day, if
// any.
type DailyHabit struct {
	Habit      *model.HealthyHabit
	Completion *model.HabitCompletion
}

type HabitService struct {
	repo repository.HabitRepository
}

func NewHabitService(repo repository.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

func (s *HabitService) Create(input HabitInput) (*model.HealthyHabit, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("habit name is required")
	}
	err := model.ValidateHabitCategory(input.Category)
	if err != nil {
		return nil, err
	}
	err = model.ValidateTrackingType(input.TrackingType)
	if err != nil {
		return nil, err
	}
	if input.TargetValue <= 0 {
		return nil, fmt.Errorf("target value must be positive, got %v", input.TargetValue)
	}

	habit := &model.HealthyHabit{
		Name:         input.Name,
		Category:     input.Category,
		TrackingType: input.TrackingType,
		TargetValue:  input.TargetValue,
		Unit:         input.Unit,
		IsActive:     true,
	}

	err = s.repo.Create(habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) ByID(id string) (*model.HealthyHabit, error) {
	return s.repo.ByID(id)
}

func (s *HabitService) Active() ([]*model.HealthyHabit, error) {
	return s.repo.Active()
}

func (s *HabitService) All() ([]*model.HealthyHabit, error) {
	return s.repo.All()
}

func (s *HabitService) Update(id string, update repository.HabitUpdate) error {
	if update.Category != nil {
		err := model.ValidateHabitCategory(*update.Category)
		if err != nil {
			return err
		}
	}
	return s.repo.Update(id, update)
}

func (s *HabitService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Complete logs today's value for a habit. Re-logging the same habit
// on the same day replaces the earlier row. The completed flag is
// derived here from the habit's rules as they stand right now and then
// persisted — a later target change never recomputes history.
func (s *HabitService) Complete(input CompletionInput) (*model.HabitCompletion, error) {
	habit, err := s.repo.ByID(input.HabitID)
	if err != nil {
		return nil, err
	}

	difficulty := input.Difficulty
	if difficulty == 0 {
		difficulty = 3
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, fmt.Errorf("difficulty must be between 1 and 5, got %d", difficulty)
	}

	completion := &model.HabitCompletion{
		HabitID:      habit.ID,
		Date:         model.Today(),
		Completed:    habit.IsCompleted(input.CurrentValue),
		CurrentValue: input.CurrentValue,
		Difficulty:   difficulty,
		Notes:        input.Notes,
	}

	err = s.repo.UpsertCompletion(completion)
	if err != nil {
		return nil, fmt.Errorf("failed to save habit completion: %w", err)
	}

	return completion, nil
}

func (s *HabitService) CompletionByHabitAndDate(habitID, date string) (*model.HabitCompletion, error) {
	return s.repo.CompletionByHabitAndDate(habitID, date)
}

func (s *HabitService) CompletionsByDateRange(habitID, start, end string) ([]*model.HabitCompletion, error) {
	return s.repo.CompletionsByDateRange(habitID, start, end)
}

func (s *HabitService) CompletionRate(habitID string, days int) (float64, error) {
	return s.repo.CompletionRate(habitID, days)
}

// ForDate returns every active habit with its completion row for the
// day, completion nil when the habit hasn't been logged.
func (s *HabitService) ForDate(date string) ([]DailyHabit, error) {
	habits, err := s.repo.Active()
	if err != nil {
		return nil, err
	}

	completions, err := s.repo.CompletionsByDate(date)
	if err != nil {
		return nil, err
	}

	byHabit := map[string]*model.HabitCompletion{}
	for _, c := range completions {
		byHabit[c.HabitID] = c
	}

	result := make([]DailyHabit, 0, len(habits))
	for _, h := range habits {
		result = append(result, DailyHabit{Habit: h, Completion: byHabit[h.ID]})
	}

	return result, nil
}
