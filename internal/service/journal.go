package service

import (
	"fmt"
	"log/slog"

	"github.com/tidewell/tidewell/internal/markdown"
	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

type JournalInput struct {
	Title   *string
	Content string // Markdown
	Mood    *int   // 1-5
	Tags    []string
}

type JournalService struct {
	repo    repository.JournalRepository
	parser  *markdown.Parser
	streaks *StreakService
}

func NewJournalService(repo repository.JournalRepository, streaks *StreakService) *JournalService {
	return &JournalService{
		repo:    repo,
		parser:  markdown.NewParser(),
		streaks: streaks,
	}
}

// Create stores an entry for today. The word count is computed once
// here, from the markup-stripped content, and persisted; readers never
// re-derive it.
func (s *JournalService) Create(input JournalInput) (*model.JournalEntry, error) {
	err := validateScale("mood", input.Mood)
	if err != nil {
		return nil, err
	}

	entry := &model.JournalEntry{
		Date:      model.Today(),
		Title:     input.Title,
		Content:   input.Content,
		Mood:      input.Mood,
		Tags:      model.StringList(input.Tags),
		WordCount: s.parser.WordCount(input.Content),
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	_, err = s.streaks.RecordDailyActivity(model.BehaviorJournal)
	if err != nil {
		slog.Error("failed to update journal streak", "error", err)
	}

	return entry, nil
}

func (s *JournalService) ByID(id string) (*model.JournalEntry, error) {
	return s.repo.ByID(id)
}

func (s *JournalService) ByDate(date string) ([]*model.JournalEntry, error) {
	return s.repo.ByDate(date)
}

func (s *JournalService) Recent(limit int) ([]*model.JournalEntry, error) {
	return s.repo.Recent(limit)
}

func (s *JournalService) ByDateRange(start, end string) ([]*model.JournalEntry, error) {
	return s.repo.ByDateRange(start, end)
}

// Update applies a sparse update. The word count is recomputed only
// when the content itself changes.
func (s *JournalService) Update(id string, update repository.JournalUpdate) error {
	err := validateScale("mood", update.Mood)
	if err != nil {
		return err
	}

	if update.Content != nil {
		count := s.parser.WordCount(*update.Content)
		update.WordCount = &count
	} else {
		update.WordCount = nil
	}

	return s.repo.Update(id, update)
}

func (s *JournalService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *JournalService) Stats(days int) (*model.JournalStats, error) {
	return s.repo.Stats(days)
}
