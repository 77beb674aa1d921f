package service

import (
	"fmt"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

type InsightService struct {
	repo repository.InsightRepository
}

func NewInsightService(repo repository.InsightRepository) *InsightService {
	return &InsightService{repo: repo}
}

func (s *InsightService) Create(insight *model.AIInsight) error {
	if insight.Title == "" && insight.Content == "" {
		return fmt.Errorf("insight needs a title or content")
	}
	return s.repo.Create(insight)
}

func (s *InsightService) ByID(id string) (*model.AIInsight, error) {
	return s.repo.ByID(id)
}

func (s *InsightService) Recent(limit int) ([]*model.AIInsight, error) {
	return s.repo.Recent(limit)
}

func (s *InsightService) Unread() ([]*model.AIInsight, error) {
	return s.repo.Unread()
}

func (s *InsightService) MarkRead(id string) error {
	return s.repo.MarkRead(id)
}

func (s *InsightService) Delete(id string) error {
	return s.repo.Delete(id)
}
