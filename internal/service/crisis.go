package service

import (
	"fmt"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

type CrisisService struct {
	repo repository.CrisisRepository
}

func NewCrisisService(repo repository.CrisisRepository) *CrisisService {
	return &CrisisService{repo: repo}
}

func (s *CrisisService) Create(resource *model.CrisisResource) error {
	if resource.Name == "" {
		return fmt.Errorf("crisis resource name is required")
	}
	return s.repo.Create(resource)
}

func (s *CrisisService) ByID(id string) (*model.CrisisResource, error) {
	return s.repo.ByID(id)
}

func (s *CrisisService) All() ([]*model.CrisisResource, error) {
	return s.repo.All()
}

func (s *CrisisService) Delete(id string) error {
	return s.repo.Delete(id)
}
