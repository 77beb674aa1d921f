package service

import (
	"errors"
	"strconv"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

type SettingsService struct {
	repo repository.SettingRepository
}

func NewSettingsService(repo repository.SettingRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(key string) (*model.AppSetting, error) {
	return s.repo.ByKey(key)
}

func (s *SettingsService) All() ([]*model.AppSetting, error) {
	return s.repo.All()
}

func (s *SettingsService) SetString(key, value string) error {
	return s.repo.Set(key, value, model.SettingTypeString)
}

func (s *SettingsService) SetBool(key string, value bool) error {
	return s.repo.Set(key, strconv.FormatBool(value), model.SettingTypeBool)
}

// stringOr returns the stored value or a default when the key is
// absent.
func (s *SettingsService) stringOr(key, def string) (string, error) {
	setting, err := s.repo.ByKey(key)
	if errors.Is(err, repository.ErrSettingNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return setting.Value, nil
}

func (s *SettingsService) UserName() (string, error) {
	return s.stringOr(model.SettingUserName, "")
}

func (s *SettingsService) SetUserName(name string) error {
	return s.SetString(model.SettingUserName, name)
}

func (s *SettingsService) Theme() (string, error) {
	return s.stringOr(model.SettingTheme, "dark")
}

func (s *SettingsService) SetTheme(theme string) error {
	return s.SetString(model.SettingTheme, theme)
}

func (s *SettingsService) OnboardingComplete() (bool, error) {
	value, err := s.stringOr(model.SettingOnboardingComplete, "false")
	if err != nil {
		return false, err
	}
	complete, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return complete, nil
}

func (s *SettingsService) SetOnboardingComplete(complete bool) error {
	return s.SetBool(model.SettingOnboardingComplete, complete)
}
