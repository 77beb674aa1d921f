package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

// Scoring constants for a resisted urge.
const (
	scoreBase          = 10
	scoreIntensityStep = 2
	scoreComboStep     = 0.5
	scoreComboCap      = 20
	difficultIntensity = 4
)

// ResistanceService accumulates a per-addiction-type reward signal
// from urge events and classifies the running totals into a
// qualitative level.
type ResistanceService struct {
	repo repository.ResistanceRepository
}

func NewResistanceService(repo repository.ResistanceRepository) *ResistanceService {
	return &ResistanceService{repo: repo}
}

// ByType returns the metrics row for an addiction type, or a zeroed
// row when no urge has been logged yet.
func (s *ResistanceService) ByType(addictionType string) (*model.ResistanceMetrics, error) {
	metrics, err := s.repo.ByType(addictionType)
	if errors.Is(err, repository.ErrResistanceMetricsNotFound) {
		return &model.ResistanceMetrics{AddictionType: addictionType}, nil
	}
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

func (s *ResistanceService) All() ([]*model.ResistanceMetrics, error) {
	return s.repo.All()
}

// Level classifies the current totals for an addiction type.
func (s *ResistanceService) Level(addictionType string) (string, error) {
	metrics, err := s.ByType(addictionType)
	if err != nil {
		return "", err
	}
	return LevelFor(metrics.ResistanceRate, metrics.TotalResisted), nil
}

// applyUrgeEvent folds one urge event into the metrics row and returns
// the points awarded (zero when the urge was not resisted). Shared
// with the urge transaction.
func applyUrgeEvent(repo repository.ResistanceRepository, log *model.AddictionLog) (*model.ResistanceMetrics, int, error) {
	metrics, err := repo.ByType(log.AddictionType)
	if errors.Is(err, repository.ErrResistanceMetricsNotFound) {
		metrics = &model.ResistanceMetrics{AddictionType: log.AddictionType}
	} else if err != nil {
		return nil, 0, err
	}

	metrics.TotalUrges++

	score := 0
	if log.WasResisted {
		metrics.TotalResisted++
		metrics.ConsecutiveResistances++
		now := time.Now()
		metrics.LastResistanceDate = &now

		intensity := 0
		if log.UrgeIntensity != nil {
			intensity = *log.UrgeIntensity
		}

		combo := math.Min(float64(metrics.ConsecutiveResistances)*scoreComboStep, scoreComboCap)
		score = int(math.Round(scoreBase + float64(intensity)*scoreIntensityStep + combo))
		metrics.TotalResistanceScore += score

		if intensity >= difficultIntensity {
			metrics.DifficultUrgesResisted++
		}
		if metrics.ConsecutiveResistances > metrics.BestResistanceStreak {
			metrics.BestResistanceStreak = metrics.ConsecutiveResistances
		}
		if log.Trigger != "" {
			if metrics.TriggerMastery == nil {
				metrics.TriggerMastery = model.CountMap{}
			}
			metrics.TriggerMastery[log.Trigger]++
		}
	} else {
		metrics.ConsecutiveResistances = 0
	}

	metrics.ResistanceRate = int(math.Round(float64(metrics.TotalResisted) / float64(metrics.TotalUrges) * 100))

	err = repo.Save(metrics)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to save resistance metrics for %s: %w", log.AddictionType, err)
	}

	return metrics, score, nil
}

// LevelFor maps (rate, resisted) onto the level ladder, strongest tier
// first; both thresholds of a tier must hold.
func LevelFor(resistanceRate, totalResisted int) string {
	switch {
	case resistanceRate >= 90 && totalResisted >= 50:
		return model.LevelMaster
	case resistanceRate >= 80 && totalResisted >= 30:
		return model.LevelChampion
	case resistanceRate >= 70 && totalResisted >= 20:
		return model.LevelFighter
	case resistanceRate >= 60 && totalResisted >= 10:
		return model.LevelGrowing
	case totalResisted >= 5:
		return model.LevelFirstSteps
	default:
		return model.LevelStartingOut
	}
}

// EncouragementFor picks feedback framing from the event and the
// engine's running counters.
func EncouragementFor(metrics *model.ResistanceMetrics, log *model.AddictionLog) string {
	if log.WasResisted {
		if log.UrgeIntensity != nil && *log.UrgeIntensity >= difficultIntensity {
			return "That was a difficult urge and you beat it. That takes real strength."
		}
		if metrics.ConsecutiveResistances >= 10 {
			return fmt.Sprintf("You're on a %d-resistance streak. Keep the momentum going.", metrics.ConsecutiveResistances)
		}
		return "Another victory. Every urge you resist makes the next one easier."
	}
	return fmt.Sprintf("One slip doesn't erase the %d urges you've already resisted. Tomorrow is a fresh start.", metrics.TotalResisted)
}
