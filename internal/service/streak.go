package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

// StreakService maintains consecutive-day counters per behavior type.
// Two transition policies share the row shape and must stay separate:
// resistance streaks are event driven (every urge is a discrete
// success or a hard reset, no calendar logic), while daily-logging
// streaks are calendar driven (idempotent per day, broken by a missed
// day). Merging them would double-increment same-day logs or let an
// unresisted urge survive a date gap.
type StreakService struct {
	repo repository.StreakRepository
}

func NewStreakService(repo repository.StreakRepository) *StreakService {
	return &StreakService{repo: repo}
}

func (s *StreakService) ByBehaviorType(behaviorType string) (*model.Streak, error) {
	return s.repo.ByBehaviorType(behaviorType)
}

func (s *StreakService) All() ([]*model.Streak, error) {
	return s.repo.All()
}

// RecordResistance applies one resistance event to the behavior's
// streak: +1 on success, immediate reset to zero on failure.
func (s *StreakService) RecordResistance(behaviorType string, resisted bool) (*model.Streak, error) {
	return recordResistance(s.repo, behaviorType, resisted)
}

// RecordDailyActivity applies one day of a logging activity (mood,
// sleep, journal). A second call on the same day returns the streak
// unchanged.
func (s *StreakService) RecordDailyActivity(behaviorType string) (*model.Streak, error) {
	return recordDailyActivity(s.repo, behaviorType)
}

// recordResistance is shared with the urge transaction, which runs it
// against a tx-bound repository.
func recordResistance(repo repository.StreakRepository, behaviorType string, resisted bool) (*model.Streak, error) {
	streak, err := loadOrNewStreak(repo, behaviorType)
	if err != nil {
		return nil, err
	}

	if resisted {
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
	} else {
		streak.CurrentStreak = 0
		today := model.Today()
		streak.LastResetDate = &today
	}

	err = repo.Save(streak)
	if err != nil {
		return nil, fmt.Errorf("failed to save streak for %s: %w", behaviorType, err)
	}

	return streak, nil
}

func recordDailyActivity(repo repository.StreakRepository, behaviorType string) (*model.Streak, error) {
	streak, err := repo.ByBehaviorType(behaviorType)
	if errors.Is(err, repository.ErrStreakNotFound) {
		streak = &model.Streak{
			BehaviorType:  behaviorType,
			CurrentStreak: 1,
			LongestStreak: 1,
			StartDate:     model.Today(),
		}
		err = repo.Save(streak)
		if err != nil {
			return nil, fmt.Errorf("failed to save streak for %s: %w", behaviorType, err)
		}
		return streak, nil
	}
	if err != nil {
		return nil, err
	}

	today := model.Today()
	lastLogged := model.DateOf(streak.UpdatedAt)

	// Already counted today; multiple logs on one day are one tick.
	if lastLogged == today {
		return streak, nil
	}

	yesterday := model.DateOf(time.Now().AddDate(0, 0, -1))
	if lastLogged == yesterday {
		streak.CurrentStreak++
	} else {
		// Missed at least one day; the chain restarts at 1, today
		// itself still counts.
		streak.CurrentStreak = 1
		streak.StartDate = today
		streak.LastResetDate = &today
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	err = repo.Save(streak)
	if err != nil {
		return nil, fmt.Errorf("failed to save streak for %s: %w", behaviorType, err)
	}

	return streak, nil
}

func loadOrNewStreak(repo repository.StreakRepository, behaviorType string) (*model.Streak, error) {
	streak, err := repo.ByBehaviorType(behaviorType)
	if errors.Is(err, repository.ErrStreakNotFound) {
		return &model.Streak{
			BehaviorType: behaviorType,
			StartDate:    model.Today(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return streak, nil
}
