package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

// recentWindow bounds each slice of the dashboard snapshot.
const recentWindow = 7

// Snapshot is the single view-model the dashboard renders from. Every
// slice degrades independently: a failed sub-fetch leaves its zero
// value and never aborts the rest.
type Snapshot struct {
	Date          string
	WellnessScore int

	TodayAverageMood float64
	TodaySleep       *model.SleepLog
	ResistedToday    int

	RecentMoods    []*model.MoodLog
	RecentSleep    []*model.SleepLog
	RecentUrges    []*model.AddictionLog
	RecentEntries  []*model.JournalEntry
	Streaks        []*model.Streak
	TodayHabits    []DailyHabit
	HabitsDone     int
	UnreadInsights int
}

type DashboardService struct {
	mood      *MoodService
	sleep     *SleepService
	addiction *AddictionService
	journal   *JournalService
	streaks   *StreakService
	habits    *HabitService
	insights  *InsightService
}

func NewDashboardService(
	mood *MoodService,
	sleep *SleepService,
	addiction *AddictionService,
	journal *JournalService,
	streaks *StreakService,
	habits *HabitService,
	insights *InsightService,
) *DashboardService {
	return &DashboardService{
		mood:      mood,
		sleep:     sleep,
		addiction: addiction,
		journal:   journal,
		streaks:   streaks,
		habits:    habits,
		insights:  insights,
	}
}

// Snapshot fans out to every service, folds the results, and derives
// the wellness score.
func (s *DashboardService) Snapshot(ctx context.Context) (*Snapshot, error) {
	today := model.Today()
	snapshot := &Snapshot{Date: today}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		avg, err := s.mood.AverageMoodOnDate(today)
		if err != nil {
			slog.Warn("dashboard: mood average unavailable", "error", err)
			return nil
		}
		snapshot.TodayAverageMood = avg
		return nil
	})

	g.Go(func() error {
		log, err := s.sleep.ByDate(today)
		if errors.Is(err, repository.ErrSleepLogNotFound) {
			return nil
		}
		if err != nil {
			slog.Warn("dashboard: sleep log unavailable", "error", err)
			return nil
		}
		snapshot.TodaySleep = log
		return nil
	})

	g.Go(func() error {
		count, err := s.addiction.ResistedToday()
		if err != nil {
			slog.Warn("dashboard: resisted count unavailable", "error", err)
			return nil
		}
		snapshot.ResistedToday = count
		return nil
	})

	g.Go(func() error {
		logs, err := s.mood.Recent(recentWindow)
		if err != nil {
			slog.Warn("dashboard: recent moods unavailable", "error", err)
			return nil
		}
		snapshot.RecentMoods = logs
		return nil
	})

	g.Go(func() error {
		logs, err := s.sleep.Recent(recentWindow)
		if err != nil {
			slog.Warn("dashboard: recent sleep unavailable", "error", err)
			return nil
		}
		snapshot.RecentSleep = logs
		return nil
	})

	g.Go(func() error {
		logs, err := s.addiction.Recent(recentWindow)
		if err != nil {
			slog.Warn("dashboard: recent urges unavailable", "error", err)
			return nil
		}
		snapshot.RecentUrges = logs
		return nil
	})

	g.Go(func() error {
		entries, err := s.journal.Recent(recentWindow)
		if err != nil {
			slog.Warn("dashboard: recent journal unavailable", "error", err)
			return nil
		}
		snapshot.RecentEntries = entries
		return nil
	})

	g.Go(func() error {
		streaks, err := s.streaks.All()
		if err != nil {
			slog.Warn("dashboard: streaks unavailable", "error", err)
			return nil
		}
		snapshot.Streaks = streaks
		return nil
	})

	g.Go(func() error {
		habits, err := s.habits.ForDate(today)
		if err != nil {
			slog.Warn("dashboard: habits unavailable", "error", err)
			return nil
		}
		snapshot.TodayHabits = habits
		return nil
	})

	g.Go(func() error {
		insights, err := s.insights.Unread()
		if err != nil {
			slog.Warn("dashboard: insights unavailable", "error", err)
			return nil
		}
		snapshot.UnreadInsights = len(insights)
		return nil
	})

	// Sub-fetches swallow their own errors; Wait only joins.
	_ = g.Wait()

	for _, h := range snapshot.TodayHabits {
		if h.Completion != nil && h.Completion.Completed {
			snapshot.HabitsDone++
		}
	}

	snapshot.WellnessScore = WellnessScore(snapshot.TodayAverageMood, snapshot.TodaySleep, snapshot.ResistedToday)

	return snapshot, nil
}

// WellnessScore blends today's mood, sleep, and resisted urges into a
// 0-100 headline number. Each missing component contributes zero.
//
//   - mood: average (1-5) scaled to 40 points
//   - sleep: duration capped at 8h (70%) blended with quality (30%),
//     scaled to 30 points
//   - urges: resisted count capped at 3, scaled to 30 points
func WellnessScore(avgMood float64, sleep *model.SleepLog, resistedToday int) int {
	score := 0.0

	if avgMood > 0 {
		score += avgMood / 5 * 40
	}

	if sleep != nil {
		hours := math.Min(sleep.DurationHours, 8)
		blend := hours/8*0.7 + float64(sleep.Quality)/5*0.3
		score += blend * 30
	}

	resisted := resistedToday
	if resisted > 3 {
		resisted = 3
	}
	score += float64(resisted) / 3 * 30

	return int(math.Round(score))
}
