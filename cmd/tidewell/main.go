package main

import (
	"context"
	"log/slog"

	"github.com/tidewell/tidewell/internal/app"
	"github.com/tidewell/tidewell/internal/config"
	"github.com/tidewell/tidewell/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.LogFile)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	snapshot, err := app.DashboardService.Snapshot(context.Background())
	if err != nil {
		slog.Error("failed to load dashboard snapshot", "error", err)
		panic(err)
	}

	slog.Info("today",
		"date", snapshot.Date,
		"wellness_score", snapshot.WellnessScore,
		"average_mood", snapshot.TodayAverageMood,
		"resisted_urges", snapshot.ResistedToday,
		"habits_done", snapshot.HabitsDone,
		"streaks", len(snapshot.Streaks),
		"unread_insights", snapshot.UnreadInsights,
	)
}
