package app

import (
	"fmt"

	"github.com/tidewell/tidewell/internal/config"
	"github.com/tidewell/tidewell/internal/db"
	"github.com/tidewell/tidewell/internal/repository"
	"github.com/tidewell/tidewell/internal/service"
)

// App wires every service to the shared store handle. Services receive
// their dependencies here; nothing below this layer reaches for a
// global.
type App struct {
	Cfg     *config.Config
	Manager *db.Manager

	SleepService      *service.SleepService
	MoodService       *service.MoodService
	AddictionService  *service.AddictionService
	HabitService      *service.HabitService
	JournalService    *service.JournalService
	StreakService     *service.StreakService
	ResistanceService *service.ResistanceService
	SettingsService   *service.SettingsService
	CrisisService     *service.CrisisService
	InsightService    *service.InsightService
	DashboardService  *service.DashboardService
}

func New(cfg *config.Config) (*App, error) {
	manager := db.NewManager(cfg.DBDriver, cfg.DBConnection)
	err := manager.Initialize()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	database, err := manager.DB()
	if err != nil {
		return nil, err
	}

	// Repositories
	sleepRepository := repository.NewSleepRepository(database)
	moodRepository := repository.NewMoodRepository(database)
	addictionRepository := repository.NewAddictionRepository(database)
	habitRepository := repository.NewHabitRepository(database)
	journalRepository := repository.NewJournalRepository(database)
	streakRepository := repository.NewStreakRepository(database)
	resistanceRepository := repository.NewResistanceRepository(database)
	settingRepository := repository.NewSettingRepository(database)
	crisisRepository := repository.NewCrisisRepository(database)
	insightRepository := repository.NewInsightRepository(database)

	// Services
	streakService := service.NewStreakService(streakRepository)
	resistanceService := service.NewResistanceService(resistanceRepository)
	sleepService := service.NewSleepService(sleepRepository, streakService)
	moodService := service.NewMoodService(moodRepository, streakService)
	addictionService := service.NewAddictionService(database, addictionRepository, resistanceRepository, streakRepository)
	habitService := service.NewHabitService(habitRepository)
	journalService := service.NewJournalService(journalRepository, streakService)
	settingsService := service.NewSettingsService(settingRepository)
	crisisService := service.NewCrisisService(crisisRepository)
	insightService := service.NewInsightService(insightRepository)
	dashboardService := service.NewDashboardService(
		moodService,
		sleepService,
		addictionService,
		journalService,
		streakService,
		habitService,
		insightService,
	)

	return &App{
		Cfg:               cfg,
		Manager:           manager,
		SleepService:      sleepService,
		MoodService:       moodService,
		AddictionService:  addictionService,
		HabitService:      habitService,
		JournalService:    journalService,
		StreakService:     streakService,
		ResistanceService: resistanceService,
		SettingsService:   settingsService,
		CrisisService:     crisisService,
		InsightService:    insightService,
		DashboardService:  dashboardService,
	}, nil
}

func (a *App) Close() error {
	return a.Manager.Close()
}
