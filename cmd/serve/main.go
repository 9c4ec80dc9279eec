package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dashgrid/internal/calendar"
	"dashgrid/internal/config"
	"dashgrid/internal/database"
	"dashgrid/internal/football"
	"dashgrid/internal/logging"
	"dashgrid/internal/refresh"
	"dashgrid/internal/server"
	"dashgrid/internal/services/layout"
	"dashgrid/internal/services/note"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	var provider calendar.Provider
	if cfg.Calendar.APIKey != "" {
		provider = calendar.NewGoogleProvider(cfg.Calendar.APIKey, cfg.Calendar.CalendarID)
	}
	calendarSvc := calendar.NewService(provider)
	footballSvc := football.NewService(football.NewClient(cfg.Football))

	scheduler := refresh.New(calendarSvc, footballSvc)
	if err := scheduler.Start(cfg.Refresh.Schedule); err != nil {
		slog.Error("failed to start refresh scheduler", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	// Apply provider credentials and the refresh schedule live when the
	// config file changes on disk
	configPath, err := config.GetConfigPath()
	if err == nil {
		go func() {
			watchErr := config.Watch(ctx, configPath, func(updated *config.Config) {
				slog.Info("config file changed, applying updated settings")

				var provider calendar.Provider
				if updated.Calendar.APIKey != "" {
					provider = calendar.NewGoogleProvider(updated.Calendar.APIKey, updated.Calendar.CalendarID)
				}
				calendarSvc.SetProvider(provider)
				footballSvc.SetClient(football.NewClient(updated.Football))

				if err := scheduler.Restart(updated.Refresh.Schedule); err != nil {
					slog.Warn("updated refresh schedule rejected", "error", err)
				}

				calendarSvc.Refresh(ctx)
				footballSvc.Refresh(ctx)
			})
			if watchErr != nil {
				slog.Warn("config watcher stopped", "error", watchErr)
			}
		}()
	}

	srv := server.New(
		cfg.Server.Addr,
		layout.NewService(repo.PanelRepo),
		note.NewService(repo.NoteRepo),
		calendarSvc,
		footballSvc,
	)

	slog.Info("dashgrid server starting", "addr", cfg.Server.Addr, "pid", os.Getpid())

	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("dashgrid server shut down gracefully")
}
