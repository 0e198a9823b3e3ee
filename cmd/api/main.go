package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/app"
	"github.com/fastep-work/fastep-backend-go/internal/config"
	appHTTP "github.com/fastep-work/fastep-backend-go/internal/handler/http"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/cron"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg, version)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	services, err := app.NewServices(cfg, db)
	if err != nil {
		return err
	}

	if cfg.Seed.AdminCode != "" {
		if err := services.Worker.EnsureAdmin(ctx, cfg.Seed.AdminCode, cfg.Seed.AdminPassword); err != nil {
			return err
		}
	}

	scheduler := cron.NewScheduler()
	cron.NewAdvanceJobs(services.Advance, cfg.Location()).RegisterJobs(scheduler, cfg.Cron.DueAdvanceInterval)
	cron.NewTokenJobs(services.RevokedTokens).RegisterJobs(scheduler, cfg.Cron.TokenPurgeInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		AllowedOrigins: []string{cfg.App.FrontendURL},
		Logger:         logger,
		UploadDir:      services.UploadDir,
	}, services.JWT, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(services.Auth),
		Worker:    appHTTP.NewWorkerHandler(services.Worker),
		Shift:     appHTTP.NewShiftHandler(services.Shift),
		Leave:     appHTTP.NewLeaveHandler(services.Leave),
		Advance:   appHTTP.NewAdvanceHandler(services.Advance),
		Payroll:   appHTTP.NewPayrollHandler(services.Payroll),
		Dashboard: appHTTP.NewDashboardHandler(services.Dashboard),
		Feed:      appHTTP.NewFeedHandler(services.Feed),
		Upload:    appHTTP.NewUploadHandler(services.Files, cfg.Storage.MaxPhotoBytes),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
