package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/config"
	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
	"github.com/fastep-work/fastep-backend-go/internal/domain/dashboard"
	"github.com/fastep-work/fastep-backend-go/internal/domain/feed"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/jwt"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/storage"
	"github.com/fastep-work/fastep-backend-go/internal/repository/postgresql"
	advanceService "github.com/fastep-work/fastep-backend-go/internal/service/advance"
	authService "github.com/fastep-work/fastep-backend-go/internal/service/auth"
	dashboardService "github.com/fastep-work/fastep-backend-go/internal/service/dashboard"
	feedService "github.com/fastep-work/fastep-backend-go/internal/service/feed"
	"github.com/fastep-work/fastep-backend-go/internal/service/file"
	leaveService "github.com/fastep-work/fastep-backend-go/internal/service/leave"
	payrollService "github.com/fastep-work/fastep-backend-go/internal/service/payroll"
	shiftService "github.com/fastep-work/fastep-backend-go/internal/service/shift"
	workerService "github.com/fastep-work/fastep-backend-go/internal/service/worker"
	"github.com/go-chi/httplog/v3"
)

// Services is every domain service, wired to PostgreSQL. The API server and payrollctl share it.
type Services struct {
	JWT jwt.Service
	// RevokedTokens backs logout; the API server purges it on a schedule.
	RevokedTokens auth.RevokedTokenRepository
	Auth          auth.AuthService
	Worker        worker.WorkerService
	Shift         shift.ShiftService
	Leave         leave.LeaveService
	Advance       advance.AdvanceService
	Payroll       payroll.PayrollService
	Dashboard     dashboard.DashboardService
	Feed          feed.FeedService
	Files         file.FileService
	// UploadDir is the resolved directory photos are stored in.
	UploadDir string
}

func NewServices(cfg *config.Config, db *database.DB) (Services, error) {
	loc := cfg.Location()
	settings := payroll.Settings{
		DaysInMonth: cfg.Payroll.DaysInMonth,
		BaseHours:   cfg.Payroll.BaseHours,
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	feedRepo := postgresql.NewFeedRepository(db)
	snapshotRepo := postgresql.NewSnapshotRepository(db)
	txManager := postgresql.NewTxManager(db)

	photoStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return Services{}, fmt.Errorf("init photo storage: %w", err)
	}

	revokedTokenRepo := postgresql.NewRevokedTokenRepository(db)
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, jwt.WithRevokedTokenRepository(revokedTokenRepo))

	return Services{
		JWT:           jwtSvc,
		RevokedTokens: revokedTokenRepo,
		Auth:          authService.NewAuthService(workerRepo, jwtSvc),
		Worker:        workerService.NewWorkerService(workerRepo),
		Shift:         shiftService.NewShiftService(txManager, shiftRepo, workerRepo, settings, loc),
		Leave:         leaveService.NewLeaveService(leaveRepo, workerRepo),
		Advance:       advanceService.NewAdvanceService(advanceRepo, workerRepo, loc),
		Payroll:       payrollService.NewPayrollService(snapshotRepo, workerRepo, settings, loc),
		Dashboard:     dashboardService.NewDashboardService(snapshotRepo, settings, loc),
		Feed:          feedService.NewFeedService(feedRepo, workerRepo),
		Files:         file.NewFileService(photoStorage, cfg.Storage.MaxPhotoBytes),
		UploadDir:     photoStorage.BasePath(),
	}, nil
}

// NewLogger returns the JSON logger used by the API server; attribute names follow the ECS schema.
func NewLogger(cfg *config.Config, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fastep-work"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
}

// ShutdownTimeout bounds graceful shutdown of the HTTP server and background jobs.
const ShutdownTimeout = 15 * time.Second
