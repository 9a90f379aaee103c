package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vacancyhq/jobdesk-api/internal/config"
	"github.com/vacancyhq/jobdesk-api/internal/platform/logger"
	"github.com/vacancyhq/jobdesk-api/internal/platform/postgres"
	"github.com/vacancyhq/jobdesk-api/internal/service"
	"github.com/vacancyhq/jobdesk-api/internal/service/auth"
)

// application holds the assembled dependencies of the running server.
// Everything is wired once here; nothing resolves dependencies ambiently.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	tokenService    auth.TokenService
	userService     service.UserService
	jobService      service.JobService
	responseService service.ResponseService

	userStore *postgres.UserStore
}

// initializeApp loads configuration, sets up logging, connects to the
// database, applies migrations and wires the service layer.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := applyMigrations(db, appLogger); err != nil {
		closeDatabase(db, appLogger)
		return nil, err
	}

	userStore := postgres.NewUserStore(db)
	jobStore := postgres.NewJobStore(db)
	responseStore := postgres.NewResponseStore(db)

	hasher := auth.NewBcryptHasher()

	tokenService, err := auth.NewTokenService(cfg.Auth, userStore, hasher)
	if err != nil {
		closeDatabase(db, appLogger)
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          appLogger,
		db:              db,
		tokenService:    tokenService,
		userService:     service.NewUserService(userStore, hasher, db, appLogger),
		jobService:      service.NewJobService(jobStore, appLogger),
		responseService: service.NewResponseService(responseStore, appLogger),
		userStore:       userStore,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
