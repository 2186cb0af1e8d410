package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/maazali/collegia/internal/app/controllers"
	appMigrations "github.com/maazali/collegia/internal/app/migrations"
	appRepos "github.com/maazali/collegia/internal/app/repositories"
	appRoutes "github.com/maazali/collegia/internal/app/routes"
	appServices "github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/config"
	"github.com/maazali/collegia/internal/db"
	appMiddleware "github.com/maazali/collegia/internal/middleware"
	"github.com/maazali/collegia/internal/pkg/logger"
	"github.com/maazali/collegia/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	RosterService     *appServices.RosterService
	ClassService      *appServices.ClassService
	FeeService        *appServices.FeeService
	AttendanceService *appServices.AttendanceService
	ExamService       *appServices.ExamService
	ActivityService   *appServices.ActivityService
	SettingsService   *appServices.SettingsService
	DashboardService  *appServices.DashboardService

	StudentController    *appControllers.StudentController
	ClassController      *appControllers.ClassController
	FeeController        *appControllers.FeeController
	AttendanceController *appControllers.AttendanceController
	ExamController       *appControllers.ExamController
	SettingsController   *appControllers.SettingsController
	DashboardController  *appControllers.DashboardController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default settings.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.ActivityService = appServices.NewActivityService(deps.Repos.ActivityRepository, lgr)
	deps.RosterService = appServices.NewRosterService(
		database,
		deps.Repos.StudentRepository,
		deps.Repos.ClassRepository,
		deps.Repos.FeeRepository,
		deps.ActivityService,
		lgr,
	)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository, deps.ActivityService, lgr)
	deps.FeeService = appServices.NewFeeService(
		deps.Repos.FeeRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ClassRepository,
		deps.ActivityService,
		lgr,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		database,
		deps.Repos.AttendanceRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.ExamService = appServices.NewExamService(
		deps.Repos.ExamRepository,
		deps.Repos.ClassRepository,
		deps.Repos.StudentRepository,
		deps.ActivityService,
		lgr,
	)
	deps.SettingsService = appServices.NewSettingsService(database, deps.Repos.SettingsRepository, deps.ActivityService, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.FeeRepository,
		deps.ActivityService,
		lgr,
	)

	deps.StudentController = appControllers.NewStudentController(deps.RosterService, deps.FeeService, deps.AttendanceService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService, deps.RosterService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ClassController,
		deps.FeeController,
		deps.AttendanceController,
		deps.ExamController,
		deps.SettingsController,
		deps.DashboardController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
