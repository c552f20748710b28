package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jobsphere/jobsphere/docs" // Generated swagger docs
	appControllers "github.com/jobsphere/jobsphere/internal/app/controllers"
	appMigrations "github.com/jobsphere/jobsphere/internal/app/migrations"
	appRepos "github.com/jobsphere/jobsphere/internal/app/repositories"
	appRoutes "github.com/jobsphere/jobsphere/internal/app/routes"
	appServices "github.com/jobsphere/jobsphere/internal/app/services"
	"github.com/jobsphere/jobsphere/internal/config"
	"github.com/jobsphere/jobsphere/internal/db"
	appMiddleware "github.com/jobsphere/jobsphere/internal/middleware"
	pkgAuth "github.com/jobsphere/jobsphere/internal/pkg/auth"
	"github.com/jobsphere/jobsphere/internal/pkg/filestorage"
	"github.com/jobsphere/jobsphere/internal/pkg/helpers"
	"github.com/jobsphere/jobsphere/internal/pkg/logger"
	"github.com/jobsphere/jobsphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	JobService            appServices.JobService
	ApplicationService    appServices.ApplicationService
	AdminService          appServices.AdminService
	AuthController        *appControllers.AuthController
	JobController         *appControllers.JobController
	ApplicationController *appControllers.ApplicationController
	AdminController       *appControllers.AdminController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	FileStorage           *filestorage.LocalStorage
	Logger                zerolog.Logger
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
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Startup proceeds; an operator can still create the admin manually
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving endpoint
	var err error
	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 720*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.User, deps.JWTService, lgr)
	deps.JobService = appServices.NewJobService(deps.Repos.Job, deps.Repos.User, lgr)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.Application, deps.Repos.Job, deps.FileStorage, lgr)
	deps.AdminService = appServices.NewAdminService(deps.Repos.User, deps.Repos.Job, deps.Repos.Application, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.User)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

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

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.JobController,
		deps.ApplicationController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
