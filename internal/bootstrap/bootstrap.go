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

	appControllers "github.com/chimailo/algorice/internal/app/controllers"
	appMigrations "github.com/chimailo/algorice/internal/app/migrations"
	appRepos "github.com/chimailo/algorice/internal/app/repositories"
	appRoutes "github.com/chimailo/algorice/internal/app/routes"
	appServices "github.com/chimailo/algorice/internal/app/services"
	"github.com/chimailo/algorice/internal/config"
	"github.com/chimailo/algorice/internal/db"
	appMiddleware "github.com/chimailo/algorice/internal/middleware"
	pkgAuth "github.com/chimailo/algorice/internal/pkg/auth"
	"github.com/chimailo/algorice/internal/pkg/helpers"
	"github.com/chimailo/algorice/internal/pkg/logger"
	"github.com/chimailo/algorice/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	JWTService        *pkgAuth.JWTService
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	ProfileController *appControllers.ProfileController
	PostController    *appControllers.PostController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Logger            zerolog.Logger
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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	ctx := context.Background()

	dbPool, err := db.NewPgxPool(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		// Seeding problems shouldn't block startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	if cfg.App.ItemsPerPage > 0 {
		helpers.DefaultPageSize = cfg.App.ItemsPerPage
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 720*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(
		deps.JWTService,
		deps.Repos.UserRepository,
		deps.Services.Authorization,
	)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(
		deps.Services.UserService,
		deps.Services.PostService,
		deps.Services.CommentService,
		lgr,
	)
	deps.ProfileController = appControllers.NewProfileController(deps.Services.ProfileService, lgr)
	deps.PostController = appControllers.NewPostController(
		deps.Services.PostService,
		deps.Services.CommentService,
		lgr,
	)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService, lgr)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ProfileController,
		deps.PostController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
