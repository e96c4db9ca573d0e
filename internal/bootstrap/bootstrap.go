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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/exambank/backend/internal/app/controllers"
	appMigrations "github.com/exambank/backend/internal/app/migrations"
	appRepos "github.com/exambank/backend/internal/app/repositories"
	appRoutes "github.com/exambank/backend/internal/app/routes"
	appServices "github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/config"
	"github.com/exambank/backend/internal/db"
	appMiddleware "github.com/exambank/backend/internal/middleware"
	pkgAuth "github.com/exambank/backend/internal/pkg/auth"
	"github.com/exambank/backend/internal/pkg/filestorage"
	"github.com/exambank/backend/internal/pkg/helpers"
	"github.com/exambank/backend/internal/pkg/logger"
	"github.com/exambank/backend/internal/pkg/validation"
	"github.com/exambank/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	CourseService     appServices.CourseService
	QAService         appServices.QAService
	FeedbackService   appServices.FeedbackService
	AccountService    appServices.AccountService
	DepartmentService appServices.DepartmentService
	CategoryService   appServices.CategoryService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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

// SetupDatabase establishes the database connection, runs migrations and seeds
// default data.
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
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port + "/image"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		Secrets: map[pkgAuth.Role]string{
			pkgAuth.RoleStudent: cfg.JWT.StudentSecret,
			pkgAuth.RoleTeacher: cfg.JWT.TeacherSecret,
			pkgAuth.RoleAdmin:   cfg.JWT.AdminSecret,
		},
		TokenExp: map[pkgAuth.Role]time.Duration{
			pkgAuth.RoleStudent: helpers.ParseDuration(cfg.JWT.StudentExpiration, 720*time.Hour),
			pkgAuth.RoleTeacher: helpers.ParseDuration(cfg.JWT.TeacherExpiration, 168*time.Hour),
			pkgAuth.RoleAdmin:   helpers.ParseDuration(cfg.JWT.AdminExpiration, 24*time.Hour),
		},
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.AdminRepository,
		deps.Repos.DepartmentRepository,
		deps.FileStorage,
		deps.JWTService,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.CategoryRepository,
		deps.Repos.DepartmentRepository,
		deps.FileStorage,
	)
	deps.QAService = appServices.NewQAService(deps.Repos.QARepository, deps.Repos.CourseRepository)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Repos.CourseRepository)
	deps.AccountService = appServices.NewAccountService(
		deps.Repos.StudentRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.AdminRepository,
		deps.FileStorage,
		lgr,
	)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.CategoryService = appServices.NewCategoryService(deps.Repos.CategoryRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.AuthService),
		Course:     appControllers.NewCourseController(deps.CourseService),
		QA:         appControllers.NewQAController(deps.QAService),
		Feedback:   appControllers.NewFeedbackController(deps.FeedbackService),
		Account:    appControllers.NewAccountController(deps.AccountService),
		Department: appControllers.NewDepartmentController(deps.DepartmentService),
		Category:   appControllers.NewCategoryController(deps.CategoryService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.RegisterCustomValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRoutes(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
