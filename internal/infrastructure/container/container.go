package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/reelmates/backend/internal/config"
	"github.com/reelmates/backend/internal/delivery/http"
	"github.com/reelmates/backend/internal/delivery/http/handler"
	"github.com/reelmates/backend/internal/delivery/http/middleware"
	"github.com/reelmates/backend/internal/infrastructure/database"
	"github.com/reelmates/backend/internal/infrastructure/logger"
	"github.com/reelmates/backend/internal/infrastructure/server"
	"github.com/reelmates/backend/internal/infrastructure/tmdb"
	"github.com/reelmates/backend/internal/repository/postgres"
	"github.com/reelmates/backend/internal/usecase/match"
	"github.com/reelmates/backend/internal/usecase/movie"
	"github.com/reelmates/backend/internal/usecase/profile"
	"github.com/reelmates/backend/internal/usecase/view"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    zerolog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(cfg.Logging.Level)

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize TMDb metadata provider with freshness cache
	tmdbClient := tmdb.NewClient(cfg.TMDb.APIKey, cfg.TMDb.BaseURL)
	movieMeta := tmdb.NewCachedProvider(tmdbClient, redisClient, cfg.TMDb.CacheTTL, log)

	// Initialize repositories
	viewRepo := postgres.NewViewRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	// Initialize use cases
	matchUseCase := match.NewMatchUseCase(viewRepo, profileRepo, movieMeta, log)
	viewUseCase := view.NewViewUseCase(viewRepo)
	profileUseCase := profile.NewProfileUseCase(profileRepo)
	movieUseCase := movie.NewMovieUseCase(movieMeta)

	// Initialize handlers
	matchHandler := handler.NewMatchHandler(matchUseCase)
	viewHandler := handler.NewViewHandler(viewUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	movieHandler := handler.NewMovieHandler(movieUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Initialize router
	router := http.NewRouter(
		matchHandler,
		viewHandler,
		profileHandler,
		movieHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Error().Err(err).Msg("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
