package app

import (
	"context"
	"log"
	"time"

	"design-radar/internal/config"
	"design-radar/internal/database"
	dbpostgres "design-radar/internal/database/postgres"
	"design-radar/internal/delivery/http/handler"
	"design-radar/internal/delivery/http/middleware"
	"design-radar/internal/delivery/http/routes"
	"design-radar/internal/infrastructure/cache"
	"design-radar/internal/pkg/jwt"
	"design-radar/internal/repository"
	"design-radar/internal/usecase"
	ucauth "design-radar/internal/usecase/auth"
	"design-radar/internal/ws"
)

// Container owns every long-lived dependency and the wiring between
// layers. Close releases them in reverse order of construction.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Routes *routes.Registry

	logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	searchRepo := repository.NewPostgresSavedSearchRepository(db)

	authUC := ucauth.NewService(userRepo, jwtSvc)
	feedUC := usecase.NewJobFeedUsecase(jobRepo, profileRepo, redisCache, logger)
	matchUC := usecase.NewMatchUsecase(jobRepo, profileRepo, redisCache)
	recommendUC := usecase.NewRecommendationUsecase(jobRepo, profileRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	savedSearchUC := usecase.NewSavedSearchUsecase(searchRepo)
	ingestUC := usecase.NewIngestUsecase(jobRepo, redisCache, redisCache, logger)

	registry := &routes.Registry{
		Health:         handler.NewHealthHandler(cfg),
		Auth:           handler.NewAuthHandler(authUC),
		Feed:           handler.NewFeedHandler(feedUC),
		Match:          handler.NewMatchHandler(matchUC),
		Recommended:    handler.NewRecommendationHandler(recommendUC),
		Filters:        handler.NewFiltersHandler(profileUC),
		Profile:        handler.NewProfileHandler(profileUC),
		SavedSearches:  handler.NewSavedSearchHandler(savedSearchUC),
		JobsRefreshed:  handler.NewJobsRefreshedHandler(cfg, ingestUC, logger),
		WS:             ws.NewHandler(hub, cfg.WS.AllowedOrigins, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
		logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && c.logger != nil {
			c.logger.Printf("[App] Cache close error | err=%v", err)
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
