package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ArjunShatkin/movie-sn-backend/internal/api"
	"github.com/ArjunShatkin/movie-sn-backend/internal/api/middleware"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/service"
	"github.com/ArjunShatkin/movie-sn-backend/internal/infrastructure/config"
	"github.com/ArjunShatkin/movie-sn-backend/internal/infrastructure/db/mongo"
	"github.com/ArjunShatkin/movie-sn-backend/internal/infrastructure/db/redis"
	"github.com/ArjunShatkin/movie-sn-backend/internal/infrastructure/http/handlers"
	"github.com/ArjunShatkin/movie-sn-backend/internal/infrastructure/tmdb"
	"github.com/ArjunShatkin/movie-sn-backend/pkg/logger"
)

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --outputTypes go

const shutdownTimeout = 10 * time.Second

// @title        Movie Social Network API
// @version      1.0
// @description  Accounts, reviews and favorites for TMDB movies.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("load config")
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "movie-sn-backend",
	})
	log := logger.Get()
	started := time.Now()

	// Mongo
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	userRepo := mongo.NewUserRepository(db)
	reviewRepo := mongo.NewReviewRepository(db)
	favoriteRepo := mongo.NewFavoriteRepository(db)
	if err := mongo.EnsureIndexes(ctx, userRepo, reviewRepo, favoriteRepo); err != nil {
		log.Error().Err(err).Msg("ensure indexes")
	}

	mongoPinger := mongo.Pinger{Client: mongoClient}
	ready := map[string]handlers.Pinger{"mongodb": mongoPinger}

	// Sessions
	cookieOpts := middleware.CookieOptions(int(cfg.Session.MaxAge.Seconds()), cfg.IsProduction())
	store, redisClient, err := sessionStore(ctx, cfg, cookieOpts)
	if err != nil {
		log.Fatal().Err(err).Msg("session store")
	}
	if redisClient != nil {
		ready["redis"] = redis.Pinger{Client: redisClient}
	}

	// Services
	catalog := tmdb.NewClient(tmdb.Config{
		APIKey:   cfg.TMDB.APIKey,
		BaseURL:  cfg.TMDB.BaseURL,
		Language: cfg.TMDB.Language,
		Timeout:  cfg.TMDB.Timeout,
	})
	if cfg.TMDB.APIKey == "" {
		log.Warn().Msg("TMDB_API_KEY is empty, movie lookups will fail")
	}

	e := api.NewRouter(api.Dependencies{
		Log:          log,
		Auth:         service.NewAuthService(userRepo, log),
		Users:        service.NewUserService(userRepo, log),
		Movies:       service.NewMovieService(catalog, log),
		Reviews:      service.NewReviewService(reviewRepo, log),
		Favorites:    service.NewFavoriteService(favoriteRepo, log),
		SessionStore: store,
		Sessions:     &middleware.Sessions{Name: cfg.Session.CookieName, Options: cookieOpts, Log: log},
		Mongo:        mongoPinger,
		Ready:        ready,
		Started:      started,
		Origins:      cfg.Origins,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
}

// sessionStore returns the Redis-backed store. SESSION_BACKEND=cookie opts in
// to signed client-side cookies instead; those cannot be revoked on logout.
func sessionStore(ctx context.Context, cfg *config.Config, opts sessions.Options) (sessions.Store, *goredis.Client, error) {
	log := logger.Get()
	secret := []byte(cfg.Session.Secret)

	if cfg.Session.Backend == config.SessionBackendCookie {
		log.Warn().Msg("cookie session backend: logout cannot revoke a copied cookie")
		cs := sessions.NewCookieStore(secret)
		cs.Options = &opts
		return cs, nil, nil
	}

	client, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis session store")
	return redis.NewSessionStore(client, opts, secret), client, nil
}
