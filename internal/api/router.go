package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ArjunShatkin/movie-sn-backend/docs"
	"github.com/ArjunShatkin/movie-sn-backend/internal/api/handler"
	"github.com/ArjunShatkin/movie-sn-backend/internal/api/middleware"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
	"github.com/ArjunShatkin/movie-sn-backend/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router wires into handlers.
type Dependencies struct {
	Log zerolog.Logger

	Auth      ports.AuthService
	Users     ports.UserService
	Movies    ports.MovieService
	Reviews   ports.ReviewService
	Favorites ports.FavoriteService

	SessionStore sessions.Store
	Sessions     *middleware.Sessions

	// Mongo backs the liveness report; Ready lists every readiness dependency.
	Mongo   handlers.Pinger
	Ready   map[string]handlers.Pinger
	Started time.Time

	Origins []string

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.Origins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "moviesn",
		Registerer: d.Registerer,
	}))
	e.Use(session.Middleware(d.SessionStore))
	e.Use(d.Sessions.Identity())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sessions, d.Log)
	userHandler := handler.NewUserHandler(d.Users, d.Log)
	movieHandler := handler.NewMovieHandler(d.Movies, d.Log)
	reviewHandler := handler.NewReviewHandler(d.Reviews, d.Log)
	favoriteHandler := handler.NewFavoriteHandler(d.Favorites, d.Log)
	indexHandler := handler.NewIndexHandler()

	// --- Meta ---
	e.GET("/", indexHandler.Index)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler(d.Mongo, d.Started)
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Ready)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/current", authHandler.Current)

	movies := api.Group("/movies")
	movies.GET("/search", movieHandler.Search)
	movies.GET("/:id", movieHandler.Details)

	reviews := api.Group("/reviews")
	reviews.POST("", reviewHandler.Create)
	reviews.GET("/movie/:movieId", reviewHandler.ListByMovie)
	reviews.GET("/user/:userId", reviewHandler.ListByUser)

	favorites := api.Group("/favorites")
	favorites.POST("", favoriteHandler.Create)
	favorites.GET("/user/:userId", favoriteHandler.ListByUser)
	favorites.DELETE("/:id", favoriteHandler.Delete)

	users := api.Group("/users")
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
