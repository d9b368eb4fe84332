package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/eh112358/home-inventory-dashboard/docs"
	"github.com/eh112358/home-inventory-dashboard/internal/config"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry"
	httpDelivery "github.com/eh112358/home-inventory-dashboard/internal/pantry/delivery/http"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/repository"
	"github.com/eh112358/home-inventory-dashboard/pkg/auth"
	"github.com/eh112358/home-inventory-dashboard/pkg/database"
	"github.com/eh112358/home-inventory-dashboard/pkg/logger"
	"github.com/eh112358/home-inventory-dashboard/pkg/tracing"
)

func main() {
	configPath := flag.String("config", os.Getenv("PANTRY_CONFIG"), "path to config file")
	flag.Parse()

	// Initialize logger before config so load failures are reported
	// through the same sink.
	logger.Init("pantry-service", true)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	isDevelopment := cfg.App.Environment == "development"
	logger.Init(cfg.App.Name, isDevelopment)
	logger.SetLevel(cfg.App.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.App.Name).
		Str("environment", cfg.App.Environment).
		Str("log_level", cfg.App.LogLevel).
		Msg("Starting pantry service")

	// Initialize tracer
	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.App.Name)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(ctx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	}

	// Connect to database
	db, err := database.NewConnection(database.Config{
		Driver:   cfg.Database.Driver,
		Path:     cfg.Database.Path,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations and seed the catalog
	if err := repository.NewMigrator(db).Run(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().
		Str("driver", cfg.Database.Driver).
		Msg("Database initialized successfully")

	// Initialize Redis for response caching
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   0,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("redis_addr", cfg.Redis.Addr).
				Msg("Failed to connect to Redis - response caching will be disabled")
			redisClient = nil
		} else {
			logger.Logger.Info().
				Str("redis_addr", cfg.Redis.Addr).
				Msg("Connected to Redis for response caching")
		}
	}
	cache := httpDelivery.NewResponseCache(redisClient, 5*time.Minute)

	// Session tokens
	tokens := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)

	// Initialize handler with Wire DI
	handler, err := pantry.InitializeHTTPHandler(db, tokens, cfg.Auth.PasswordHash, cache)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	srv := startHTTPServer(handler, sqlDB, cfg)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Logger.Info().Msg("Pantry service stopped")
}

func startHTTPServer(handler *httpDelivery.PantryHandler, db *sql.DB, cfg config.Config) *http.Server {
	// Setup router
	router := mux.NewRouter()

	mwConfig := httpDelivery.DefaultMiddlewareConfig()
	mwConfig.EnableTracing = cfg.Tracing.Enabled
	httpDelivery.RegisterMiddlewares(router, mwConfig)

	// Register routes
	handler.RegisterRoutes(router)

	// Health check endpoint
	handler.RegisterHealthCheck(router, db)

	// Swagger documentation
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	corsHandler := httpDelivery.SetupCORS(mwConfig)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      corsHandler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTP.Port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	return srv
}
