package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"taxiservice/docs" // swagger docs
	"taxiservice/internal/auth"
	"taxiservice/internal/cache"
	"taxiservice/internal/config"
	"taxiservice/internal/db"
	"taxiservice/internal/form"
	"taxiservice/internal/handler"
	"taxiservice/internal/logger"
	"taxiservice/internal/repository"
	"taxiservice/internal/router"
	"taxiservice/internal/search"
	"taxiservice/internal/service"
	"taxiservice/internal/web"
)

// @title Taxi Service API
// @version 1.0
// @description Taxi fleet management: manufacturers, cars and drivers behind a session login.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.ILogger) error {
	if cfg.UsesDefaultSessionSecret() {
		log.Warning("SESSION_SECRET not set, sessions are signed with the default key")
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		return err
	}

	if cast.ToBool(os.Getenv("RESET_DB")) {
		log.Warning("RESET_DB set, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warning("redis unavailable, running without cache", logger.Error(err))
	}

	// Repositories
	manufacturerRepo := repository.NewManufacturerRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	driverRepo := repository.NewDriverRepository(gormDB)

	// Auth components
	sessions := auth.NewSessionService(cfg.SessionSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Services
	searchOpts := search.Options{CaseInsensitive: cfg.SearchCaseInsensitive}
	policy := form.PasswordPolicy{Enabled: cfg.PasswordValidation, MinLength: cfg.PasswordMinLength}
	authService := service.NewAuthService(driverRepo, sessions, tokenStore, hasher)
	manufacturerService := service.NewManufacturerService(manufacturerRepo, carRepo, searchOpts)
	carService := service.NewCarService(carRepo, manufacturerRepo, searchOpts)
	driverService := service.NewDriverService(driverRepo, cacheClient, hasher, policy, searchOpts)
	statsService := service.NewStatsService(driverRepo, carRepo, manufacturerRepo, cacheClient)

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	router.Register(e, cfg, log, authService, driverService, router.Handlers{
		Auth: handler.NewAuthHandler(authService, handler.CookieConfig{
			Name:   cfg.SessionCookie,
			Secure: cfg.SecureCookie,
			TTL:    cfg.SessionTTL,
		}, log),
		Home: handler.NewHomeHandler(statsService, func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		}),
		Manufacturer: handler.NewManufacturerHandler(manufacturerService),
		Car:          handler.NewCarHandler(carService, manufacturerService),
		Driver:       handler.NewDriverHandler(driverService),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Info("swagger documentation available", logger.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	addr := ":" + cfg.ServerPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", logger.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
