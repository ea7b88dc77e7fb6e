package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"romantic-api/core/config"
	"romantic-api/core/database"
	"romantic-api/core/logger"
	"romantic-api/core/middleware"
	"romantic-api/core/utils"
	"romantic-api/modules/auth"
	"romantic-api/modules/event"
	"romantic-api/modules/photo"
	"romantic-api/modules/project"
	"romantic-api/modules/reminder"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the API: config, logger, database, routes, reminder scheduler.
// It blocks until SIGINT/SIGTERM and then shuts down in reverse order.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Server.Debug); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(database.DatabaseConfig{Path: cfg.Database.Path})
	if err != nil {
		return err
	}
	defer db.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = utils.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.Static("/uploads", cfg.Uploads.Dir)

	mw := middleware.NewMiddleware()

	authSvc := auth.Init(e, &db, mw)
	eventRepo := event.Init(e, &db, mw)
	scheduler := reminder.Init(e, &db, mw, cfg, eventRepo)
	photo.Init(e, &db, mw, cfg.Uploads.Dir)
	project.Init(e, &db)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSeed()
	if err := authSvc.EnsureSeedUser(seedCtx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	if err := scheduler.Start(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server:Listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server:ShuttingDown")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	logger.Info("Server:Stopped")
	return nil
}
