package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetpoint/core/cache"
	"meetpoint/core/config"
	"meetpoint/core/constants"
	"meetpoint/core/database"
	"meetpoint/core/logger"
	"meetpoint/core/middleware"
	"meetpoint/core/tasks"
	"meetpoint/modules/meeting"
	"meetpoint/modules/participant"
	"meetpoint/modules/place"
	placeService "meetpoint/modules/place/service"
	"meetpoint/modules/recommendation"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Run wires configuration, storage, cache, the task queue, and all modules,
// then serves HTTP until interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return err
	}

	catalog, err := placeService.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load candidate catalog: %w", err)
	}

	taskClient := tasks.NewClient(cfg.Redis)
	defer taskClient.Close()

	e := echo.New()
	e.HideBanner = true

	mw := middleware.NewMiddleware()
	mw.Setup(e)

	e.GET("/healthz", healthHandler(&db, redisCache))

	// Module wiring
	meeting.Init(e, &db, redisCache, mw)
	participant.Init(e, &db, taskClient, mw)
	recoSvc := recommendation.Init(e, &db, redisCache, catalog.Locations(), mw)
	place.Init(e, catalog, mw)

	// Background refresh worker
	worker := tasks.NewServer(cfg.Redis, cfg.Worker)
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskRecommendationRefresh, recoSvc.HandleRefreshTask)

	workerErr := make(chan error, 1)
	go func() {
		logger.Info("Starting refresh worker", "concurrency", cfg.Worker.Concurrency)
		workerErr <- worker.Run(mux)
	}()

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		worker.Shutdown()
		return err
	case err := <-workerErr:
		return err
	case sig := <-quit:
		logger.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	worker.Shutdown()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP shutdown error", err)
		return err
	}

	logger.Info("Shutdown complete")
	return nil
}

func healthHandler(db database.IDatabase, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()

		status := map[string]string{"status": "ok", "database": "ok", "redis": "ok"}
		code := http.StatusOK

		if err := db.SQLx().PingContext(reqCtx); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if err := c.Ping(reqCtx); err != nil {
			status["status"] = "degraded"
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}

		return ctx.JSON(code, status)
	}
}
