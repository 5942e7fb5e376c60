package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"daybook/config"
	_ "daybook/docs"
	deliveryhttp "daybook/internal/delivery/http"
	"daybook/internal/delivery/http/controllers"
	"daybook/internal/delivery/http/middleware"
	"daybook/internal/notify"
	"daybook/internal/repository/postgres"
	"daybook/internal/services"
	"daybook/migrations"
)

const contextTimeout = 5 * time.Second

// @title Daybook API
// @version 1.0
// @description Personal calendar service with recurring events, series-aware edits, overlap checks, and notifications.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	if err := migrate(logger, db); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	repo := postgres.NewEventRepository(db)
	svc := services.NewScheduleService(repo, logger, contextTimeout)

	scanner := notify.NewScanner(svc, logger, cfg.NotifyInterval)
	if err := scanner.Start(); err != nil {
		logger.Error("failed to start notification scanner", "err", err)
		os.Exit(1)
	}
	defer scanner.Stop()

	eventController := controllers.NewEventController(logger, svc)
	mux := deliveryhttp.NewRouter(eventController)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

func migrate(logger *slog.Logger, db *sql.DB) error {
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
