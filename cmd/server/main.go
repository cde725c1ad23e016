package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dineHoursApi/internal/config"
	"dineHoursApi/internal/modules/hours/application/handler"
	"dineHoursApi/internal/modules/hours/application/usecase"
	"dineHoursApi/internal/modules/hours/infrastructure"
	transport "dineHoursApi/internal/modules/hours/interface"
	"dineHoursApi/internal/platform/broker"
	"dineHoursApi/internal/shared/auth"
	"dineHoursApi/internal/shared/logging"
	"dineHoursApi/internal/shared/metrics"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	metrics.Register()

	hub := infrastructure.NewHub()
	catalog := usecase.NewCatalog()
	source := infrastructure.NewFileDatasetSource(cfg.Dataset.Path)
	reload := usecase.NewReloadUseCase(catalog, source, hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial dataset load; a missing file is survivable, queries answer 503
	// until a reload succeeds.
	if count, err := reload.Execute(ctx); err != nil {
		slog.Warn("initial dataset load failed", slog.String("path", cfg.Dataset.Path), slog.Any("error", err))
	} else {
		slog.Info("initial dataset loaded", slog.String("path", cfg.Dataset.Path), slog.Int("count", count))
	}

	// Kafka consumers react to dataset update events emitted by the pipeline
	// that rewrites the CSV.
	registry := broker.NewHandlerRegistry()
	registry.Register(&handler.DatasetUpdatedHandler{Reload: reload})
	broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	transport.NewHTTPHandler(catalog, reload, validator).Register(e)
	e.GET("/ws/dataset", transport.NewDatasetStreamHandler(hub, validator, cfg.Websocket.SendBuffer))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown error", slog.Any("error", err))
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
