package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grubdash/cmd"
	httpin "grubdash/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	if err = run(config, logger); err != nil {
		log.Fatal(err)
	}
}

func run(config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to release resources", "error", closeErr)
		}
	}()

	if config.SeedData {
		seeded, seedErr := app.Seed(ctx)
		if seedErr != nil {
			return seedErr
		}
		logger.Info("seed data checked", "inserted", seeded)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, httpin.NewRouter(app.CreateServer(), logger), config.HTTPPort, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second

	addr := fmt.Sprintf("0.0.0.0:%s", port)
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", addr)
		serveErr <- e.Start(addr)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
