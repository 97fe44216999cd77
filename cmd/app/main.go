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

	"buttery/api"
	"buttery/cmd"
	apihttp "buttery/internal/adapters/in/http"
	"buttery/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("buttery: %v", err)
	}
}

func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	logger, logFile, err := cmd.NewLogger(config, os.Stdout, time.Now())
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(ctx, config)
	if err != nil {
		return err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	notifier, closeNotifier, err := cmd.NewNotifier(ctx, config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeNotifier(); closeErr != nil {
			logger.Error("Closing notifier failed", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(config, db, notifier, logger)
	if err = seedMenu(ctx, app, config.MenuFile, logger); err != nil {
		return err
	}

	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}
	e, err := apihttp.NewRouter(app.CreateServer(), apihttp.RouterConfig{
		Doc:      doc,
		AdminKey: config.AdminAPIKey,
		Admins:   config.Admins,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "port", config.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down")
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func seedMenu(ctx context.Context, app cmd.CompositionRoot, path string, logger *slog.Logger) error {
	items, err := cmd.LoadMenuCatalog(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	seed, err := commands.NewSeedMenuCommand(items)
	if err != nil {
		return err
	}
	inserted, err := app.CreateSeedMenuCommandHandler().Handle(ctx, seed)
	if err != nil {
		return err
	}
	logger.Info("Menu seeded", "file", path, "inserted", inserted)
	return nil
}
