package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/xvierd/daylog/internal/adapters/notification"
	"github.com/xvierd/daylog/internal/adapters/storage"
	"github.com/xvierd/daylog/internal/config"
	"github.com/xvierd/daylog/internal/logging"
	"github.com/xvierd/daylog/internal/ports"
	"github.com/xvierd/daylog/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config    *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	storage   ports.Storage
	clock     ports.Clock
	journal   *services.JournalService
	notifier  *notification.Notifier
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	var err error
	app.config, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.logger, app.logCloser, err = logging.New(app.config.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	catalog := app.config.DomainCatalog()
	if !catalog.HasSleepPair() {
		app.logger.Warn("sleep activities missing from catalog, sleep summaries are disabled",
			"sleep_start", catalog.Sleep.Start,
			"sleep_end", catalog.Sleep.End)
	}

	app.storage, err = storage.NewMemory()
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.notifier = notification.New(&app.config.Notifications)

	app.clock = ports.SystemClock
	app.journal = services.NewJournalService(app.storage, app.clock, catalog.Sleep)
	app.journal.SetNotifier(app.notifier)
	app.journal.SetLogger(app.logger)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	var errs []error
	if app.storage != nil {
		errs = append(errs, app.storage.Close())
		app.storage = nil
	}
	if app.logCloser != nil {
		errs = append(errs, app.logCloser.Close())
		app.logCloser = nil
	}
	return errors.Join(errs...)
}
