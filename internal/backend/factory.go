// Package backend assembles the ledger service from configuration:
// store selection, taxonomy and the optional event publisher.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/avangala-19/finance-tracker/internal/config"
	"github.com/avangala-19/finance-tracker/internal/core"
	"github.com/avangala-19/finance-tracker/internal/events"
	"github.com/avangala-19/finance-tracker/internal/ledger"
	"github.com/avangala-19/finance-tracker/internal/ledger/memory"
	"github.com/avangala-19/finance-tracker/internal/ledger/sqlite"
	"github.com/avangala-19/finance-tracker/internal/services"
)

// Result contains the assembled service and a cleanup function to run
// on shutdown.
type Result struct {
	Service    *services.LedgerService
	Classifier *core.Classifier
	Cleanup    func() error
}

// Create builds the store for the configured backend, attaches the AMQP
// publisher when one is configured, and wires both into the ledger
// service. An unreachable broker degrades to no event publishing rather
// than failing startup.
func Create(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cls := core.DefaultClassifier()
	if len(cfg.IncomeCategories) > 0 {
		cls = core.NewClassifier(cfg.IncomeCategories)
	}

	var store ledger.Store
	switch cfg.DataBackend {
	case "sqlite":
		s, err := sqlite.New(cfg.SQLiteDSN, cls)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		store = s
		logger.Info("Initialized sqlite backend", "dsn", cfg.SQLiteDSN)
	case "memory":
		store = memory.New(cls)
		logger.Info("Initialized memory backend")
	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}

	var (
		publisher  events.Publisher
		amqpClient *events.Client
	)
	if cfg.AMQPURL != "" {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			publisher = client
			amqpClient = client
			logger.Info("Initialized AMQP event publisher",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewLedgerService(store, publisher)
	cleanup := func() error {
		var firstErr error
		if amqpClient != nil {
			firstErr = amqpClient.Close()
		}
		if err := svc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		return firstErr
	}

	return &Result{Service: svc, Classifier: cls, Cleanup: cleanup}, nil
}
