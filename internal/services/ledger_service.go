// Package services orchestrates ledger operations across the store and
// the optional event publisher.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avangala-19/finance-tracker/internal/core"
	"github.com/avangala-19/finance-tracker/internal/events"
	"github.com/avangala-19/finance-tracker/internal/ledger"
	"github.com/avangala-19/finance-tracker/internal/obs"
)

// LedgerService wraps the store with event publishing and metrics.
// Events are best-effort: a broker failure never fails the mutation,
// the store remains the source of truth.
type LedgerService struct {
	store     ledger.Store
	publisher events.Publisher
}

func NewLedgerService(store ledger.Store, publisher events.Publisher) *LedgerService {
	return &LedgerService{store: store, publisher: publisher}
}

// Add records a transaction and publishes an added event.
func (s *LedgerService) Add(ctx context.Context, date string, amount core.Money, category string) (core.Transaction, error) {
	tx, err := s.store.Add(ctx, date, amount, category)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	obs.CountTransaction("add", string(tx.Kind))

	if s.publisher != nil {
		if err := s.publisher.PublishTransaction(ctx, events.Added(tx)); err != nil {
			slog.ErrorContext(ctx, "Failed to publish added event",
				"id", tx.ID, "error", err)
		}
	}
	return tx, nil
}

// Delete removes a transaction by id. A missing id is a no-op; the bool
// reports whether anything was removed.
func (s *LedgerService) Delete(ctx context.Context, id int64) (bool, error) {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	if !found {
		return false, nil
	}
	obs.CountTransaction("delete", "")

	if s.publisher != nil {
		if err := s.publisher.PublishTransaction(ctx, events.Deleted(id)); err != nil {
			slog.ErrorContext(ctx, "Failed to publish deleted event",
				"id", id, "error", err)
		}
	}
	return true, nil
}

// State returns the ordered snapshot and the balance it implies.
func (s *LedgerService) State(ctx context.Context) ([]core.Transaction, core.Money, error) {
	items, balance, err := s.store.State(ctx)
	if err != nil {
		return nil, core.Money{}, fmt.Errorf("read ledger state: %w", err)
	}
	return items, balance, nil
}

func (s *LedgerService) Close() error {
	return s.store.Close()
}
