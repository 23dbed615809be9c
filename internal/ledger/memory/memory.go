// Package memory implements the default in-memory ledger store.
// State is process-lifetime only: the ledger starts empty and is
// discarded on exit, and ids restart at 1 on every boot.
package memory

import (
	"context"
	"sync"

	"github.com/avangala-19/finance-tracker/internal/core"
)

type Store struct {
	mu      sync.Mutex
	cls     *core.Classifier
	nextID  int64
	items   []core.Transaction
	balance int64 // cents, maintained incrementally on add/delete
}

func New(cls *core.Classifier) *Store {
	if cls == nil {
		cls = core.DefaultClassifier()
	}
	return &Store{cls: cls, nextID: 1}
}

// Add implements ledger.Store.
func (s *Store) Add(_ context.Context, date string, amount core.Money, category string) (core.Transaction, error) {
	if err := amount.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := core.Transaction{
		ID:       s.nextID,
		Date:     date,
		Amount:   amount,
		Category: category,
		Kind:     s.cls.Classify(category),
	}
	s.nextID++
	s.items = append(s.items, tx)
	if tx.Kind == core.Income {
		s.balance += amount.Cents
	} else {
		s.balance -= amount.Cents
	}
	return tx, nil
}

// Delete implements ledger.Store. It scans in insertion order and
// removes the first id match, reversing the add-time balance
// adjustment.
func (s *Store) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.items {
		if tx.ID != id {
			continue
		}
		if tx.Kind == core.Income {
			s.balance -= tx.Amount.Cents
		} else {
			s.balance += tx.Amount.Cents
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return true, nil
	}
	return false, nil
}

// State implements ledger.Store. The snapshot is a copy so callers
// cannot mutate store state.
func (s *Store) State(_ context.Context) ([]core.Transaction, core.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]core.Transaction, len(s.items))
	copy(items, s.items)
	return items, core.Money{Cents: s.balance}, nil
}

func (s *Store) Close() error { return nil }
