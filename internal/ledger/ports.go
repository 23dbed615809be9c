// Package ledger defines the port for transaction stores.
package ledger

import (
	"context"

	"github.com/avangala-19/finance-tracker/internal/core"
)

// Store is the outbound port for ledger state. Implementations must be
// safe for concurrent use: mutations and reads are serialized so the
// cached balance never diverges from the transaction set.
type Store interface {
	// Add assigns the next sequential id (never reused), classifies
	// the category and appends the transaction. Date and category are
	// opaque strings; only the amount is validated.
	Add(ctx context.Context, date string, amount core.Money, category string) (core.Transaction, error)

	// Delete removes the first transaction with the given id and
	// reverses its balance effect. A missing id is a no-op, not an
	// error; the bool reports whether a match was found.
	Delete(ctx context.Context, id int64) (bool, error)

	// State returns the transactions in insertion order together with
	// the balance they imply, read under a single lock.
	State(ctx context.Context) ([]core.Transaction, core.Money, error)

	Close() error
}
