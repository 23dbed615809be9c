package events

import (
	"encoding/json"
	"time"

	"github.com/avangala-19/finance-tracker/internal/core"
)

const (
	ActionAdded   = "added"
	ActionDeleted = "deleted"
)

// TransactionEvent notifies downstream consumers of a ledger mutation.
// Deleted events carry only the id; the transaction itself is gone.
type TransactionEvent struct {
	Action      string    `json:"action"`
	ID          int64     `json:"id"`
	Date        string    `json:"date,omitempty"`
	AmountCents int64     `json:"amount_cents,omitempty"`
	Category    string    `json:"category,omitempty"`
	Kind        string    `json:"kind,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func Added(tx core.Transaction) TransactionEvent {
	return TransactionEvent{
		Action:      ActionAdded,
		ID:          tx.ID,
		Date:        tx.Date,
		AmountCents: tx.Amount.Cents,
		Category:    tx.Category,
		Kind:        string(tx.Kind),
		Timestamp:   time.Now(),
	}
}

func Deleted(id int64) TransactionEvent {
	return TransactionEvent{
		Action:    ActionDeleted,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON parses an event from JSON bytes.
func FromJSON(data []byte) (TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return TransactionEvent{}, err
	}
	return e, nil
}
