package events

import (
	"testing"

	"github.com/avangala-19/finance-tracker/internal/core"
)

func TestAddedEventCarriesTransaction(t *testing.T) {
	tx := core.Transaction{
		ID:       7,
		Date:     "2024-01-05",
		Amount:   core.Money{Cents: 1250},
		Category: "food",
		Kind:     core.Expense,
	}
	ev := Added(tx)
	if ev.Action != ActionAdded || ev.ID != 7 || ev.AmountCents != 1250 || ev.Kind != "expense" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestDeletedEventCarriesOnlyID(t *testing.T) {
	ev := Deleted(3)
	if ev.Action != ActionDeleted || ev.ID != 3 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Date != "" || ev.AmountCents != 0 || ev.Category != "" {
		t.Fatalf("deleted event should not carry transaction fields: %+v", ev)
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	ev := Added(core.Transaction{ID: 1, Date: "2024-01-01", Amount: core.Money{Cents: 100}, Category: "food", Kind: core.Expense})
	data, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Action != ev.Action || back.ID != ev.ID || back.AmountCents != ev.AmountCents {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, ev)
	}
}
