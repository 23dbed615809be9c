package core

import "errors"

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

type (
	// Kind classifies a transaction by the direction of its effect on
	// the balance.
	Kind string

	Money struct {
		Cents int64
	}

	// Transaction is a single dated ledger entry. Date is an ISO-8601
	// calendar date (YYYY-MM-DD); entries are ordered and filtered by
	// lexicographic comparison of that fixed-width form. Date and
	// Category are stored as given: format correctness is the caller's
	// contract, only the amount is validated.
	Transaction struct {
		ID       int64
		Date     string
		Amount   Money
		Category string
		Kind     Kind // derived from Category, never set independently
	}
)

var ErrInvalidAmount = errors.New("invalid amount")

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
