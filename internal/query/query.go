// Package query implements stateless filtering and aggregation over a
// ledger snapshot. All functions are linear passes that never mutate
// their input, and aggregations keep first-encountered order so ties
// resolve deterministically.
package query

import (
	"time"

	"github.com/avangala-19/finance-tracker/internal/core"
)

const (
	PeriodAll      Period = "all"
	PeriodWeek     Period = "week"
	PeriodTwoWeeks Period = "2weeks"
	PeriodMonth    Period = "month"
)

type (
	// Period is a named recent time window for summaries.
	Period string

	// Filters are optional conjunctive predicates; a zero field means
	// no constraint. Date bounds are inclusive and compared
	// lexicographically against the fixed-width ISO form.
	Filters struct {
		StartDate string
		EndDate   string
		Category  string
	}

	Summary struct {
		TotalIncome  core.Money `json:"total_income"`
		TotalExpense core.Money `json:"total_expense"`
		NetBalance   core.Money `json:"net_balance"`
	}

	// CategoryTotal is an amount aggregated by category label.
	CategoryTotal struct {
		Category string
		Total    core.Money
	}
)

// Cutoff returns the inclusive lower-bound date for the period relative
// to now: 7 days back for week, 14 for 2weeks, 30 for month. PeriodAll
// (and any unrecognized value) has no lower bound and reports false.
func (p Period) Cutoff(now time.Time) (string, bool) {
	var days int
	switch p {
	case PeriodWeek:
		days = 7
	case PeriodTwoWeeks:
		days = 14
	case PeriodMonth:
		days = 30
	default:
		return "", false
	}
	return now.AddDate(0, 0, -days).Format("2006-01-02"), true
}

// Filter returns the transactions matching every set predicate, in
// their original order.
func Filter(items []core.Transaction, f Filters) []core.Transaction {
	out := make([]core.Transaction, 0, len(items))
	for _, tx := range items {
		if f.StartDate != "" && tx.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && tx.Date > f.EndDate {
			continue
		}
		if f.Category != "" && tx.Category != f.Category {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Summarize computes income, expense and net totals fresh from the
// given set. It never reads a cached balance: it may be handed a
// filtered subset.
func Summarize(items []core.Transaction) Summary {
	var income, expense int64
	for _, tx := range items {
		if tx.Kind == core.Income {
			income += tx.Amount.Cents
		} else {
			expense += tx.Amount.Cents
		}
	}
	return Summary{
		TotalIncome:  core.Money{Cents: income},
		TotalExpense: core.Money{Cents: expense},
		NetBalance:   core.Money{Cents: income - expense},
	}
}

// ExpenseTotalsByCategory sums expense-classified transactions per
// category, ordered by first encounter.
func ExpenseTotalsByCategory(items []core.Transaction) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[string]int)
	for _, tx := range items {
		if tx.Kind != core.Expense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{Category: tx.Category})
		}
		totals[i].Total.Cents += tx.Amount.Cents
	}
	return totals
}

// IncomeTotalsBySource sums income per source over exactly the given
// source categories, each pre-seeded to 0 in the given order. Seeding
// guarantees a comparable candidate set even when the ledger holds no
// income at all.
func IncomeTotalsBySource(items []core.Transaction, sources []string) []CategoryTotal {
	totals := make([]CategoryTotal, len(sources))
	index := make(map[string]int, len(sources))
	for i, src := range sources {
		totals[i] = CategoryTotal{Category: src}
		index[src] = i
	}
	for _, tx := range items {
		if i, ok := index[tx.Category]; ok {
			totals[i].Total.Cents += tx.Amount.Cents
		}
	}
	return totals
}

// MaxTotal returns the entry with the largest total; the earliest entry
// wins ties. Reports false for an empty slice.
func MaxTotal(totals []CategoryTotal) (CategoryTotal, bool) {
	if len(totals) == 0 {
		return CategoryTotal{}, false
	}
	best := totals[0]
	for _, ct := range totals[1:] {
		if ct.Total.Cents > best.Total.Cents {
			best = ct
		}
	}
	return best, true
}

// MaxSingleExpense returns the expense transaction with the largest
// amount. The scan keeps the first best, so the earliest transaction
// wins among equal maxima. Reports false when there are no expenses.
func MaxSingleExpense(items []core.Transaction) (core.Transaction, bool) {
	var (
		best  core.Transaction
		found bool
	)
	for _, tx := range items {
		if tx.Kind != core.Expense {
			continue
		}
		if !found || tx.Amount.Cents > best.Amount.Cents {
			best = tx
			found = true
		}
	}
	return best, found
}

// MostFrequentCategory returns the category label (income and expense
// both counted) with the most transactions, earliest-encountered on
// ties. Reports false for an empty ledger.
func MostFrequentCategory(items []core.Transaction) (string, bool) {
	var counts []CategoryTotal // Total.Cents reused as a counter
	index := make(map[string]int)
	for _, tx := range items {
		i, ok := index[tx.Category]
		if !ok {
			i = len(counts)
			index[tx.Category] = i
			counts = append(counts, CategoryTotal{Category: tx.Category})
		}
		counts[i].Total.Cents++
	}
	best, ok := MaxTotal(counts)
	if !ok {
		return "", false
	}
	return best.Category, true
}
