package query

import (
	"testing"
	"time"

	"github.com/avangala-19/finance-tracker/internal/core"
)

func tx(id int64, date string, cents int64, category string) core.Transaction {
	return core.Transaction{
		ID:       id,
		Date:     date,
		Amount:   core.Money{Cents: cents},
		Category: category,
		Kind:     core.DefaultClassifier().Classify(category),
	}
}

func sample() []core.Transaction {
	return []core.Transaction{
		tx(1, "2024-01-05", 300000, "salary"),
		tx(2, "2024-01-10", 5000, "food"),
		tx(3, "2024-01-20", 3000, "food"),
		tx(4, "2024-01-31", 4000, "transport"),
		tx(5, "2024-02-01", 2500, "gifts"),
	}
}

func TestFilterDateRangeInclusive(t *testing.T) {
	got := Filter(sample(), Filters{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	if len(got) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(got))
	}
	for _, tr := range got {
		if tr.Date < "2024-01-01" || tr.Date > "2024-01-31" {
			t.Fatalf("date %s outside range", tr.Date)
		}
	}
	// Inclusive on both bounds
	got = Filter(sample(), Filters{StartDate: "2024-01-31", EndDate: "2024-01-31"})
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected only the boundary transaction, got %v", got)
	}
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := Filter(sample(), Filters{Category: "food"})
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected result: %v", got)
	}
	// Empty category means no constraint
	if got := Filter(sample(), Filters{}); len(got) != 5 {
		t.Fatalf("expected all transactions, got %d", len(got))
	}
}

func TestFilterPredicatesCompose(t *testing.T) {
	got := Filter(sample(), Filters{StartDate: "2024-01-15", Category: "food"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestPeriodCutoff(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		p    Period
		want string
		ok   bool
	}{
		{PeriodWeek, "2024-03-08", true},
		{PeriodTwoWeeks, "2024-03-01", true},
		{PeriodMonth, "2024-02-14", true},
		{PeriodAll, "", false},
		{Period("bogus"), "", false},
	}
	for _, tc := range cases {
		got, ok := tc.p.Cutoff(now)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%q expected (%q, %v), got (%q, %v)", tc.p, tc.want, tc.ok, got, ok)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sample())
	if s.TotalIncome.Cents != 302500 {
		t.Fatalf("total income %d", s.TotalIncome.Cents)
	}
	if s.TotalExpense.Cents != 12000 {
		t.Fatalf("total expense %d", s.TotalExpense.Cents)
	}
	if s.NetBalance.Cents != 290500 {
		t.Fatalf("net balance %d", s.NetBalance.Cents)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome.Cents != 0 || s.TotalExpense.Cents != 0 || s.NetBalance.Cents != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestExpenseTotalsByCategoryOrder(t *testing.T) {
	totals := ExpenseTotalsByCategory(sample())
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals[0].Category != "food" || totals[0].Total.Cents != 8000 {
		t.Fatalf("unexpected first total: %+v", totals[0])
	}
	if totals[1].Category != "transport" || totals[1].Total.Cents != 4000 {
		t.Fatalf("unexpected second total: %+v", totals[1])
	}
}

func TestIncomeTotalsBySourceSeedsZero(t *testing.T) {
	totals := IncomeTotalsBySource(nil, core.DefaultIncomeCategories)
	if len(totals) != 4 {
		t.Fatalf("expected 4 pre-seeded sources, got %d", len(totals))
	}
	for i, src := range core.DefaultIncomeCategories {
		if totals[i].Category != src || totals[i].Total.Cents != 0 {
			t.Fatalf("position %d unexpected: %+v", i, totals[i])
		}
	}

	totals = IncomeTotalsBySource(sample(), core.DefaultIncomeCategories)
	if totals[0].Total.Cents != 300000 || totals[2].Total.Cents != 2500 {
		t.Fatalf("unexpected income totals: %+v", totals)
	}
	// Expense categories never leak into income totals
	for _, ct := range totals {
		if ct.Category == "food" || ct.Category == "transport" {
			t.Fatalf("expense category in income totals: %+v", ct)
		}
	}
}

func TestMaxTotalStableTieBreak(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "food", Total: core.Money{Cents: 4000}},
		{Category: "transport", Total: core.Money{Cents: 4000}},
	}
	best, ok := MaxTotal(totals)
	if !ok || best.Category != "food" {
		t.Fatalf("expected first-encountered winner, got %+v ok=%v", best, ok)
	}
	if _, ok := MaxTotal(nil); ok {
		t.Fatalf("expected no result for empty input")
	}
}

func TestMaxSingleExpense(t *testing.T) {
	best, ok := MaxSingleExpense(sample())
	if !ok || best.ID != 2 {
		t.Fatalf("expected transaction 2, got %+v ok=%v", best, ok)
	}

	// Ties keep the earliest transaction
	items := []core.Transaction{
		tx(1, "2024-01-01", 5000, "food"),
		tx(2, "2024-01-02", 5000, "transport"),
	}
	best, ok = MaxSingleExpense(items)
	if !ok || best.ID != 1 {
		t.Fatalf("expected earliest of equal maxima, got %+v", best)
	}

	// Income-only ledgers have no expense candidate
	if _, ok := MaxSingleExpense([]core.Transaction{tx(1, "2024-01-01", 100, "salary")}); ok {
		t.Fatalf("expected no expense in income-only set")
	}
}

func TestMostFrequentCategory(t *testing.T) {
	cat, ok := MostFrequentCategory(sample())
	if !ok || cat != "food" {
		t.Fatalf("expected food, got %q ok=%v", cat, ok)
	}
	if _, ok := MostFrequentCategory(nil); ok {
		t.Fatalf("expected no result for empty ledger")
	}
	// Income categories are counted too
	items := []core.Transaction{
		tx(1, "2024-01-01", 100, "salary"),
		tx(2, "2024-01-02", 100, "salary"),
		tx(3, "2024-01-03", 100, "food"),
	}
	if cat, _ := MostFrequentCategory(items); cat != "salary" {
		t.Fatalf("expected salary, got %q", cat)
	}
}
