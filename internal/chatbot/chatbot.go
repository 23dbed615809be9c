// Package chatbot answers a fixed set of canned questions about
// spending patterns. Dispatch is pure keyword matching: the prompt is
// trimmed and lowercased, then checked against substring patterns in
// priority order, first match wins. There is no language understanding
// here and none is intended.
package chatbot

import (
	"strings"

	"github.com/avangala-19/finance-tracker/internal/core"
	"github.com/avangala-19/finance-tracker/internal/query"
)

const (
	invalidPromptReply = "Invalid prompt."
	noExpenseDataReply = "No expense data available."
	helpReply          = "I'm not sure how to answer that. Try asking about spending patterns, income sources, or transaction details."
	noDataLabel        = "No data"
)

type Bot struct {
	cls *core.Classifier
}

func New(cls *core.Classifier) *Bot {
	if cls == nil {
		cls = core.DefaultClassifier()
	}
	return &Bot{cls: cls}
}

// Reply answers the prompt against the full, unfiltered transaction
// set. Aggregations with no candidates answer with a sentinel label
// instead of failing.
func (b *Bot) Reply(prompt string, items []core.Transaction) string {
	prompt = strings.ToLower(strings.TrimSpace(prompt))
	if prompt == "" {
		return invalidPromptReply
	}

	switch {
	case strings.Contains(prompt, "spending the most money on"):
		category := noDataLabel
		if best, ok := query.MaxTotal(query.ExpenseTotalsByCategory(items)); ok {
			category = best.Category
		}
		return "You're spending the most on " + category + "."

	// Trailing space is part of the pattern: matches "biggest source of
	// income" and the like.
	case strings.Contains(prompt, "biggest source of "):
		// Always well-defined: every income source is pre-seeded at 0.
		best, _ := query.MaxTotal(query.IncomeTotalsBySource(items, b.cls.IncomeSources()))
		return "Your biggest income source is " + best.Category + "."

	case strings.Contains(prompt, "highest expense in a single transaction"):
		tx, ok := query.MaxSingleExpense(items)
		if !ok {
			return noExpenseDataReply
		}
		return "Your highest expense was $" + tx.Amount.String() + " on " + tx.Category + "."

	case strings.Contains(prompt, "category has the most transactions"):
		category, ok := query.MostFrequentCategory(items)
		if !ok {
			category = noDataLabel
		}
		return "The category with the most transactions is " + category + "."

	default:
		return helpReply
	}
}
