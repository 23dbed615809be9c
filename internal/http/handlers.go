package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avangala-19/finance-tracker/internal/core"
	"github.com/avangala-19/finance-tracker/internal/query"
	"github.com/avangala-19/finance-tracker/internal/report"
)

const addErrorMessage = "Error: Please enter a valid positive amount with up to two decimal places."

// pageData feeds the index template for both the plain and filtered
// views. Balance is always the global balance, even over a filtered
// list.
type pageData struct {
	Transactions     []core.Transaction
	Balance          core.Money
	IncomeCategories []string
	ActiveTab        string
	Filters          query.Filters
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	items, balance, err := s.ledger.State(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger state error", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, pageData{
		Transactions:     items,
		Balance:          balance,
		IncomeCategories: s.classifier.IncomeSources(),
		ActiveTab:        "add",
	})
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	// Date and category are accepted as given; only the amount is
	// validated.
	date := sanitizeInput(r.Form.Get("date"))
	category := sanitizeInput(r.Form.Get("category"))

	amount, err := core.ParseAmount(r.Form.Get("amount"))
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(addErrorMessage))
		return
	}

	tx, err := s.ledger.Add(r.Context(), date, amount, category)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction add error", "error", err, "category", category)
		http.Error(w, "failed to save transaction", http.StatusInternalServerError)
		return
	}
	slog.InfoContext(r.Context(), "Transaction added",
		"id", tx.ID, "date", tx.Date, "amount_cents", tx.Amount.Cents, "category", tx.Category, "kind", tx.Kind)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	// Unknown and unparsable ids are no-ops, the redirect happens
	// either way.
	if id, err := strconv.ParseInt(sanitizeInput(r.Form.Get("transaction_id")), 10, 64); err == nil {
		found, err := s.ledger.Delete(r.Context(), id)
		if err != nil {
			slog.ErrorContext(r.Context(), "Transaction delete error", "error", err, "id", id)
			http.Error(w, "failed to delete transaction", http.StatusInternalServerError)
			return
		}
		if found {
			slog.InfoContext(r.Context(), "Transaction deleted", "id", id)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	items, balance, err := s.ledger.State(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger state error", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}
	filters := parseFilters(r.URL.Query())
	s.renderPage(w, r, pageData{
		Transactions:     query.Filter(items, filters),
		Balance:          balance,
		IncomeCategories: s.classifier.IncomeSources(),
		ActiveTab:        "history",
		Filters:          filters,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	items, _, err := s.ledger.State(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger state error", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	period := query.Period(sanitizeInput(r.URL.Query().Get("period")))
	if period == "" {
		period = query.PeriodAll
	}
	if cutoff, ok := period.Cutoff(s.now()); ok {
		items = query.Filter(items, query.Filters{StartDate: cutoff})
	}

	writeJSON(w, r, http.StatusOK, query.Summarize(items))
}

func (s *Server) handleDownloadSummary(w http.ResponseWriter, r *http.Request) {
	items, _, err := s.ledger.State(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger state error", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	// Serialize into memory first so a workbook failure can still
	// produce an error status instead of a truncated download.
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, items); err != nil {
		slog.ErrorContext(r.Context(), "Summary export error", "error", err)
		http.Error(w, "failed to generate summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.ErrorContext(r.Context(), "Summary download interrupted", "error", err)
	}
}

func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	items, _, err := s.ledger.State(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger state error", "error", err)
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	reply := s.bot.Reply(r.Form.Get("prompt"), items)
	writeJSON(w, r, http.StatusOK, struct {
		Response string `json:"response"`
	}{Response: reply})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "JSON encode error", "error", err, "url", r.URL.Path)
	}
}
