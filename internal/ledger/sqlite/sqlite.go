// Package sqlite implements the ledger store on an embedded SQLite
// database. It serves the same port as the memory store; the balance is
// recomputed from the row set on every read, so it cannot diverge from
// the stored transactions.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avangala-19/finance-tracker/internal/core"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	cls *core.Classifier
}

// New opens (or creates) the database at dsn and applies migrations.
// A dsn of ":memory:" or with "mode=memory" yields a volatile database;
// the connection pool is then capped at one so every query sees the
// same in-memory database.
func New(dsn string, cls *core.Classifier) (*Store, error) {
	if cls == nil {
		cls = core.DefaultClassifier()
	}

	if dir := fileDir(dsn); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if isMemoryDSN(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db, cls: cls}, nil
}

// Add implements ledger.Store. AUTOINCREMENT keys are monotonic for the
// lifetime of the database, so ids are never reused after deletion.
func (s *Store) Add(ctx context.Context, date string, amount core.Money, category string) (core.Transaction, error) {
	if err := amount.Validate(); err != nil {
		return core.Transaction{}, err
	}
	kind := s.cls.Classify(category)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (tx_date, amount_cents, category, kind) VALUES (?, ?, ?, ?)`,
		date, amount.Cents, category, string(kind))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("read inserted id: %w", err)
	}
	return core.Transaction{
		ID:       id,
		Date:     date,
		Amount:   amount,
		Category: category,
		Kind:     kind,
	}, nil
}

// Delete implements ledger.Store.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected: %w", err)
	}
	return n > 0, nil
}

// State implements ledger.Store. Rows come back in insertion order and
// the balance is summed in the same pass.
func (s *Store) State(ctx context.Context) ([]core.Transaction, core.Money, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tx_date, amount_cents, category, kind FROM transactions ORDER BY id`)
	if err != nil {
		return nil, core.Money{}, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var (
		items   []core.Transaction
		balance int64
	)
	for rows.Next() {
		var (
			tx   core.Transaction
			kind string
		)
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Amount.Cents, &tx.Category, &kind); err != nil {
			return nil, core.Money{}, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Kind = core.Kind(kind)
		if tx.Kind == core.Income {
			balance += tx.Amount.Cents
		} else {
			balance -= tx.Amount.Cents
		}
		items = append(items, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, core.Money{}, fmt.Errorf("iterate transactions: %w", err)
	}
	return items, core.Money{Cents: balance}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// fileDir returns the directory to create for file-backed DSNs, or ""
// when none is needed.
func fileDir(dsn string) string {
	if isMemoryDSN(dsn) || strings.HasPrefix(dsn, "file:") {
		return ""
	}
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		return dir
	}
	return ""
}
