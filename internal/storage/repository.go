package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendbook/internal/core"
	"spendbook/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable expense table. It holds the single
// process-wide connection to the database file.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
	path    string
	logger  *log.Logger
}

func NewSQLiteRepository(dbPath string, logger *log.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = log.Discard()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, wrap("open", fmt.Errorf("create db directory: %w", err))
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, wrap("open", fmt.Errorf("open sqlite database: %w", err))
	}
	// One user, one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, wrap("open", fmt.Errorf("ping database: %w", err))
	}

	repo := &SQLiteRepository{
		db:      db,
		queries: New(db),
		path:    dbPath,
		logger:  logger.WithComponent(log.ComponentStorage),
	}

	if err := repo.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

// EnsureSchema creates the expenses table when it is missing.
func (r *SQLiteRepository) EnsureSchema() error {
	if err := RunMigrations(r.path); err != nil {
		return wrap(log.OpMigrate, err)
	}
	r.logger.Debug("Schema ready", log.FieldPath, r.path)
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert stores e and returns the id assigned to it.
func (r *SQLiteRepository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	row, err := r.queries.CreateExpense(ctx, CreateExpenseParams{
		AmountCents: e.Amount.Cents,
		Category:    string(e.Category),
		Date:        e.Date.String(),
		Description: e.Description,
	})
	if err != nil {
		return 0, wrap("insert", err)
	}

	r.logger.InfoContext(ctx, "Expense saved to SQLite",
		log.NewFields().
			WithExpense(row.ID, e.Amount.String(), row.Category, row.Date).
			WithOperation(log.OpCreate).
			ToSlice()...)

	return row.ID, nil
}

// Delete removes the expense with the given id. It reports false when no
// such expense exists, which is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteExpense(ctx, id)
	if err != nil {
		return false, wrap("delete", err)
	}

	r.logger.InfoContext(ctx, "Expense delete executed", log.FieldExpenseID, id, "rows_affected", n)
	return n > 0, nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.queries.ListExpenses(ctx)
	if err != nil {
		return nil, wrap("list", err)
	}
	return toExpenses(rows)
}

func (r *SQLiteRepository) ListByCategory(ctx context.Context, c core.Category) ([]core.Expense, error) {
	rows, err := r.queries.ListExpensesByCategory(ctx, string(c))
	if err != nil {
		return nil, wrap("list by category", err)
	}
	return toExpenses(rows)
}

// ListByDateRange returns expenses dated between start and end, both inclusive.
func (r *SQLiteRepository) ListByDateRange(ctx context.Context, start, end core.Date) ([]core.Expense, error) {
	rows, err := r.queries.ListExpensesByDateRange(ctx, start.String(), end.String())
	if err != nil {
		return nil, wrap("list by date range", err)
	}
	return toExpenses(rows)
}

// SearchDescription matches descriptions against a GLOB pattern.
func (r *SQLiteRepository) SearchDescription(ctx context.Context, pattern string) ([]core.Expense, error) {
	rows, err := r.queries.SearchExpenses(ctx, pattern)
	if err != nil {
		return nil, wrap("search", err)
	}
	return toExpenses(rows)
}

func (r *SQLiteRepository) Total(ctx context.Context) (core.Money, error) {
	total, err := r.queries.GetTotal(ctx)
	if err != nil {
		return core.Money{}, wrap("total", err)
	}
	return core.Money{Cents: total}, nil
}

func (r *SQLiteRepository) MonthlyTotals(ctx context.Context) ([]core.MonthTotal, error) {
	rows, err := r.queries.GetMonthlyTotals(ctx)
	if err != nil {
		return nil, wrap("monthly totals", err)
	}

	months := make([]core.MonthTotal, 0, len(rows))
	for _, row := range rows {
		months = append(months, core.MonthTotal{
			Month: row.Month,
			Total: core.Money{Cents: row.Total},
		})
	}
	return months, nil
}

func toExpenses(rows []ExpenseRow) ([]core.Expense, error) {
	expenses := make([]core.Expense, 0, len(rows))
	for _, row := range rows {
		e, err := toExpense(row)
		if err != nil {
			return nil, wrap("decode", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func toExpense(row ExpenseRow) (core.Expense, error) {
	category, err := core.ParseCategory(row.Category)
	if err != nil {
		return core.Expense{}, fmt.Errorf("expense %d: %w", row.ID, err)
	}
	t, err := time.Parse(core.DateLayout, row.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("expense %d: %w", row.ID, err)
	}
	return core.Expense{
		ID:          row.ID,
		Amount:      core.Money{Cents: row.AmountCents},
		Category:    category,
		Date:        core.Date{Time: t},
		Description: row.Description,
	}, nil
}
