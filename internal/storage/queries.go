package storage

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

// ExpenseRow mirrors one row of the expenses table.
type ExpenseRow struct {
	ID          int64
	AmountCents int64
	Category    string
	Date        string
	Description string
}

type CreateExpenseParams struct {
	AmountCents int64
	Category    string
	Date        string
	Description string
}

const createExpense = `-- name: CreateExpense :one
INSERT INTO expenses (amount_cents, category, date, description)
VALUES (?, ?, ?, ?)
RETURNING id, amount_cents, category, date, description
`

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (ExpenseRow, error) {
	row := q.db.QueryRowContext(ctx, createExpense,
		arg.AmountCents,
		arg.Category,
		arg.Date,
		arg.Description,
	)
	var i ExpenseRow
	err := row.Scan(&i.ID, &i.AmountCents, &i.Category, &i.Date, &i.Description)
	return i, err
}

const deleteExpense = `-- name: DeleteExpense :execrows
DELETE FROM expenses WHERE id = ?
`

func (q *Queries) DeleteExpense(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpense, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listExpenses = `-- name: ListExpenses :many
SELECT id, amount_cents, category, date, description
FROM expenses
ORDER BY date, id
`

func (q *Queries) ListExpenses(ctx context.Context) ([]ExpenseRow, error) {
	return q.queryExpenses(ctx, listExpenses)
}

const listExpensesByCategory = `-- name: ListExpensesByCategory :many
SELECT id, amount_cents, category, date, description
FROM expenses
WHERE category = ?
ORDER BY date, id
`

func (q *Queries) ListExpensesByCategory(ctx context.Context, category string) ([]ExpenseRow, error) {
	return q.queryExpenses(ctx, listExpensesByCategory, category)
}

const listExpensesByDateRange = `-- name: ListExpensesByDateRange :many
SELECT id, amount_cents, category, date, description
FROM expenses
WHERE date BETWEEN ? AND ?
ORDER BY date, id
`

func (q *Queries) ListExpensesByDateRange(ctx context.Context, start, end string) ([]ExpenseRow, error) {
	return q.queryExpenses(ctx, listExpensesByDateRange, start, end)
}

// GLOB is used instead of LIKE because it is case-sensitive.
const searchExpenses = `-- name: SearchExpenses :many
SELECT id, amount_cents, category, date, description
FROM expenses
WHERE description GLOB ?
ORDER BY date, id
`

func (q *Queries) SearchExpenses(ctx context.Context, pattern string) ([]ExpenseRow, error) {
	return q.queryExpenses(ctx, searchExpenses, pattern)
}

const getTotal = `-- name: GetTotal :one
SELECT CAST(COALESCE(SUM(amount_cents), 0) AS INTEGER) FROM expenses
`

func (q *Queries) GetTotal(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, getTotal)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const getMonthlyTotals = `-- name: GetMonthlyTotals :many
SELECT substr(date, 1, 7) AS month, CAST(SUM(amount_cents) AS INTEGER) AS total
FROM expenses
GROUP BY month
ORDER BY month
`

type MonthlyTotalRow struct {
	Month string
	Total int64
}

func (q *Queries) GetMonthlyTotals(ctx context.Context) ([]MonthlyTotalRow, error) {
	rows, err := q.db.QueryContext(ctx, getMonthlyTotals)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MonthlyTotalRow
	for rows.Next() {
		var i MonthlyTotalRow
		if err := rows.Scan(&i.Month, &i.Total); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (q *Queries) queryExpenses(ctx context.Context, query string, args ...interface{}) ([]ExpenseRow, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ExpenseRow
	for rows.Next() {
		var i ExpenseRow
		if err := rows.Scan(&i.ID, &i.AmountCents, &i.Category, &i.Date, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
