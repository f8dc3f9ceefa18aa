package services

import (
	"context"

	"spendbook/internal/core"
)

// Store is the expense table the service reads and writes. It is satisfied by
// storage.SQLiteRepository and memory.Store.
type Store interface {
	Insert(ctx context.Context, e core.Expense) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListAll(ctx context.Context) ([]core.Expense, error)
	ListByCategory(ctx context.Context, c core.Category) ([]core.Expense, error)
	ListByDateRange(ctx context.Context, start, end core.Date) ([]core.Expense, error)
	SearchDescription(ctx context.Context, pattern string) ([]core.Expense, error)
	Total(ctx context.Context) (core.Money, error)
	MonthlyTotals(ctx context.Context) ([]core.MonthTotal, error)
	Close() error
}
