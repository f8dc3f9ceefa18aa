package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendbook/internal/core"
)

func newTestRepo(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test.db")
	repo, err := NewSQLiteRepository(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func mustExpense(t *testing.T, cents int64, c core.Category, date, desc string) core.Expense {
	t.Helper()
	d, err := core.ParseDate(date)
	require.NoError(t, err)
	return core.Expense{Amount: core.Money{Cents: cents}, Category: c, Date: d, Description: desc}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.EnsureSchema())
	require.NoError(t, repo.EnsureSchema())
}

func TestInsertThenListAll(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := mustExpense(t, 12345, core.Healthcare, "2024-03-02", "pharmacy")
	id, err := repo.Insert(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, id)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.Amount, got.Amount)
	assert.Equal(t, in.Category, got.Category)
	assert.Equal(t, in.Date.String(), got.Date.String())
	assert.Equal(t, in.Description, got.Description)
}

func TestIDsAreNeverReused(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 3; i++ {
		id, err := repo.Insert(ctx, mustExpense(t, 100, core.Food, "2024-01-01", ""))
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}

	deleted, err := repo.Delete(ctx, last)
	require.NoError(t, err)
	assert.True(t, deleted)

	id, err := repo.Insert(ctx, mustExpense(t, 100, core.Food, "2024-01-01", ""))
	require.NoError(t, err)
	assert.Greater(t, id, last, "AUTOINCREMENT must not hand out a deleted id")
}

func TestDeleteTwiceIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, mustExpense(t, 100, core.Food, "2024-01-01", "x"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFilteredReads(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, e := range []core.Expense{
		mustExpense(t, 5000, core.Food, "2024-02-01", "snack"),
		mustExpense(t, 10000, core.Food, "2024-01-15", "lunch"),
		mustExpense(t, 2500, core.Transport, "2024-01-20", "Taxi home"),
		mustExpense(t, 800, core.Food, "2023-12-31", "Lunch leftovers"),
	} {
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	t.Run("all sorted by date", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		for i := 1; i < len(all); i++ {
			assert.False(t, all[i].Date.Before(all[i-1].Date.Time), "rows must be in non-decreasing date order")
		}
	})

	t.Run("by category", func(t *testing.T) {
		food, err := repo.ListByCategory(ctx, core.Food)
		require.NoError(t, err)
		require.Len(t, food, 3)
		for _, e := range food {
			assert.Equal(t, core.Food, e.Category)
		}
		assert.Equal(t, "2023-12-31", food[0].Date.String())
		assert.Equal(t, "2024-02-01", food[2].Date.String())

		none, err := repo.ListByCategory(ctx, core.Utilities)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("by date range inclusive", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, core.NewDate(2024, 1, 15), core.NewDate(2024, 2, 1))
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "lunch", got[0].Description)
		assert.Equal(t, "snack", got[2].Description)
	})

	t.Run("search is case-sensitive", func(t *testing.T) {
		got, err := repo.SearchDescription(ctx, "*unch*")
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = repo.SearchDescription(ctx, "*Lunch*")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Lunch leftovers", got[0].Description)

		got, err = repo.SearchDescription(ctx, "*dinner*")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestTotals(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	total, err := repo.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total.Cents)

	months, err := repo.MonthlyTotals(ctx)
	require.NoError(t, err)
	assert.Empty(t, months)

	_, err = repo.Insert(ctx, mustExpense(t, 10000, core.Food, "2024-01-15", "lunch"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, mustExpense(t, 5000, core.Food, "2024-02-01", "snack"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, mustExpense(t, 1, core.Others, "2024-01-31", ""))
	require.NoError(t, err)

	months, err = repo.MonthlyTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.MonthTotal{
		{Month: "2024-01", Total: core.Money{Cents: 10001}},
		{Month: "2024-02", Total: core.Money{Cents: 5000}},
	}, months)

	total, err = repo.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15001), total.Cents)
	assert.Equal(t, total, core.SumMonths(months))
}

func TestDataSurvivesReopen(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, mustExpense(t, 4200, core.Entertainment, "2024-05-05", "cinema"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	all, err := reopened.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	assert.Equal(t, "cinema", all[0].Description)
}

func TestClosedStoreReturnsStorageError(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.Close())

	_, err := repo.Insert(context.Background(), mustExpense(t, 100, core.Food, "2024-01-01", ""))
	require.Error(t, err)
	assert.True(t, IsStorage(err))

	_, err = repo.ListAll(context.Background())
	assert.True(t, IsStorage(err))
}

func TestUnknownStoredCategoryIsDecodeError(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO expenses (amount_cents, category, date, description) VALUES (100, 'Rent', '2024-01-01', '')`)
	require.NoError(t, err)

	_, err = repo.ListAll(ctx)
	require.Error(t, err)
	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, core.ErrInvalidCategory)
}

func TestSchemaRejectsNonPositiveAmount(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Insert(context.Background(), core.Expense{Amount: core.Money{Cents: 0}, Category: core.Food, Date: core.NewDate(2024, 1, 1)})
	require.Error(t, err)
	assert.True(t, IsStorage(err))
}

func TestSchemaCapsAmount(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, mustExpense(t, core.MaxAmountCents+1, core.Food, "2024-01-01", ""))
	require.Error(t, err)
	assert.True(t, IsStorage(err))

	for i := 0; i < 2; i++ {
		_, err := repo.Insert(ctx, mustExpense(t, core.MaxAmountCents, core.Food, "2024-01-01", ""))
		require.NoError(t, err)
	}
	total, err := repo.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2*core.MaxAmountCents, total.Cents)

	months, err := repo.MonthlyTotals(ctx)
	require.NoError(t, err)
	require.Len(t, months, 1)
	assert.Equal(t, total, months[0].Total)
}
