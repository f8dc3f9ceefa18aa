// Package memory holds expenses in process memory. It satisfies the same
// contract as the SQLite repository and is used for tests and throwaway sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"spendbook/internal/core"
	"spendbook/internal/storage"
)

type Store struct {
	mu     sync.Mutex
	lastID int64
	items  []core.Expense
}

func New() *Store {
	return &Store{}
}

// Insert stores the expense and returns its id. Ids are never reused.
func (s *Store) Insert(_ context.Context, e core.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	e.ID = s.lastID
	s.items = append(s.items, e)
	return e.ID, nil
}

func (s *Store) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListAll(_ context.Context) ([]core.Expense, error) {
	return s.filter(func(core.Expense) bool { return true }), nil
}

func (s *Store) ListByCategory(_ context.Context, c core.Category) ([]core.Expense, error) {
	return s.filter(func(e core.Expense) bool { return e.Category == c }), nil
}

func (s *Store) ListByDateRange(_ context.Context, start, end core.Date) ([]core.Expense, error) {
	from, to := start.String(), end.String()
	return s.filter(func(e core.Expense) bool {
		d := e.Date.String()
		return d >= from && d <= to
	}), nil
}

// SearchDescription matches descriptions with SQLite GLOB semantics.
func (s *Store) SearchDescription(_ context.Context, pattern string) ([]core.Expense, error) {
	return s.filter(func(e core.Expense) bool { return globMatch(pattern, e.Description) }), nil
}

// Total fails like SQLite SUM does when the sum leaves int64 range.
func (s *Store) Total(_ context.Context) (core.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total core.Money
	for _, e := range s.items {
		var err error
		if total, err = total.CheckedAdd(e.Amount); err != nil {
			return core.Money{}, &storage.Error{Op: "total", Err: err}
		}
	}
	return total, nil
}

func (s *Store) MonthlyTotals(_ context.Context) ([]core.MonthTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sums := map[string]core.Money{}
	for _, e := range s.items {
		m := e.Date.MonthLabel()
		sum, err := sums[m].CheckedAdd(e.Amount)
		if err != nil {
			return nil, &storage.Error{Op: "monthly totals", Err: err}
		}
		sums[m] = sum
	}
	months := make([]core.MonthTotal, 0, len(sums))
	for m, total := range sums {
		months = append(months, core.MonthTotal{Month: m, Total: total})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months, nil
}

func (s *Store) Close() error {
	return nil
}

// filter returns matching expenses ordered by date, then id.
func (s *Store) filter(keep func(core.Expense) bool) []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, 0, len(s.items))
	for _, e := range s.items {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.Before(out[j].Date.Time)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
