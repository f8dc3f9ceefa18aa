package services

import (
	"context"
	"fmt"
	"strings"

	"spendbook/internal/core"
	"spendbook/internal/log"
)

// ExpenseService is the query and aggregation layer between the session and
// the store. Every method maps onto exactly one store call.
type ExpenseService struct {
	store  Store
	logger *log.Logger
}

func NewExpenseService(store Store, logger *log.Logger) *ExpenseService {
	if logger == nil {
		logger = log.Discard()
	}
	return &ExpenseService{
		store:  store,
		logger: logger.WithComponent(log.ComponentExpense),
	}
}

// AddExpense validates e and stores it, returning the assigned id.
func (s *ExpenseService) AddExpense(ctx context.Context, e core.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	id, err := s.store.Insert(ctx, e)
	if err != nil {
		s.logger.LogError(ctx, "Failed to save expense", err, log.OpCreate,
			log.NewFields().WithExpense(0, e.Amount.String(), string(e.Category), e.Date.String()))
		return 0, fmt.Errorf("save expense: %w", err)
	}

	s.logger.InfoContext(ctx, "Expense created",
		log.NewFields().
			WithExpense(id, e.Amount.String(), string(e.Category), e.Date.String()).
			WithOperation(log.OpCreate).
			ToSlice()...)
	return id, nil
}

// DeleteExpense removes an expense. A missing id yields false without error.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.LogError(ctx, "Failed to delete expense", err, log.OpDelete,
			log.NewFields().With(log.FieldExpenseID, id))
		return false, fmt.Errorf("delete expense %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Expense delete requested",
		log.FieldExpenseID, id, "deleted", deleted)
	return deleted, nil
}

func (s *ExpenseService) AllExpenses(ctx context.Context) ([]core.Expense, error) {
	expenses, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, s.readFailed(ctx, "list expenses", err)
	}
	return expenses, nil
}

func (s *ExpenseService) ExpensesByCategory(ctx context.Context, c core.Category) ([]core.Expense, error) {
	if !c.Valid() {
		return nil, &core.ValidationError{Field: "category", Value: string(c), Err: core.ErrInvalidCategory}
	}
	expenses, err := s.store.ListByCategory(ctx, c)
	if err != nil {
		return nil, s.readFailed(ctx, "list expenses by category", err)
	}
	return expenses, nil
}

// ExpensesByDateRange returns expenses dated from start to end inclusive.
// An inverted range is valid and simply matches nothing.
func (s *ExpenseService) ExpensesByDateRange(ctx context.Context, start, end core.Date) ([]core.Expense, error) {
	if err := start.Validate(); err != nil {
		return nil, &core.ValidationError{Field: "start date", Err: err}
	}
	if err := end.Validate(); err != nil {
		return nil, &core.ValidationError{Field: "end date", Err: err}
	}
	expenses, err := s.store.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, s.readFailed(ctx, "list expenses by date range", err)
	}
	return expenses, nil
}

// SearchExpenses returns expenses whose description contains keyword,
// matched case-sensitively.
func (s *ExpenseService) SearchExpenses(ctx context.Context, keyword string) ([]core.Expense, error) {
	expenses, err := s.store.SearchDescription(ctx, SubstringPattern(keyword))
	if err != nil {
		return nil, s.readFailed(ctx, "search expenses", err)
	}
	s.logger.DebugContext(ctx, "Search completed",
		log.FieldOperation, log.OpSearch, log.FieldCount, len(expenses))
	return expenses, nil
}

func (s *ExpenseService) TotalSpent(ctx context.Context) (core.Money, error) {
	total, err := s.store.Total(ctx)
	if err != nil {
		return core.Money{}, s.readFailed(ctx, "total expenses", err)
	}
	return total, nil
}

// MonthlySummary returns per-month totals in ascending yyyy-mm order.
func (s *ExpenseService) MonthlySummary(ctx context.Context) ([]core.MonthTotal, error) {
	months, err := s.store.MonthlyTotals(ctx)
	if err != nil {
		return nil, s.readFailed(ctx, "monthly summary", err)
	}
	return months, nil
}

// Close closes the underlying store.
func (s *ExpenseService) Close() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("close expense service: %w", err)
	}
	return nil
}

func (s *ExpenseService) readFailed(ctx context.Context, what string, err error) error {
	s.logger.LogError(ctx, "Read failed", err, log.OpList,
		log.NewFields().WithErrorType(log.ErrorTypeDatabase).With("query", what))
	return fmt.Errorf("%s: %w", what, err)
}

var globEscaper = strings.NewReplacer("*", "[*]", "?", "[?]", "[", "[[]")

// SubstringPattern turns a keyword into a GLOB pattern matching any text that
// contains it literally.
func SubstringPattern(keyword string) string {
	return "*" + globEscaper.Replace(keyword) + "*"
}
