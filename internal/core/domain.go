package core

import (
	"errors"
	"time"
)

// DateLayout is the only accepted textual form of an expense date.
const DateLayout = "2006-01-02"

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Utilities     Category = "Utilities"
	Healthcare    Category = "Healthcare"
	Others        Category = "Others"
)

type (
	// Category is one of a fixed set of spending categories.
	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Expense struct {
		ID          int64 // Assigned by the store on insert
		Amount      Money
		Category    Category
		Date        Date
		Description string
	}
)

var categories = []Category{Food, Transport, Entertainment, Utilities, Healthcare, Others}

var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrAmountTooLarge  = errors.New("amount exceeds 1000000000.00")
	ErrTotalOverflow   = errors.New("total exceeds the representable range")
	ErrInvalidDate     = errors.New("date must be in yyyy-mm-dd format")
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidID       = errors.New("expense id must be a positive whole number")
	ErrInputTooLong    = errors.New("input line is too long")
)

// Categories returns the fixed category list in menu order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c belongs to the fixed category set.
func (c Category) Valid() bool {
	switch c {
	case Food, Transport, Entertainment, Utilities, Healthcare, Others:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory maps a stored category name back to the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", &ValidationError{Field: "category", Value: s, Err: ErrInvalidCategory}
	}
	return c, nil
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date as yyyy-mm-dd.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthLabel returns the yyyy-mm bucket the date belongs to.
func (d Date) MonthLabel() string {
	return d.Format("2006-01")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	if m.Cents > MaxAmountCents {
		return ErrAmountTooLarge
	}
	return nil
}

// Validate checks the fields every stored expense must carry.
// The description is optional.
func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return &ValidationError{Field: "amount", Value: e.Amount.String(), Err: err}
	}
	if !e.Category.Valid() {
		return &ValidationError{Field: "category", Value: string(e.Category), Err: ErrInvalidCategory}
	}
	if err := e.Date.Validate(); err != nil {
		return &ValidationError{Field: "date", Err: err}
	}
	return nil
}
