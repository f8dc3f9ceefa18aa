package core

import (
	"errors"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateFormatting(t *testing.T) {
	d := NewDate(2024, 1, 5)
	if d.String() != "2024-01-05" {
		t.Fatalf("unexpected date string %q", d.String())
	}
	if d.MonthLabel() != "2024-01" {
		t.Fatalf("unexpected month label %q", d.MonthLabel())
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Date:     NewDate(2025, 1, 1),
		Amount:   Money{Cents: 100},
		Category: Food,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok without description, got %v", err)
	}

	bads := []struct {
		e    Expense
		want error
	}{
		{Expense{Date: Date{}, Amount: Money{Cents: 1}, Category: Food}, ErrInvalidDate},
		{Expense{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 0}, Category: Food}, ErrInvalidAmount},
		{Expense{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}, Category: "Groceries"}, ErrInvalidCategory},
		{Expense{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}}, ErrInvalidCategory},
	}
	for i, tc := range bads {
		err := tc.e.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
		if !IsValidation(err) {
			t.Fatalf("case %d expected ValidationError, got %T", i, err)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 6 || cats[0] != Food || cats[5] != Others {
		t.Fatalf("unexpected categories: %v", cats)
	}
	cats[0] = "mutated"
	if Categories()[0] != Food {
		t.Fatalf("Categories must return a copy")
	}
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("%q should be valid", c)
		}
		if got, err := ParseCategory(string(c)); err != nil || got != c {
			t.Fatalf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}
	if _, err := ParseCategory("food"); err == nil {
		t.Fatalf("category match must be exact")
	}
}

func TestSumMonths(t *testing.T) {
	got := SumMonths([]MonthTotal{
		{Month: "2024-01", Total: Money{Cents: 10000}},
		{Month: "2024-02", Total: Money{Cents: 5000}},
	})
	if got.Cents != 15000 {
		t.Fatalf("expected 15000 cents, got %d", got.Cents)
	}
}
