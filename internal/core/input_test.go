package core

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-02-29", true}, // leap year
		{"2024-01-15", true},
		{" 2024-12-31 ", true},
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"2024/02/01", false},
		{"2024-2-01", false},
		{"24-02-01", false},
		{"2024-13-01", false},
		{"", false},
		{"yesterday", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("%q expected error, got %v", tc.in, d)
		}
		if !errors.Is(err, ErrInvalidDate) || !IsValidation(err) {
			t.Fatalf("%q expected date validation error, got %v", tc.in, err)
		}
	}
}

func TestCategoryFromChoice(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"1", Food, true},
		{"3", Entertainment, true},
		{" 6 ", Others, true},
		{"0", "", false},
		{"7", "", false},
		{"-1", "", false},
		{"food", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := CategoryFromChoice(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.want, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("%q expected ErrInvalidCategory, got %v", tc.in, err)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Fatalf("expected 42, got %d (err=%v)", id, err)
	}
	for _, in := range []string{"", "0", "-3", "1.5", "abc"} {
		if _, err := ParseID(in); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("%q expected ErrInvalidID, got %v", in, err)
		}
	}
}
