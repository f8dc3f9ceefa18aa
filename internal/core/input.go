package core

import (
	"strconv"
	"strings"
	"time"
)

// ParseDate accepts only real calendar dates written as yyyy-mm-dd.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Value: s, Err: ErrInvalidDate}
	}
	return Date{Time: t}, nil
}

// CategoryFromChoice resolves a 1-based menu index into the category list.
func CategoryFromChoice(s string) (Category, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(categories) {
		return "", &ValidationError{Field: "category", Value: s, Err: ErrInvalidCategory}
	}
	return categories[n-1], nil
}

// ParseID parses an expense id typed by the user.
func ParseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, &ValidationError{Field: "id", Value: s, Err: ErrInvalidID}
	}
	return id, nil
}
