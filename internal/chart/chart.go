// Package chart draws labelled bar series. Renderers receive bars in the order
// they should be drawn and never reorder them.
package chart

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Bar is one labelled value of a series.
type Bar struct {
	Label string
	Value decimal.Decimal
}

// Sink accepts a titled series and renders it somewhere.
type Sink interface {
	Render(title string, bars []Bar) error
}

// Multi renders to every sink in turn and joins their errors.
type Multi []Sink

func (m Multi) Render(title string, bars []Bar) error {
	var errs []error
	for _, s := range m {
		if err := s.Render(title, bars); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// maxValue returns the largest bar value, or zero for an empty series.
func maxValue(bars []Bar) decimal.Decimal {
	max := decimal.Zero
	for _, b := range bars {
		if b.Value.GreaterThan(max) {
			max = b.Value
		}
	}
	return max
}

// scale maps v onto [0, span] relative to max. Positive values always get at
// least one unit so that small months stay visible.
func scale(v, max decimal.Decimal, span int) int {
	if !max.IsPositive() || !v.IsPositive() {
		return 0
	}
	n := int(v.Mul(decimal.NewFromInt(int64(span))).Div(max).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	if n > span {
		n = span
	}
	return n
}
