package core

// MonthTotal is the amount spent in one calendar month.
type MonthTotal struct {
	Month string // yyyy-mm
	Total Money
}

// SumMonths adds up a monthly breakdown.
func SumMonths(months []MonthTotal) Money {
	var total Money
	for _, m := range months {
		total = total.Add(m.Total)
	}
	return total
}
