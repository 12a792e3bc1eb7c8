// Package calendar aggregates the ledger into the per-day grid behind the
// monthly activity heat-map.
package calendar

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fxtrader/fxjournal/ledger"
)

// DayCell is one calendar day: the net P&L of its trades and signed cash
// flow, and how many records landed on it.
type DayCell struct {
	Day      int
	Net      decimal.Decimal
	Activity int
}

// MonthGrid lays a month out for a Sunday-first 7-column week. Leading is
// the number of blank cells before day 1 (the first day's weekday,
// 0=Sunday).
type MonthGrid struct {
	Year    int
	Month   time.Month
	Leading int
	Days    []DayCell
}

// Grid builds the month grid for the given year and month.
func Grid(l *ledger.Ledger, year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	g := MonthGrid{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)

		cell := DayCell{Day: day, Net: decimal.Zero}
		for _, t := range l.TradesOn(date) {
			cell.Net = cell.Net.Add(t.PnL)
			cell.Activity++
		}
		for _, c := range l.TransactionsOn(date) {
			cell.Net = cell.Net.Add(c.Signed())
			cell.Activity++
		}

		g.Days = append(g.Days, cell)
	}
	return g
}
