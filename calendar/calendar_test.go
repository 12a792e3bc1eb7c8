package calendar

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxtrader/fxjournal/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGridShape(t *testing.T) {
	t.Parallel()

	// January 2024 starts on a Monday and has 31 days.
	g := Grid(ledger.New(), 2024, time.January)

	assert.Equal(t, 2024, g.Year)
	assert.Equal(t, time.January, g.Month)
	assert.Equal(t, 1, g.Leading)
	require.Len(t, g.Days, 31)
	assert.Equal(t, 1, g.Days[0].Day)
	assert.Equal(t, 31, g.Days[30].Day)
}

func TestGridLeadingSunday(t *testing.T) {
	t.Parallel()

	// September 2024 starts on a Sunday: no leading blanks.
	g := Grid(ledger.New(), 2024, time.September)
	assert.Equal(t, 0, g.Leading)
	assert.Len(t, g.Days, 30)
}

func TestGridLeapFebruary(t *testing.T) {
	t.Parallel()

	g := Grid(ledger.New(), 2024, time.February)
	assert.Len(t, g.Days, 29)

	g = Grid(ledger.New(), 2023, time.February)
	assert.Len(t, g.Days, 28)
}

func TestGridDayNetAndActivity(t *testing.T) {
	t.Parallel()

	l := ledger.New()
	l.PrependTrade(ledger.Trade{ID: "t1", Date: "2024-01-05", PnL: d("120")})
	l.PrependTrade(ledger.Trade{ID: "t2", Date: "2024-01-05", PnL: d("-20")})
	l.PrependTransaction(ledger.CashTransaction{ID: "c1", Date: "2024-01-05", Amount: d("50"), Kind: ledger.Withdrawal})
	l.PrependTransaction(ledger.CashTransaction{ID: "c2", Date: "2024-01-20", Amount: d("500"), Kind: ledger.Deposit})

	g := Grid(l, 2024, time.January)

	day5 := g.Days[4]
	assert.Equal(t, 5, day5.Day)
	assert.Equal(t, "50.00", day5.Net.StringFixed(2), "trades plus signed cash flow")
	assert.Equal(t, 3, day5.Activity)

	day20 := g.Days[19]
	assert.Equal(t, "500.00", day20.Net.StringFixed(2))
	assert.Equal(t, 1, day20.Activity)

	day1 := g.Days[0]
	assert.True(t, day1.Net.IsZero())
	assert.Zero(t, day1.Activity)
}

func TestGridIgnoresOtherMonths(t *testing.T) {
	t.Parallel()

	l := ledger.New()
	l.PrependTrade(ledger.Trade{ID: "t1", Date: "2024-02-05", PnL: d("100")})

	g := Grid(l, 2024, time.January)
	for _, cell := range g.Days {
		assert.Zero(t, cell.Activity)
	}
}
