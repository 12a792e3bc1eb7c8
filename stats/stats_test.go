package stats

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

func trade(date string, pnl string) ledger.Trade {
	return ledger.Trade{Date: date, PnL: d(pnl)}
}

func TestWindowTradesInclusive(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		trade("2024-01-01", "1"),
		trade("2024-01-05", "2"),
		trade("2024-01-10", "3"),
		trade("2024-02-01", "4"),
	}

	got := WindowTrades(trades, "2024-01-05", "2024-01-10")
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-05", got[0].Date)
	assert.Equal(t, "2024-01-10", got[1].Date)

	// Both boundaries are inclusive.
	assert.Len(t, WindowTrades(trades, "2024-01-01", "2024-02-01"), 4)
	assert.Empty(t, WindowTrades(trades, "2024-03-01", "2024-03-31"))
}

func TestPnLSum(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		trade("2024-01-01", "10.50"),
		trade("2024-01-01", "-3.25"),
		trade("2024-01-02", "0"),
	}

	assert.Equal(t, "7.25", PnLSum(trades).StringFixed(2))
	assert.True(t, PnLSum(nil).IsZero())
}

func TestWinRateExcludesBreakEven(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		trade("2024-01-01", "10"),
		trade("2024-01-01", "-5"),
		trade("2024-01-02", "0"),
	}

	// 1 win, 1 loss, break-even excluded from the denominator.
	assert.InDelta(t, 0.5, WinRate(trades), 1e-9)
}

func TestWinRateEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, WinRate(nil))
	assert.Equal(t, 0.0, WinRate([]ledger.Trade{trade("2024-01-01", "0")}))
}

func TestWinLossCounts(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		trade("2024-01-01", "10"),
		trade("2024-01-01", "7"),
		trade("2024-01-02", "-5"),
		trade("2024-01-02", "0"),
	}

	wins, losses := WinLossCounts(trades)
	assert.Equal(t, 2, wins)
	assert.Equal(t, 1, losses)
}

func TestWinLossAggregate(t *testing.T) {
	t.Parallel()

	trades := []ledger.Trade{
		trade("2024-01-01", "100"),
		trade("2024-01-01", "50.50"),
		trade("2024-01-02", "-30"),
		trade("2024-01-02", "-20.25"),
		trade("2024-01-03", "0"),
	}

	profit, loss := WinLossAggregate(trades)
	assert.Equal(t, "150.50", profit.StringFixed(2))
	assert.Equal(t, "50.25", loss.StringFixed(2), "loss is reported as a positive magnitude")
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	l := ledger.New()
	l.StartingBalance = d("1000")
	l.PrependTrade(trade("2024-01-15", "40"))    // today
	l.PrependTrade(trade("2024-01-15", "-15"))   // today
	l.PrependTrade(trade("2024-01-10", "100"))   // this week
	l.PrependTrade(trade("2023-12-20", "500"))   // this month window (within 30 days)
	l.PrependTrade(trade("2023-10-01", "-1000")) // outside every window

	sum := Summarize(l, now)

	assert.Equal(t, "25.00", sum.TodayPnL.StringFixed(2))
	assert.Equal(t, 2, sum.TodayTrades)
	assert.Equal(t, 4, sum.TradeCap)
	assert.Equal(t, "125.00", sum.WeekPnL.StringFixed(2))
	assert.Equal(t, "625.00", sum.MonthPnL.StringFixed(2))
	// 3 wins, 2 losses overall.
	assert.InDelta(t, 0.6, sum.WinRate, 1e-9)
	assert.Equal(t, "625.00", sum.Balance.StringFixed(2))
}
