// Package stats derives read-only performance metrics from the ledger.
// Every function here is a pure fold over {trades, transactions,
// startingBalance}; nothing is cached between calls.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fxtrader/fxjournal/journal"
	"github.com/fxtrader/fxjournal/ledger"
)

const dateLayout = "2006-01-02"

// WindowTrades returns the trades whose date falls in [start, end],
// inclusive on both ends. Zero-padded ISO dates compare lexicographically
// in chronological order.
func WindowTrades(trades []ledger.Trade, start, end string) []ledger.Trade {
	var out []ledger.Trade
	for _, t := range trades {
		if t.Date >= start && t.Date <= end {
			out = append(out, t)
		}
	}
	return out
}

// PnLSum adds up the P&L of the given trades.
func PnLSum(trades []ledger.Trade) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trades {
		sum = sum.Add(t.PnL)
	}
	return sum
}

// WinLossCounts counts strictly winning and strictly losing trades.
// Break-even trades belong to neither bucket.
func WinLossCounts(trades []ledger.Trade) (wins, losses int) {
	for _, t := range trades {
		switch {
		case t.PnL.IsPositive():
			wins++
		case t.PnL.IsNegative():
			losses++
		}
	}
	return wins, losses
}

// WinRate returns wins/(wins+losses) as a fraction in [0, 1]. Break-even
// trades are excluded from both sides; an empty denominator yields 0.
func WinRate(trades []ledger.Trade) float64 {
	wins, losses := WinLossCounts(trades)
	total := wins + losses
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

// WinLossAggregate returns the total profit of winning trades and the
// absolute total loss of losing trades.
func WinLossAggregate(trades []ledger.Trade) (profit, loss decimal.Decimal) {
	profit, loss = decimal.Zero, decimal.Zero
	for _, t := range trades {
		switch {
		case t.PnL.IsPositive():
			profit = profit.Add(t.PnL)
		case t.PnL.IsNegative():
			loss = loss.Add(t.PnL.Abs())
		}
	}
	return profit, loss
}

// Summary is the dashboard stat block: windowed P&L plus today's trade
// count against the daily cap.
type Summary struct {
	TodayPnL    decimal.Decimal
	TodayTrades int
	TradeCap    int
	WeekPnL     decimal.Decimal
	MonthPnL    decimal.Decimal
	WinRate     float64
	Balance     decimal.Decimal
}

// Summarize computes the stat block as of now. The week window is the last
// 7 days and the month window the last 30, both inclusive of today.
func Summarize(l *ledger.Ledger, now time.Time) Summary {
	today := now.Format(dateLayout)
	weekAgo := now.AddDate(0, 0, -7).Format(dateLayout)
	monthAgo := now.AddDate(0, 0, -30).Format(dateLayout)

	todayTrades := l.TradesOn(today)

	return Summary{
		TodayPnL:    PnLSum(todayTrades),
		TodayTrades: len(todayTrades),
		TradeCap:    journal.MaxTradesPerDay,
		WeekPnL:     PnLSum(WindowTrades(l.Trades, weekAgo, today)),
		MonthPnL:    PnLSum(WindowTrades(l.Trades, monthAgo, today)),
		WinRate:     WinRate(l.Trades),
		Balance:     l.Balance(),
	}
}
