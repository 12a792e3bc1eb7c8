package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxtrader/fxjournal/ledger"
)

func cash(date string, amount string, kind ledger.Kind) ledger.CashTransaction {
	return ledger.CashTransaction{Date: date, Amount: d(amount), Kind: kind}
}

func TestEquitySeriesDailyEmpty(t *testing.T) {
	t.Parallel()

	l := ledger.New()
	l.StartingBalance = d("1000")

	got := EquitySeries(l, Daily, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	// No activity: just the seed point.
	require.Len(t, got, 1)
	assert.Equal(t, StartingLabel, got[0].Label)
	assert.Equal(t, "1000.00", got[0].Balance.StringFixed(2))
}

func TestEquitySeriesDailyNetsSameDate(t *testing.T) {
	t.Parallel()

	// A deposit of 500 and trades of -200 and +300 on one date collapse
	// into a single +600 point.
	l := ledger.New()
	l.StartingBalance = d("1000")
	l.PrependTransaction(cash("2024-01-01", "500", ledger.Deposit))
	l.PrependTrade(trade("2024-01-01", "-200"))
	l.PrependTrade(trade("2024-01-01", "300"))

	got := EquitySeries(l, Daily, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	require.Len(t, got, 2)
	assert.Equal(t, StartingLabel, got[0].Label)
	assert.Equal(t, "1000.00", got[0].Balance.StringFixed(2))
	assert.Equal(t, "Jan 1", got[1].Label)
	assert.Equal(t, "1600.00", got[1].Balance.StringFixed(2))
}

func TestEquitySeriesDailyChronological(t *testing.T) {
	t.Parallel()

	// Records are stored newest-first; the curve must come out oldest-first.
	l := ledger.New()
	l.PrependTrade(trade("2024-01-03", "30"))
	l.PrependTrade(trade("2024-01-01", "10"))
	l.PrependTrade(trade("2024-01-02", "20"))

	got := EquitySeries(l, Daily, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	require.Len(t, got, 4)
	assert.Equal(t, []string{StartingLabel, "Jan 1", "Jan 2", "Jan 3"},
		[]string{got[0].Label, got[1].Label, got[2].Label, got[3].Label})
	assert.Equal(t, "10.00", got[1].Balance.StringFixed(2))
	assert.Equal(t, "30.00", got[2].Balance.StringFixed(2))
	assert.Equal(t, "60.00", got[3].Balance.StringFixed(2))
}

func TestEquitySeriesDailyWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	l := ledger.New()
	l.PrependTrade(trade("2024-01-01", "999")) // older than 30 days, dropped
	l.PrependTrade(trade("2024-02-20", "50"))

	got := EquitySeries(l, Daily, now)

	require.Len(t, got, 2)
	assert.Equal(t, "Feb 20", got[1].Label)
	// The out-of-window trade contributes nothing to the daily curve.
	assert.Equal(t, "50.00", got[1].Balance.StringFixed(2))
}

func TestEquitySeriesMonthly(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	l := ledger.New()
	l.StartingBalance = d("1000")
	l.PrependTrade(trade("2024-04-10", "200"))
	l.PrependTrade(trade("2024-04-25", "-50"))
	l.PrependTransaction(cash("2024-06-01", "300", ledger.Deposit))

	got := EquitySeries(l, Monthly, now)

	// Seed + April + June; May had no activity and emits no point.
	require.Len(t, got, 3)
	assert.Equal(t, StartingLabel, got[0].Label)
	assert.Equal(t, "Apr 24", got[1].Label)
	assert.Equal(t, "1150.00", got[1].Balance.StringFixed(2))
	assert.Equal(t, "Jun 24", got[2].Label)
	assert.Equal(t, "1450.00", got[2].Balance.StringFixed(2))
}

func TestEquitySeriesMonthlyIgnoresOldActivity(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	l := ledger.New()
	l.StartingBalance = d("500")
	l.PrependTrade(trade("2022-01-10", "9999")) // outside the 12-month window

	got := EquitySeries(l, Monthly, now)

	require.Len(t, got, 1)
	assert.Equal(t, "500.00", got[0].Balance.StringFixed(2))
}

func TestEquitySeriesMonthlyWithdrawals(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	l := ledger.New()
	l.StartingBalance = d("1000")
	l.PrependTransaction(cash("2024-05-02", "400", ledger.Withdrawal))

	got := EquitySeries(l, Monthly, now)

	require.Len(t, got, 2)
	assert.Equal(t, "May 24", got[1].Label)
	assert.Equal(t, "600.00", got[1].Balance.StringFixed(2))
}
