package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Activity is a trade or cash transaction flattened into one row for the
// recent-activity feed.
type Activity struct {
	ID     string
	Date   string
	Time   string
	Kind   string // "trade", "deposit" or "withdrawal"
	Detail string // pair+strategy for trades, broker for cash
	Amount decimal.Decimal
}

// RecentActivity merges trades and cash transactions, newest first by date
// and time, truncated to limit entries. A limit <= 0 returns everything.
func (l *Ledger) RecentActivity(limit int) []Activity {
	out := make([]Activity, 0, len(l.Trades)+len(l.Transactions))

	for _, t := range l.Trades {
		out = append(out, Activity{
			ID:     t.ID,
			Date:   t.Date,
			Time:   t.Time,
			Kind:   "trade",
			Detail: t.Pair + " - " + t.Strategy,
			Amount: t.PnL,
		})
	}
	for _, c := range l.Transactions {
		out = append(out, Activity{
			ID:     c.ID,
			Date:   c.Date,
			Time:   c.Time,
			Kind:   string(c.Kind),
			Detail: c.Broker,
			Amount: c.Signed(),
		})
	}

	// Fixed-width date and time strings sort chronologically.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date+" "+out[i].Time > out[j].Date+" "+out[j].Time
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
