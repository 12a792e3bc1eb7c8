package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fxtrader/fxjournal/ledger"
)

// Granularity selects the equity curve bucketing.
type Granularity int

const (
	// Daily buckets the last 30 calendar days, one point per active day.
	Daily Granularity = iota
	// Monthly buckets the last 12 calendar months, one point per active month.
	Monthly
)

// Point is one sample on the equity curve: the cumulative account balance
// after the labelled period.
type Point struct {
	Label   string
	Balance decimal.Decimal
}

// StartingLabel names the seed point of every equity curve.
const StartingLabel = "Starting"

// EquitySeries builds the equity curve from the ledger. Both granularities
// are seeded with a "Starting" point at the starting balance and only emit
// points for periods that saw at least one trade or cash transaction,
// ordered ascending by calendar value. A ledger with no activity in the
// window yields just the seed point.
func EquitySeries(l *ledger.Ledger, g Granularity, now time.Time) []Point {
	nets := dailyNets(l)

	if g == Monthly {
		return monthlySeries(l.StartingBalance, nets, now)
	}
	return dailySeries(l.StartingBalance, nets, now)
}

// dailyNets folds trades and signed cash amounts into one net per date.
func dailyNets(l *ledger.Ledger) map[string]decimal.Decimal {
	nets := make(map[string]decimal.Decimal)
	for _, t := range l.Trades {
		nets[t.Date] = nets[t.Date].Add(t.PnL)
	}
	for _, c := range l.Transactions {
		nets[c.Date] = nets[c.Date].Add(c.Signed())
	}
	return nets
}

func dailySeries(start decimal.Decimal, nets map[string]decimal.Decimal, now time.Time) []Point {
	cutoff := now.AddDate(0, 0, -30).Format(dateLayout)

	var dates []string
	for date := range nets {
		if date >= cutoff {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	points := []Point{{Label: StartingLabel, Balance: start}}
	balance := start
	for _, date := range dates {
		balance = balance.Add(nets[date])
		label := date
		if t, err := time.Parse(dateLayout, date); err == nil {
			label = t.Format("Jan 2")
		}
		points = append(points, Point{Label: label, Balance: balance})
	}
	return points
}

func monthlySeries(start decimal.Decimal, nets map[string]decimal.Decimal, now time.Time) []Point {
	points := []Point{{Label: StartingLabel, Balance: start}}
	balance := start

	// Walk the last 12 months oldest-first; months without activity
	// contribute no point and no change.
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		first := month.Format(dateLayout)
		last := month.AddDate(0, 1, -1).Format(dateLayout)

		net := decimal.Zero
		active := false
		for date, n := range nets {
			if date >= first && date <= last {
				net = net.Add(n)
				active = true
			}
		}
		if !active {
			continue
		}

		balance = balance.Add(net)
		points = append(points, Point{Label: month.Format("Jan 06"), Balance: balance})
	}
	return points
}
