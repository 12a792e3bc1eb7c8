package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fxtrader/fxjournal/ledger"
)

// WriteTradesCSV writes a header row followed by one row per trade, in
// ledger order (newest first).
func WriteTradesCSV(w io.Writer, trades []ledger.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "date", "time", "trade_number", "pair", "strategy", "pnl", "notes"}); err != nil {
		return err
	}
	for _, t := range trades {
		if err := cw.Write([]string{
			t.ID,
			t.Date,
			t.Time,
			strconv.Itoa(t.TradeNumber),
			t.Pair,
			t.Strategy,
			t.PnL.StringFixed(2),
			t.Notes,
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTransactionsCSV writes the cash transactions with their recorded
// balance snapshots.
func WriteTransactionsCSV(w io.Writer, txs []ledger.CashTransaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "date", "time", "kind", "broker", "amount", "balance_before", "balance_after", "notes"}); err != nil {
		return err
	}
	for _, c := range txs {
		if err := cw.Write([]string{
			c.ID,
			c.Date,
			c.Time,
			string(c.Kind),
			c.Broker,
			c.Amount.StringFixed(2),
			c.BalanceBefore.StringFixed(2),
			c.BalanceAfter.StringFixed(2),
			c.Notes,
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
