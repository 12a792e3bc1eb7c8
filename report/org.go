// Package report renders ledger query results for export: Org-mode blocks
// for pasting into a text journal, and CSV files for spreadsheets.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fxtrader/fxjournal/ledger"
)

// FormatTradeOrg renders a trade as an Org-mode block. Structured facts go
// in a PROPERTIES drawer for easy search; the narrative placeholders are for
// the trader to fill in by hand.
func FormatTradeOrg(t ledger.Trade) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Trade: %s (%s)\n", t.Pair, shortID(t.ID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":DATE: %s %s\n", t.Date, t.Time))
	b.WriteString(fmt.Sprintf(":TRADE_NUMBER: %d\n", t.TradeNumber))
	b.WriteString(fmt.Sprintf(":PAIR: %s\n", t.Pair))
	b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", t.Strategy))
	b.WriteString(fmt.Sprintf(":PNL: %s\n", money(t.PnL)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("*** Notes\n- %s\n\n", t.Notes))
	b.WriteString("*** Review\n- \n")
	return b.String()
}

// FormatTransactionOrg renders a deposit or withdrawal as a receipt block,
// including the balance snapshots captured when it was recorded.
func FormatTransactionOrg(c ledger.CashTransaction) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("** %s: %s (%s)\n", title(c.Kind), c.Broker, shortID(c.ID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", c.ID))
	b.WriteString(fmt.Sprintf(":DATE: %s %s\n", c.Date, c.Time))
	b.WriteString(fmt.Sprintf(":BROKER: %s\n", c.Broker))
	b.WriteString(fmt.Sprintf(":AMOUNT: %s\n", money(c.Amount)))
	b.WriteString(fmt.Sprintf(":BALANCE_BEFORE: %s\n", money(c.BalanceBefore)))
	b.WriteString(fmt.Sprintf(":BALANCE_AFTER: %s\n", money(c.BalanceAfter)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("*** Notes\n- %s\n", c.Notes))
	return b.String()
}

// FormatCashReportOrg renders the deposits & withdrawals report: every cash
// transaction with its balance snapshots, plus account totals. Snapshots on
// surviving records may predate later deletions; they are reported as
// recorded.
func FormatCashReportOrg(l *ledger.Ledger) string {
	var deposits, withdrawals []ledger.CashTransaction
	for _, c := range l.Transactions {
		if c.Kind == ledger.Deposit {
			deposits = append(deposits, c)
		} else {
			withdrawals = append(withdrawals, c)
		}
	}

	balance := l.Balance()

	var b strings.Builder
	b.WriteString("* Deposits & Withdrawals Report\n")
	b.WriteString(fmt.Sprintf("- Account Balance :: %s\n", money(balance)))
	b.WriteString(fmt.Sprintf("- Starting Balance :: %s\n", money(l.StartingBalance)))
	b.WriteString(fmt.Sprintf("- Net Growth :: %s\n", money(balance.Sub(l.StartingBalance))))
	b.WriteString("\n")

	writeSection(&b, fmt.Sprintf("** Deposits (%d)", len(deposits)), deposits)
	writeSection(&b, fmt.Sprintf("** Withdrawals (%d)", len(withdrawals)), withdrawals)

	b.WriteString(fmt.Sprintf("- Total Deposited :: %s\n", money(total(deposits))))
	b.WriteString(fmt.Sprintf("- Total Withdrawn :: %s\n", money(total(withdrawals))))
	return b.String()
}

func writeSection(b *strings.Builder, heading string, txs []ledger.CashTransaction) {
	b.WriteString(heading)
	b.WriteString("\n")
	for _, c := range txs {
		b.WriteString(fmt.Sprintf("- %s %s | %s | %s | %s -> %s\n",
			c.Date, c.Time, c.Broker, money(c.Amount),
			money(c.BalanceBefore), money(c.BalanceAfter)))
	}
	b.WriteString("\n")
}

func total(txs []ledger.CashTransaction) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range txs {
		sum = sum.Add(c.Amount)
	}
	return sum
}

func title(k ledger.Kind) string {
	if k == ledger.Deposit {
		return "Deposit"
	}
	return "Withdrawal"
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
