// Package ledger holds the journal's record collections and the pure
// balance fold derived from them.
package ledger

import (
	"github.com/shopspring/decimal"
)

// Kind distinguishes the two cash transaction directions. The amount on a
// CashTransaction is always positive; the kind carries the sign.
type Kind string

const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
)

// Trade is a single closed trade as entered by the user.
type Trade struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Time        string          `json:"time"` // HH:MM
	TradeNumber int             `json:"tradeNumber"`
	Pair        string          `json:"pair"`
	Strategy    string          `json:"strategy"`
	PnL         decimal.Decimal `json:"pnl"`
	Notes       string          `json:"notes"`
}

// CashTransaction is a deposit or withdrawal. BalanceBefore/BalanceAfter are
// snapshots taken when the transaction was recorded; they are historical
// facts and are never recomputed when earlier records are deleted.
type CashTransaction struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Broker        string          `json:"broker"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          Kind            `json:"type"`
	Notes         string          `json:"notes"`
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
}

// Signed returns the amount with the direction applied: positive for
// deposits, negative for withdrawals.
func (c CashTransaction) Signed() decimal.Decimal {
	if c.Kind == Withdrawal {
		return c.Amount.Neg()
	}
	return c.Amount
}

// Goal is a free-text journal entry, unrelated to the balance.
type Goal struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// Ledger is the aggregate of all records for one user. Collections are kept
// newest-first: new records are prepended.
type Ledger struct {
	Trades          []Trade
	Transactions    []CashTransaction
	Goals           []Goal
	StartingBalance decimal.Decimal
}

// New returns an empty ledger with a zero starting balance.
func New() *Ledger {
	return &Ledger{StartingBalance: decimal.Zero}
}

// Balance recomputes the account balance from scratch:
// startingBalance + sum of trade P&L + sum of signed cash amounts.
// It is the source of truth; any incrementally tracked balance must agree.
func (l *Ledger) Balance() decimal.Decimal {
	b := l.StartingBalance
	for _, t := range l.Trades {
		b = b.Add(t.PnL)
	}
	for _, c := range l.Transactions {
		b = b.Add(c.Signed())
	}
	return b
}

// TradesOn returns the trades recorded for an exact calendar date.
func (l *Ledger) TradesOn(date string) []Trade {
	var out []Trade
	for _, t := range l.Trades {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsOn returns the cash transactions recorded for an exact date.
func (l *Ledger) TransactionsOn(date string) []CashTransaction {
	var out []CashTransaction
	for _, c := range l.Transactions {
		if c.Date == date {
			out = append(out, c)
		}
	}
	return out
}

// PrependTrade inserts a trade at the head of the collection.
func (l *Ledger) PrependTrade(t Trade) {
	l.Trades = append([]Trade{t}, l.Trades...)
}

// PrependTransaction inserts a cash transaction at the head of the collection.
func (l *Ledger) PrependTransaction(c CashTransaction) {
	l.Transactions = append([]CashTransaction{c}, l.Transactions...)
}

// PrependGoal inserts a goal at the head of the collection.
func (l *Ledger) PrependGoal(g Goal) {
	l.Goals = append([]Goal{g}, l.Goals...)
}

// RemoveTrade deletes the trade with the given id and returns it. The second
// return is false when no trade matched; callers treat that as a no-op.
func (l *Ledger) RemoveTrade(id string) (Trade, bool) {
	for i, t := range l.Trades {
		if t.ID == id {
			l.Trades = append(l.Trades[:i], l.Trades[i+1:]...)
			return t, true
		}
	}
	return Trade{}, false
}

// RemoveTransaction deletes the transaction with the given id and returns it.
func (l *Ledger) RemoveTransaction(id string) (CashTransaction, bool) {
	for i, c := range l.Transactions {
		if c.ID == id {
			l.Transactions = append(l.Transactions[:i], l.Transactions[i+1:]...)
			return c, true
		}
	}
	return CashTransaction{}, false
}

// RemoveGoal deletes the goal with the given id.
func (l *Ledger) RemoveGoal(id string) bool {
	for i, g := range l.Goals {
		if g.ID == id {
			l.Goals = append(l.Goals[:i], l.Goals[i+1:]...)
			return true
		}
	}
	return false
}

// Reset clears every collection and zeroes the starting balance.
func (l *Ledger) Reset() {
	l.Trades = nil
	l.Transactions = nil
	l.Goals = nil
	l.StartingBalance = decimal.Zero
}
