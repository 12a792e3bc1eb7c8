package journal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fxtrader/fxjournal/ledger"
	"github.com/fxtrader/fxjournal/pkg/id"
)

// TradeInput carries the fields of a new trade. CustomStrategy, when set,
// overrides Strategy so users can journal setups outside the preset list.
type TradeInput struct {
	Date           string
	Time           string
	TradeNumber    int
	Pair           string
	Strategy       string
	CustomStrategy string
	PnL            decimal.Decimal
	Notes          string
}

// CashInput carries the fields of a new deposit or withdrawal. Amount must
// be positive; the operation decides the direction.
type CashInput struct {
	Date   string
	Time   string
	Broker string
	Amount decimal.Decimal
	Notes  string
}

// RecordTrade validates the input, enforces the per-day cap, prepends the
// trade, adjusts the balance and persists. The ledger is untouched on any
// validation or cap failure.
func (s *Session) RecordTrade(in TradeInput) (ledger.Trade, error) {
	if err := validDate(in.Date); err != nil {
		return ledger.Trade{}, err
	}
	if err := validTime(in.Time); err != nil {
		return ledger.Trade{}, err
	}
	if in.TradeNumber <= 0 {
		return ledger.Trade{}, invalid("trade number", "must be a positive ordinal")
	}
	if strings.TrimSpace(in.Pair) == "" {
		return ledger.Trade{}, invalid("pair", "must not be empty")
	}
	strategy := in.Strategy
	if s := strings.TrimSpace(in.CustomStrategy); s != "" {
		strategy = s
	}
	if strings.TrimSpace(strategy) == "" {
		return ledger.Trade{}, invalid("strategy", "must not be empty")
	}

	if len(s.ledger.TradesOn(in.Date)) >= MaxTradesPerDay {
		return ledger.Trade{}, ErrDailyLimitExceeded
	}

	t := ledger.Trade{
		ID:          id.New(),
		Date:        in.Date,
		Time:        in.Time,
		TradeNumber: in.TradeNumber,
		Pair:        in.Pair,
		Strategy:    strategy,
		PnL:         in.PnL,
		Notes:       notesOrDefault(in.Notes),
	}

	s.ledger.PrependTrade(t)
	s.balance = s.balance.Add(t.PnL)

	return t, s.Persist()
}

// RecordDeposit credits the account. Balance snapshots are captured around
// the credit and stored on the transaction permanently.
func (s *Session) RecordDeposit(in CashInput) (ledger.CashTransaction, error) {
	if err := s.validCash(in); err != nil {
		return ledger.CashTransaction{}, err
	}

	before := s.balance
	s.balance = s.balance.Add(in.Amount)

	c := ledger.CashTransaction{
		ID:            id.New(),
		Date:          in.Date,
		Time:          in.Time,
		Broker:        in.Broker,
		Amount:        in.Amount,
		Kind:          ledger.Deposit,
		Notes:         notesOrDefault(in.Notes),
		BalanceBefore: before,
		BalanceAfter:  s.balance,
	}
	s.ledger.PrependTransaction(c)

	return c, s.Persist()
}

// RecordWithdrawal debits the account. A withdrawal larger than the current
// balance is rejected with ErrInsufficientFunds and nothing changes.
func (s *Session) RecordWithdrawal(in CashInput) (ledger.CashTransaction, error) {
	if err := s.validCash(in); err != nil {
		return ledger.CashTransaction{}, err
	}
	if in.Amount.GreaterThan(s.balance) {
		return ledger.CashTransaction{}, ErrInsufficientFunds
	}

	before := s.balance
	s.balance = s.balance.Sub(in.Amount)

	c := ledger.CashTransaction{
		ID:            id.New(),
		Date:          in.Date,
		Time:          in.Time,
		Broker:        in.Broker,
		Amount:        in.Amount,
		Kind:          ledger.Withdrawal,
		Notes:         notesOrDefault(in.Notes),
		BalanceBefore: before,
		BalanceAfter:  s.balance,
	}
	s.ledger.PrependTransaction(c)

	return c, s.Persist()
}

// DeleteTrade removes the trade and reverses its P&L. A missing id is a
// successful no-op, so deleting twice is safe.
func (s *Session) DeleteTrade(tradeID string) error {
	t, ok := s.ledger.RemoveTrade(tradeID)
	if !ok {
		return nil
	}
	s.balance = s.balance.Sub(t.PnL)
	return s.Persist()
}

// DeleteTransaction removes the transaction and reverses its balance effect.
// Snapshots on later transactions are left as recorded; they are history,
// not derived state.
func (s *Session) DeleteTransaction(txID string) error {
	c, ok := s.ledger.RemoveTransaction(txID)
	if !ok {
		return nil
	}
	s.balance = s.balance.Sub(c.Signed())
	return s.Persist()
}

// RecordGoal saves a free-text goal dated today. Whitespace-only content is
// rejected.
func (s *Session) RecordGoal(content string) (ledger.Goal, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return ledger.Goal{}, invalid("goal", "must not be empty")
	}

	g := ledger.Goal{
		ID:      id.New(),
		Date:    s.Today(),
		Content: content,
	}
	s.ledger.PrependGoal(g)

	return g, s.Persist()
}

// DeleteGoal removes a goal. No balance effect; missing ids are a no-op.
func (s *Session) DeleteGoal(goalID string) error {
	if !s.ledger.RemoveGoal(goalID) {
		return nil
	}
	return s.Persist()
}

// Reset clears every record and zeroes both balances. Irreversible; the CLI
// asks for confirmation before calling this.
func (s *Session) Reset() error {
	s.ledger.Reset()
	s.balance = decimal.Zero
	return s.Persist()
}

func (s *Session) validCash(in CashInput) error {
	if err := validDate(in.Date); err != nil {
		return err
	}
	if err := validTime(in.Time); err != nil {
		return err
	}
	if strings.TrimSpace(in.Broker) == "" {
		return invalid("broker", "must not be empty")
	}
	if !in.Amount.IsPositive() {
		return invalid("amount", "must be greater than zero")
	}
	return nil
}

// validDate insists on zero-padded ISO dates. Date strings are compared
// lexicographically throughout the stats engine, which is only chronological
// when the width is fixed.
func validDate(date string) error {
	t, err := time.Parse("2006-01-02", date)
	if err != nil || t.Format("2006-01-02") != date {
		return invalid("date", "must be YYYY-MM-DD")
	}
	return nil
}

func validTime(hm string) error {
	t, err := time.Parse("15:04", hm)
	if err != nil || t.Format("15:04") != hm {
		return invalid("time", "must be HH:MM")
	}
	return nil
}

func notesOrDefault(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return DefaultNotes
	}
	return notes
}
