// Package journal is the mutation API over the ledger: every record is
// created and deleted through a Session, which enforces the daily trade cap,
// the overdraft check and input validation, and keeps its running balance in
// step with each edit.
package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fxtrader/fxjournal/ledger"
)

// MaxTradesPerDay is a product rule, not a technical limit: the journal
// refuses a fifth trade on any single calendar date.
const MaxTradesPerDay = 4

// DefaultNotes fills the notes field when the user leaves it blank.
const DefaultNotes = "No notes provided"

// Clock supplies the current time. Injected so goal dates and "today"
// statistics are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Session owns the loaded ledger for the lifetime of one process. The
// running balance is updated incrementally by each mutation and always
// equals Ledger.Balance(); it exists so callers do not refold the ledger
// after every edit.
type Session struct {
	store   *ledger.Store
	ledger  *ledger.Ledger
	balance decimal.Decimal
	clock   Clock
}

// Open loads the ledger from the store and computes the balance from
// scratch. A nil clock defaults to the system clock.
func Open(store *ledger.Store, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	l := store.Load()
	return &Session{
		store:   store,
		ledger:  l,
		balance: l.Balance(),
		clock:   clock,
	}
}

// Ledger exposes the underlying records for read-only consumers (stats,
// calendar, reports). Mutate only through the Session.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Balance returns the running account balance.
func (s *Session) Balance() decimal.Decimal {
	return s.balance
}

// Today returns the clock's current date as a zero-padded ISO string.
func (s *Session) Today() string {
	return s.clock.Now().Format("2006-01-02")
}

// Persist retries the full-ledger save. Used after a mutation returned a
// StorageError; the in-memory state is already correct.
func (s *Session) Persist() error {
	if err := s.store.Persist(s.ledger); err != nil {
		return &StorageError{Err: err}
	}
	return nil
}
