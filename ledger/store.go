package ledger

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// KV is the persistence collaborator: a flat key-value store of text values.
// The second return from Get reports whether the key was present.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Storage keys. One logical record per collection.
const (
	tradesKey          = "trades"
	transactionsKey    = "transactions"
	goalsKey           = "goals"
	startingBalanceKey = "startingBalance"
)

// Store loads and persists a Ledger through a KV collaborator.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads the full ledger. Load fails soft: a missing or malformed record
// is logged and replaced by its empty value, never surfaced as an error. The
// returned ledger is always usable.
func (s *Store) Load() *Ledger {
	l := New()

	if raw, ok := s.get(tradesKey); ok {
		if err := json.Unmarshal([]byte(raw), &l.Trades); err != nil {
			log.Printf("ledger: discarding malformed trades record: %v", err)
			l.Trades = nil
		}
	}
	if raw, ok := s.get(transactionsKey); ok {
		if err := json.Unmarshal([]byte(raw), &l.Transactions); err != nil {
			log.Printf("ledger: discarding malformed transactions record: %v", err)
			l.Transactions = nil
		}
	}
	if raw, ok := s.get(goalsKey); ok {
		if err := json.Unmarshal([]byte(raw), &l.Goals); err != nil {
			log.Printf("ledger: discarding malformed goals record: %v", err)
			l.Goals = nil
		}
	}
	if raw, ok := s.get(startingBalanceKey); ok {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			log.Printf("ledger: discarding malformed starting balance %q: %v", raw, err)
			d = decimal.Zero
		}
		l.StartingBalance = d
	}

	return l
}

func (s *Store) get(key string) (string, bool) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Printf("ledger: read %s: %v", key, err)
		return "", false
	}
	return raw, ok
}

// SeedStartingBalance writes the starting balance only when none has ever
// been persisted, so a configured first-run balance never overrides stored
// state.
func (s *Store) SeedStartingBalance(d decimal.Decimal) error {
	if _, ok, err := s.kv.Get(startingBalanceKey); err != nil || ok {
		return err
	}
	if err := s.kv.Set(startingBalanceKey, d.String()); err != nil {
		return fmt.Errorf("write %s: %w", startingBalanceKey, err)
	}
	return nil
}

// Persist writes the full ledger back, one key per collection. The whole
// ledger is written on every call; there are no partial writes.
func (s *Store) Persist(l *Ledger) error {
	if err := s.setJSON(tradesKey, l.Trades); err != nil {
		return err
	}
	if err := s.setJSON(transactionsKey, l.Transactions); err != nil {
		return err
	}
	if err := s.setJSON(goalsKey, l.Goals); err != nil {
		return err
	}
	if err := s.kv.Set(startingBalanceKey, l.StartingBalance.String()); err != nil {
		return fmt.Errorf("write %s: %w", startingBalanceKey, err)
	}
	return nil
}

func (s *Store) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
