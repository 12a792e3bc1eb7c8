package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is a minimal in-memory KV for store tests. The storage package has
// its own implementation; a local one keeps this package dependency-free.
type memKV struct {
	m      map[string]string
	getErr error
	setErr error
}

func newMemKV() *memKV {
	return &memKV{m: make(map[string]string)}
}

func (kv *memKV) Get(key string) (string, bool, error) {
	if kv.getErr != nil {
		return "", false, kv.getErr
	}
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *memKV) Set(key, value string) error {
	if kv.setErr != nil {
		return kv.setErr
	}
	kv.m[key] = value
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	s := NewStore(kv)

	l := New()
	l.StartingBalance = d("1000")
	l.PrependTrade(Trade{ID: "t1", Date: "2024-01-01", Time: "09:30", TradeNumber: 1, Pair: "EUR/USD", Strategy: "breakout", PnL: d("-200"), Notes: "stopped out"})
	l.PrependTransaction(CashTransaction{
		ID: "c1", Date: "2024-01-01", Time: "08:00", Broker: "IC Markets",
		Amount: d("500"), Kind: Deposit, Notes: "No notes provided",
		BalanceBefore: d("1000"), BalanceAfter: d("1500"),
	})
	l.PrependGoal(Goal{ID: "g1", Date: "2024-01-01", Content: "no revenge trades"})

	require.NoError(t, s.Persist(l))

	got := s.Load()
	require.Len(t, got.Trades, 1)
	require.Len(t, got.Transactions, 1)
	require.Len(t, got.Goals, 1)

	assert.Equal(t, l.Trades[0].ID, got.Trades[0].ID)
	assert.True(t, got.Trades[0].PnL.Equal(d("-200")))
	assert.Equal(t, Deposit, got.Transactions[0].Kind)
	assert.True(t, got.Transactions[0].BalanceAfter.Equal(d("1500")))
	assert.Equal(t, "no revenge trades", got.Goals[0].Content)
	assert.True(t, got.StartingBalance.Equal(d("1000")))
	assert.True(t, got.Balance().Equal(l.Balance()))
}

func TestLoadEmptyStore(t *testing.T) {
	t.Parallel()

	s := NewStore(newMemKV())
	l := s.Load()

	assert.Empty(t, l.Trades)
	assert.Empty(t, l.Transactions)
	assert.Empty(t, l.Goals)
	assert.True(t, l.StartingBalance.IsZero())
}

func TestLoadMalformedRecordsFailSoft(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	kv.m["trades"] = "{not json"
	kv.m["transactions"] = `[{"id":"c1","amount":"25","type":"withdrawal"}]`
	kv.m["goals"] = "42"
	kv.m["startingBalance"] = "one hundred"

	l := NewStore(kv).Load()

	// Bad records are dropped, good ones survive.
	assert.Empty(t, l.Trades)
	require.Len(t, l.Transactions, 1)
	assert.Empty(t, l.Goals)
	assert.True(t, l.StartingBalance.IsZero())
	assert.Equal(t, "-25.00", l.Balance().StringFixed(2))
}

func TestLoadReadErrorFailSoft(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	kv.getErr = errors.New("disk gone")

	l := NewStore(kv).Load()
	assert.NotNil(t, l)
	assert.True(t, l.Balance().IsZero())
}

func TestPersistSurfacesWriteError(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	kv.setErr = errors.New("disk full")

	err := NewStore(kv).Persist(New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSeedStartingBalance(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	s := NewStore(kv)

	require.NoError(t, s.SeedStartingBalance(d("2500")))
	assert.True(t, s.Load().StartingBalance.Equal(d("2500")))

	// A second seed must not override persisted state.
	require.NoError(t, s.SeedStartingBalance(d("9999")))
	assert.True(t, s.Load().StartingBalance.Equal(d("2500")))
}
