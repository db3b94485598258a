package catalog

import (
	"context"
	"time"
)

// Ledger records component usage events.
type Ledger struct {
	counters CounterStore
	now      func() time.Time
}

// NewLedger returns a ledger writing through counters.
func NewLedger(counters CounterStore) *Ledger {
	return &Ledger{counters: counters, now: time.Now}
}

// RecordUse counts one use of component. hadActiveQuery marks a use that happened
// while a search term was active, which also counts towards the query counter.
// LastUsed is always moved to the current time.
func (l *Ledger) RecordUse(ctx context.Context, component Component, hadActiveQuery bool) (Counters, error) {
	delta := CounterDelta{Usage: 1}
	if hadActiveQuery {
		delta.Query = 1
	}

	counters, err := l.counters.IncrementCounters(ctx, component.ID, delta, l.now().UTC())
	if err != nil {
		return Counters{}, storeError("increment counters", err)
	}
	return counters, nil
}
