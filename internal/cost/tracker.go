// Package cost accumulates a running daily USD cost counter.
//
// Tracking is advisory telemetry, never load-bearing: a missing counter
// store makes every operation a silent no-op, and the read-add-write cycle
// is intentionally not atomic. Concurrent requests on the same day can lose
// increments; the counter is not billing-grade and this is accepted.
package cost

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jukeyman/jams-api/internal/catalog"
	"github.com/jukeyman/jams-api/internal/provider"
)

// counterTTL is reset on every write, so an entry expires 30 days after the
// last cost-bearing call, not the first.
const counterTTL = 30 * 24 * time.Hour

// CounterStore is the key-value capability the tracker writes through.
// Get returns an empty string for unset keys.
type CounterStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
}

// Tracker merges per-call cost increments into a day-keyed counter.
type Tracker struct {
	store CounterStore
}

// NewTracker creates a cost tracker. A nil store disables tracking.
func NewTracker(store CounterStore) *Tracker {
	return &Tracker{store: store}
}

// Available reports whether a counter store is configured.
func (t *Tracker) Available() bool {
	return t != nil && t.store != nil
}

// dayKey returns the counter key for a UTC calendar date.
func dayKey(now time.Time) string {
	return "cost:" + now.UTC().Format("2006-01-02")
}

// Increment computes the USD cost of a call from its token usage and model.
func Increment(usage provider.Usage, modelID string) float64 {
	price := catalog.PricePerMillion(modelID)
	return float64(usage.TotalTokens()) / 1_000_000 * price
}

// Record adds the cost of one call to the current day's counter. It is a
// no-op without a store. The read-modify-write is not atomic (see package
// doc).
func (t *Tracker) Record(ctx context.Context, usage provider.Usage, modelID string) error {
	if !t.Available() {
		return nil
	}

	key := dayKey(time.Now())
	current, err := t.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("cost: reading counter %q: %w", key, err)
	}

	total := parseCounter(current) + Increment(usage, modelID)
	if err := t.store.Put(ctx, key, strconv.FormatFloat(total, 'f', -1, 64), counterTTL); err != nil {
		return fmt.Errorf("cost: writing counter %q: %w", key, err)
	}
	return nil
}

// Today returns the accumulated cost for the current UTC date, 0 when unset
// or when no store is configured.
func (t *Tracker) Today(ctx context.Context) (float64, error) {
	if !t.Available() {
		return 0, nil
	}

	val, err := t.store.Get(ctx, dayKey(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("cost: reading today's counter: %w", err)
	}
	return parseCounter(val), nil
}

// parseCounter treats unset or malformed values as zero.
func parseCounter(val string) float64 {
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}
