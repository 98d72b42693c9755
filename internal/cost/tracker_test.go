package cost

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jukeyman/jams-api/internal/provider"
)

// memStore is an in-memory CounterStore for tests.
type memStore struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *memStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func TestIncrement(t *testing.T) {
	usage := provider.Usage{"total_tokens": float64(2_000_000)}
	got := Increment(usage, "deepseek/deepseek-chat")
	if math.Abs(got-0.00028) > 1e-9 {
		t.Errorf("Increment = %v, expected 0.00028", got)
	}
}

func TestIncrement_UnknownModelUsesFallbackRate(t *testing.T) {
	usage := provider.Usage{"total_tokens": float64(1_000_000)}
	got := Increment(usage, "no-such-model")
	if math.Abs(got-0.0001) > 1e-9 {
		t.Errorf("Increment = %v, expected the fallback rate 0.0001", got)
	}
}

func TestRecordAccumulates(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store)
	ctx := context.Background()
	usage := provider.Usage{"total_tokens": float64(1_000_000)}

	if err := tr.Record(ctx, usage, "deepseek/deepseek-chat"); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := tr.Record(ctx, usage, "deepseek/deepseek-chat"); err != nil {
		t.Fatalf("second record: %v", err)
	}

	today, err := tr.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if math.Abs(today-0.00028) > 1e-9 {
		t.Errorf("expected two increments to accumulate to 0.00028, got %v", today)
	}
}

func TestRecordResetsTTL(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store)

	usage := provider.Usage{"total_tokens": float64(100)}
	if err := tr.Record(context.Background(), usage, "deepseek/deepseek-chat"); err != nil {
		t.Fatalf("record: %v", err)
	}

	key := dayKey(time.Now())
	if store.ttls[key] != counterTTL {
		t.Errorf("expected 30-day TTL on write, got %v", store.ttls[key])
	}
}

func TestTodayZeroWhenUnset(t *testing.T) {
	tr := NewTracker(newMemStore())
	today, err := tr.Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today != 0 {
		t.Errorf("expected 0 for unset counter, got %v", today)
	}
}

func TestTrackerNoStoreIsNoop(t *testing.T) {
	tr := NewTracker(nil)
	if tr.Available() {
		t.Error("tracker without a store must report unavailable")
	}
	if err := tr.Record(context.Background(), provider.Usage{"total_tokens": float64(10)}, "m"); err != nil {
		t.Errorf("record without a store must be a no-op, got %v", err)
	}
	today, err := tr.Today(context.Background())
	if err != nil || today != 0 {
		t.Errorf("today without a store must be (0, nil), got (%v, %v)", today, err)
	}
}

func TestParseCounter(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"", 0},
		{"0.5", 0.5},
		{"garbage", 0},
		{"1e-3", 0.001},
	}

	for _, tt := range tests {
		if got := parseCounter(tt.input); got != tt.expected {
			t.Errorf("parseCounter(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestDayKeyIsUTCDate(t *testing.T) {
	ts := time.Date(2025, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	if got := dayKey(ts); got != "cost:2025-03-10" {
		t.Errorf("dayKey must use the UTC date, got %q", got)
	}
}
