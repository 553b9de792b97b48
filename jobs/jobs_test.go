package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu         sync.Mutex
	expiredAt  []time.Time
	staleUntil []time.Time
	err        error
}

func (f *fakeStore) DeactivateExpiredPromotions(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expiredAt = append(f.expiredAt, now)
	return 2, f.err
}

func (f *fakeStore) CancelStaleTransactions(_ context.Context, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staleUntil = append(f.staleUntil, before)
	return 1, f.err
}

func newRunner(store Store) *Runner {
	r := New(store, nil)
	r.now = func() time.Time { return time.Date(2026, time.March, 2, 0, 5, 0, 0, time.UTC) }
	return r
}

func TestExpirePromotionsUsesCurrentTime(t *testing.T) {
	store := &fakeStore{}
	newRunner(store).ExpirePromotions(context.Background())

	require.Len(t, store.expiredAt, 1)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 5, 0, 0, time.UTC), store.expiredAt[0])
}

func TestCancelStaleOrdersCutoff(t *testing.T) {
	store := &fakeStore{}
	newRunner(store).CancelStaleOrders(context.Background())

	require.Len(t, store.staleUntil, 1)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 5, 0, 0, time.UTC), store.staleUntil[0])
}

func TestJobsSurviveStoreErrors(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	r := newRunner(store)

	assert.NotPanics(t, func() {
		r.ExpirePromotions(context.Background())
		r.CancelStaleOrders(context.Background())
	})
}

func TestPromotionSweepSpec(t *testing.T) {
	schedule, err := cron.ParseStandard(PromotionSweepSpec)
	require.NoError(t, err)

	from := time.Date(2026, time.March, 2, 10, 2, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 2, 10, 5, 0, 0, time.UTC), schedule.Next(from))
}

func TestRunStopsWithContext(t *testing.T) {
	store := &fakeStore{}
	r := newRunner(store)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// the startup sweep runs before Run blocks
	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.expiredAt) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
