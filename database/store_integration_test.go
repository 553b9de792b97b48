//go:build integration
// +build integration

package database

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("restaurant"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewStore(db)
}

func TestStoreIntegration(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("concurrent RSVPs never overshoot capacity", func(t *testing.T) {
		event := &model.Event{Title: "Wine night", Date: utils.NewDate(time.Now().AddDate(0, 0, 7)), Time: "19:00", Capacity: utils.Ptr(5)}
		require.NoError(t, store.CreateEvent(ctx, event))

		var accepted, full atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.CreateRSVP(ctx, &model.EventRSVP{EventId: event.ID, Name: "guest", Email: "g@example.com", Guests: 1})
				switch err {
				case nil:
					accepted.Add(1)
				case ErrEventFull:
					full.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), accepted.Load())
		assert.Equal(t, int32(5), full.Load())
	})

	t.Run("RSVP for unknown event", func(t *testing.T) {
		err := store.CreateRSVP(ctx, &model.EventRSVP{EventId: 999999, Name: "x", Email: "x@example.com", Guests: 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleting an event removes its RSVPs", func(t *testing.T) {
		event := &model.Event{Title: "Jazz brunch", Date: utils.NewDate(time.Now()), Time: "11:00"}
		require.NoError(t, store.CreateEvent(ctx, event))
		rsvp := &model.EventRSVP{EventId: event.ID, Name: "a", Email: "a@example.com", Guests: 2}
		require.NoError(t, store.CreateRSVP(ctx, rsvp))

		require.NoError(t, store.DeleteEvent(ctx, event.ID))
		_, err := store.GetRSVP(ctx, rsvp.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("one live reservation per slot", func(t *testing.T) {
		date := utils.NewDate(time.Now().AddDate(0, 0, 3))

		var booked atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.CreateReservation(ctx, &model.Reservation{Name: "n", Email: "n@example.com", Phone: "5551234", Date: date, Time: "19:00", Guests: 2})
				if err == nil {
					booked.Add(1)
				} else if err != ErrSlotTaken {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), booked.Load())

		slots, err := store.BookedSlots(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, []string{"19:00"}, slots)
	})

	t.Run("cancelled reservation frees its slot", func(t *testing.T) {
		date := utils.NewDate(time.Now().AddDate(0, 0, 4))
		first := &model.Reservation{Name: "a", Email: "a@example.com", Phone: "5551234", Date: date, Time: "12:00", Guests: 2}
		require.NoError(t, store.CreateReservation(ctx, first))

		_, err := store.UpdateReservationStatus(ctx, first.ID, constants.STATUS_CANCELLED)
		require.NoError(t, err)

		second := &model.Reservation{Name: "b", Email: "b@example.com", Phone: "5554321", Date: date, Time: "12:00", Guests: 4}
		require.NoError(t, store.CreateReservation(ctx, second))

		_, err = store.UpdateReservationStatus(ctx, first.ID, constants.STATUS_CONFIRMED)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("promotion codes are unique and soft deleted", func(t *testing.T) {
		promo := &model.Promotion{Title: "Save", DiscountAmount: "20%", Code: "save20", ValidUntil: time.Now().Add(time.Hour), IsActive: true}
		require.NoError(t, store.CreatePromotion(ctx, promo))
		assert.Equal(t, "SAVE20", promo.Code)

		dup := &model.Promotion{Title: "Again", DiscountAmount: "5", Code: "Save20", ValidUntil: time.Now().Add(time.Hour), IsActive: true}
		assert.ErrorIs(t, store.CreatePromotion(ctx, dup), ErrDuplicateCode)

		_, err := store.DeactivatePromotion(ctx, promo.ID)
		require.NoError(t, err)

		got, err := store.GetPromotion(ctx, promo.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		active, _, err := store.ListActivePromotions(ctx, model.Pagination{})
		require.NoError(t, err)
		for _, p := range active {
			assert.NotEqual(t, promo.ID, p.ID)
		}
	})

	t.Run("stale pending transactions are cancelled", func(t *testing.T) {
		txn := &model.Transaction{OrderNumber: "ORDTEST1", Items: model.CartItems{{Name: "Soup", Quantity: 1}}, PaymentMethod: "cash", CustomerName: "c", CustomerEmail: "c@example.com"}
		require.NoError(t, store.CreateTransaction(ctx, txn))

		n, err := store.CancelStaleTransactions(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))

		got, err := store.GetTransaction(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, constants.STATUS_CANCELLED, got.Status)
		assert.Equal(t, "Soup", got.Items[0].Name)
	})
}
