package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"tickethub/internal/domain"
)

// setupRepos starts a disposable Postgres, applies the goose migrations and
// returns repositories bound to it. The settlement transaction is pure SQL,
// so these tests run against the real thing rather than a fake.
func setupRepos(t *testing.T) (*EventRepository, *BookingRepository) {
	t.Helper()
	if testing.Short() {
		t.Skip("requires docker")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "tickethub",
			"POSTGRES_PASSWORD": "tickethub",
			"POSTGRES_DB":       "tickethub",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=tickethub password=tickethub dbname=tickethub sslmode=disable",
		host, port.Port(),
	)

	mig, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.Up(mig, "../../migrations"), "apply migrations")
	require.NoError(t, mig.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return NewEventRepo(db), NewBookingRepo(db)
}

func seedEvent(t *testing.T, repo *EventRepository, types ...domain.TicketType) *domain.Event {
	t.Helper()

	e := &domain.Event{
		ID:          uuid.New().String(),
		Title:       "Concert",
		Category:    "music",
		Venue:       "Arena",
		StartsAt:    time.Now().Add(72 * time.Hour).UTC(),
		TicketTypes: types,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func seedBooking(t *testing.T, repo *BookingRepository, eventID string, lines ...domain.TicketLine) *domain.Booking {
	t.Helper()

	now := time.Now().UTC()
	b := &domain.Booking{
		ID:               uuid.New().String(),
		BookingRef:       domain.NewBookingRef(),
		EventID:          eventID,
		BuyerID:          "u1",
		Lines:            lines,
		TotalAmountMinor: domain.TotalAmountMinor(lines),
		Contact: domain.AttendeeContact{
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "+911234567890",
		},
		Status:    domain.BookingStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Millisecond-based refs can collide between back-to-back seeds.
	for {
		err := repo.Create(context.Background(), b)
		if !errors.Is(err, domain.ErrBookingRefTaken) {
			require.NoError(t, err)
			return b
		}
		b.BookingRef = domain.NewBookingRef()
	}
}

func soldCount(t *testing.T, repo *EventRepository, eventID, typeName string) int {
	t.Helper()

	event, err := repo.GetByID(context.Background(), eventID)
	require.NoError(t, err)
	tt, ok := event.TicketType(typeName)
	require.True(t, ok, "ticket type %q", typeName)
	return tt.SoldCount
}

func TestBookingRepository_ConfirmPaid_LastTicketRace(t *testing.T) {
	eventRepo, bookingRepo := setupRepos(t)
	ctx := context.Background()

	event := seedEvent(t, eventRepo,
		domain.TicketType{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 1},
	)
	line := domain.TicketLine{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 1}
	first := seedBooking(t, bookingRepo, event.ID, line)
	second := seedBooking(t, bookingRepo, event.ID, line)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, b := range []*domain.Booking{first, second} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = bookingRepo.ConfirmPaid(ctx, id, "pay_"+id, "sig")
		}(i, b.ID)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientInventory)
	}
	assert.Equal(t, 1, won, "exactly one confirm may win the last ticket")

	assert.Equal(t, 1, soldCount(t, eventRepo, event.ID, "VIP"))

	got, err := eventRepo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AttendeeCount)
}

func TestBookingRepository_ConfirmPaid_PartialFailureRollsBack(t *testing.T) {
	eventRepo, bookingRepo := setupRepos(t)
	ctx := context.Background()

	event := seedEvent(t, eventRepo,
		domain.TicketType{TypeName: "General", UnitPriceMinor: 150000, TotalQuantity: 10},
		domain.TicketType{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 2},
	)
	// Lines decrement in type-name order: General succeeds, VIP exceeds the
	// pool, and the whole transaction must unwind.
	booking := seedBooking(t, bookingRepo, event.ID,
		domain.TicketLine{TypeName: "General", UnitPriceMinor: 150000, Quantity: 1},
		domain.TicketLine{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 3},
	)

	_, err := bookingRepo.ConfirmPaid(ctx, booking.ID, "pay_1", "sig")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)

	assert.Equal(t, 0, soldCount(t, eventRepo, event.ID, "General"))
	assert.Equal(t, 0, soldCount(t, eventRepo, event.ID, "VIP"))

	got, err := bookingRepo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCreated, got.Status)
	assert.Empty(t, got.PaymentRef)
}

func TestBookingRepository_ConfirmPaid_Replay(t *testing.T) {
	eventRepo, bookingRepo := setupRepos(t)
	ctx := context.Background()

	event := seedEvent(t, eventRepo,
		domain.TicketType{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 5},
	)
	booking := seedBooking(t, bookingRepo, event.ID,
		domain.TicketLine{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 2},
	)

	confirmed, err := bookingRepo.ConfirmPaid(ctx, booking.ID, "pay_1", "sig")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)

	replayed, err := bookingRepo.ConfirmPaid(ctx, booking.ID, "pay_1", "sig")
	require.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
	require.NotNil(t, replayed)
	assert.Equal(t, domain.BookingStatusConfirmed, replayed.Status)

	// No second decrement.
	assert.Equal(t, 2, soldCount(t, eventRepo, event.ID, "VIP"))
}

func TestBookingRepository_ConfirmPaid_MissingBooking(t *testing.T) {
	_, bookingRepo := setupRepos(t)

	_, err := bookingRepo.ConfirmPaid(context.Background(), uuid.New().String(), "pay_1", "sig")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_Cancel_DoesNotRestock(t *testing.T) {
	eventRepo, bookingRepo := setupRepos(t)
	ctx := context.Background()

	event := seedEvent(t, eventRepo,
		domain.TicketType{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 5},
	)
	booking := seedBooking(t, bookingRepo, event.ID,
		domain.TicketLine{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 2},
	)

	_, err := bookingRepo.ConfirmPaid(ctx, booking.ID, "pay_1", "sig")
	require.NoError(t, err)
	require.Equal(t, 2, soldCount(t, eventRepo, event.ID, "VIP"))

	require.NoError(t, bookingRepo.Cancel(ctx, booking.ID))

	got, err := bookingRepo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)

	// Seats stay sold.
	assert.Equal(t, 2, soldCount(t, eventRepo, event.ID, "VIP"))

	// Cancelled bookings never confirm afterwards.
	_, err = bookingRepo.ConfirmPaid(ctx, booking.ID, "pay_2", "sig")
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestBookingRepository_Create_DuplicateRef(t *testing.T) {
	eventRepo, bookingRepo := setupRepos(t)
	ctx := context.Background()

	event := seedEvent(t, eventRepo,
		domain.TicketType{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 5},
	)
	line := domain.TicketLine{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 1}
	first := seedBooking(t, bookingRepo, event.ID, line)

	dup := &domain.Booking{
		ID:               uuid.New().String(),
		BookingRef:       first.BookingRef,
		EventID:          event.ID,
		BuyerID:          "u2",
		Lines:            []domain.TicketLine{line},
		TotalAmountMinor: line.UnitPriceMinor,
		Contact:          first.Contact,
		Status:           domain.BookingStatusCreated,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}

	err := bookingRepo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrBookingRefTaken)
}

func TestBookingRepository_SetExternalOrder(t *testing.T) {
	eventRepo, bookingRepo := setupRepos(t)
	ctx := context.Background()

	event := seedEvent(t, eventRepo,
		domain.TicketType{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 5},
	)
	line := domain.TicketLine{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 1}
	booking := seedBooking(t, bookingRepo, event.ID, line)
	other := seedBooking(t, bookingRepo, event.ID, line)

	require.NoError(t, bookingRepo.SetExternalOrder(ctx, booking.ID, "order_abc"))

	// Re-attaching the same id is a no-op.
	require.NoError(t, bookingRepo.SetExternalOrder(ctx, booking.ID, "order_abc"))

	// A different id for the same booking is rejected.
	err := bookingRepo.SetExternalOrder(ctx, booking.ID, "order_other")
	assert.ErrorIs(t, err, domain.ErrExternalOrderAttached)

	// As is stealing an order id already attached elsewhere.
	err = bookingRepo.SetExternalOrder(ctx, other.ID, "order_abc")
	assert.ErrorIs(t, err, domain.ErrExternalOrderAttached)
}

func TestBookingRepository_CancelStale(t *testing.T) {
	eventRepo, bookingRepo := setupRepos(t)
	ctx := context.Background()

	event := seedEvent(t, eventRepo,
		domain.TicketType{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 5},
	)
	line := domain.TicketLine{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 1}
	stale := seedBooking(t, bookingRepo, event.ID, line)
	paid := seedBooking(t, bookingRepo, event.ID, line)

	_, err := bookingRepo.ConfirmPaid(ctx, paid.ID, "pay_1", "sig")
	require.NoError(t, err)

	cancelled, err := bookingRepo.CancelStale(ctx, 0)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, stale.ID, cancelled[0].ID)

	// Confirmed bookings are untouched by the sweep.
	got, err := bookingRepo.GetByID(ctx, paid.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestBackoffSchedule(t *testing.T) {
	s := retry.Strategy{Attempts: 3, Delay: 500 * time.Millisecond, Backoff: 2}

	assert.Equal(t, []time.Duration{
		500 * time.Millisecond,
		time.Second,
		2 * time.Second,
	}, backoffSchedule(s))
}
