package ports

import (
	"context"
	"time"

	"tickethub/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
	ListByBuyer(ctx context.Context, buyerID string, status domain.BookingStatus) ([]*domain.Booking, error)
	SetExternalOrder(ctx context.Context, bookingID, externalOrderID string) error
	// ConfirmPaid flips the booking to confirmed and decrements inventory
	// in one transaction. An already-confirmed booking is returned together
	// with domain.ErrAlreadyConfirmed so callers can treat the retry as
	// success.
	ConfirmPaid(ctx context.Context, bookingID, paymentRef, signature string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	CancelStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
}
