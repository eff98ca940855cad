package ports

import (
	"context"

	"tickethub/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event)
}
