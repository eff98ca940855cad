package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"tickethub/internal/domain"
)

type StaleCanceller interface {
	CancelStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler runs the reconciliation sweep: created bookings whose payment
// never verified within the window are cancelled periodically.
type Scheduler struct {
	bookingService StaleCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService StaleCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reconciliation sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciliation sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelStale(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale booking cancelled",
			logger.String("booking_id", b.ID),
			logger.String("booking_ref", b.BookingRef),
			logger.String("event_id", b.EventID),
		)
	}
}
