package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"tickethub/internal/domain"
	"tickethub/internal/monitoring"
	"tickethub/internal/payment"
	"tickethub/internal/service/ports"
)

// BookingService is the settlement coordinator. It owns the booking
// lifecycle: reserve -> external order -> verify -> atomic confirm ->
// notify. Inventory is decremented only inside the confirm step.
type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	gateway     ports.PaymentGateway
	signer      *payment.Signer
	notifier    ports.BookingNotifier
	currency    string
	staleAfter  time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	gateway ports.PaymentGateway,
	signer *payment.Signer,
	notifier ports.BookingNotifier,
	currency string,
	staleAfter time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		gateway:     gateway,
		signer:      signer,
		notifier:    notifier,
		currency:    currency,
		staleAfter:  staleAfter,
		logger:      logger,
	}
}

// Book creates a booking in status created and registers a payment order
// for it. Inventory is not decremented here: availability is checked only
// to fail fast, the authoritative check happens at settlement.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, *domain.PaymentOrder, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, nil, fmt.Errorf("check event: %w", err)
	}

	// Snapshot unit prices from the live catalog. Client-submitted prices
	// and totals are never trusted.
	lines := make([]domain.TicketLine, 0, len(input.Lines))
	for _, l := range input.Lines {
		tt, ok := event.TicketType(l.TypeName)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", domain.ErrTicketTypeNotFound, l.TypeName)
		}
		lines = append(lines, domain.TicketLine{
			TypeName:       l.TypeName,
			UnitPriceMinor: tt.UnitPriceMinor,
			Quantity:       l.Quantity,
		})
	}

	if err = s.eventRepo.CheckAvailability(ctx, input.EventID, lines); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		BookingRef:       domain.NewBookingRef(),
		EventID:          input.EventID,
		BuyerID:          input.BuyerID,
		Lines:            lines,
		TotalAmountMinor: domain.TotalAmountMinor(lines),
		Contact:          input.Contact,
		Status:           domain.BookingStatusCreated,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// The milliseconds-based ref can collide under load; take a fresh one
	// and retry instead of surfacing the conflict.
	for attempt := 0; ; attempt++ {
		err = s.bookingRepo.Create(ctx, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrBookingRefTaken) || attempt == 2 {
			return nil, nil, fmt.Errorf("create booking: %w", err)
		}
		booking.BookingRef = domain.NewBookingRef()
	}
	monitoring.BookingCreated()

	order, err := s.gateway.CreateOrder(ctx, booking.TotalAmountMinor, s.currency, booking.BookingRef)
	if err != nil {
		// The booking stays in created; no inventory was touched and the
		// client may retry payment initiation or let the sweep cancel it.
		s.logger.Error("payment order failed",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("create payment order: %w", err)
	}

	if err = s.bookingRepo.SetExternalOrder(ctx, booking.ID, order.ID); err != nil {
		return nil, nil, fmt.Errorf("attach payment order: %w", err)
	}
	booking.ExternalOrderID = order.ID

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("booking_ref", booking.BookingRef),
		logger.String("event_id", booking.EventID),
		logger.String("order_id", order.ID),
		logger.Int64("total_minor", booking.TotalAmountMinor),
	)

	return booking, order, nil
}

// VerifyPayment authenticates the client's payment claim and settles the
// booking. The signature check is pure and local and happens strictly
// before the confirm transaction. Replays of an already-confirmed booking
// return success without a second decrement.
func (s *BookingService) VerifyPayment(ctx context.Context, input domain.VerifyPaymentInput) (*domain.Booking, error) {
	if err := validateVerifyInput(input); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	// The signature must be bound to this booking's own order; a valid
	// signature for some other order must not confirm this booking.
	if booking.ExternalOrderID == "" || booking.ExternalOrderID != input.ExternalOrderID {
		monitoring.VerificationFailed()
		return nil, domain.ErrPaymentVerificationFailed
	}

	if !s.signer.Verify(input.ExternalOrderID, input.PaymentRef, input.Signature) {
		monitoring.VerificationFailed()
		s.logger.Warn("payment signature mismatch",
			logger.String("booking_id", input.BookingID),
			logger.String("order_id", input.ExternalOrderID),
		)
		return nil, domain.ErrPaymentVerificationFailed
	}

	started := time.Now()
	confirmed, err := s.bookingRepo.ConfirmPaid(ctx, input.BookingID, input.PaymentRef, input.Signature)
	switch {
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		s.logger.Info("booking already confirmed",
			logger.String("booking_id", input.BookingID),
		)
		return confirmed, nil
	case errors.Is(err, domain.ErrInsufficientInventory):
		monitoring.InventoryConflict()
		return nil, err
	case err != nil:
		return nil, err
	}
	monitoring.ObserveSettlement(time.Since(started))
	monitoring.SettlementConfirmed()

	s.logger.Info("booking confirmed",
		logger.String("booking_id", confirmed.ID),
		logger.String("booking_ref", confirmed.BookingRef),
		logger.String("payment_ref", input.PaymentRef),
	)

	// Best effort: a failed notification never rolls back a settlement.
	event, err := s.eventRepo.GetByID(ctx, confirmed.EventID)
	if err != nil {
		s.logger.Error("failed to load event for notification",
			logger.String("event_id", confirmed.EventID),
			logger.String("error", err.Error()),
		)
		return confirmed, nil
	}
	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), confirmed, event)

	return confirmed, nil
}

// Cancel flips a booking to cancelled on behalf of its buyer or an admin.
// Inventory already sold to it is not restocked.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, p domain.Principal) (*domain.Refund, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !p.MayAccess(booking.BuyerID) {
		return nil, domain.ErrForbidden
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("by_user", p.UserID),
	)

	return &domain.Refund{
		BookingID:   bookingID,
		AmountMinor: booking.TotalAmountMinor,
		Status:      "processed",
	}, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID string, p domain.Principal) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !p.MayAccess(booking.BuyerID) {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

func (s *BookingService) GetByRef(ctx context.Context, ref string, p domain.Principal) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !p.MayAccess(booking.BuyerID) {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

func (s *BookingService) ListByBuyer(ctx context.Context, buyerID, status string) ([]*domain.Booking, error) {
	switch domain.BookingStatus(status) {
	case "", domain.BookingStatusCreated, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.bookingRepo.ListByBuyer(ctx, buyerID, domain.BookingStatus(status))
}

// CancelStale is the reconciliation sweep for bookings whose payment never
// verified. Called by the scheduler.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStale(ctx, s.staleAfter)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		monitoring.StaleCancelled(len(cancelled))
		s.logger.Info("stale bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
	}

	return cancelled, nil
}

func validateBookingInput(input domain.CreateBookingInput) error {
	if input.EventID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	if input.BuyerID == "" {
		return fmt.Errorf("%w: buyer id is required", domain.ErrValidation)
	}
	if input.Contact.Name == "" || input.Contact.Email == "" || input.Contact.Phone == "" {
		return fmt.Errorf("%w: attendee name, email and phone are required", domain.ErrValidation)
	}
	if len(input.Lines) == 0 {
		return fmt.Errorf("%w: at least one ticket line is required", domain.ErrValidation)
	}

	seen := make(map[string]struct{}, len(input.Lines))
	for _, l := range input.Lines {
		if l.TypeName == "" {
			return fmt.Errorf("%w: ticket type name is required", domain.ErrValidation)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: quantity for %q must be positive", domain.ErrValidation, l.TypeName)
		}
		if _, ok := seen[l.TypeName]; ok {
			return fmt.Errorf("%w: duplicate ticket line %q", domain.ErrValidation, l.TypeName)
		}
		seen[l.TypeName] = struct{}{}
	}

	return nil
}

func validateVerifyInput(input domain.VerifyPaymentInput) error {
	switch {
	case input.BookingID == "":
		return fmt.Errorf("%w: booking_id is required", domain.ErrValidation)
	case input.ExternalOrderID == "":
		return fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	case input.PaymentRef == "":
		return fmt.Errorf("%w: payment_id is required", domain.ErrValidation)
	case input.Signature == "":
		return fmt.Errorf("%w: signature is required", domain.ErrValidation)
	}
	return nil
}
