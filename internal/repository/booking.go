package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"tickethub/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, booking_ref, event_id, buyer_id,
	attendee_name, attendee_email, attendee_phone, total_amount_minor,
	COALESCE(external_order_id, ''), COALESCE(payment_ref, ''), COALESCE(payment_signature, ''),
	status, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, booking_ref, event_id, buyer_id,
				attendee_name, attendee_email, attendee_phone,
				total_amount_minor, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, query,
		b.ID, b.BookingRef, b.EventID, b.BuyerID,
		b.Contact.Name, b.Contact.Email, b.Contact.Phone,
		b.TotalAmountMinor, b.Status, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrBookingRefTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	lineQuery := `INSERT INTO booking_lines (booking_id, type_name, unit_price_minor, quantity)
				  VALUES ($1, $2, $3, $4)`
	for _, l := range b.Lines {
		if _, err = tx.ExecContext(ctx, lineQuery, b.ID, l.TypeName, l.UnitPriceMinor, l.Quantity); err != nil {
			return fmt.Errorf("insert booking line %q: %w", l.TypeName, err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *BookingRepository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_ref=$1`
	return r.getOne(ctx, query, ref)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, arg any) (*domain.Booking, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row.Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if b.Lines, err = r.lines(ctx, b.ID); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingRepository) ListByBuyer(ctx context.Context, buyerID string, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE buyer_id=$1 AND ($2 = '' OR status = $2)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, buyerID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list bookings by buyer: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows.Scan, &b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, b := range res {
		if b.Lines, err = r.lines(ctx, b.ID); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// SetExternalOrder attaches the gateway order id to a booking. The id is
// set once; re-attaching the same id is a no-op.
func (r *BookingRepository) SetExternalOrder(ctx context.Context, bookingID, externalOrderID string) error {
	query := `UPDATE bookings
			  SET external_order_id = $2, updated_at = now()
			  WHERE id = $1 AND (external_order_id IS NULL OR external_order_id = $2)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, externalOrderID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Another booking already carries this order id.
			return domain.ErrExternalOrderAttached
		}
		return fmt.Errorf("set external order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set external order rows affected: %w", err)
	}
	if rows == 0 {
		if _, err = r.GetByID(ctx, bookingID); err != nil {
			return err
		}
		return domain.ErrExternalOrderAttached
	}

	return nil
}

// ConfirmPaid is the single serialization point for inventory. Inside one
// transaction it locks the booking row, re-checks every line against the
// live counters with a conditional update, bumps the event attendee count
// and records the payment. Either everything commits or nothing does.
// Serialization conflicts are retried a bounded number of times.
func (r *BookingRepository) ConfirmPaid(ctx context.Context, bookingID, paymentRef, signature string) (*domain.Booking, error) {
	var (
		b   *domain.Booking
		err error
	)
	for _, delay := range backoffSchedule(r.strategy) {
		b, err = r.confirmPaidTx(ctx, bookingID, paymentRef, signature)
		if !isSerializationFailure(err) {
			return b, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return b, err
}

// backoffSchedule mirrors the wbf retry semantics for the hand-rolled
// confirm loop: Delay on the first retry, multiplied by Backoff after each.
func backoffSchedule(s retry.Strategy) []time.Duration {
	delays := make([]time.Duration, s.Attempts)
	d := s.Delay
	for i := range delays {
		delays[i] = d
		d = time.Duration(float64(d) * float64(s.Backoff))
	}
	return delays
}

func (r *BookingRepository) confirmPaidTx(ctx context.Context, bookingID, paymentRef, signature string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1 FOR UPDATE`
	var b domain.Booking
	if err = scanBooking(tx.QueryRowContext(ctx, query, bookingID).Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	lineQuery := `SELECT type_name, unit_price_minor, quantity
				  FROM booking_lines
				  WHERE booking_id=$1
				  ORDER BY type_name`
	rows, err := tx.QueryContext(ctx, lineQuery, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking lines: %w", err)
	}
	for rows.Next() {
		var l domain.TicketLine
		if err = rows.Scan(&l.TypeName, &l.UnitPriceMinor, &l.Quantity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan booking line: %w", err)
		}
		b.Lines = append(b.Lines, l)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	switch b.Status {
	case domain.BookingStatusConfirmed:
		// Retried verification: report success without a second decrement.
		return &b, domain.ErrAlreadyConfirmed
	case domain.BookingStatusCancelled:
		return nil, domain.ErrBookingCancelled
	}

	decrement := `UPDATE ticket_types
				  SET sold_count = sold_count + $3
				  WHERE event_id = $1 AND type_name = $2
				    AND sold_count + $3 <= total_quantity`
	for _, l := range b.Lines {
		res, err := tx.ExecContext(ctx, decrement, b.EventID, l.TypeName, l.Quantity)
		if err != nil {
			return nil, fmt.Errorf("decrement %q: %w", l.TypeName, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("decrement rows affected: %w", err)
		}
		if affected == 0 {
			var exists bool
			check := `SELECT EXISTS (SELECT 1 FROM ticket_types WHERE event_id=$1 AND type_name=$2)`
			if err = tx.QueryRowContext(ctx, check, b.EventID, l.TypeName).Scan(&exists); err != nil {
				return nil, fmt.Errorf("check ticket type: %w", err)
			}
			if !exists {
				return nil, fmt.Errorf("%w: %q", domain.ErrTicketTypeNotFound, l.TypeName)
			}
			return nil, fmt.Errorf("%w: %q", domain.ErrInsufficientInventory, l.TypeName)
		}
	}

	attendees := `UPDATE events
				  SET attendee_count = attendee_count + $2, updated_at = now()
				  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, attendees, b.EventID, b.TotalQuantity()); err != nil {
		return nil, fmt.Errorf("update attendee count: %w", err)
	}

	now := time.Now().UTC()
	confirm := `UPDATE bookings
				SET status = $2, payment_ref = $3, payment_signature = $4, updated_at = $5
				WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, confirm,
		bookingID, domain.BookingStatusConfirmed, paymentRef, signature, now,
	); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm: %w", err)
	}

	b.Status = domain.BookingStatusConfirmed
	b.PaymentRef = paymentRef
	b.PaymentSignature = signature
	b.UpdatedAt = now

	return &b, nil
}

// Cancel flips a booking to cancelled. Inventory is deliberately not
// restocked; see the design notes.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID string) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		if _, err = r.GetByID(ctx, bookingID); err != nil {
			return err
		}
		return domain.ErrBookingCancelled
	}

	return nil
}

// CancelStale sweeps created bookings whose payment never verified within
// the window. Confirmed bookings are never touched.
func (r *BookingRepository) CancelStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND created_at < now() - make_interval(secs => $3)
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCreated, domain.BookingStatusCancelled, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows.Scan, &b); err != nil {
			return nil, fmt.Errorf("scan stale booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) lines(ctx context.Context, bookingID string) ([]domain.TicketLine, error) {
	query := `SELECT type_name, unit_price_minor, quantity
			  FROM booking_lines
			  WHERE booking_id=$1
			  ORDER BY type_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking lines: %w", err)
	}
	defer rows.Close()

	var res []domain.TicketLine
	for rows.Next() {
		var l domain.TicketLine
		if err = rows.Scan(&l.TypeName, &l.UnitPriceMinor, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan booking line: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func scanBooking(scan func(dest ...any) error, b *domain.Booking) error {
	return scan(
		&b.ID, &b.BookingRef, &b.EventID, &b.BuyerID,
		&b.Contact.Name, &b.Contact.Email, &b.Contact.Phone, &b.TotalAmountMinor,
		&b.ExternalOrderID, &b.PaymentRef, &b.PaymentSignature,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
}

func isSerializationFailure(err error) bool {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization_failure, deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
