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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (id, title, category, venue, starts_at, attendee_count, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, 0, $6, $7)`
	now := time.Now().UTC()
	if _, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Category, e.Venue, e.StartsAt, now, now,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	lineQuery := `INSERT INTO ticket_types (event_id, type_name, unit_price_minor, total_quantity, sold_count, position)
				  VALUES ($1, $2, $3, $4, 0, $5)`
	for i, tt := range e.TicketTypes {
		if _, err = tx.ExecContext(
			ctx, lineQuery,
			e.ID, tt.TypeName, tt.UnitPriceMinor, tt.TotalQuantity, i,
		); err != nil {
			return fmt.Errorf("insert ticket type %q: %w", tt.TypeName, err)
		}
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, category, venue, starts_at, attendee_count, created_at, updated_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Category, &e.Venue, &e.StartsAt,
		&e.AttendeeCount, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if e.TicketTypes, err = r.ticketTypes(ctx, id); err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, category, venue, starts_at, attendee_count, created_at, updated_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	byID := make(map[string]*domain.Event)
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Category, &e.Venue, &e.StartsAt,
			&e.AttendeeCount, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
		byID[e.ID] = &e
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(res))
	for _, e := range res {
		ids = append(ids, e.ID)
	}

	ttQuery := `SELECT event_id, type_name, unit_price_minor, total_quantity, sold_count
				FROM ticket_types
				WHERE event_id = ANY($1)
				ORDER BY event_id, position`
	ttRows, err := r.db.QueryWithRetry(ctx, r.strategy, ttQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer ttRows.Close()

	for ttRows.Next() {
		var eventID string
		var tt domain.TicketType
		if err = ttRows.Scan(&eventID, &tt.TypeName, &tt.UnitPriceMinor, &tt.TotalQuantity, &tt.SoldCount); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		if e, ok := byID[eventID]; ok {
			e.TicketTypes = append(e.TicketTypes, tt)
		}
	}

	return res, ttRows.Err()
}

// CheckAvailability answers whether every line could still be sold right
// now. Advisory only: a gap between this check and settlement is acceptable,
// the settlement transaction re-checks authoritatively.
func (r *EventRepository) CheckAvailability(ctx context.Context, eventID string, lines []domain.TicketLine) error {
	existsQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id=$1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, existsQuery, eventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	var exists bool
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("scan event existence: %w", err)
	}
	if !exists {
		return domain.ErrEventNotFound
	}

	types, err := r.ticketTypes(ctx, eventID)
	if err != nil {
		return err
	}

	remaining := make(map[string]int, len(types))
	for _, tt := range types {
		remaining[tt.TypeName] = tt.Remaining()
	}

	for _, line := range lines {
		left, ok := remaining[line.TypeName]
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrTicketTypeNotFound, line.TypeName)
		}
		if left < line.Quantity {
			return fmt.Errorf("%w: %q", domain.ErrInsufficientInventory, line.TypeName)
		}
	}

	return nil
}

func (r *EventRepository) ticketTypes(ctx context.Context, eventID string) ([]domain.TicketType, error) {
	query := `SELECT type_name, unit_price_minor, total_quantity, sold_count
			  FROM ticket_types
			  WHERE event_id=$1
			  ORDER BY position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	var res []domain.TicketType
	for rows.Next() {
		var tt domain.TicketType
		if err = rows.Scan(&tt.TypeName, &tt.UnitPriceMinor, &tt.TotalQuantity, &tt.SoldCount); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		res = append(res, tt)
	}

	return res, rows.Err()
}
