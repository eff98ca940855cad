package ports

import (
	"context"

	"tickethub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// CheckAvailability is advisory only: the authoritative check happens
	// inside the settlement transaction.
	CheckAvailability(ctx context.Context, eventID string, lines []domain.TicketLine) error
}
