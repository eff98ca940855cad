package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tickethub/internal/domain"
	"tickethub/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Venue == "" {
		return nil, fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if len(input.TicketTypes) == 0 {
		return nil, fmt.Errorf("%w: at least one ticket type is required", domain.ErrValidation)
	}

	seen := make(map[string]struct{}, len(input.TicketTypes))
	for _, tt := range input.TicketTypes {
		if tt.TypeName == "" {
			return nil, fmt.Errorf("%w: ticket type name is required", domain.ErrValidation)
		}
		if _, ok := seen[tt.TypeName]; ok {
			return nil, fmt.Errorf("%w: duplicate ticket type %q", domain.ErrValidation, tt.TypeName)
		}
		seen[tt.TypeName] = struct{}{}
		if tt.UnitPriceMinor < 0 {
			return nil, fmt.Errorf("%w: price for %q must not be negative", domain.ErrValidation, tt.TypeName)
		}
		if tt.TotalQuantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for %q must be positive", domain.ErrValidation, tt.TypeName)
		}
	}

	types := make([]domain.TicketType, len(input.TicketTypes))
	copy(types, input.TicketTypes)
	for i := range types {
		types[i].SoldCount = 0
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Category:    input.Category,
		Venue:       input.Venue,
		StartsAt:    input.StartsAt,
		TicketTypes: types,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
