package domain

import "time"

// TicketType is a named, priced inventory pool within one event.
// SoldCount never exceeds TotalQuantity; it is mutated only by the
// settlement transaction in the booking repository.
type TicketType struct {
	TypeName       string `json:"type_name"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	TotalQuantity  int    `json:"total_quantity"`
	SoldCount      int    `json:"sold_count"`
}

func (t *TicketType) Remaining() int {
	return t.TotalQuantity - t.SoldCount
}

type Event struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Category      string       `json:"category"`
	Venue         string       `json:"venue"`
	StartsAt      time.Time    `json:"starts_at"`
	TicketTypes   []TicketType `json:"ticket_types"`
	AttendeeCount int          `json:"attendee_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TicketType looks up a type by name in the event catalog.
func (e *Event) TicketType(name string) (*TicketType, bool) {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].TypeName == name {
			return &e.TicketTypes[i], true
		}
	}
	return nil, false
}

type CreateEventInput struct {
	Title       string
	Category    string
	Venue       string
	StartsAt    time.Time
	TicketTypes []TicketType
}
