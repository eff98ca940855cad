package dto

type TicketTypeRequest struct {
	TypeName       string `json:"type_name" binding:"required"`
	UnitPriceMinor int64  `json:"unit_price_minor" binding:"min=0"`
	TotalQuantity  int    `json:"total_quantity" binding:"required,gt=0"`
}

type CreateEventRequest struct {
	Title       string              `json:"title" binding:"required"`
	Category    string              `json:"category"`
	Venue       string              `json:"venue" binding:"required"`
	StartsAt    string              `json:"starts_at" binding:"required"`
	TicketTypes []TicketTypeRequest `json:"ticket_types" binding:"required,min=1,dive"`
}

type TicketLineRequest struct {
	TypeName string `json:"type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type AttendeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type CreateBookingRequest struct {
	EventID  string              `json:"event_id" binding:"required,uuid"`
	Tickets  []TicketLineRequest `json:"tickets" binding:"required,min=1,dive"`
	Attendee AttendeeRequest     `json:"attendee" binding:"required"`
}

// VerifyPaymentRequest mirrors the gateway callback payload. It is decoded
// strictly: unknown fields are rejected before any state transition.
type VerifyPaymentRequest struct {
	BookingID  string `json:"booking_id" binding:"required,uuid"`
	OrderID    string `json:"order_id" binding:"required"`
	PaymentRef string `json:"payment_id" binding:"required"`
	Signature  string `json:"signature" binding:"required"`
}
