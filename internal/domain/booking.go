package domain

import (
	"fmt"
	"math/rand"
	"time"
)

type BookingStatus string

const (
	BookingStatusCreated   BookingStatus = "created"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// TicketLine is one purchased position of a booking. The unit price is
// snapshotted from the event catalog at booking time and never recomputed.
type TicketLine struct {
	TypeName       string `json:"type_name"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Quantity       int    `json:"quantity"`
}

type AttendeeContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Booking struct {
	ID               string          `json:"id"`
	BookingRef       string          `json:"booking_ref"`
	EventID          string          `json:"event_id"`
	BuyerID          string          `json:"buyer_id"`
	Lines            []TicketLine    `json:"lines"`
	TotalAmountMinor int64           `json:"total_amount_minor"`
	Contact          AttendeeContact `json:"contact"`
	ExternalOrderID  string          `json:"external_order_id,omitempty"`
	PaymentRef       string          `json:"payment_ref,omitempty"`
	PaymentSignature string          `json:"payment_signature,omitempty"`
	Status           BookingStatus   `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TotalQuantity is the number of attendees this booking admits.
func (b *Booking) TotalQuantity() int {
	var n int
	for _, l := range b.Lines {
		n += l.Quantity
	}
	return n
}

// TotalAmountMinor sums line totals in integer minor units.
func TotalAmountMinor(lines []TicketLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.UnitPriceMinor * int64(l.Quantity)
	}
	return total
}

// NewBookingRef generates a human-readable booking reference.
func NewBookingRef() string {
	return fmt.Sprintf("BK%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

type CreateBookingInput struct {
	EventID string
	BuyerID string
	Lines   []TicketLine
	Contact AttendeeContact
}

type VerifyPaymentInput struct {
	BookingID       string
	ExternalOrderID string
	PaymentRef      string
	Signature       string
}

// PaymentOrder is the order handle returned by the payment gateway.
type PaymentOrder struct {
	ID          string `json:"id"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
}

type Refund struct {
	BookingID   string `json:"booking_id"`
	AmountMinor int64  `json:"amount_minor"`
	Status      string `json:"status"`
}
