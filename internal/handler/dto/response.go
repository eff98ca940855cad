package dto

import (
	"time"

	"tickethub/internal/domain"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Error(message string) Response {
	return Response{Success: false, Message: message}
}

type TicketTypeResponse struct {
	TypeName       string `json:"type_name"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	TotalQuantity  int    `json:"total_quantity"`
	SoldCount      int    `json:"sold_count"`
	Remaining      int    `json:"remaining"`
}

type EventResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Category      string               `json:"category"`
	Venue         string               `json:"venue"`
	StartsAt      string               `json:"starts_at"`
	AttendeeCount int                  `json:"attendee_count"`
	TicketTypes   []TicketTypeResponse `json:"ticket_types"`
	CreatedAt     string               `json:"created_at"`
}

type TicketLineResponse struct {
	TypeName       string `json:"type"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Quantity       int    `json:"quantity"`
}

type AttendeeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingResponse struct {
	ID               string               `json:"id"`
	BookingRef       string               `json:"booking_ref"`
	EventID          string               `json:"event_id"`
	Status           string               `json:"status"`
	Tickets          []TicketLineResponse `json:"tickets"`
	TotalAmountMinor int64                `json:"total_amount_minor"`
	Attendee         AttendeeResponse     `json:"attendee"`
	ExternalOrderID  string               `json:"external_order_id,omitempty"`
	PaymentRef       string               `json:"payment_id,omitempty"`
	CreatedAt        string               `json:"created_at"`
}

type PaymentOrderResponse struct {
	OrderID     string `json:"order_id"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

type CreateBookingData struct {
	Booking      BookingResponse      `json:"booking"`
	PaymentOrder PaymentOrderResponse `json:"payment_order"`
}

type RefundResponse struct {
	BookingID         string `json:"id"`
	Status            string `json:"status"`
	RefundAmountMinor int64  `json:"refund_amount_minor"`
	RefundStatus      string `json:"refund_status"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	types := make([]TicketTypeResponse, 0, len(e.TicketTypes))
	for _, tt := range e.TicketTypes {
		types = append(types, TicketTypeResponse{
			TypeName:       tt.TypeName,
			UnitPriceMinor: tt.UnitPriceMinor,
			TotalQuantity:  tt.TotalQuantity,
			SoldCount:      tt.SoldCount,
			Remaining:      tt.Remaining(),
		})
	}

	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Category:      e.Category,
		Venue:         e.Venue,
		StartsAt:      e.StartsAt.Format(time.RFC3339),
		AttendeeCount: e.AttendeeCount,
		TicketTypes:   types,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	lines := make([]TicketLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, TicketLineResponse{
			TypeName:       l.TypeName,
			UnitPriceMinor: l.UnitPriceMinor,
			Quantity:       l.Quantity,
		})
	}

	return BookingResponse{
		ID:               b.ID,
		BookingRef:       b.BookingRef,
		EventID:          b.EventID,
		Status:           string(b.Status),
		Tickets:          lines,
		TotalAmountMinor: b.TotalAmountMinor,
		Attendee: AttendeeResponse{
			Name:  b.Contact.Name,
			Email: b.Contact.Email,
			Phone: b.Contact.Phone,
		},
		ExternalOrderID: b.ExternalOrderID,
		PaymentRef:      b.PaymentRef,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentOrderResponse(o *domain.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		OrderID:     o.ID,
		AmountMinor: o.AmountMinor,
		Currency:    o.Currency,
	}
}

func ToRefundResponse(r *domain.Refund) RefundResponse {
	return RefundResponse{
		BookingID:         r.BookingID,
		Status:            string(domain.BookingStatusCancelled),
		RefundAmountMinor: r.AmountMinor,
		RefundStatus:      r.Status,
	}
}
