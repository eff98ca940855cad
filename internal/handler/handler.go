package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"tickethub/internal/domain"
	"tickethub/internal/handler/dto"
	"tickethub/internal/middleware"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, *domain.PaymentOrder, error)
	VerifyPayment(ctx context.Context, input domain.VerifyPaymentInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, p domain.Principal) (*domain.Refund, error)
	GetByID(ctx context.Context, bookingID string, p domain.Principal) (*domain.Booking, error)
	GetByRef(ctx context.Context, ref string, p domain.Principal) (*domain.Booking, error)
	ListByBuyer(ctx context.Context, buyerID, status string) ([]*domain.Booking, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid starts_at format, expected RFC3339"))
		return
	}

	types := make([]domain.TicketType, 0, len(req.TicketTypes))
	for _, tt := range req.TicketTypes {
		types = append(types, domain.TicketType{
			TypeName:       tt.TypeName,
			UnitPriceMinor: tt.UnitPriceMinor,
			TotalQuantity:  tt.TotalQuantity,
		})
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		Title:       req.Title,
		Category:    req.Category,
		Venue:       req.Venue,
		StartsAt:    startsAt,
		TicketTypes: types,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("event created", dto.ToEventResponse(event)))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid event id"))
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("event", dto.ToEventResponse(event)))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, dto.OK("events", resp))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("missing authenticated user"))
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	lines := make([]domain.TicketLine, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		lines = append(lines, domain.TicketLine{TypeName: t.TypeName, Quantity: t.Quantity})
	}

	booking, order, err := h.bookingService.Book(c.Request.Context(), domain.CreateBookingInput{
		EventID: req.EventID,
		BuyerID: p.UserID,
		Lines:   lines,
		Contact: domain.AttendeeContact{
			Name:  req.Attendee.Name,
			Email: req.Attendee.Email,
			Phone: req.Attendee.Phone,
		},
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("booking created", dto.CreateBookingData{
		Booking:      dto.ToBookingResponse(booking),
		PaymentOrder: dto.ToPaymentOrderResponse(order),
	}))
}

// VerifyPayment settles a booking after the client paid out-of-band. The
// payload is decoded strictly: amounts and state come from the datastore,
// never from the client, and unknown fields are rejected.
func (h *Handler) VerifyPayment(c *ginext.Context) {
	if _, ok := middleware.Principal(c); !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("missing authenticated user"))
		return
	}

	var req dto.VerifyPaymentRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("malformed verification payload: "+err.Error()))
		return
	}

	booking, err := h.bookingService.VerifyPayment(c.Request.Context(), domain.VerifyPaymentInput{
		BookingID:       req.BookingID,
		ExternalOrderID: req.OrderID,
		PaymentRef:      req.PaymentRef,
		Signature:       req.Signature,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("payment verified & booking confirmed", dto.ToBookingResponse(booking)))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("missing authenticated user"))
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid booking id"))
		return
	}

	refund, err := h.bookingService.Cancel(c.Request.Context(), id, p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("booking cancelled", dto.ToRefundResponse(refund)))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("missing authenticated user"))
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid booking id"))
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id, p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("booking", dto.ToBookingResponse(booking)))
}

func (h *Handler) GetBookingByRef(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("missing authenticated user"))
		return
	}

	booking, err := h.bookingService.GetByRef(c.Request.Context(), c.Param("ref"), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("booking", dto.ToBookingResponse(booking)))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("missing authenticated user"))
		return
	}

	bookings, err := h.bookingService.ListByBuyer(c.Request.Context(), p.UserID, c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, dto.OK("bookings", resp))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrTicketTypeNotFound):
		c.JSON(http.StatusNotFound, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrInsufficientInventory),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrBookingRefTaken),
		errors.Is(err, domain.ErrExternalOrderAttached):
		c.JSON(http.StatusConflict, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrPaymentVerificationFailed),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Error(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Error("internal server error"))
	}
}
