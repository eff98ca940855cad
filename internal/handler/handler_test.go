package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"tickethub/internal/domain"
	"tickethub/internal/handler/dto"
	hmocks "tickethub/internal/handler/mocks"
	"tickethub/internal/middleware"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(eventSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
	}
	authed := api.Group("", middleware.TrustedPrincipal())
	{
		authed.POST("/events", h.CreateEvent)

		bookings := authed.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.POST("/verify-payment", h.VerifyPayment)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/ref/:ref", h.GetBookingByRef)
		bookings.PUT("/:id/cancel", h.CancelBooking)
	}

	return eventSvc, bookingSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (bool, string, map[string]any) {
	t.Helper()

	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := map[string]any{}
	if len(resp.Data) > 0 && resp.Data[0] == '{' {
		require.NoError(t, json.Unmarshal(resp.Data, &data))
	}
	return resp.Success, resp.Message, data
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	event := &domain.Event{
		ID:    uuid.New().String(),
		Title: "Concert",
		Venue: "Arena",
		TicketTypes: []domain.TicketType{
			{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 10},
		},
	}
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body := dto.CreateEventRequest{
		Title:    "Concert",
		Venue:    "Arena",
		StartsAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		TicketTypes: []dto.TicketTypeRequest{
			{TypeName: "VIP", UnitPriceMinor: 500000, TotalQuantity: 10},
		},
	}

	w := doJSON(t, r, http.MethodPost, "/api/events", body, "organizer-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	success, _, data := decodeEnvelope(t, w)
	assert.True(t, success)
	assert.Equal(t, "Concert", data["title"])
}

func TestHandler_CreateEvent_Unauthenticated(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := dto.CreateEventRequest{
		Title:    "Concert",
		Venue:    "Arena",
		StartsAt: "not-a-date",
		TicketTypes: []dto.TicketTypeRequest{
			{TypeName: "VIP", TotalQuantity: 10},
		},
	}

	w := doJSON(t, r, http.MethodPost, "/api/events", body, "organizer-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	success, _, _ := decodeEnvelope(t, w)
	assert.False(t, success)
}

func TestHandler_ListEvents(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything).Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		BookingRef:       "BK1700000000000123",
		EventID:          eventID,
		BuyerID:          "u1",
		Status:           domain.BookingStatusCreated,
		TotalAmountMinor: 1000000,
		ExternalOrderID:  "order_abc",
	}
	order := &domain.PaymentOrder{ID: "order_abc", AmountMinor: 1000000, Currency: "INR"}

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreateBookingInput) {
			// The buyer comes from the authenticated identity, not the payload.
			assert.Equal(t, "u1", input.BuyerID)
		}).
		Return(booking, order, nil)

	body := dto.CreateBookingRequest{
		EventID: eventID,
		Tickets: []dto.TicketLineRequest{{TypeName: "VIP", Quantity: 2}},
		Attendee: dto.AttendeeRequest{
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "+911234567890",
		},
	}

	w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "u1")

	assert.Equal(t, http.StatusCreated, w.Code)
	success, _, data := decodeEnvelope(t, w)
	assert.True(t, success)
	assert.Contains(t, data, "booking")
	assert.Contains(t, data, "payment_order")
}

func TestHandler_CreateBooking_Unauthenticated(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateBooking_InsufficientInventory(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, nil, domain.ErrInsufficientInventory)

	body := dto.CreateBookingRequest{
		EventID: uuid.New().String(),
		Tickets: []dto.TicketLineRequest{{TypeName: "VIP", Quantity: 200}},
		Attendee: dto.AttendeeRequest{
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "+911234567890",
		},
	}

	w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "u1")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_VerifyPayment_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	confirmed := &domain.Booking{
		ID:         bookingID,
		BookingRef: "BK1700000000000123",
		BuyerID:    "u1",
		Status:     domain.BookingStatusConfirmed,
		PaymentRef: "pay_xyz",
	}

	bookingSvc.EXPECT().VerifyPayment(mock.Anything, domain.VerifyPaymentInput{
		BookingID:       bookingID,
		ExternalOrderID: "order_abc",
		PaymentRef:      "pay_xyz",
		Signature:       "aabbcc",
	}).Return(confirmed, nil)

	body := dto.VerifyPaymentRequest{
		BookingID:  bookingID,
		OrderID:    "order_abc",
		PaymentRef: "pay_xyz",
		Signature:  "aabbcc",
	}

	w := doJSON(t, r, http.MethodPost, "/api/bookings/verify-payment", body, "u1")

	assert.Equal(t, http.StatusOK, w.Code)
	success, _, data := decodeEnvelope(t, w)
	assert.True(t, success)
	assert.Equal(t, "confirmed", data["status"])
}

func TestHandler_VerifyPayment_UnknownFieldRejected(t *testing.T) {
	_, _, r := setupRouter(t)

	body := map[string]any{
		"booking_id": uuid.New().String(),
		"order_id":   "order_abc",
		"payment_id": "pay_xyz",
		"signature":  "aabbcc",
		"amount":     1, // client-supplied amounts are never accepted
	}

	w := doJSON(t, r, http.MethodPost, "/api/bookings/verify-payment", body, "u1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_VerifyPayment_BadSignature(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().VerifyPayment(mock.Anything, mock.Anything).
		Return(nil, domain.ErrPaymentVerificationFailed)

	body := dto.VerifyPaymentRequest{
		BookingID:  uuid.New().String(),
		OrderID:    "order_abc",
		PaymentRef: "pay_xyz",
		Signature:  "deadbeef",
	}

	w := doJSON(t, r, http.MethodPost, "/api/bookings/verify-payment", body, "u1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	success, _, _ := decodeEnvelope(t, w)
	assert.False(t, success)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	refund := &domain.Refund{BookingID: bookingID, AmountMinor: 1000000, Status: "processed"}

	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, domain.Principal{UserID: "u1", Role: "user"}).
		Return(refund, nil)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil, "u1")

	assert.Equal(t, http.StatusOK, w.Code)
	success, _, data := decodeEnvelope(t, w)
	assert.True(t, success)
	assert.Equal(t, "processed", data["refund_status"])
	assert.Equal(t, float64(1000000), data["refund_amount_minor"])
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, mock.Anything).
		Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil, "u2")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/not-a-uuid", nil, "u1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBookingByRef(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		BookingRef: "BK1700000000000123",
		BuyerID:    "u1",
		Status:     domain.BookingStatusConfirmed,
	}
	bookingSvc.EXPECT().GetByRef(mock.Anything, "BK1700000000000123", mock.Anything).
		Return(booking, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/ref/BK1700000000000123", nil, "u1")

	assert.Equal(t, http.StatusOK, w.Code)
	success, _, data := decodeEnvelope(t, w)
	assert.True(t, success)
	assert.Equal(t, "BK1700000000000123", data["booking_ref"])
}

func TestHandler_ListBookings_StatusFilter(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ListByBuyer(mock.Anything, "u1", "confirmed").
		Return([]*domain.Booking{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?status=confirmed", nil, "u1")

	assert.Equal(t, http.StatusOK, w.Code)
}
