package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalAmountMinor(t *testing.T) {
	lines := []TicketLine{
		{TypeName: "VIP", UnitPriceMinor: 500000, Quantity: 2},
		{TypeName: "General", UnitPriceMinor: 150000, Quantity: 3},
	}

	assert.Equal(t, int64(1450000), TotalAmountMinor(lines))
	assert.Equal(t, int64(0), TotalAmountMinor(nil))
}

func TestBooking_TotalQuantity(t *testing.T) {
	b := Booking{
		Lines: []TicketLine{
			{TypeName: "VIP", Quantity: 2},
			{TypeName: "General", Quantity: 3},
		},
	}

	assert.Equal(t, 5, b.TotalQuantity())
}

func TestNewBookingRef(t *testing.T) {
	ref := NewBookingRef()

	assert.True(t, strings.HasPrefix(ref, "BK"))
	// unix millis (13 digits) plus a 3 digit suffix
	assert.Len(t, ref, 18)

	other := NewBookingRef()
	assert.True(t, strings.HasPrefix(other, "BK"))
}

func TestTicketType_Remaining(t *testing.T) {
	tt := TicketType{TotalQuantity: 10, SoldCount: 7}
	assert.Equal(t, 3, tt.Remaining())
}

func TestEvent_TicketType(t *testing.T) {
	e := Event{
		TicketTypes: []TicketType{
			{TypeName: "VIP", UnitPriceMinor: 500000},
		},
	}

	got, ok := e.TicketType("VIP")
	assert.True(t, ok)
	assert.Equal(t, int64(500000), got.UnitPriceMinor)

	_, ok = e.TicketType("Balcony")
	assert.False(t, ok)
}

func TestPrincipal_MayAccess(t *testing.T) {
	owner := Principal{UserID: "u1"}
	stranger := Principal{UserID: "u2"}
	admin := Principal{UserID: "ops", Role: RoleAdmin}

	assert.True(t, owner.MayAccess("u1"))
	assert.False(t, stranger.MayAccess("u1"))
	assert.True(t, admin.MayAccess("u1"))
}
