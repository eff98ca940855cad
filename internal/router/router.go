package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	GetBookingByRef(c *ginext.Context)
	ListBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events (reads are public, creation needs an organizer identity)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
	}

	authed := api.Group("", auth)
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

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
