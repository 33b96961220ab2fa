package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/watergo/tanktrip/internal/pkg/middleware"
	"github.com/watergo/tanktrip/internal/pkg/models"
	wspkg "github.com/watergo/tanktrip/internal/pkg/websocket"
	"github.com/watergo/tanktrip/services/trips"
	httpHandler "github.com/watergo/tanktrip/services/trips/handler/http"
	nsqHandler "github.com/watergo/tanktrip/services/trips/handler/nsq"
	wsHandler "github.com/watergo/tanktrip/services/trips/handler/websocket"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	tracking  *wsHandler.TrackingHandler
	booking   *nsqHandler.BookingHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, hub *wspkg.Hub, cfg *models.Config) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		tracking:  wsHandler.NewTrackingHandler(tripUC, hub),
		booking:   nsqHandler.NewBookingHandler(tripUC, cfg),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	identified := e.Group("", middleware.Identity())

	tripsGroup := identified.Group("/trips")
	tripsGroup.POST("/actions", h.tripsHTTP.BookingAction)
	tripsGroup.GET("/:tripID", h.tripsHTTP.GetTrip)
	tripsGroup.GET("/:tripID/tracking", h.tripsHTTP.GetTracking)
	tripsGroup.POST("/:tripID/start", h.tripsHTTP.StartTrip)
	tripsGroup.POST("/:tripID/reached-hydrant", h.tripsHTTP.ReachHydrant)
	tripsGroup.POST("/:tripID/depart", h.tripsHTTP.DepartHydrant)
	tripsGroup.POST("/:tripID/water-delivered", h.tripsHTTP.WaterDelivered)
	tripsGroup.POST("/:tripID/cancel", h.tripsHTTP.CancelTrip)
	tripsGroup.POST("/:tripID/location", h.tripsHTTP.IngestLocation)
	tripsGroup.POST("/:tripID/otp/send", h.tripsHTTP.SendOTP)
	tripsGroup.POST("/:tripID/otp/verify", h.tripsHTTP.VerifyOTP)

	identified.GET("/ws/trips/:tripID/track", h.tracking.TrackTrip)
}

// InitNSQConsumers initializes all NSQ consumers
func (h *Handler) InitNSQConsumers() error {
	return h.booking.InitConsumers()
}

// Stop stops background consumers
func (h *Handler) Stop() {
	h.booking.Stop()
}
