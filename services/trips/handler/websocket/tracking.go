package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/constants"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	wspkg "github.com/watergo/tanktrip/internal/pkg/websocket"
	"github.com/watergo/tanktrip/services/trips"
)

// Message is the envelope for every frame sent to tracking clients
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// TrackingHandler streams live position updates to dashboard clients
type TrackingHandler struct {
	tripUC   trips.TripUC
	hub      *wspkg.Hub
	upgrader websocket.Upgrader
}

// NewTrackingHandler creates a new live-tracking WebSocket handler
func NewTrackingHandler(tripUC trips.TripUC, hub *wspkg.Hub) *TrackingHandler {
	return &TrackingHandler{
		tripUC: tripUC,
		hub:    hub,
		upgrader: websocket.Upgrader{
			// Cross-origin dashboards are expected; identity is checked
			// before the upgrade by the Identity middleware.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// TrackTrip upgrades the connection, replays the last known position and
// then relays live updates until the client disconnects.
func (h *TrackingHandler) TrackTrip(c echo.Context) error {
	tripID := c.Param("tripID")

	// Resolve the trip before upgrading so unknown ids still get a clean
	// HTTP error instead of an immediately closed socket.
	info, err := h.tripUC.GetTracking(c.Request().Context(), tripID)
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindValidation:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case apperr.KindNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "trip not found")
		default:
			logger.Error("Failed to resolve trip for tracking",
				logger.String("trip_id", tripID),
				logger.Err(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.WriteJSON(Message{Event: constants.EventLastKnown, Data: info}); err != nil {
		return nil
	}

	sub := h.hub.Subscribe(tripID)
	defer sub.Close()

	// Reader goroutine only detects disconnects; clients do not send data
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	logger.Debug("Tracking subscriber connected",
		logger.String("trip_id", tripID),
		logger.Int("room_size", h.hub.RoomSize(tripID)))

	for {
		select {
		case <-done:
			return nil
		case update, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := ws.WriteJSON(Message{Event: constants.EventLocationUpdate, Data: update}); err != nil {
				return nil
			}
		}
	}
}
