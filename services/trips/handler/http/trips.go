package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	"github.com/watergo/tanktrip/internal/pkg/models"
	"github.com/watergo/tanktrip/internal/utils"
	"github.com/watergo/tanktrip/services/trips"
)

// TripsHandler handles HTTP requests for trip operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trip HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

// BookingAction handles accept/reject decisions for a booking
func (h *TripsHandler) BookingAction(c echo.Context) error {
	bookingID := c.QueryParam("bookingId")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Booking ID is required")
	}

	var req models.BookingActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.AcceptBooking(c.Request().Context(), bookingID, req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking action recorded", trip)
}

// StartTrip handles the trip start request
func (h *TripsHandler) StartTrip(c echo.Context) error {
	trip, err := h.tripUC.StartTrip(c.Request().Context(), c.Param("tripID"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip started successfully", trip)
}

// ReachHydrant records arrival at the hydrant with the mandatory photo
func (h *TripsHandler) ReachHydrant(c echo.Context) error {
	var req models.TripMediaRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.ReachHydrant(c.Request().Context(), c.Param("tripID"), req.PhotoURL)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Hydrant arrival recorded", trip)
}

// DepartHydrant resumes the trip after water loading
func (h *TripsHandler) DepartHydrant(c echo.Context) error {
	trip, err := h.tripUC.DepartHydrant(c.Request().Context(), c.Param("tripID"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Departure recorded", trip)
}

// WaterDelivered records delivery with the mandatory video
func (h *TripsHandler) WaterDelivered(c echo.Context) error {
	var req models.TripMediaRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.WaterDelivered(c.Request().Context(), c.Param("tripID"), req.VideoURL)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Delivery recorded", trip)
}

// CancelTrip handles booking-driven trip cancellation
func (h *TripsHandler) CancelTrip(c echo.Context) error {
	trip, err := h.tripUC.CancelTrip(c.Request().Context(), c.Param("tripID"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", trip)
}

// IngestLocation accepts one GPS sample for a trip
func (h *TripsHandler) IngestLocation(c echo.Context) error {
	var req models.LocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.tripUC.IngestLocation(c.Request().Context(), c.Param("tripID"), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location recorded", resp)
}

// GetTrip returns the trip state
func (h *TripsHandler) GetTrip(c echo.Context) error {
	trip, err := h.tripUC.GetTrip(c.Request().Context(), c.Param("tripID"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// GetTracking returns the trip status with its last known position
func (h *TripsHandler) GetTracking(c echo.Context) error {
	info, err := h.tripUC.GetTracking(c.Request().Context(), c.Param("tripID"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", info)
}

// SendOTP issues a completion challenge for a delivered trip
func (h *TripsHandler) SendOTP(c echo.Context) error {
	var req models.OTPIssueRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.tripUC.IssueOTP(c.Request().Context(), c.Param("tripID"), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP issued", resp)
}

// VerifyOTP verifies the completion challenge and closes the trip
func (h *TripsHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.tripUC.VerifyOTP(c.Request().Context(), c.Param("tripID"), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", resp)
}

// respondError translates error kinds into HTTP statuses
func respondError(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return utils.BadRequestResponse(c, err.Error())
	case apperr.KindNotFound:
		return utils.NotFoundResponse(c, err.Error())
	case apperr.KindInvalidTransition:
		return utils.ConflictResponse(c, err.Error())
	case apperr.KindInvalidOTP:
		return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
	case apperr.KindUpstream:
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	default:
		logger.Error("Unhandled error in trips handler",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
