package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/internal/utils"
	"github.com/DipakAnap/cablink-backend/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// RegisterRoutes registers booking routes on the given group
func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListBookings)
	g.GET("/:id", h.GetBooking)
	g.POST("/route", h.CreateRouteBooking)
	g.POST("/private", h.CreatePrivateBooking)
	g.PUT("/:id/seats", h.UpdateSeats)
	g.PUT("/:id/cancel", h.CancelBooking)
	g.PUT("/:id/payment", h.UpdatePaymentStatus)
	g.PUT("/:id/status", h.UpdateStatus)
	g.PUT("/:id/finalize", h.FinalizeBooking)
}

// ListBookings handles filtered, paginated booking listing
func (h *BookingHandler) ListBookings(c echo.Context) error {
	page, limit := utils.PageParams(c, 20)

	filter := models.BookingFilter{
		BookingType: models.BookingType(c.QueryParam("bookingType")),
		Page:        page,
		Limit:       limit,
	}
	if raw := c.QueryParam("carId"); raw != "" {
		carID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid carId")
		}
		filter.CarID = &carID
	}
	if raw := c.QueryParam("routeId"); raw != "" {
		routeID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid routeId")
		}
		filter.RouteID = &routeID
	}
	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD")
		}
		filter.Date = &date
	}

	items, total, err := h.bookingUC.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully",
		utils.NewPaginated(items, total, page, limit))
}

// GetBooking handles booking retrieval requests
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// CreateRouteBooking prices and creates a seat-based booking
func (h *BookingHandler) CreateRouteBooking(c echo.Context) error {
	var req models.RouteBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CreateRouteBooking(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Route booking rejected",
			logger.ErrorField(err),
			logger.String("route_id", req.RouteID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// CreatePrivateBooking prices and creates a private-hire booking
func (h *BookingHandler) CreatePrivateBooking(c echo.Context) error {
	var req models.PrivateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CreatePrivateBooking(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// UpdateSeats reprices a route booking for a new seat count
func (h *BookingHandler) UpdateSeats(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req struct {
		NewSeatCount int        `json:"newSeatCount"`
		RouteID      *uuid.UUID `json:"routeId"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	// routeId is redundant with the stored booking but part of the documented
	// payload; when supplied it must match.
	if req.RouteID != nil {
		booking, err := h.bookingUC.GetBooking(c.Request().Context(), id)
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}
		if booking.RouteID == nil || *booking.RouteID != *req.RouteID {
			return utils.BadRequestResponse(c, "routeId does not match booking")
		}
	}

	booking, err := h.bookingUC.UpdateSeats(c.Request().Context(), id, req.NewSeatCount)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Seats updated successfully", booking)
}

// CancelBooking cancels a booking
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", booking)
}

// UpdatePaymentStatus sets a booking's payment state
func (h *BookingHandler) UpdatePaymentStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req struct {
		Status models.PaymentStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.UpdatePaymentStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment status updated successfully", booking)
}

// UpdateStatus applies a lifecycle transition
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated successfully", booking)
}

// FinalizeBooking settles a private booking with its actual distance or an
// explicit final price
func (h *BookingHandler) FinalizeBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.FinalizeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.FinalizeBooking(c.Request().Context(), id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking finalized successfully", booking)
}
