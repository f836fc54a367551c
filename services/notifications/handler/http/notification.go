package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/utils"
	"github.com/DipakAnap/cablink-backend/services/notifications"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// RegisterRoutes registers notification routes on the given group
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListNotifications)
	g.POST("/reminders", h.SendReminder)
}

// ListNotifications returns the notification history for a user
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing userId")
	}

	items, err := h.notificationUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", items)
}

// SendReminder dispatches a payment reminder for a booking
func (h *NotificationHandler) SendReminder(c echo.Context) error {
	var req struct {
		BookingID uuid.UUID `json:"bookingId"`
	}
	if err := c.Bind(&req); err != nil || req.BookingID == uuid.Nil {
		return utils.BadRequestResponse(c, "bookingId is required")
	}

	if err := h.notificationUC.SendPaymentReminder(c.Request().Context(), req.BookingID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment reminder dispatched", nil)
}
