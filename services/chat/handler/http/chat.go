package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/utils"
	"github.com/DipakAnap/cablink-backend/services/chat"
)

// ChatHandler handles HTTP requests for booking chat
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
	}
}

// RegisterRoutes registers chat routes on the given group
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:bookingId/messages", h.ListMessages)
	g.POST("/:bookingId/messages", h.SendMessage)
}

// ListMessages returns a booking's chat log
func (h *ChatHandler) ListMessages(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	messages, err := h.chatUC.ListMessages(c.Request().Context(), bookingID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved successfully", messages)
}

// SendMessage appends a message to a booking's chat log
func (h *ChatHandler) SendMessage(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req struct {
		SenderID uuid.UUID `json:"senderId"`
		Body     string    `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), bookingID, req.SenderID, req.Body)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent successfully", message)
}
