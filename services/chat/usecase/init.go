package usecase

import (
	"github.com/DipakAnap/cablink-backend/services/chat"
)

// ChatUC implements the chat usecase
type ChatUC struct {
	chatRepo    chat.ChatRepo
	bookingRepo chat.BookingReader
}

// NewChatUC creates a new chat usecase instance
func NewChatUC(chatRepo chat.ChatRepo, bookingRepo chat.BookingReader) *ChatUC {
	return &ChatUC{
		chatRepo:    chatRepo,
		bookingRepo: bookingRepo,
	}
}
