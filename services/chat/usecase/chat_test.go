package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/chat/mocks"
)

func newChatUC(t *testing.T) (*ChatUC, *mocks.MockChatRepo, *mocks.MockBookingReader, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	chatRepo := mocks.NewMockChatRepo(ctrl)
	bookingRepo := mocks.NewMockBookingReader(ctrl)
	return NewChatUC(chatRepo, bookingRepo), chatRepo, bookingRepo, ctrl
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a trimmed message on an existing booking", func(t *testing.T) {
		uc, chatRepo, bookingRepo, ctrl := newChatUC(t)
		defer ctrl.Finish()

		bookingID := uuid.New()
		senderID := uuid.New()

		bookingRepo.EXPECT().GetBookingByID(ctx, bookingID).
			Return(&models.Booking{ID: bookingID}, nil)
		chatRepo.EXPECT().InsertMessage(ctx, gomock.Any()).Return(nil)

		message, err := uc.SendMessage(ctx, bookingID, senderID, "  on my way  ")

		require.NoError(t, err)
		assert.Equal(t, "on my way", message.Body)
		assert.Equal(t, bookingID, message.BookingID)
		assert.Equal(t, senderID, message.SenderID)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		uc, _, _, ctrl := newChatUC(t)
		defer ctrl.Finish()

		_, err := uc.SendMessage(ctx, uuid.New(), uuid.New(), "   ")
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("propagates a missing booking", func(t *testing.T) {
		uc, _, bookingRepo, ctrl := newChatUC(t)
		defer ctrl.Finish()

		bookingID := uuid.New()
		bookingRepo.EXPECT().GetBookingByID(ctx, bookingID).
			Return(nil, apperr.NotFoundf("booking %s", bookingID))

		_, err := uc.SendMessage(ctx, bookingID, uuid.New(), "hello")
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestListMessages(t *testing.T) {
	ctx := context.Background()

	uc, chatRepo, bookingRepo, ctrl := newChatUC(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	bookingRepo.EXPECT().GetBookingByID(ctx, bookingID).
		Return(&models.Booking{ID: bookingID}, nil)
	chatRepo.EXPECT().ListByBooking(ctx, bookingID).Return([]models.ChatMessage{
		{BookingID: bookingID, Body: "where are you?"},
		{BookingID: bookingID, Body: "two minutes out"},
	}, nil)

	messages, err := uc.ListMessages(ctx, bookingID)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "where are you?", messages[0].Body)
}
