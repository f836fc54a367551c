package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	pkgnsq "github.com/DipakAnap/cablink-backend/internal/pkg/nsq"
	"github.com/DipakAnap/cablink-backend/services/notifications"
)

// BookingEventsTopic carries booking lifecycle events to the dispatcher
const BookingEventsTopic = "notifications.booking"

// NotificationHandler consumes booking events from NSQ and dispatches them
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	consumer       *pkgnsq.Consumer
}

// NewNotificationHandler creates the handler and connects its consumer
func NewNotificationHandler(notificationUC notifications.NotificationUC, cfg models.NSQConfig) (*NotificationHandler, error) {
	h := &NotificationHandler{
		notificationUC: notificationUC,
	}

	consumer, err := pkgnsq.NewConsumer(BookingEventsTopic, cfg.Channel, cfg.ProducerAddr, cfg.LookupdAddr, h.handleBookingEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to start booking events consumer: %w", err)
	}
	h.consumer = consumer

	return h, nil
}

func (h *NotificationHandler) handleBookingEvent(message []byte) error {
	var event models.NotificationEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}
	return h.notificationUC.Dispatch(context.Background(), &event)
}

// Stop gracefully stops the consumer
func (h *NotificationHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
