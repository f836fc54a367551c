package gateway

import (
	"context"
	"time"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/internal/pkg/nsq"
)

// BookingEventsTopic carries booking lifecycle events to the dispatcher
const BookingEventsTopic = "notifications.booking"

// BookingGW publishes booking events over NSQ
type BookingGW struct {
	producer *nsq.Producer
}

// NewBookingGW creates a new booking gateway instance
func NewBookingGW(producer *nsq.Producer) *BookingGW {
	return &BookingGW{producer: producer}
}

// PublishBookingEvent emits one booking lifecycle event
func (g *BookingGW) PublishBookingEvent(_ context.Context, event *models.NotificationEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return g.producer.Publish(BookingEventsTopic, event)
}
