package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"

	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a new NSQ consumer for a topic/channel
func NewConsumer(topic, channel, address, lookupdAddress string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		message.Touch()

		if err := handler(message.Body); err != nil {
			logger.Warn("Error processing NSQ message",
				logger.String("topic", topic),
				logger.Err(err),
			)
			// Requeue the message for later processing
			return err
		}

		message.Finish()
		return nil
	}))

	// lookupd discovery when configured, direct daemon connection otherwise
	if lookupdAddress != "" {
		if err := consumer.ConnectToNSQLookupd(lookupdAddress); err != nil {
			return nil, fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
	} else if err := consumer.ConnectToNSQD(address); err != nil {
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
}
