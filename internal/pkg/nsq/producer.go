package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
)

// Producer publishes JSON-encoded messages to NSQ topics.
type Producer struct {
	producer *nsq.Producer
}

// NewProducer connects to the nsqd at address and verifies it is reachable.
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("NSQ daemon unreachable at %s: %w", address, err)
	}
	return &Producer{producer: producer}, nil
}

// Publish marshals message to JSON and publishes it on topic.
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for topic %s: %w", topic, err)
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}
	return nil
}

// Stop flushes pending publishes and closes the connection.
func (p *Producer) Stop() {
	p.producer.Stop()
}
