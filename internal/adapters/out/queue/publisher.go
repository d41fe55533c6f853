// Package queue publishes committed order status changes to Kafka for
// read-side consumers such as notifiers and dashboard projectors.
package queue

import (
	"context"
	"encoding/json"
	"time"

	"logitech/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// KafkaStatusPublisher implements ports.StatusPublisher on a kafka-go
// writer. Messages are keyed by order id so all changes for one order land
// on the same partition in commit order.
type KafkaStatusPublisher struct {
	writer *kafka.Writer
}

// NewKafkaStatusPublisher creates a publisher for the given brokers and
// topic.
func NewKafkaStatusPublisher(brokers []string, topic string) *KafkaStatusPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaStatusPublisher{writer: writer}
}

// PublishStatusChanged writes the status change event to the topic.
func (p *KafkaStatusPublisher) PublishStatusChanged(
	ctx context.Context,
	event ports.OrderStatusChangedEvent,
) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.OccurredAt,
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaStatusPublisher) Close() error {
	return p.writer.Close()
}
