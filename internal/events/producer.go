package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const orderTopic = "order-events"

// KafkaProducer publishes order lifecycle events keyed on order id so all
// events for one order land on the same partition.
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers string, logger *zap.Logger) (*KafkaProducer, error) {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    orderTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducer{
		writer: writer,
		logger: logger,
	}, nil
}

func (p *KafkaProducer) PublishOrderCreated(event OrderCreatedEvent) error {
	return p.publish(event.OrderID, event)
}

func (p *KafkaProducer) PublishOrderStatusChanged(event OrderStatusChangedEvent) error {
	return p.publish(event.OrderID, event)
}

func (p *KafkaProducer) publish(key string, event any) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal order event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish order event",
			zap.String("order_id", key),
			zap.Error(err))
		return err
	}

	return nil
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
