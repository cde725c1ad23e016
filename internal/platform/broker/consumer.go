package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"dineHoursApi/internal/modules/hours/domain"
)

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

func (c *KafkaConsumer) Consume(ctx context.Context, handler func(*domain.Event) error) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			continue
		}
		event := decodeEvent(m)
		slog.Info("kafka event consumed",
			slog.String("topic", event.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
		)
		if err := handler(event); err != nil {
			slog.Warn("kafka handler error", slog.String("topic", event.Topic), slog.Any("error", err))
		}
	}
}

// decodeEvent projects a raw kafka message into a domain event. Messages that
// are not event-shaped JSON still dispatch under the kafka topic name with the
// raw value as payload.
func decodeEvent(m kafka.Message) *domain.Event {
	var event domain.Event
	if err := json.Unmarshal(m.Value, &event); err != nil || event.Topic == "" {
		event.Topic = m.Topic
		event.Payload = string(m.Value)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return &event
}

// StartKafkaConsumers launches one consumer goroutine per topic. With no
// brokers configured it is a no-op, keeping kafka optional for local runs.
func StartKafkaConsumers(
	ctx context.Context,
	registry *HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			_ = consumer.Consume(ctx, func(event *domain.Event) error {
				return registry.Dispatch(ctx, event)
			})
		}(topic)
	}
}
