package broker

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"

	"dineHoursApi/internal/modules/hours/domain"
)

type countingHandler struct {
	topic string
	seen  int
}

func (h *countingHandler) Topic() string { return h.topic }

func (h *countingHandler) Handle(context.Context, *domain.Event) error {
	h.seen++
	return nil
}

func TestRegistryDispatch(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := &countingHandler{topic: "restaurant.dataset.updated"}
	registry.Register(handler)

	if err := registry.Dispatch(context.Background(), &domain.Event{Topic: handler.topic}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.Dispatch(context.Background(), &domain.Event{Topic: "other.topic"}); err != nil {
		t.Fatalf("unhandled topic should not error: %v", err)
	}
	if handler.seen != 1 {
		t.Fatalf("expected 1 dispatch, got %d", handler.seen)
	}
}

func TestDecodeEvent(t *testing.T) {
	cases := []struct {
		name          string
		message       kafka.Message
		expectedTopic string
	}{
		{
			name:          "event shaped payload",
			message:       kafka.Message{Topic: "raw", Value: []byte(`{"topic":"restaurant.dataset.updated"}`)},
			expectedTopic: "restaurant.dataset.updated",
		},
		{
			name:          "opaque payload falls back to kafka topic",
			message:       kafka.Message{Topic: "restaurant.dataset.updated", Value: []byte("not json")},
			expectedTopic: "restaurant.dataset.updated",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := decodeEvent(tc.message)
			if event.Topic != tc.expectedTopic {
				t.Fatalf("expected topic %q, got %q", tc.expectedTopic, event.Topic)
			}
			if event.Timestamp.IsZero() {
				t.Fatal("expected timestamp to be set")
			}
		})
	}
}
