package port

import (
	"context"
	"errors"

	"dineHoursApi/internal/modules/hours/domain"
)

// ErrDatasetLoad wraps failures while retrieving dataset text from its source.
var ErrDatasetLoad = errors.New("dataset load failed")

// DatasetSource supplies the raw CSV text of the restaurant dataset.
type DatasetSource interface {
	Fetch(ctx context.Context) (string, error)
}

// Broadcaster pushes a dataset event to every connected websocket client.
type Broadcaster interface {
	Broadcast(ctx context.Context, event *domain.Event)
}

// TopicHandler is implemented by per-topic consumers of broker events.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, event *domain.Event) error
}
