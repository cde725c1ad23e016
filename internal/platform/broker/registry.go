package broker

import (
	"context"

	"dineHoursApi/internal/modules/hours/application/port"
	"dineHoursApi/internal/modules/hours/domain"
)

// HandlerRegistry dispatches consumed events to the handler registered for
// their topic. Events with no registered handler are dropped silently.
type HandlerRegistry struct {
	handlers map[string]port.TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]port.TopicHandler)}
}

func (r *HandlerRegistry) Register(h port.TopicHandler) {
	r.handlers[h.Topic()] = h
}

func (r *HandlerRegistry) Dispatch(ctx context.Context, event *domain.Event) error {
	if handler, ok := r.handlers[event.Topic]; ok {
		return handler.Handle(ctx, event)
	}
	return nil
}
