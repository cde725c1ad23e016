package handler

import (
	"context"
	"log/slog"

	"dineHoursApi/internal/modules/hours/application/port"
	"dineHoursApi/internal/modules/hours/application/usecase"
	"dineHoursApi/internal/modules/hours/domain"
)

// DatasetUpdatedHandler reacts to restaurant.dataset.updated events by
// reloading the catalog from the configured dataset source.
type DatasetUpdatedHandler struct {
	Reload *usecase.ReloadUseCase
}

func (h *DatasetUpdatedHandler) Topic() string { return "restaurant.dataset.updated" }

func (h *DatasetUpdatedHandler) Handle(ctx context.Context, event *domain.Event) error {
	count, err := h.Reload.Execute(ctx)
	if err != nil {
		slog.Warn("dataset update event reload failed", slog.Any("error", err))
		return err
	}
	slog.Info("dataset update event applied", slog.Int("count", count), slog.Time("emittedAt", event.Timestamp))
	return nil
}

var _ port.TopicHandler = (*DatasetUpdatedHandler)(nil)
