package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dineHoursApi/internal/modules/hours/application/port"
	"dineHoursApi/internal/modules/hours/domain"
)

// ReloadUseCase refreshes the catalog from the dataset source and announces
// the new collection to websocket subscribers.
type ReloadUseCase struct {
	catalog     *Catalog
	source      port.DatasetSource
	broadcaster port.Broadcaster
}

func NewReloadUseCase(catalog *Catalog, source port.DatasetSource, broadcaster port.Broadcaster) *ReloadUseCase {
	return &ReloadUseCase{catalog: catalog, source: source, broadcaster: broadcaster}
}

// Execute fetches the dataset text, swaps in the parsed collection and
// broadcasts a dataset.reloaded event. On a fetch failure the previous
// collection stays installed untouched.
func (uc *ReloadUseCase) Execute(ctx context.Context) (int, error) {
	csvText, err := uc.source.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", port.ErrDatasetLoad, err)
	}

	count := uc.catalog.LoadFromText(csvText)
	slog.Info("dataset reloaded", slog.Int("count", count))

	if uc.broadcaster != nil {
		uc.broadcaster.Broadcast(ctx, &domain.Event{
			Topic:     "dataset.reloaded",
			Payload:   map[string]int{"count": count},
			Timestamp: time.Now().UTC(),
		})
	}
	return count, nil
}
