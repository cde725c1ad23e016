package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"dineHoursApi/internal/modules/hours/application/port"
	"dineHoursApi/internal/modules/hours/application/usecase"
	"dineHoursApi/internal/modules/hours/domain"
)

type staticSource struct {
	text string
	err  error
}

func (s staticSource) Fetch(context.Context) (string, error) {
	return s.text, s.err
}

func TestDatasetUpdatedHandlerReloadsCatalog(t *testing.T) {
	catalog := usecase.NewCatalog()
	source := staticSource{text: "\"Restaurant Name\",\"Hours\"\n\"Spot\",\"Mon-Sun 11 am - 10 pm\"\n"}
	h := &DatasetUpdatedHandler{Reload: usecase.NewReloadUseCase(catalog, source, nil)}

	if h.Topic() != "restaurant.dataset.updated" {
		t.Fatalf("unexpected topic: %s", h.Topic())
	}
	event := &domain.Event{Topic: h.Topic(), Timestamp: time.Now().UTC()}
	if err := h.Handle(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Count() != 1 {
		t.Fatalf("expected 1 restaurant after reload, got %d", catalog.Count())
	}
}

func TestDatasetUpdatedHandlerPropagatesLoadFailure(t *testing.T) {
	catalog := usecase.NewCatalog()
	h := &DatasetUpdatedHandler{Reload: usecase.NewReloadUseCase(catalog, staticSource{err: errors.New("gone")}, nil)}

	event := &domain.Event{Topic: h.Topic(), Timestamp: time.Now().UTC()}
	if err := h.Handle(context.Background(), event); !errors.Is(err, port.ErrDatasetLoad) {
		t.Fatalf("expected ErrDatasetLoad, got %v", err)
	}
}
