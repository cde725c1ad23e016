package usecase

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"dineHoursApi/internal/modules/hours/domain"
	"dineHoursApi/internal/shared/metrics"
)

var (
	// ErrNotLoaded is returned by queries issued before a successful load.
	ErrNotLoaded = errors.New("restaurant data not loaded")
	// ErrInvalidWeekday is returned when a weekday falls outside Monday..Sunday.
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
)

// collection is one immutable generation of loaded restaurants. Loads build a
// fresh collection and swap the pointer, so readers always observe either the
// previous or the new generation, never a partial one.
type collection struct {
	restaurants []domain.Restaurant
}

// Catalog owns the in-memory restaurant collection and answers open-hours
// queries against its current snapshot.
type Catalog struct {
	current atomic.Pointer[collection]
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// LoadFromText parses CSV text and atomically installs the resulting
// collection, replacing any previous one wholesale. It returns the number of
// restaurants that parsed; malformed rows are dropped with a diagnostic.
func (c *Catalog) LoadFromText(csvText string) int {
	restaurants := domain.ParseRestaurants(csvText)
	c.current.Store(&collection{restaurants: restaurants})

	metrics.IncDatasetLoad()
	metrics.SetRestaurantCount(len(restaurants))
	slog.Info("restaurant collection installed", slog.Int("count", len(restaurants)))
	return len(restaurants)
}

// IsLoaded reports whether a load has completed since startup.
func (c *Catalog) IsLoaded() bool {
	return c.current.Load() != nil
}

// QueryOpen returns the sorted names of restaurants open on the given weekday
// at the given instant.
func (c *Catalog) QueryOpen(day domain.Weekday, at domain.TimeOfDay) ([]string, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	snapshot := c.current.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}

	metrics.IncOpenQuery()
	open := make([]string, 0)
	for _, resto := range snapshot.restaurants {
		if resto.OpenAt(day, at) {
			open = append(open, resto.Name)
		}
	}
	sort.Strings(open)
	return open, nil
}

// Count returns the number of restaurants in the current collection.
func (c *Catalog) Count() int {
	snapshot := c.current.Load()
	if snapshot == nil {
		return 0
	}
	return len(snapshot.restaurants)
}

// OpenOnWeekday returns the sorted names of restaurants with any hours on the
// given weekday.
func (c *Catalog) OpenOnWeekday(day domain.Weekday) ([]string, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	snapshot := c.current.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}

	open := make([]string, 0)
	for _, resto := range snapshot.restaurants {
		if _, ok := resto.Schedule[day]; ok {
			open = append(open, resto.Name)
		}
	}
	sort.Strings(open)
	return open, nil
}

// FindByName returns the first restaurant whose name matches case-insensitively.
func (c *Catalog) FindByName(name string) (domain.Restaurant, bool) {
	snapshot := c.current.Load()
	if snapshot == nil {
		return domain.Restaurant{}, false
	}
	for _, resto := range snapshot.restaurants {
		if strings.EqualFold(resto.Name, name) {
			return resto, true
		}
	}
	return domain.Restaurant{}, false
}
