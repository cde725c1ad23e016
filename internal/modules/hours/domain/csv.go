package domain

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strings"
)

// ParseRestaurants reads CSV text shaped as a header row followed by
// (name, hours) rows and returns the restaurants whose hours parsed. Rows with
// a different field count or unparsable hours are logged and skipped; a bad
// row never aborts the load.
func ParseRestaurants(csvText string) []Restaurant {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1

	// Header row carries no data and is discarded unseen.
	if _, err := reader.Read(); err != nil {
		return nil
	}

	var restaurants []Restaurant
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn("dataset row unreadable", slog.Any("error", err))
			continue
		}
		if len(record) != 2 {
			continue
		}

		name, hoursText := record[0], record[1]
		schedule, err := ParseHours(hoursText)
		if err != nil {
			slog.Warn("dataset row skipped", slog.String("name", name), slog.Any("error", err))
			continue
		}
		restaurants = append(restaurants, Restaurant{Name: name, Schedule: schedule})
	}
	return restaurants
}
