package infrastructure

import (
	"context"
	"fmt"
	"os"

	"dineHoursApi/internal/modules/hours/application/port"
)

// FileDatasetSource reads the restaurant CSV from a fixed path on disk. The
// file is re-read on every fetch so reloads pick up edits in place.
type FileDatasetSource struct {
	path string
}

func NewFileDatasetSource(path string) *FileDatasetSource {
	return &FileDatasetSource{path: path}
}

func (s *FileDatasetSource) Fetch(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", port.ErrDatasetLoad, s.path, err)
	}
	return string(data), nil
}

var _ port.DatasetSource = (*FileDatasetSource)(nil)
