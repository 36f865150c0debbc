package sources

import (
	"context"
	"fmt"
	"os"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

// FileSource reads a local copy of the dataset.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Fetch(ctx context.Context) (climate.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return climate.Dataset{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return climate.Dataset{}, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	return climate.DecodeDataset(f)
}
