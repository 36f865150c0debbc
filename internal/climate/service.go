package climate

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	// ErrNoSources is returned by Load when the service has nothing to fetch from.
	ErrNoSources = errors.New("no dataset sources configured")
)

// Service loads the dataset from an ordered list of sources. Nothing is
// cached: every call to Load is a fresh fetch.
type Service struct {
	sources []Source
}

// NewService creates a new Service. Sources are tried in the given order.
func NewService(sources ...Source) *Service {
	return &Service{
		sources: sources,
	}
}

// Load returns the dataset from the first source that succeeds. When every
// source fails the individual errors are joined.
func (s *Service) Load(ctx context.Context) (Dataset, error) {
	if len(s.sources) == 0 {
		log.Printf("ERROR: no dataset sources configured")
		return Dataset{}, ErrNoSources
	}

	var errs []error
	for _, src := range s.sources {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}

		ds, err := src.Fetch(ctx)
		if err != nil {
			// Log and fall through to the next source.
			log.Printf("source %s fetch failed: %v", src.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}

		log.Printf("DEBUG: loaded %d records from %s", len(ds.Records), src.Name())
		return ds, nil
	}

	return Dataset{}, errors.Join(errs...)
}
