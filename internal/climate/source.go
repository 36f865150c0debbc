package climate

import (
	"context"
)

// Source abstracts where the monthly-variance dataset comes from
// (e.g. the published JSON URL or a local copy of it).
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Dataset, error)
}
