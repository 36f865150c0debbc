package sources

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/i474232898/temperature-heatmap/internal/climate"
	"github.com/sony/gobreaker"
)

// RemoteSource implements climate.Source over HTTP.
type RemoteSource struct {
	name    string
	url     string
	client  *http.Client
	policy  RetryPolicy
	circuit *gobreaker.CircuitBreaker
}

// NewRemoteSource builds a source that GETs the dataset from url.
func NewRemoteSource(client *http.Client, url string, policy RetryPolicy) *RemoteSource {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dataset-remote",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &RemoteSource{
		name:    "remote",
		url:     url,
		client:  client,
		policy:  policy,
		circuit: cb,
	}
}

func (s *RemoteSource) Name() string {
	return s.name
}

func (s *RemoteSource) Fetch(ctx context.Context) (climate.Dataset, error) {
	if s.url == "" {
		return climate.Dataset{}, fmt.Errorf("dataset url is not configured")
	}

	newRequest := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := getWithRetry(ctx, s.client, s.policy, s.circuit, newRequest)
	if err != nil {
		return climate.Dataset{}, err
	}
	defer resp.Body.Close()

	return climate.DecodeDataset(resp.Body)
}
