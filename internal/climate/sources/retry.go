package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// RetryPolicy bounds the exponential backoff between attempts.
type RetryPolicy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy is used when a source is built without an explicit policy.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:      3,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
}

// delay returns the wait before retry number attempt (0-based).
func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.InitialInterval << uint(attempt)
	if d <= 0 || (p.MaxInterval > 0 && d > p.MaxInterval) {
		d = p.MaxInterval
	}
	return d
}

var (
	errRateLimited   = errors.New("rate limited")
	errServerError   = errors.New("server error")
	errUnexpected    = errors.New("unexpected status code")
	errCircuitOpen   = errors.New("circuit breaker open")
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidPolicy = errors.New("invalid retry policy")
)

// retryable reports whether another attempt may succeed.
func retryable(err error) bool {
	return !errors.Is(err, errUnexpected)
}

// getWithRetry issues the request built by newRequest through the circuit
// breaker, retrying rate-limit, server and transport errors with backoff.
// The caller owns the returned response body.
func getWithRetry(
	ctx context.Context,
	client *http.Client,
	policy RetryPolicy,
	cb *gobreaker.CircuitBreaker,
	newRequest func(ctx context.Context) (*http.Request, error),
) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}
	if policy.MaxRetries < 0 || policy.InitialInterval <= 0 {
		return nil, errInvalidPolicy
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := newRequest(ctx)
		if err != nil {
			return nil, err
		}

		result, err := cb.Execute(func() (interface{}, error) {
			resp, doErr := client.Do(req)
			if doErr != nil {
				return nil, doErr
			}
			if statusErr := classifyStatus(resp.StatusCode); statusErr != nil {
				resp.Body.Close()
				return nil, statusErr
			}
			return resp, nil
		})
		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		if !retryable(err) || attempt >= policy.MaxRetries {
			return nil, err
		}

		timer := time.NewTimer(policy.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func classifyStatus(code int) error {
	switch {
	case code == http.StatusTooManyRequests:
		return errRateLimited
	case code >= 500:
		return errServerError
	case code < 200 || code >= 300:
		return fmt.Errorf("%w: %d", errUnexpected, code)
	}
	return nil
}
