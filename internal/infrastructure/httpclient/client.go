// Package httpclient wraps outbound HTTP calls to third-party lookups
// (geocoder, carrier lookup) with a circuit breaker and bounded retries.
package httpclient

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamRateLimited = errors.New("upstream rate limited")
)

type RetryPolicy struct {
	MaxRetries int
	MinWait    time.Duration
	MaxWait    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, MinWait: 250 * time.Millisecond, MaxWait: 5 * time.Second}
}

// Client retries 429 and 5xx responses and trips a breaker after repeated
// failures. Other 4xx responses are returned to the caller untouched.
type Client struct {
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	policy    RetryPolicy
	userAgent string
	sleepFn   func(time.Duration)
}

type Option func(*Client)

// WithSleepFunc replaces time.Sleep between retries.
func WithSleepFunc(fn func(time.Duration)) Option {
	return func(c *Client) {
		c.sleepFn = fn
	}
}

func WithBreaker(cb *gobreaker.CircuitBreaker[*http.Response]) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

func New(httpClient *http.Client, name string, policy RetryPolicy, userAgent string, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	c := &Client{
		http:      httpClient,
		breaker:   NewBreaker(name),
		policy:    policy,
		userAgent: userAgent,
		sleepFn:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewBreaker opens after five consecutive failures and probes again after 30s.
func NewBreaker(name string) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// Do sends a body-less request. The caller closes the response body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	var lastResp *http.Response
	var lastErr error

	attempts := 1 + c.policy.MaxRetries
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := c.breaker.Execute(func() (*http.Response, error) {
			r, err := c.http.Do(req)
			if err != nil {
				return nil, err
			}
			if r.StatusCode >= 500 || r.StatusCode == http.StatusTooManyRequests {
				return r, fmt.Errorf("upstream returned %d", r.StatusCode)
			}
			return r, nil
		})
		if err == nil {
			return resp, nil
		}

		if lastResp != nil {
			lastResp.Body.Close()
		}
		lastResp, lastErr = resp, err

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			break
		}
		if req.Context().Err() != nil {
			break
		}
		if attempt < attempts-1 {
			c.sleepFn(c.backoff(attempt, resp))
		}
	}

	if lastResp != nil {
		lastResp.Body.Close()
	}
	return nil, mapError(lastResp, lastErr)
}

// backoff honours a numeric Retry-After, else exponential with jitter in
// [MinWait, MinWait*2^attempt] capped at MaxWait.
func (c *Client) backoff(attempt int, resp *http.Response) time.Duration {
	if resp != nil {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
			return min(time.Duration(secs)*time.Second, c.policy.MaxWait)
		}
	}

	ceiling := min(c.policy.MinWait<<attempt, c.policy.MaxWait)
	if ceiling <= c.policy.MinWait {
		return c.policy.MinWait
	}
	return c.policy.MinWait + time.Duration(rand.Int63n(int64(ceiling-c.policy.MinWait)))
}

func mapError(resp *http.Response, err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: circuit open: %v", ErrUpstreamUnavailable, err)
	case resp != nil && resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrUpstreamRateLimited, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
}
