package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryWaitTime    = 200 * time.Millisecond
	defaultRetryMaxWaitTime = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty's
// defaults, except RetryWaitTime which defaults to 200ms.
type HTTPClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	RetryCount int
	// RetryWaitTime is the initial backoff between retries.
	RetryWaitTime time.Duration
}

// NewHTTPClient creates an HTTPClient. Requests are retried with backoff
// on transport errors, 429 and 503; other statuses are returned as-is.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	if opts.RetryCount > 0 {
		wait := opts.RetryWaitTime
		if wait <= 0 {
			wait = defaultRetryWaitTime
		}
		client.
			SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(max(wait, defaultRetryMaxWaitTime)).
			AddRetryCondition(shouldRetry)
	}

	return &HTTPClient{Client: client}
}

func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	switch resp.StatusCode() {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return true
	default:
		return false
	}
}
