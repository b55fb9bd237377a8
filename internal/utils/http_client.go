package utils

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prepended to every relative request path.
	BaseURL string
	// Timeout bounds a whole request including reading the body.
	Timeout time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewHTTPClient creates a resty-backed client. The client never retries on
// its own and never turns non-2xx statuses into errors; classification is
// left to the caller.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}

// NormalizeBaseURL turns a configured API address into a base URL resty can
// join paths onto. Addresses without a scheme get http://.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
