// Package bondsio holds the typed clients for the Bondsio platform REST API.
// One method per backend endpoint, a single attempt per invocation: no
// retries, no backoff, only the client-level timeout.
package bondsio

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client handles communication with the Bondsio backend.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates a new client instance. baseURL comes from configuration.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// APIError is any non-2xx response from the backend. The caller translates
// it into a display message; the numeric status is kept for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bondsio: status code %d: %s", e.StatusCode, e.Body)
}

// StatusOf returns the upstream HTTP status carried by err, or 0 when err is
// not an APIError (network and decode failures surface identically upstream).
func StatusOf(err error) int {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func ok(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

func excerpt(body []byte) string {
	const max = 512
	s := string(body)
	if len(s) > max {
		s = s[:max]
	}
	return strings.TrimSpace(s)
}
