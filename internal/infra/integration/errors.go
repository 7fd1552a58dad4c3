package integration

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotConfigured marks a client that cannot reach its API because the
// deployment left out a required setting.
var ErrNotConfigured = errors.New("integration not configured")

// StatusError is returned when an upstream API answers outside 2xx.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

// DecodeError is returned when a 2xx body does not have the expected shape.
type DecodeError struct {
	Service string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected response: %v", e.Service, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError wraps network failures (DNS, timeouts, resets).
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// CheckStatus turns a non-2xx response into a *StatusError, keeping a short
// excerpt of the body for the logs.
func CheckStatus(service string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

// MaskKey keeps only the edges of an API key so it can be logged.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
