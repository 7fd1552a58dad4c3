package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xavierca1/ligue-leads/internal/infra/integration"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeAmbiguousMatch       = "AMBIGUOUS_MATCH"
	CodeUpstreamAuth         = "UPSTREAM_AUTH"
	CodeUpstreamRateLimited  = "UPSTREAM_RATE_LIMITED"
	CodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeMalformedUpstream    = "MALFORMED_UPSTREAM_RESPONSE"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeUnsupported          = "UNSUPPORTED"
	CodeDirectoryUnavailable = "DIRECTORY_UNAVAILABLE"
)

// ToolError is the only error shape that crosses the tool boundary.
type ToolError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Scope      string   `json:"scope,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Retryable  bool     `json:"retryable"`

	cause error
}

func (e *ToolError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Code, e.Scope, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ToolError) Unwrap() error { return e.cause }

func IsToolError(err error, code string) bool {
	var te *ToolError
	return errors.As(err, &te) && te.Code == code
}

func invalidInput(format string, args ...any) *ToolError {
	return &ToolError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// classifyUpstream maps an integration failure to the tool taxonomy and
// attaches the credential scope.
func classifyUpstream(err error, scope string) error {
	if err == nil {
		return nil
	}
	var te *ToolError
	if errors.As(err, &te) {
		if te.Scope == "" {
			te.Scope = scope
		}
		return te
	}

	out := &ToolError{Scope: scope, cause: err}

	var statusErr *integration.StatusError
	var decodeErr *integration.DecodeError
	switch {
	case errors.As(err, &statusErr):
		switch {
		case statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden:
			out.Code = CodeUpstreamAuth
			out.Message = fmt.Sprintf("%s rejected the credential (status %d)", statusErr.Service, statusErr.StatusCode)
		case statusErr.StatusCode == http.StatusTooManyRequests:
			out.Code = CodeUpstreamRateLimited
			out.Message = fmt.Sprintf("%s rate limit reached, wait a minute and try again", statusErr.Service)
			out.Retryable = true
		default:
			out.Code = CodeUpstreamUnavailable
			out.Message = fmt.Sprintf("%s returned status %d", statusErr.Service, statusErr.StatusCode)
			out.Retryable = statusErr.StatusCode >= 500
		}
	case errors.Is(err, integration.ErrNotConfigured):
		out.Code = CodeUnsupported
		out.Message = err.Error()
	case errors.As(err, &decodeErr):
		out.Code = CodeMalformedUpstream
		out.Message = decodeErr.Error()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		out.Code = CodeUpstreamUnavailable
		out.Message = "request abandoned: " + err.Error()
		out.Retryable = true
	default:
		out.Code = CodeUpstreamUnavailable
		out.Message = err.Error()
		out.Retryable = true
	}
	return out
}

// duringPagination downgrades a mid-listing failure to UPSTREAM_UNAVAILABLE
// unless it is an auth or rate-limit problem the caller can act on.
func duringPagination(err error, page int) error {
	var te *ToolError
	if !errors.As(err, &te) || page <= 1 {
		return err
	}
	if te.Code == CodeUpstreamAuth || te.Code == CodeUpstreamRateLimited {
		return te
	}
	return &ToolError{
		Code:      CodeUpstreamUnavailable,
		Message:   fmt.Sprintf("listing failed on page %d, no partial results returned: %s", page, te.Message),
		Scope:     te.Scope,
		Retryable: true,
		cause:     te,
	}
}

// ErrorResult is the structured error object returned to the assistant.
type ErrorResult struct {
	Error     *ToolError `json:"error"`
	RequestID string     `json:"request_id,omitempty"`
}

// ToErrorResult converts any error into an ErrorResult.
func ToErrorResult(err error, requestID string) ErrorResult {
	var te *ToolError
	if !errors.As(err, &te) {
		te = &ToolError{Code: CodeUpstreamUnavailable, Message: err.Error(), cause: err}
	}
	return ErrorResult{Error: te, RequestID: requestID}
}
