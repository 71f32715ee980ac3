package gcpay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an API error body by its "type" field.
type ErrorType string

const (
	// ErrorTypeValidationFailed indicates a 422 with per-field errors.
	ErrorTypeValidationFailed ErrorType = "validation_failed"

	// ErrorTypeInvalidAPIUsage indicates a malformed or unauthorized request.
	ErrorTypeInvalidAPIUsage ErrorType = "invalid_api_usage"

	// ErrorTypeInvalidState indicates the resource cannot accept the
	// requested transition (for example cancelling a settled payment).
	ErrorTypeInvalidState ErrorType = "invalid_state"

	// ErrorTypeInternal indicates a server-side failure.
	ErrorTypeInternal ErrorType = "gocardless"
)

// Static errors that can be wrapped with context.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrEnvelopeKeyMissing    = errors.New("response envelope key missing")
	ErrNoMoreItems           = errors.New("no more items")
	ErrConfigRequired        = errors.New("config is required")
	ErrEndpointRequired      = errors.New("API endpoint is required")
	ErrAccessTokenRequired   = errors.New("access token is required")
	ErrInvalidSignature      = errors.New("webhook signature mismatch")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrCacheKeyNotFound      = errors.New("key not found")
	ErrCacheEntryExpired     = errors.New("entry expired")
	ErrKeyNotFoundInAnyCache = errors.New("key not found in any cache")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
)

// FieldError is a single validation failure attached to a request field.
type FieldError struct {
	Field          string `json:"field"                     yaml:"field"`
	Message        string `json:"message"                   yaml:"message"`
	RequestPointer string `json:"request_pointer,omitempty" yaml:"request_pointer,omitempty"`
}

// APIError represents a structured error response from the API.
type APIError struct {
	Type             ErrorType    `json:"type"                        yaml:"type"`
	Code             int          `json:"code"                        yaml:"code"`
	Message          string       `json:"message"                     yaml:"message"`
	DocumentationURL string       `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
	RequestID        string       `json:"request_id,omitempty"        yaml:"request_id,omitempty"`
	Errors           []FieldError `json:"errors,omitempty"            yaml:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: %s (code: %d)", e.Type, e.Message, e.Code)
	}

	return fmt.Sprintf("%s: %s (code: %d, %d field errors)", e.Type, e.Message, e.Code, len(e.Errors))
}

// FieldMessages returns the field errors as a field->message map.
func (e *APIError) FieldMessages() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}

	fields := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		fields[fe.Field] = fe.Message
	}

	return fields
}

// errorEnvelope is the wire shape of an error response body.
type errorEnvelope struct {
	Error APIError `json:"error"`
}

// NetworkError wraps a transport-level failure surfaced after the
// automatic retry budget is exhausted.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError indicates a response the client could not interpret,
// typically malformed JSON where an envelope was expected.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// NewProtocolError wraps err as a ProtocolError.
func NewProtocolError(err error) *ProtocolError {
	return &ProtocolError{Err: err}
}

// ParseErrorResponse maps a non-success response body to an *APIError.
// An unparseable body becomes a ProtocolError carrying the HTTP status.
func ParseErrorResponse(statusCode int, body []byte) error {
	var envelope errorEnvelope

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope.Error.Type == "" && envelope.Error.Message == "" {
		return NewProtocolError(fmt.Errorf("unparseable error body (status %d): %q", statusCode, truncateBody(body)))
	}

	apiErr := envelope.Error
	if apiErr.Code == 0 {
		apiErr.Code = statusCode
	}

	if apiErr.Type == "" {
		apiErr.Type = classifyStatus(statusCode)
	}

	return &apiErr
}

func classifyStatus(statusCode int) ErrorType {
	switch {
	case statusCode == http.StatusUnprocessableEntity:
		return ErrorTypeValidationFailed
	case statusCode == http.StatusConflict:
		return ErrorTypeInvalidState
	case statusCode >= http.StatusInternalServerError:
		return ErrorTypeInternal
	default:
		return ErrorTypeInvalidAPIUsage
	}
}

const maxErrorBodyPreview = 200

func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyPreview {
		return string(body[:maxErrorBodyPreview]) + "..."
	}

	return string(body)
}

// IsValidationError checks if the error is a validation_failed API error.
func IsValidationError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeValidationFailed
	}

	return false
}

// IsUsageError checks if the error is an invalid_api_usage API error.
func IsUsageError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeInvalidAPIUsage
	}

	return false
}

// IsInvalidState checks if the error is an invalid_state API error.
func IsInvalidState(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeInvalidState
	}

	return false
}

// IsInternalError checks if the error is a server-side (5xx) API error.
// Callers may retry these; an idempotency key supplied on the original
// call is safe to reuse.
func IsInternalError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeInternal
	}

	return false
}

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}

	return false
}

// IsRateLimited checks if the error is a 429 API error.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}

	return false
}

// IsNetworkError checks if the error is a transport failure.
func IsNetworkError(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

// IsProtocolError checks if the error is an unparseable-response failure.
func IsProtocolError(err error) bool {
	protoErr := &ProtocolError{}

	return errors.As(err, &protoErr)
}

// IsCancelled checks if the error was caused by caller-initiated
// cancellation or a context deadline.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
