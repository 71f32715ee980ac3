package gcpay

import (
	"encoding/json"
	"fmt"
)

// Cursors holds the opaque pagination tokens returned under meta.cursors.
// After is nil exactly when no further pages exist.
type Cursors struct {
	Before *string `json:"before" yaml:"before"`
	After  *string `json:"after"  yaml:"after"`
}

// ListMeta carries pagination metadata for list responses.
type ListMeta struct {
	Cursors Cursors `json:"cursors" yaml:"cursors"`
	Limit   int     `json:"limit"   yaml:"limit"`
}

// ListResponse represents a single page of a cursor-paginated list.
type ListResponse[T any] struct {
	Items []T      `json:"items" yaml:"items"`
	Meta  ListMeta `json:"meta"  yaml:"meta"`
}

// HasMore reports whether the server indicated further pages.
func (r *ListResponse[T]) HasMore() bool {
	return r.Meta.Cursors.After != nil
}

// Metadata represents user-supplied key/value pairs stored on a resource.
// The API accepts up to three keys per resource.
type Metadata map[string]string

// WrapRequest wraps a request payload under its resource envelope key,
// producing the `{"payments": {...}}` body shape the API expects.
func WrapRequest(key string, body interface{}) map[string]interface{} {
	return map[string]interface{}{key: body}
}

// UnmarshalResource unwraps a single resource from a response envelope
// keyed by the resource name.
func UnmarshalResource[T any](data []byte, key string) (*T, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, NewProtocolError(fmt.Errorf("parsing response envelope: %w", err))
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, NewProtocolError(fmt.Errorf("%w: %q", ErrEnvelopeKeyMissing, key))
	}

	var resource T

	err = json.Unmarshal(raw, &resource)
	if err != nil {
		return nil, NewProtocolError(fmt.Errorf("parsing %q resource: %w", key, err))
	}

	return &resource, nil
}

// UnmarshalList unwraps a list of resources plus pagination metadata
// from a response envelope keyed by the resource name.
func UnmarshalList[T any](data []byte, key string) (*ListResponse[T], error) {
	var envelope struct {
		Meta ListMeta `json:"meta"`
	}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, NewProtocolError(fmt.Errorf("parsing list envelope: %w", err))
	}

	var body map[string]json.RawMessage

	err = json.Unmarshal(data, &body)
	if err != nil {
		return nil, NewProtocolError(fmt.Errorf("parsing list envelope: %w", err))
	}

	raw, ok := body[key]
	if !ok {
		return nil, NewProtocolError(fmt.Errorf("%w: %q", ErrEnvelopeKeyMissing, key))
	}

	var items []T

	err = json.Unmarshal(raw, &items)
	if err != nil {
		return nil, NewProtocolError(fmt.Errorf("parsing %q list: %w", key, err))
	}

	return &ListResponse[T]{
		Items: items,
		Meta:  envelope.Meta,
	}, nil
}
