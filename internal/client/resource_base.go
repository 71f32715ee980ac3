package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// resourceClient implements the operations shared by every resource
// service: enveloped create/get/list/update plus the actions sub-path.
// Request and response bodies are wrapped under the resource's plural
// envelope key, so `POST /payments` carries `{"payments": {...}}` and
// responses unwrap the same way.
type resourceClient[T any] struct {
	httpClient  *http.Client
	basePath    string // e.g. "/payments"
	envelopeKey string // e.g. "payments"
	description string // e.g. "payment", used in error context
}

func newResourceClient[T any](httpClient *http.Client, basePath, envelopeKey, description string) *resourceClient[T] {
	return &resourceClient[T]{
		httpClient:  httpClient,
		basePath:    basePath,
		envelopeKey: envelopeKey,
		description: description,
	}
}

// create POSTs a wrapped request body. The idempotency key is resolved
// once here, before the first attempt, so transport retries of the same
// logical call always carry the same key.
func (c *resourceClient[T]) create(ctx context.Context, body interface{}, opts []gcpay.RequestOption) (*T, error) {
	options := gcpay.ApplyRequestOptions(opts)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:         nethttp.MethodPost,
		Path:           c.basePath,
		Body:           gcpay.WrapRequest(c.envelopeKey, body),
		Headers:        options.Headers,
		IdempotencyKey: http.EnsureIdempotencyKey(options.IdempotencyKey),
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.description, err)
	}

	return gcpay.UnmarshalResource[T](resp.Body, c.envelopeKey)
}

func (c *resourceClient[T]) get(ctx context.Context, identity string) (*T, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:     nethttp.MethodGet,
		Path:       c.basePath + "/:identity",
		PathParams: map[string]string{"identity": identity},
	})
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.description, err)
	}

	return gcpay.UnmarshalResource[T](resp.Body, c.envelopeKey)
}

func (c *resourceClient[T]) list(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[T], error) {
	return c.listWithPath(ctx, c.basePath, params)
}

func (c *resourceClient[T]) listWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[T], error) {
	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", c.description, err)
	}

	return gcpay.UnmarshalList[T](resp.Body, c.envelopeKey)
}

// update PUTs a wrapped request body against one resource.
func (c *resourceClient[T]) update(ctx context.Context, identity string, body interface{}) (*T, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:     nethttp.MethodPut,
		Path:       c.basePath + "/:identity",
		PathParams: map[string]string{"identity": identity},
		Body:       gcpay.WrapRequest(c.envelopeKey, body),
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.description, err)
	}

	return gcpay.UnmarshalResource[T](resp.Body, c.envelopeKey)
}

// action POSTs to the resource's actions sub-path. Non-nil parameters
// are wrapped under "data" per the API's action convention. Actions are
// only retried when the caller pins an idempotency key.
func (c *resourceClient[T]) action(ctx context.Context, identity, name string, body interface{}, opts []gcpay.RequestOption) (*T, error) {
	options := gcpay.ApplyRequestOptions(opts)

	var wrapped interface{}
	if body != nil {
		wrapped = gcpay.WrapRequest("data", body)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:         nethttp.MethodPost,
		Path:           c.basePath + "/:identity/actions/" + name,
		PathParams:     map[string]string{"identity": identity},
		Body:           wrapped,
		Headers:        options.Headers,
		IdempotencyKey: options.IdempotencyKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, c.description, err)
	}

	return gcpay.UnmarshalResource[T](resp.Body, c.envelopeKey)
}

func (c *resourceClient[T]) remove(ctx context.Context, identity string) error {
	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:     nethttp.MethodDelete,
		Path:       c.basePath + "/:identity",
		PathParams: map[string]string{"identity": identity},
	})
	if err != nil {
		return fmt.Errorf("removing %s: %w", c.description, err)
	}

	return nil
}
