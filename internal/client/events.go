package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// EventsClient implements gcpay.EventsService. The event feed is
// append-only and read-only; filter by resource_type and action to
// follow a particular kind of change.
type EventsClient struct {
	base *resourceClient[gcpay.Event]
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *http.Client) *EventsClient {
	return &EventsClient{
		base: newResourceClient[gcpay.Event](httpClient, "/events", "events", "event"),
	}
}

// Get implements gcpay.EventsService.Get.
func (c *EventsClient) Get(ctx context.Context, identity string) (*gcpay.Event, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.EventsService.List.
func (c *EventsClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Event], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *EventsClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Event], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.EventsService.All.
func (c *EventsClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Event] {
	return gcpay.NewPageIterator[gcpay.Event](ctx, c, c.base.basePath, params)
}
