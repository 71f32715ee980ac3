package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// SubscriptionsClient implements gcpay.SubscriptionsService.
type SubscriptionsClient struct {
	base *resourceClient[gcpay.Subscription]
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{
		base: newResourceClient[gcpay.Subscription](httpClient, "/subscriptions", "subscriptions", "subscription"),
	}
}

// Create implements gcpay.SubscriptionsService.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *gcpay.SubscriptionCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Subscription, error) {
	return c.base.create(ctx, request, opts)
}

// Get implements gcpay.SubscriptionsService.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, identity string) (*gcpay.Subscription, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.SubscriptionsService.List.
func (c *SubscriptionsClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Subscription], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *SubscriptionsClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Subscription], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.SubscriptionsService.All.
func (c *SubscriptionsClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Subscription] {
	return gcpay.NewPageIterator[gcpay.Subscription](ctx, c, c.base.basePath, params)
}

// Update implements gcpay.SubscriptionsService.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, identity string, request *gcpay.SubscriptionUpdateRequest) (*gcpay.Subscription, error) {
	return c.base.update(ctx, identity, request)
}

// Pause implements gcpay.SubscriptionsService.Pause. A nil request
// pauses indefinitely; PauseCycles limits the pause to a number of
// billing cycles.
func (c *SubscriptionsClient) Pause(ctx context.Context, identity string, request *gcpay.SubscriptionPauseRequest) (*gcpay.Subscription, error) {
	var body interface{}
	if request != nil {
		body = request
	}

	return c.base.action(ctx, identity, "pause", body, nil)
}

// Resume implements gcpay.SubscriptionsService.Resume.
func (c *SubscriptionsClient) Resume(ctx context.Context, identity string) (*gcpay.Subscription, error) {
	return c.base.action(ctx, identity, "resume", nil, nil)
}

// Cancel implements gcpay.SubscriptionsService.Cancel. Payments already
// submitted to the banks are unaffected.
func (c *SubscriptionsClient) Cancel(ctx context.Context, identity string) (*gcpay.Subscription, error) {
	return c.base.action(ctx, identity, "cancel", nil, nil)
}
