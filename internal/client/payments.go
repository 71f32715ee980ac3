package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// PaymentsClient implements gcpay.PaymentsService.
type PaymentsClient struct {
	base *resourceClient[gcpay.Payment]
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *http.Client) *PaymentsClient {
	return &PaymentsClient{
		base: newResourceClient[gcpay.Payment](httpClient, "/payments", "payments", "payment"),
	}
}

// Create implements gcpay.PaymentsService.Create.
func (c *PaymentsClient) Create(ctx context.Context, request *gcpay.PaymentCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Payment, error) {
	return c.base.create(ctx, request, opts)
}

// Get implements gcpay.PaymentsService.Get.
func (c *PaymentsClient) Get(ctx context.Context, identity string) (*gcpay.Payment, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.PaymentsService.List.
func (c *PaymentsClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Payment], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *PaymentsClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Payment], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.PaymentsService.All.
func (c *PaymentsClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Payment] {
	return gcpay.NewPageIterator[gcpay.Payment](ctx, c, c.base.basePath, params)
}

// Update implements gcpay.PaymentsService.Update.
func (c *PaymentsClient) Update(ctx context.Context, identity string, request *gcpay.PaymentUpdateRequest) (*gcpay.Payment, error) {
	return c.base.update(ctx, identity, request)
}

// Cancel implements gcpay.PaymentsService.Cancel. Only payments in
// pending_submission can be cancelled; anything else is an
// invalid_state error from the API.
func (c *PaymentsClient) Cancel(ctx context.Context, identity string) (*gcpay.Payment, error) {
	return c.base.action(ctx, identity, "cancel", nil, nil)
}

// Retry implements gcpay.PaymentsService.Retry, resubmitting a failed
// payment for collection.
func (c *PaymentsClient) Retry(ctx context.Context, identity string, opts ...gcpay.RequestOption) (*gcpay.Payment, error) {
	return c.base.action(ctx, identity, "retry", nil, opts)
}
