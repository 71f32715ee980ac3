package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// RefundsClient implements gcpay.RefundsService.
type RefundsClient struct {
	base *resourceClient[gcpay.Refund]
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient *http.Client) *RefundsClient {
	return &RefundsClient{
		base: newResourceClient[gcpay.Refund](httpClient, "/refunds", "refunds", "refund"),
	}
}

// Create implements gcpay.RefundsService.Create. The request must carry
// TotalAmountConfirmation so the server can reject concurrent refunds
// that would over-refund the payment.
func (c *RefundsClient) Create(ctx context.Context, request *gcpay.RefundCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Refund, error) {
	return c.base.create(ctx, request, opts)
}

// Get implements gcpay.RefundsService.Get.
func (c *RefundsClient) Get(ctx context.Context, identity string) (*gcpay.Refund, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.RefundsService.List.
func (c *RefundsClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Refund], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *RefundsClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Refund], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.RefundsService.All.
func (c *RefundsClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Refund] {
	return gcpay.NewPageIterator[gcpay.Refund](ctx, c, c.base.basePath, params)
}

// Update implements gcpay.RefundsService.Update.
func (c *RefundsClient) Update(ctx context.Context, identity string, request *gcpay.RefundUpdateRequest) (*gcpay.Refund, error) {
	return c.base.update(ctx, identity, request)
}
