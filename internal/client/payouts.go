package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// PayoutsClient implements gcpay.PayoutsService. Payouts are created by
// the system as collections settle, so the surface is read-only.
type PayoutsClient struct {
	base *resourceClient[gcpay.Payout]
}

// NewPayoutsClient creates a new payouts client.
func NewPayoutsClient(httpClient *http.Client) *PayoutsClient {
	return &PayoutsClient{
		base: newResourceClient[gcpay.Payout](httpClient, "/payouts", "payouts", "payout"),
	}
}

// Get implements gcpay.PayoutsService.Get.
func (c *PayoutsClient) Get(ctx context.Context, identity string) (*gcpay.Payout, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.PayoutsService.List.
func (c *PayoutsClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Payout], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *PayoutsClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Payout], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.PayoutsService.All.
func (c *PayoutsClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Payout] {
	return gcpay.NewPageIterator[gcpay.Payout](ctx, c, c.base.basePath, params)
}
