package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// CreditorsClient implements gcpay.CreditorsService.
type CreditorsClient struct {
	base *resourceClient[gcpay.Creditor]
}

// NewCreditorsClient creates a new creditors client.
func NewCreditorsClient(httpClient *http.Client) *CreditorsClient {
	return &CreditorsClient{
		base: newResourceClient[gcpay.Creditor](httpClient, "/creditors", "creditors", "creditor"),
	}
}

// Get implements gcpay.CreditorsService.Get.
func (c *CreditorsClient) Get(ctx context.Context, identity string) (*gcpay.Creditor, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.CreditorsService.List.
func (c *CreditorsClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Creditor], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *CreditorsClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Creditor], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.CreditorsService.All.
func (c *CreditorsClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Creditor] {
	return gcpay.NewPageIterator[gcpay.Creditor](ctx, c, c.base.basePath, params)
}

// Update implements gcpay.CreditorsService.Update.
func (c *CreditorsClient) Update(ctx context.Context, identity string, request *gcpay.CreditorUpdateRequest) (*gcpay.Creditor, error) {
	return c.base.update(ctx, identity, request)
}
