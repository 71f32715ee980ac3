package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// CustomersClient implements gcpay.CustomersService.
type CustomersClient struct {
	base *resourceClient[gcpay.Customer]
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{
		base: newResourceClient[gcpay.Customer](httpClient, "/customers", "customers", "customer"),
	}
}

// Create implements gcpay.CustomersService.Create.
func (c *CustomersClient) Create(ctx context.Context, request *gcpay.CustomerCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Customer, error) {
	return c.base.create(ctx, request, opts)
}

// Get implements gcpay.CustomersService.Get.
func (c *CustomersClient) Get(ctx context.Context, identity string) (*gcpay.Customer, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.CustomersService.List.
func (c *CustomersClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Customer], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *CustomersClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Customer], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.CustomersService.All.
func (c *CustomersClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Customer] {
	return gcpay.NewPageIterator[gcpay.Customer](ctx, c, c.base.basePath, params)
}

// Update implements gcpay.CustomersService.Update.
func (c *CustomersClient) Update(ctx context.Context, identity string, request *gcpay.CustomerUpdateRequest) (*gcpay.Customer, error) {
	return c.base.update(ctx, identity, request)
}

// Remove implements gcpay.CustomersService.Remove.
func (c *CustomersClient) Remove(ctx context.Context, identity string) error {
	return c.base.remove(ctx, identity)
}
