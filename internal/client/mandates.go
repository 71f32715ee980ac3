package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// MandatesClient implements gcpay.MandatesService.
type MandatesClient struct {
	base *resourceClient[gcpay.Mandate]
}

// NewMandatesClient creates a new mandates client.
func NewMandatesClient(httpClient *http.Client) *MandatesClient {
	return &MandatesClient{
		base: newResourceClient[gcpay.Mandate](httpClient, "/mandates", "mandates", "mandate"),
	}
}

// Create implements gcpay.MandatesService.Create.
func (c *MandatesClient) Create(ctx context.Context, request *gcpay.MandateCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Mandate, error) {
	return c.base.create(ctx, request, opts)
}

// Get implements gcpay.MandatesService.Get.
func (c *MandatesClient) Get(ctx context.Context, identity string) (*gcpay.Mandate, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.MandatesService.List.
func (c *MandatesClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Mandate], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *MandatesClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Mandate], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.MandatesService.All.
func (c *MandatesClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Mandate] {
	return gcpay.NewPageIterator[gcpay.Mandate](ctx, c, c.base.basePath, params)
}

// Update implements gcpay.MandatesService.Update.
func (c *MandatesClient) Update(ctx context.Context, identity string, request *gcpay.MandateUpdateRequest) (*gcpay.Mandate, error) {
	return c.base.update(ctx, identity, request)
}

// Cancel implements gcpay.MandatesService.Cancel. Cancelling a mandate
// also cancels any pending payments collected against it.
func (c *MandatesClient) Cancel(ctx context.Context, identity string) (*gcpay.Mandate, error) {
	return c.base.action(ctx, identity, "cancel", nil, nil)
}

// Reinstate implements gcpay.MandatesService.Reinstate. Only mandates
// cancelled or expired by the banks can be reinstated; the API rejects
// reinstating an active mandate as invalid_state.
func (c *MandatesClient) Reinstate(ctx context.Context, identity string) (*gcpay.Mandate, error) {
	return c.base.action(ctx, identity, "reinstate", nil, nil)
}
