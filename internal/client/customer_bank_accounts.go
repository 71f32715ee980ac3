package client

import (
	"context"

	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// CustomerBankAccountsClient implements gcpay.CustomerBankAccountsService.
type CustomerBankAccountsClient struct {
	base *resourceClient[gcpay.CustomerBankAccount]
}

// NewCustomerBankAccountsClient creates a new customer bank accounts client.
func NewCustomerBankAccountsClient(httpClient *http.Client) *CustomerBankAccountsClient {
	return &CustomerBankAccountsClient{
		base: newResourceClient[gcpay.CustomerBankAccount](httpClient, "/customer_bank_accounts", "customer_bank_accounts", "customer bank account"),
	}
}

// Create implements gcpay.CustomerBankAccountsService.Create.
func (c *CustomerBankAccountsClient) Create(ctx context.Context, request *gcpay.CustomerBankAccountCreateRequest, opts ...gcpay.RequestOption) (*gcpay.CustomerBankAccount, error) {
	return c.base.create(ctx, request, opts)
}

// Get implements gcpay.CustomerBankAccountsService.Get.
func (c *CustomerBankAccountsClient) Get(ctx context.Context, identity string) (*gcpay.CustomerBankAccount, error) {
	return c.base.get(ctx, identity)
}

// List implements gcpay.CustomerBankAccountsService.List.
func (c *CustomerBankAccountsClient) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.CustomerBankAccount], error) {
	return c.base.list(ctx, params)
}

// ListWithPath implements gcpay.PageLister for the iterator.
func (c *CustomerBankAccountsClient) ListWithPath(ctx context.Context, path string, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.CustomerBankAccount], error) {
	return c.base.listWithPath(ctx, path, params)
}

// All implements gcpay.CustomerBankAccountsService.All.
func (c *CustomerBankAccountsClient) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.CustomerBankAccount] {
	return gcpay.NewPageIterator[gcpay.CustomerBankAccount](ctx, c, c.base.basePath, params)
}

// Disable implements gcpay.CustomerBankAccountsService.Disable. A
// disabled bank account can no longer be used to create mandates.
func (c *CustomerBankAccountsClient) Disable(ctx context.Context, identity string) (*gcpay.CustomerBankAccount, error) {
	return c.base.action(ctx, identity, "disable", nil, nil)
}
