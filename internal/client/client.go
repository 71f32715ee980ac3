// Package client implements the resource services against the HTTP
// transport.
package client

import (
	"fmt"

	"github.com/paykit-io/gcpay/internal/auth"
	"github.com/paykit-io/gcpay/internal/constants"
	"github.com/paykit-io/gcpay/internal/http"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// Client implements the gcpay.Client interface.
type Client struct {
	httpClient *http.Client
	tokens     auth.TokenProvider
	baseURL    string
	logger     gcpay.Logger

	// Resource services
	customers            gcpay.CustomersService
	customerBankAccounts gcpay.CustomerBankAccountsService
	payments             gcpay.PaymentsService
	refunds              gcpay.RefundsService
	mandates             gcpay.MandatesService
	subscriptions        gcpay.SubscriptionsService
	payouts              gcpay.PayoutsService
	creditors            gcpay.CreditorsService
	events               gcpay.EventsService
}

// resolveEndpoint maps the configured environment to a base URL, with
// an explicit Endpoint override winning.
func resolveEndpoint(config *gcpay.Config) string {
	if config.Endpoint != "" {
		return config.Endpoint
	}

	if config.Environment == gcpay.EnvironmentSandbox {
		return constants.SandboxAPIURL
	}

	return constants.LiveAPIURL
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *gcpay.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil && config.Cache.Type != gcpay.CacheTypeNone {
		cache, err := gcpay.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building cache: %w", err)
		}

		ttl := constants.DefaultCacheTTL
		if config.Cache.Options != nil && config.Cache.Options.TTL > 0 {
			ttl = config.Cache.Options.TTL
		}

		httpOpts = append(httpOpts, http.WithCache(cache, ttl))
	}

	return httpOpts, nil
}

// New creates a new API client from config.
func New(config *gcpay.Config) (*Client, error) {
	if config == nil {
		return nil, gcpay.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, gcpay.ErrAccessTokenRequired
	}

	endpoint := resolveEndpoint(config)

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewStaticTokenProvider(config.AccessToken)
	httpClient := http.NewClient(endpoint, tokens, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		tokens:     tokens,
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeServices()

	return client, nil
}

// NewWithTokenProvider creates a client around a caller-supplied token
// provider, for credential rotation schemes the Config cannot express.
func NewWithTokenProvider(config *gcpay.Config, tokens auth.TokenProvider) (*Client, error) {
	if config == nil {
		return nil, gcpay.ErrConfigRequired
	}

	endpoint := resolveEndpoint(config)

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(endpoint, tokens, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		tokens:     tokens,
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeServices()

	return client, nil
}

// initializeServices initializes all resource services.
func (c *Client) initializeServices() {
	c.customers = NewCustomersClient(c.httpClient)
	c.customerBankAccounts = NewCustomerBankAccountsClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
	c.mandates = NewMandatesClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.payouts = NewPayoutsClient(c.httpClient)
	c.creditors = NewCreditorsClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
}

// BaseURL returns the API base URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient exposes the underlying transport for advanced use.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Customers implements gcpay.Client.Customers.
func (c *Client) Customers() gcpay.CustomersService {
	return c.customers
}

// CustomerBankAccounts implements gcpay.Client.CustomerBankAccounts.
func (c *Client) CustomerBankAccounts() gcpay.CustomerBankAccountsService {
	return c.customerBankAccounts
}

// Payments implements gcpay.Client.Payments.
func (c *Client) Payments() gcpay.PaymentsService {
	return c.payments
}

// Refunds implements gcpay.Client.Refunds.
func (c *Client) Refunds() gcpay.RefundsService {
	return c.refunds
}

// Mandates implements gcpay.Client.Mandates.
func (c *Client) Mandates() gcpay.MandatesService {
	return c.mandates
}

// Subscriptions implements gcpay.Client.Subscriptions.
func (c *Client) Subscriptions() gcpay.SubscriptionsService {
	return c.subscriptions
}

// Payouts implements gcpay.Client.Payouts.
func (c *Client) Payouts() gcpay.PayoutsService {
	return c.payouts
}

// Creditors implements gcpay.Client.Creditors.
func (c *Client) Creditors() gcpay.CreditorsService {
	return c.creditors
}

// Events implements gcpay.Client.Events.
func (c *Client) Events() gcpay.EventsService {
	return c.events
}
