package gcpay

import (
	"context"
	"time"
)

// Environment selects which API host a client talks to.
type Environment string

const (
	// EnvironmentLive is the production API.
	EnvironmentLive Environment = "live"

	// EnvironmentSandbox is the test API.
	EnvironmentSandbox Environment = "sandbox"
)

// CustomersService manages customer resources.
type CustomersService interface {
	Create(ctx context.Context, request *CustomerCreateRequest, opts ...RequestOption) (*Customer, error)
	Get(ctx context.Context, identity string) (*Customer, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Customer], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Customer]
	Update(ctx context.Context, identity string, request *CustomerUpdateRequest) (*Customer, error)
	Remove(ctx context.Context, identity string) error
}

// CustomerBankAccountsService manages customer bank account resources.
type CustomerBankAccountsService interface {
	Create(ctx context.Context, request *CustomerBankAccountCreateRequest, opts ...RequestOption) (*CustomerBankAccount, error)
	Get(ctx context.Context, identity string) (*CustomerBankAccount, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[CustomerBankAccount], error)
	All(ctx context.Context, params *ListParams) *PageIterator[CustomerBankAccount]
	Disable(ctx context.Context, identity string) (*CustomerBankAccount, error)
}

// PaymentsService manages payment resources.
type PaymentsService interface {
	Create(ctx context.Context, request *PaymentCreateRequest, opts ...RequestOption) (*Payment, error)
	Get(ctx context.Context, identity string) (*Payment, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Payment], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Payment]
	Update(ctx context.Context, identity string, request *PaymentUpdateRequest) (*Payment, error)
	Cancel(ctx context.Context, identity string) (*Payment, error)
	Retry(ctx context.Context, identity string, opts ...RequestOption) (*Payment, error)
}

// RefundsService manages refund resources.
type RefundsService interface {
	Create(ctx context.Context, request *RefundCreateRequest, opts ...RequestOption) (*Refund, error)
	Get(ctx context.Context, identity string) (*Refund, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Refund], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Refund]
	Update(ctx context.Context, identity string, request *RefundUpdateRequest) (*Refund, error)
}

// MandatesService manages mandate resources.
type MandatesService interface {
	Create(ctx context.Context, request *MandateCreateRequest, opts ...RequestOption) (*Mandate, error)
	Get(ctx context.Context, identity string) (*Mandate, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Mandate], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Mandate]
	Update(ctx context.Context, identity string, request *MandateUpdateRequest) (*Mandate, error)
	Cancel(ctx context.Context, identity string) (*Mandate, error)
	Reinstate(ctx context.Context, identity string) (*Mandate, error)
}

// SubscriptionsService manages subscription resources.
type SubscriptionsService interface {
	Create(ctx context.Context, request *SubscriptionCreateRequest, opts ...RequestOption) (*Subscription, error)
	Get(ctx context.Context, identity string) (*Subscription, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Subscription], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Subscription]
	Update(ctx context.Context, identity string, request *SubscriptionUpdateRequest) (*Subscription, error)
	Pause(ctx context.Context, identity string, request *SubscriptionPauseRequest) (*Subscription, error)
	Resume(ctx context.Context, identity string) (*Subscription, error)
	Cancel(ctx context.Context, identity string) (*Subscription, error)
}

// PayoutsService provides read access to payout resources.
type PayoutsService interface {
	Get(ctx context.Context, identity string) (*Payout, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Payout], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Payout]
}

// CreditorsService manages creditor resources.
type CreditorsService interface {
	Get(ctx context.Context, identity string) (*Creditor, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Creditor], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Creditor]
	Update(ctx context.Context, identity string, request *CreditorUpdateRequest) (*Creditor, error)
}

// EventsService provides read access to the event feed.
type EventsService interface {
	Get(ctx context.Context, identity string) (*Event, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Event], error)
	All(ctx context.Context, params *ListParams) *PageIterator[Event]
}

// Client provides access to all resource services.
type Client interface {
	Customers() CustomersService
	CustomerBankAccounts() CustomerBankAccountsService
	Payments() PaymentsService
	Refunds() RefundsService
	Mandates() MandatesService
	Subscriptions() SubscriptionsService
	Payouts() PayoutsService
	Creditors() CreditorsService
	Events() EventsService
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gcpay.Client.
//
// Per-request timeouts should generally be controlled via the context
// passed to client methods; HTTPTimeout is the outer bound applied by
// the transport. Retry behavior can be tuned via RetryMax and
// RetryWaitMin/RetryWaitMax; retries only ever apply to requests that
// are safe to repeat (see the transport documentation).
type Config struct {
	// AccessToken is the bearer token used on every request. Required.
	AccessToken string

	// Environment selects the live or sandbox host. Defaults to live.
	Environment Environment

	// Endpoint overrides the environment-derived base URL. Mainly for
	// tests and proxies.
	Endpoint string

	// HTTPTimeout is the default per-request timeout. Zero means the
	// transport default.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures
	// (connection errors, 5xx, 429). Zero means the transport default.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a
	// Logger is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache optionally enables read caching of GET responses.
	Cache *CacheConfig
}

// RequestOptions carries per-call overrides.
type RequestOptions struct {
	// IdempotencyKey is sent on unsafe (creating) requests. If empty,
	// create operations generate one so retries of the same logical
	// call are deduplicated server-side.
	IdempotencyKey string

	// Headers are extra headers for this call only.
	Headers map[string]string
}

// RequestOption mutates RequestOptions.
type RequestOption func(*RequestOptions)

// WithIdempotencyKey pins the idempotency key for a create call.
func WithIdempotencyKey(key string) RequestOption {
	return func(o *RequestOptions) {
		o.IdempotencyKey = key
	}
}

// WithHeader adds a header to a single call.
func WithHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}

		o.Headers[key] = value
	}
}

// ApplyRequestOptions folds opts into a RequestOptions value.
func ApplyRequestOptions(opts []RequestOption) *RequestOptions {
	options := &RequestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}
