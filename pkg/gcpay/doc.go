// Package gcpay provides types, interfaces, and helpers for working with
// the GoCardless payments API.
//
// # Overview
//
// The gcpay package defines the domain types (Customer, Payment, Refund,
// Mandate, Subscription, Payout, Event) and the interfaces for
// resource-oriented services (CustomersService, PaymentsService, and so
// on). A concrete implementation of these services is provided by the
// gcclient package, which wires configuration, transport, authentication,
// and environment selection. Most consumers should import gcclient to
// construct a client and then interact with the service interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/paykit-io/gcpay/pkg/gcclient"
//	  "github.com/paykit-io/gcpay/pkg/gcpay"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gcclient.NewWithToken("live_token", gcpay.EnvironmentSandbox)
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of payments
//	  payments, err := cli.Payments().List(ctx, gcpay.NewListParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = payments
//	}
//
// # Queries and pagination
//
// Use ListParams to express list options (after/before cursors, limit,
// created_at bounds, endpoint filters). List endpoints are cursor
// paginated; the package provides a lazy iterator that fetches a page
// only when its items are needed:
//
//	it := cli.Payments().All(ctx, nil)
//	for it.HasNext() {
//	  payment, err := it.Next()
//	  if err != nil { break }
//	  _ = payment
//	}
//
// or fetch everything at once:
//
//	all, err := cli.Payments().All(ctx, nil).All()
//
// # Idempotency and retries
//
// Create operations send an Idempotency-Key header, auto-generated
// unless pinned with WithIdempotencyKey. The transport retries
// transient failures only for requests that are safe to repeat: GET,
// PUT, DELETE, and POSTs carrying an idempotency key. The key is fixed
// before the first attempt, so every retry of one logical call carries
// the same value.
//
// # Errors
//
// API errors are represented by APIError with a Type taken from the
// error body (validation_failed, invalid_api_usage, invalid_state,
// gocardless). Helpers such as IsValidationError, IsNotFound, and
// IsRateLimited make it easy to branch on common cases. Transport and
// decoding failures surface as NetworkError and ProtocolError.
//
// # Interceptors, caching, webhooks
//
// The package includes request/response interceptors (logging, custom
// headers, metrics, rate limiting), a pluggable Cache abstraction for
// GET responses (memory or NATS KV backends), a bounded-concurrency
// BatchExecutor for independent calls, and webhook signature
// verification via VerifyWebhookSignature/ParseWebhook.
package gcpay
