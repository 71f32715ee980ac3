// Package gcclient provides the primary entry point for constructing a
// GoCardless API client that implements the gcpay.Client interface.
//
// It layers configuration, HTTP transport, authentication, and
// environment selection on top of the resource interfaces and types
// defined in the gcpay package. Most applications should import
// gcclient to build a client, then use the returned gcpay.Client to
// access resource-specific services, for example Payments(),
// Customers(), Mandates(), etc.
//
// Quick start
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
//
//	  // With an access token against the live environment:
//	  cli, err := gcclient.New(&gcpay.Config{AccessToken: "live_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or against the sandbox:
//	  cli, err = gcclient.NewSandbox("sandbox_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource services via the gcpay.Client interface
//	  payments, err := cli.Payments().List(ctx, gcpay.NewListParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = payments
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken,
// NewSandbox, and NewWithEndpoint that wrap New with the appropriate
// configuration.
package gcclient
