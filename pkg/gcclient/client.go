// Package gcclient provides the main entry point for creating GoCardless API clients
package gcclient

import (
	"fmt"
	"strings"

	"github.com/paykit-io/gcpay/internal/client"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// New creates a new API client from config.
func New(config *gcpay.Config) (gcpay.Client, error) {
	if config == nil {
		return nil, gcpay.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, gcpay.ErrAccessTokenRequired
	}

	// Normalize an explicit endpoint override
	if config.Endpoint != "" {
		endpoint := strings.TrimSuffix(config.Endpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.Endpoint = endpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client for the given environment using an
// access token.
func NewWithToken(token string, environment gcpay.Environment) (gcpay.Client, error) {
	return New(&gcpay.Config{
		AccessToken: token,
		Environment: environment,
	})
}

// NewSandbox creates a new client against the sandbox environment.
func NewSandbox(token string) (gcpay.Client, error) {
	return NewWithToken(token, gcpay.EnvironmentSandbox)
}

// NewWithEndpoint creates a new client against an explicit endpoint,
// mainly for tests and proxies.
func NewWithEndpoint(token, endpoint string) (gcpay.Client, error) {
	return New(&gcpay.Config{
		AccessToken: token,
		Endpoint:    endpoint,
	})
}
