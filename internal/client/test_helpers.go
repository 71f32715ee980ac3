package client

import (
	internalhttp "github.com/paykit-io/gcpay/internal/http"
)

// NewTestClient creates a client against a test server, with no token
// provider so tests do not need to fake authentication.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeServices()

	return client
}
