package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

func TestNew(t *testing.T) {
	t.Run("requires config", func(t *testing.T) {
		_, err := New(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, gcpay.ErrConfigRequired)
	})

	t.Run("requires access token", func(t *testing.T) {
		_, err := New(&gcpay.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, gcpay.ErrAccessTokenRequired)
	})

	t.Run("defaults to live endpoint", func(t *testing.T) {
		client, err := New(&gcpay.Config{AccessToken: "token"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.gocardless.com", client.BaseURL())
	})

	t.Run("sandbox environment", func(t *testing.T) {
		client, err := New(&gcpay.Config{
			AccessToken: "token",
			Environment: gcpay.EnvironmentSandbox,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://api-sandbox.gocardless.com", client.BaseURL())
	})

	t.Run("endpoint override wins", func(t *testing.T) {
		client, err := New(&gcpay.Config{
			AccessToken: "token",
			Environment: gcpay.EnvironmentSandbox,
			Endpoint:    "http://localhost:8080",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.BaseURL())
	})

	t.Run("initializes all services", func(t *testing.T) {
		client, err := New(&gcpay.Config{AccessToken: "token"})
		require.NoError(t, err)

		assert.NotNil(t, client.Customers())
		assert.NotNil(t, client.CustomerBankAccounts())
		assert.NotNil(t, client.Payments())
		assert.NotNil(t, client.Refunds())
		assert.NotNil(t, client.Mandates())
		assert.NotNil(t, client.Subscriptions())
		assert.NotNil(t, client.Payouts())
		assert.NotNil(t, client.Creditors())
		assert.NotNil(t, client.Events())
	})

	t.Run("rejects unsupported cache type", func(t *testing.T) {
		_, err := New(&gcpay.Config{
			AccessToken: "token",
			Cache:       &gcpay.CacheConfig{Type: gcpay.CacheType("bogus")},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, gcpay.ErrUnsupportedCacheType)
	})
}
