package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

func TestRefundsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var envelope map[string]gcpay.RefundCreateRequest

		err := json.NewDecoder(r.Body).Decode(&envelope)
		require.NoError(t, err)

		request := envelope["refunds"]
		assert.Equal(t, 500, request.Amount)
		assert.Equal(t, 500, request.TotalAmountConfirmation)
		assert.Equal(t, "PM123", request.Links.Payment)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"refunds":{"id":"RF123","amount":500,"currency":"GBP",` +
			`"status":"submitted","links":{"payment":"PM123"}}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	refund, err := client.Refunds().Create(context.Background(), &gcpay.RefundCreateRequest{
		Amount:                  500,
		TotalAmountConfirmation: 500,
		Links:                   gcpay.RefundLinks{Payment: "PM123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "RF123", refund.ID)
	assert.Equal(t, "PM123", refund.Links.Payment)
}

func TestRefundsClient_Create_TotalAmountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"type":"validation_failed","code":422,"message":"Validation failed",` +
			`"errors":[{"field":"total_amount_confirmation","message":"does not match the total amount refunded"}]}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Refunds().Create(context.Background(), &gcpay.RefundCreateRequest{
		Amount:                  500,
		TotalAmountConfirmation: 100,
		Links:                   gcpay.RefundLinks{Payment: "PM123"},
	})
	require.Error(t, err)
	assert.True(t, gcpay.IsValidationError(err))
}

func TestRefundsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds/RF123", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		_, _ = w.Write([]byte(`{"refunds":{"id":"RF123","metadata":{"ticket":"T-1"}}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	refund, err := client.Refunds().Update(context.Background(), "RF123", &gcpay.RefundUpdateRequest{
		Metadata: gcpay.Metadata{"ticket": "T-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "T-1", refund.Metadata["ticket"])
}
