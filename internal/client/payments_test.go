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

func TestPaymentsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var envelope map[string]gcpay.PaymentCreateRequest

		err := json.NewDecoder(r.Body).Decode(&envelope)
		require.NoError(t, err)

		request, ok := envelope["payments"]
		require.True(t, ok, "request body must be wrapped under the payments key")
		assert.Equal(t, 1000, request.Amount)
		assert.Equal(t, gcpay.CurrencyGBP, request.Currency)
		assert.Equal(t, "MD123", request.Links.Mandate)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"payments":{"id":"PM123","amount":1000,"currency":"GBP","status":"pending_submission"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Create(context.Background(), &gcpay.PaymentCreateRequest{
		Amount:   1000,
		Currency: gcpay.CurrencyGBP,
		Links:    gcpay.PaymentCreateLinks{Mandate: "MD123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "PM123", payment.ID)
	assert.Equal(t, gcpay.PaymentStatusPendingSubmission, payment.Status)
}

func TestPaymentsClient_Create_PinnedIdempotencyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pinned-key", r.Header.Get("Idempotency-Key"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"payments":{"id":"PM123"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Payments().Create(context.Background(), &gcpay.PaymentCreateRequest{
		Amount:   1000,
		Currency: gcpay.CurrencyGBP,
		Links:    gcpay.PaymentCreateLinks{Mandate: "MD123"},
	}, gcpay.WithIdempotencyKey("pinned-key"))
	require.NoError(t, err)
}

func TestPaymentsClient_Create_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"type":"validation_failed","code":422,"message":"Validation failed",` +
			`"errors":[{"field":"amount","message":"must be greater than 0"}]}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Payments().Create(context.Background(), &gcpay.PaymentCreateRequest{
		Currency: gcpay.CurrencyGBP,
		Links:    gcpay.PaymentCreateLinks{Mandate: "MD123"},
	})
	require.Error(t, err)
	assert.True(t, gcpay.IsValidationError(err))

	apiErr := &gcpay.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "must be greater than 0", apiErr.FieldMessages()["amount"])
}

func TestPaymentsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/PM123", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_, _ = w.Write([]byte(`{"payments":{"id":"PM123","amount":1000,"currency":"GBP","status":"confirmed",` +
			`"links":{"mandate":"MD123","creditor":"CR123"}}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Get(context.Background(), "PM123")
	require.NoError(t, err)
	assert.Equal(t, "PM123", payment.ID)
	assert.Equal(t, gcpay.PaymentStatusConfirmed, payment.Status)
	assert.Equal(t, "MD123", payment.Links.Mandate)
}

func TestPaymentsClient_Get_EmptyIdentity(t *testing.T) {
	client := NewTestClient("http://localhost:0")

	_, err := client.Payments().Get(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, gcpay.ErrInvalidArgument)
}

func TestPaymentsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "submitted", r.URL.Query().Get("status"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"payments":[{"id":"PM1"},{"id":"PM2"}],` +
			`"meta":{"cursors":{"before":null,"after":"PM2"},"limit":25}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Payments().List(context.Background(),
		gcpay.NewListParams().WithStatus("submitted").WithLimit(25))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "PM1", page.Items[0].ID)
	assert.True(t, page.HasMore())
	assert.Equal(t, "PM2", *page.Meta.Cursors.After)
}

func TestPaymentsClient_All(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		switch r.URL.Query().Get("after") {
		case "":
			_, _ = w.Write([]byte(`{"payments":[{"id":"PM1"},{"id":"PM2"}],` +
				`"meta":{"cursors":{"before":null,"after":"PM2"},"limit":2}}`))
		case "PM2":
			_, _ = w.Write([]byte(`{"payments":[{"id":"PM3"}],` +
				`"meta":{"cursors":{"before":"PM3","after":null},"limit":2}}`))
		default:
			t.Errorf("unexpected after cursor %q", r.URL.Query().Get("after"))
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	it := client.Payments().All(context.Background(), gcpay.NewListParams().WithLimit(2))

	var ids []string

	for it.HasNext() {
		payment, err := it.Next()
		require.NoError(t, err)

		ids = append(ids, payment.ID)
	}

	assert.Equal(t, []string{"PM1", "PM2", "PM3"}, ids)
	assert.Equal(t, 2, requests)
}

func TestPaymentsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/PM123", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var envelope map[string]gcpay.PaymentUpdateRequest

		err := json.NewDecoder(r.Body).Decode(&envelope)
		require.NoError(t, err)
		assert.Equal(t, "order-99", envelope["payments"].Metadata["order"])

		_, _ = w.Write([]byte(`{"payments":{"id":"PM123","metadata":{"order":"order-99"}}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Update(context.Background(), "PM123", &gcpay.PaymentUpdateRequest{
		Metadata: gcpay.Metadata{"order": "order-99"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order-99", payment.Metadata["order"])
}

func TestPaymentsClient_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/PM123/actions/cancel", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_, _ = w.Write([]byte(`{"payments":{"id":"PM123","status":"cancelled"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Cancel(context.Background(), "PM123")
	require.NoError(t, err)
	assert.Equal(t, gcpay.PaymentStatusCancelled, payment.Status)
}

func TestPaymentsClient_Cancel_InvalidState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_state","code":409,"message":"Payment already submitted"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Payments().Cancel(context.Background(), "PM123")
	require.Error(t, err)
	assert.True(t, gcpay.IsInvalidState(err))
}

func TestPaymentsClient_Retry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/PM123/actions/retry", r.URL.Path)
		assert.Equal(t, "retry-key", r.Header.Get("Idempotency-Key"))

		_, _ = w.Write([]byte(`{"payments":{"id":"PM123","status":"pending_submission"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Retry(context.Background(), "PM123",
		gcpay.WithIdempotencyKey("retry-key"))
	require.NoError(t, err)
	assert.Equal(t, gcpay.PaymentStatusPendingSubmission, payment.Status)
}

func TestPaymentsClient_Get_MissingEnvelopeKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"PM123"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Payments().Get(context.Background(), "PM123")
	require.Error(t, err)
	assert.True(t, gcpay.IsProtocolError(err))
	assert.ErrorIs(t, err, gcpay.ErrEnvelopeKeyMissing)
}
