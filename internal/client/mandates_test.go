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

func TestMandatesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mandates", r.URL.Path)

		var envelope map[string]gcpay.MandateCreateRequest

		err := json.NewDecoder(r.Body).Decode(&envelope)
		require.NoError(t, err)
		assert.Equal(t, "BA123", envelope["mandates"].Links.CustomerBankAccount)
		assert.Equal(t, "bacs", envelope["mandates"].Scheme)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"mandates":{"id":"MD123","scheme":"bacs","status":"pending_submission",` +
			`"links":{"customer_bank_account":"BA123","creditor":"CR123"}}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	mandate, err := client.Mandates().Create(context.Background(), &gcpay.MandateCreateRequest{
		Scheme: "bacs",
		Links:  gcpay.MandateCreateLinks{CustomerBankAccount: "BA123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "MD123", mandate.ID)
	assert.Equal(t, gcpay.MandateStatusPendingSubmission, mandate.Status)
}

func TestMandatesClient_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mandates/MD123/actions/cancel", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_, _ = w.Write([]byte(`{"mandates":{"id":"MD123","status":"cancelled"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	mandate, err := client.Mandates().Cancel(context.Background(), "MD123")
	require.NoError(t, err)
	assert.Equal(t, gcpay.MandateStatusCancelled, mandate.Status)
}

func TestMandatesClient_Reinstate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mandates/MD123/actions/reinstate", r.URL.Path)

		_, _ = w.Write([]byte(`{"mandates":{"id":"MD123","status":"pending_submission"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	mandate, err := client.Mandates().Reinstate(context.Background(), "MD123")
	require.NoError(t, err)
	assert.Equal(t, gcpay.MandateStatusPendingSubmission, mandate.Status)
}

func TestMandatesClient_List_ByCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "CU123", r.URL.Query().Get("customer"))

		_, _ = w.Write([]byte(`{"mandates":[{"id":"MD1"}],` +
			`"meta":{"cursors":{"before":null,"after":null},"limit":50}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Mandates().List(context.Background(),
		gcpay.NewListParams().WithFilter("customer", "CU123"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.HasMore())
}
