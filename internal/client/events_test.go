package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

func TestEventsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/EV123", r.URL.Path)

		_, _ = w.Write([]byte(`{"events":{"id":"EV123","resource_type":"payments","action":"failed",` +
			`"details":{"origin":"bank","cause":"insufficient_funds"},"links":{"payment":"PM123"}}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	event, err := client.Events().Get(context.Background(), "EV123")
	require.NoError(t, err)
	assert.Equal(t, "payments", event.ResourceType)
	assert.Equal(t, "failed", event.Action)
	assert.Equal(t, "insufficient_funds", event.Details.Cause)
	assert.Equal(t, "PM123", event.Links.Payment)
}

func TestEventsClient_List_Filtered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "payments", r.URL.Query().Get("resource_type"))
		assert.Equal(t, "failed", r.URL.Query().Get("action"))

		_, _ = w.Write([]byte(`{"events":[{"id":"EV1","action":"failed"},{"id":"EV2","action":"failed"}],` +
			`"meta":{"cursors":{"before":null,"after":null},"limit":50}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Events().List(context.Background(), gcpay.NewListParams().
		WithFilter("resource_type", "payments").
		WithFilter("action", "failed"))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.False(t, page.HasMore())
}

func TestEventsClient_All_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events":[],"meta":{"cursors":{"before":null,"after":null},"limit":50}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	events, err := client.Events().All(context.Background(), nil).All()
	require.NoError(t, err)
	assert.Empty(t, events)
}
