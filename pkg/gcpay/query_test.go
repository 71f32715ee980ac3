package gcpay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("empty params", func(t *testing.T) {
		t.Parallel()

		values := gcpay.NewListParams().ToValues()
		assert.Empty(t, values)
	})

	t.Run("nil params", func(t *testing.T) {
		t.Parallel()

		var params *gcpay.ListParams

		values := params.ToValues()
		assert.Empty(t, values)
	})

	t.Run("cursors and limit", func(t *testing.T) {
		t.Parallel()

		values := gcpay.NewListParams().
			WithAfter("PM100").
			WithBefore("PM200").
			WithLimit(25).
			ToValues()

		assert.Equal(t, "PM100", values.Get("after"))
		assert.Equal(t, "PM200", values.Get("before"))
		assert.Equal(t, "25", values.Get("limit"))
	})

	t.Run("status filter joins values", func(t *testing.T) {
		t.Parallel()

		values := gcpay.NewListParams().
			WithStatus("submitted", "confirmed").
			ToValues()

		assert.Equal(t, "submitted,confirmed", values.Get("status"))
	})

	t.Run("endpoint filters", func(t *testing.T) {
		t.Parallel()

		values := gcpay.NewListParams().
			WithFilter("customer", "CU123").
			WithFilter("currency", "GBP").
			ToValues()

		assert.Equal(t, "CU123", values.Get("customer"))
		assert.Equal(t, "GBP", values.Get("currency"))
	})

	t.Run("created_at bounds in RFC3339 UTC", func(t *testing.T) {
		t.Parallel()

		loc := time.FixedZone("CET", 3600)
		values := gcpay.NewListParams().
			WithCreatedAfter(time.Date(2025, 1, 1, 1, 0, 0, 0, loc)).
			WithCreatedBefore(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
			ToValues()

		assert.Equal(t, "2025-01-01T00:00:00Z", values.Get("created_at[gt]"))
		assert.Equal(t, "2025-02-01T00:00:00Z", values.Get("created_at[lt]"))
	})

	t.Run("zero limit omitted", func(t *testing.T) {
		t.Parallel()

		values := gcpay.NewListParams().ToValues()
		assert.Empty(t, values.Get("limit"))
	})
}

func TestListParams_Builders(t *testing.T) {
	t.Parallel()

	params := gcpay.NewListParams().
		WithLimit(10).
		WithStatus("failed").
		WithFilter("mandate", "MD123")

	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, []string{"failed"}, params.Filters["status"])
	assert.Equal(t, []string{"MD123"}, params.Filters["mandate"])
}

func TestListParams_WithFilterAppends(t *testing.T) {
	t.Parallel()

	params := gcpay.NewListParams().
		WithStatus("submitted").
		WithStatus("confirmed")

	assert.Equal(t, []string{"submitted", "confirmed"}, params.Filters["status"])
	assert.Equal(t, "submitted,confirmed", params.ToValues().Get("status"))
}
