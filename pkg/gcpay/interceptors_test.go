package gcpay_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	debugs []string
	errors []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	chain := gcpay.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *gcpay.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *gcpay.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &gcpay.Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_ErrorStopsChain(t *testing.T) {
	t.Parallel()

	chain := gcpay.NewInterceptorChain()
	errBoom := errors.New("boom")
	secondRan := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *gcpay.Request) error {
		return errBoom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *gcpay.Request) error {
		secondRan = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &gcpay.Request{})
	require.ErrorIs(t, err, errBoom)
	assert.False(t, secondRan)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := gcpay.NewInterceptorChain()

	var seenStatus int

	chain.AddResponseInterceptor(func(ctx context.Context, req *gcpay.Request, resp *gcpay.Response) error {
		seenStatus = resp.StatusCode

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(),
		&gcpay.Request{Method: "GET", Path: "/payments"},
		&gcpay.Response{StatusCode: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, seenStatus)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := gcpay.HeaderInterceptor(map[string]string{
		"X-Request-ID": "req-1",
		"X-Tenant":     "acme",
	})

	req := &gcpay.Request{Method: "GET", Path: "/customers"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "req-1", req.Headers.Get("X-Request-ID"))
	assert.Equal(t, "acme", req.Headers.Get("X-Tenant"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &gcpay.Request{Method: "POST", Path: "/payments"}

	err := gcpay.LoggingInterceptor(logger)(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request"}, logger.debugs)

	err = gcpay.LoggingResponseInterceptor(logger)(context.Background(), req,
		&gcpay.Response{StatusCode: 201})
	require.NoError(t, err)
	assert.Contains(t, logger.debugs, "API Response")

	err = gcpay.LoggingResponseInterceptor(logger)(context.Background(), req,
		&gcpay.Response{StatusCode: 500, Error: errors.New("boom")})
	require.NoError(t, err)
	assert.Equal(t, []string{"API Response Error"}, logger.errors)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := gcpay.NewMetricsCollector()
	requestInterceptor := gcpay.MetricsRequestInterceptor(collector)
	responseInterceptor := gcpay.MetricsResponseInterceptor(collector)

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := &gcpay.Request{Method: "GET", Path: "/payments"}

		require.NoError(t, requestInterceptor(ctx, req))
		require.NoError(t, responseInterceptor(ctx, req, &gcpay.Response{StatusCode: http.StatusOK}))
	}

	req := &gcpay.Request{Method: "GET", Path: "/payments"}
	require.NoError(t, requestInterceptor(ctx, req))
	require.NoError(t, responseInterceptor(ctx, req, &gcpay.Response{StatusCode: http.StatusBadGateway}))

	metrics := collector.GetMetrics("GET /payments")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(4), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.AverageLatency)
	assert.False(t, metrics.LastRequestTime.IsZero())

	assert.Nil(t, collector.GetMetrics("GET /refunds"))
}

func TestMetricsCollector_OnChange(t *testing.T) {
	t.Parallel()

	collector := gcpay.NewMetricsCollector()

	var gotEndpoint string

	var gotTotal int64

	collector.SetOnChange(func(endpoint string, metrics *gcpay.Metrics) {
		gotEndpoint = endpoint
		gotTotal = metrics.TotalRequests
	})

	ctx := context.Background()
	req := &gcpay.Request{Method: "POST", Path: "/refunds"}

	require.NoError(t, gcpay.MetricsRequestInterceptor(collector)(ctx, req))
	require.NoError(t, gcpay.MetricsResponseInterceptor(collector)(ctx, req,
		&gcpay.Response{StatusCode: http.StatusCreated}))

	assert.Equal(t, "POST /refunds", gotEndpoint)
	assert.Equal(t, int64(1), gotTotal)
}

func TestRateLimitInterceptor_AllowsInitialBurst(t *testing.T) {
	t.Parallel()

	interceptor := gcpay.RateLimitInterceptor(5)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, interceptor(ctx, &gcpay.Request{}))
	}
}

func TestRateLimitInterceptor_HonorsContext(t *testing.T) {
	t.Parallel()

	interceptor := gcpay.RateLimitInterceptor(1)

	// Drain the bucket
	require.NoError(t, interceptor(context.Background(), &gcpay.Request{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := interceptor(ctx, &gcpay.Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
