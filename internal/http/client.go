// Package http implements the HTTP transport for the GoCardless API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/paykit-io/gcpay/internal/auth"
	"github.com/paykit-io/gcpay/internal/constants"
	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// Request describes one API call before dispatch. Path may contain
// colon-prefixed placeholders resolved from PathParams.
type Request struct {
	Method string
	Path   string

	// PathParams substitute :name placeholders in Path.
	PathParams map[string]string

	// Query is appended to the URL.
	Query url.Values

	// Body is JSON-marshaled when non-nil.
	Body interface{}

	// Headers are extra headers for this request.
	Headers map[string]string

	// IdempotencyKey, when set, is sent as the Idempotency-Key header
	// and marks the request as safe to retry.
	IdempotencyKey string
}

// Response is the raw result of an API call.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is the HTTP transport. It owns authentication headers, the
// retry policy, debug logging, optional GET caching, and the mapping
// from non-success responses to typed errors.
type Client struct {
	baseURL      string
	tokens       auth.TokenProvider
	retrying     *retryablehttp.Client
	direct       *retryablehttp.Client
	userAgent    string
	logger       gcpay.Logger
	debug        bool
	cache        gcpay.Cache
	cacheTTL     time.Duration
	interceptors *gcpay.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger gcpay.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.retrying.HTTPClient.Timeout = timeout
			c.direct.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig tunes the retry budget and backoff window for
// requests that are safe to retry.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retrying.RetryMax = retryMax
		c.retrying.RetryWaitMin = waitMin
		c.retrying.RetryWaitMax = waitMax
	}
}

// WithCache enables caching of GET responses.
func WithCache(cache gcpay.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithInterceptors installs a request/response interceptor chain.
func WithInterceptors(chain *gcpay.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates an HTTP client for the given base URL.
func NewClient(baseURL string, tokens auth.TokenProvider, opts ...Option) *Client {
	inner := &nethttp.Client{
		Timeout: constants.DefaultHTTPTimeout,
	}

	// Two wrappers share one underlying client. The retrying one serves
	// requests that are safe to repeat; the direct one makes exactly one
	// attempt and serves POSTs that carry no idempotency key.
	retrying := retryablehttp.NewClient()
	retrying.HTTPClient = inner
	retrying.RetryMax = constants.DefaultRetryMax
	retrying.RetryWaitMin = constants.DefaultRetryWaitMin
	retrying.RetryWaitMax = constants.DefaultRetryWaitMax
	retrying.Logger = nil
	retrying.CheckRetry = retryPolicy
	retrying.ErrorHandler = passthroughErrorHandler

	direct := retryablehttp.NewClient()
	direct.HTTPClient = inner
	direct.RetryMax = 0
	direct.Logger = nil
	direct.CheckRetry = retryPolicy
	direct.ErrorHandler = passthroughErrorHandler

	client := &Client{
		baseURL:   baseURL,
		tokens:    tokens,
		retrying:  retrying,
		direct:    direct,
		userAgent: constants.DefaultUserAgent,
		cacheTTL:  constants.DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// retryPolicy retries transport failures, 5xx responses, and 429
// responses. Everything else, including 4xx API errors, is final.
func retryPolicy(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp.StatusCode >= nethttp.StatusInternalServerError ||
		resp.StatusCode == nethttp.StatusTooManyRequests {
		return true, nil
	}

	return false, nil
}

// passthroughErrorHandler hands back the final response after the retry
// budget is spent, so a terminal 5xx still surfaces as an API error
// rather than a bare "giving up" message.
func passthroughErrorHandler(resp *nethttp.Response, err error, _ int) (*nethttp.Response, error) {
	return resp, err
}

// EnsureIdempotencyKey returns key, or a freshly generated one when key
// is empty. Callers must resolve the key once, before the first attempt,
// so every retry of the same logical call carries the same value.
func EnsureIdempotencyKey(key string) string {
	if key != "" {
		return key
	}

	return uuid.NewString()
}

// Do executes a request and returns the raw response. For non-2xx
// responses both the response and a typed error are returned, so
// callers can still inspect headers and status.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	path, err := ExpandPath(req.Path, req.PathParams)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	if cached := c.cacheLookup(ctx, req.Method, fullURL); cached != nil {
		return cached, nil
	}

	var bodyBytes []byte

	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	interceptReq, err := c.runRequestInterceptors(ctx, req, path, bodyBytes)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req, interceptReq)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.dispatcher(req).Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}

		return nil, &gcpay.NetworkError{
			Op:  req.Method + " " + path,
			Err: err,
		}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &gcpay.NetworkError{
			Op:  req.Method + " " + path,
			Err: fmt.Errorf("reading response body: %w", err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	var respErr error
	if resp.StatusCode >= nethttp.StatusBadRequest {
		respErr = gcpay.ParseErrorResponse(resp.StatusCode, respBody)
	}

	err = c.runResponseInterceptors(ctx, interceptReq, resp, respErr)
	if err != nil {
		return resp, err
	}

	if respErr != nil {
		return resp, respErr
	}

	c.cacheStore(ctx, req.Method, fullURL, resp)

	return resp, nil
}

// dispatcher picks the retrying client for requests that are safe to
// repeat. A POST is only safe when it carries an idempotency key; the
// server then deduplicates repeated deliveries of the same call.
func (c *Client) dispatcher(req *Request) *retryablehttp.Client {
	switch req.Method {
	case nethttp.MethodGet, nethttp.MethodHead, nethttp.MethodPut, nethttp.MethodDelete:
		return c.retrying
	default:
		if req.IdempotencyKey != "" {
			return c.retrying
		}

		return c.direct
	}
}

func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request, interceptReq *gcpay.Request) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("GoCardless-Version", constants.APIVersion)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting access token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// Headers added by request interceptors win.
	if interceptReq != nil {
		for key, values := range interceptReq.Headers {
			for _, value := range values {
				httpReq.Header.Set(key, value)
			}
		}
	}

	return nil
}

func (c *Client) runRequestInterceptors(ctx context.Context, req *Request, path string, body []byte) (*gcpay.Request, error) {
	if c.interceptors == nil {
		return nil, nil
	}

	interceptReq := &gcpay.Request{
		Method:  req.Method,
		Path:    path,
		Headers: make(nethttp.Header),
		Body:    body,
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
	if err != nil {
		return nil, err
	}

	return interceptReq, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, interceptReq *gcpay.Request, resp *Response, respErr error) error {
	if c.interceptors == nil || interceptReq == nil {
		return nil
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, &gcpay.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      respErr,
	})
}

// cacheLookup serves fresh cached bodies for GET requests.
func (c *Client) cacheLookup(ctx context.Context, method, fullURL string) *Response {
	if c.cache == nil || method != nethttp.MethodGet {
		return nil
	}

	entry, err := c.cache.Get(ctx, gcpay.CacheKey(method, fullURL))
	if err != nil {
		return nil
	}

	return &Response{
		StatusCode: nethttp.StatusOK,
		Headers:    nethttp.Header{},
		Body:       entry.Data,
	}
}

func (c *Client) cacheStore(ctx context.Context, method, fullURL string, resp *Response) {
	if c.cache == nil || method != nethttp.MethodGet || resp.StatusCode != nethttp.StatusOK {
		return
	}

	_ = c.cache.Set(ctx, gcpay.CacheKey(method, fullURL), &gcpay.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(c.cacheTTL),
		ETag:      resp.Headers.Get("ETag"),
	})
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request without an idempotency key. It is never
// retried automatically; use PostIdempotent for creating calls.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// PostIdempotent performs a POST request carrying an idempotency key,
// making it safe for the transport to retry.
func (c *Client) PostIdempotent(ctx context.Context, path string, body interface{}, key string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:         nethttp.MethodPost,
		Path:           path,
		Body:           body,
		IdempotencyKey: EnsureIdempotencyKey(key),
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}
