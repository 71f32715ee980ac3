package constants

import "time"

// API versioning.
const (
	// APIVersion is the value sent in the GoCardless-Version header.
	APIVersion = "2015-07-06"

	// DefaultUserAgent identifies this client on the wire.
	DefaultUserAgent = "gcpay-go"
)

// API hosts.
const (
	// LiveAPIURL is the production API base URL.
	LiveAPIURL = "https://api.gocardless.com"

	// SandboxAPIURL is the sandbox API base URL.
	SandboxAPIURL = "https://api-sandbox.gocardless.com"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry bounds for the transport layer.
const (
	// DefaultRetryMax is the default maximum number of retries for
	// transient failures.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination limits.
const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 50

	// MaxPageLimit is the largest page size the API accepts.
	MaxPageLimit = 500
)

// Concurrency and batching limits.
const (
	// DefaultConcurrencyLimit limits concurrent batch operations.
	DefaultConcurrencyLimit = 3

	// StreamBufferSize is the default buffer size for page streams.
	StreamBufferSize = 10
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum number of cached responses.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is how long a cached GET response stays fresh.
	DefaultCacheTTL = 30 * time.Second
)
