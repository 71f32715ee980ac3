// Package auth supplies bearer tokens to the HTTP transport.
package auth

import (
	"context"
	"sync"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// TokenProvider yields the access token to attach to outgoing requests.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenProvider returns a fixed access token. GoCardless access
// tokens do not expire, so this is the provider most clients use.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider around a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the configured token.
func (p *StaticTokenProvider) GetToken(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", gcpay.ErrAccessTokenRequired
	}

	return p.token, nil
}

// RotatableTokenProvider holds a token that can be swapped at runtime,
// for long-running processes that rotate credentials without a restart.
type RotatableTokenProvider struct {
	mu    sync.RWMutex
	token string
}

// NewRotatableTokenProvider creates a provider with an initial token.
func NewRotatableTokenProvider(token string) *RotatableTokenProvider {
	return &RotatableTokenProvider{token: token}
}

// GetToken returns the current token.
func (p *RotatableTokenProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == "" {
		return "", gcpay.ErrAccessTokenRequired
	}

	return p.token, nil
}

// SetToken replaces the current token. In-flight requests keep the
// token they already read.
func (p *RotatableTokenProvider) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = token
}
