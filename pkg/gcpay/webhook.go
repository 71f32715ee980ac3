package gcpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// WebhookSignatureHeader is the request header carrying the HMAC of the
// webhook body.
const WebhookSignatureHeader = "Webhook-Signature"

// ComputeWebhookSignature returns the hex-encoded HMAC-SHA256 of body
// under secret, the value the API places in the Webhook-Signature header.
func ComputeWebhookSignature(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature checks signature against the HMAC of body.
// The comparison is constant-time. Returns ErrInvalidSignature on
// mismatch; webhook handlers must respond 498 in that case rather than
// processing the events.
func VerifyWebhookSignature(body []byte, signature, secret string) error {
	expected := ComputeWebhookSignature(body, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}

	return nil
}

// ParseEvents decodes a webhook body into its events.
func ParseEvents(body []byte) ([]Event, error) {
	var envelope struct {
		Events []Event `json:"events"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, NewProtocolError(fmt.Errorf("parsing webhook body: %w", err))
	}

	return envelope.Events, nil
}

// ParseWebhook verifies the signature and, when valid, returns the
// decoded events.
func ParseWebhook(body []byte, signature, secret string) ([]Event, error) {
	err := VerifyWebhookSignature(body, signature, secret)
	if err != nil {
		return nil, err
	}

	return ParseEvents(body)
}
