// Package signature implements Shopify webhook authentication: HMAC-SHA256
// over the raw request body, base64-encoded, compared against the value of
// the X-Shopify-Hmac-Sha256 header.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign computes the base64 HMAC-SHA256 digest Shopify attaches to webhooks.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks the header digest against the one computed from body. The
// body must be the untouched wire bytes; re-serializing the parsed payload
// first breaks verification. Comparison is constant-time.
func Verify(body []byte, header, secret string) bool {
	if header == "" || secret == "" {
		return false
	}
	expected := Sign(secret, body)
	return hmac.Equal([]byte(expected), []byte(header))
}
