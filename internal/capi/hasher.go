package capi

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeAndHash produces the one-way digest Meta expects for PII match
// keys: trim, lowercase, SHA-256, lowercase hex. The normalization is
// unconditional; Meta normalizes the same raw value on its side before
// hashing, so any deviation here silently degrades match quality rather
// than raising an error.
//
// Empty or whitespace-only input returns nil so the field is omitted from
// the user_data structure instead of carrying an empty-string digest.
func NormalizeAndHash(value string) *string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return nil
	}

	sum := sha256.Sum256([]byte(normalized))
	digest := hex.EncodeToString(sum[:])
	return &digest
}
