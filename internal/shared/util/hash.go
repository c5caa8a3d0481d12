package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashKey returns a hex SHA-256 digest of s, safe for use as a cache key.
func HashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashJSON digests the JSON encoding of v. Struct fields encode in
// declaration order and map keys sorted, so equal values hash equally.
func HashJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return HashKey(string(raw)), nil
}
