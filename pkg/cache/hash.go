package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// KeyPrefix namespaces every key written by bridges.
const KeyPrefix = "bridges"

// hashKey joins prefix and the SHA-256 of the JSON-encoded parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DocumentKey identifies one payload delivered to one assignment on one
// server. Trailing slashes on server are ignored.
func DocumentKey(server, assignment string, payload []byte) string {
	return hashKey(KeyPrefix+":doc", strings.TrimRight(server, "/"), assignment, Hash(payload))
}
