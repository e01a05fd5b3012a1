// Package passhash derives and verifies salted password hashes using
// PBKDF2-HMAC-SHA256. Hashes are stored as "salt:hash" where both parts are
// lower-case hex and the salt text itself keys the derivation.
package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 100000
	saltBytes  = 16
	keyBytes   = 32
)

func Hash(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt failed: %w", err)
	}
	salt := hex.EncodeToString(raw)
	return salt + ":" + derive(password, salt), nil
}

// Verify reports whether password matches the stored "salt:hash" encoding.
// Malformed encodings never match.
func Verify(password, encoded string) bool {
	salt, want, ok := strings.Cut(encoded, ":")
	if !ok || salt == "" || want == "" {
		return false
	}
	got := derive(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha256.New)
	return hex.EncodeToString(key)
}
