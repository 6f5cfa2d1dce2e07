// Package auth is responsible for handling authentication and authorization
// logic: password hashing, signed token issuance and validation, the
// credential store, and the HTTP handlers and middleware built on top of them.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength     = 16
	hashIterations = 100_000
	digestLength   = sha256.Size
)

// Hasher derives and verifies salted password hashes using
// PBKDF2-HMAC-SHA256. Credentials are stored as
// "base64(salt):base64(digest)" so the salt travels with the digest and the
// record stays a single opaque string.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash generates a random salt and derives a digest from the password.
// Two calls with the same password produce different encodings.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	digest := pbkdf2.Key([]byte(password), salt, hashIterations, digestLength, sha256.New)
	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(digest), nil
}

// Verify reports whether password matches the encoded credential. A
// malformed credential verifies as false rather than returning an error, so
// a corrupt record can never authenticate. The digest comparison is
// constant-time.
func (h *Hasher) Verify(password, encoded string) bool {
	saltB64, digestB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	digest, err := base64.StdEncoding.DecodeString(digestB64)
	if err != nil {
		return false
	}
	computed := pbkdf2.Key([]byte(password), salt, hashIterations, digestLength, sha256.New)
	// ConstantTimeCompare returns 0 on length mismatch, so a truncated
	// stored digest fails closed as well.
	return subtle.ConstantTimeCompare(computed, digest) == 1
}
