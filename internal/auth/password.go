// Package auth owns the credential-hashing and token-lifecycle logic behind
// the authentication boundary. It is pure: no store access, no HTTP types.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Fixed for the lifetime of a credential: changing them
// would invalidate every stored hash, since there is no password-reset flow.
const (
	saltBytes    = 16
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
)

// ErrMalformedSalt is returned when a stored salt cannot be decoded.
var ErrMalformedSalt = errors.New("malformed salt")

// GenerateSalt returns a fresh cryptographically random salt, base64-encoded.
func GenerateSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.RawStdEncoding.EncodeToString(b), nil
}

// HashPassword derives the argon2id digest of (password, salt). The result is
// deterministic for a given input pair; same plaintext plus same salt always
// yields the same hash.
func HashPassword(password, salt string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return "", ErrMalformedSalt
	}
	key := argon2.IDKey([]byte(password), raw, argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(key), nil
}

// VerifyPassword recomputes the hash for the candidate password and compares
// it against storedHash in constant time.
func VerifyPassword(password, salt, storedHash string) bool {
	computed, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
