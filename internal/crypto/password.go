// Package crypto provides the credential-hashing primitives used by the
// authentication service. Passwords are hashed with bcrypt, which embeds a
// fresh random salt in every digest, so two hashes of the same input never
// compare equal byte-for-byte.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of password using the default cost.
// A fresh salt is generated per call. Empty passwords are accepted; bcrypt
// imposes no lower bound on input length.
//
// Returns an error only if the underlying primitive fails (e.g. the password
// exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether password matches the bcrypt digest
// hashedPassword. The comparison is performed by bcrypt with constant-time
// semantics; any bcrypt error (malformed digest, mismatch) yields false.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
