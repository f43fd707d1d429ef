// Package auth owns credential hashing and session-token issuance. PINs
// are stored only as salted bcrypt digests; sessions are stateless signed
// tokens, so the server keeps no per-session state and cannot revoke a
// single token without rotating the signing secret.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPINCost matches the work factor the service has always used.
const DefaultPINCost = 10

// HashPIN derives a storable digest from a raw PIN. bcrypt embeds a
// fresh random salt per call, so hashing the same PIN twice yields
// different digests that both verify.
func HashPIN(pin string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultPINCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(digest), nil
}

// VerifyPIN reports whether pin matches the stored digest. The
// comparison is constant-time inside bcrypt; a mismatch is an ordinary
// false, never an error.
func VerifyPIN(pin, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pin)) == nil
}
