package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// ReferralAlphabet has 32 symbols with look-alikes (0/O, 1/I) removed.
	ReferralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// ReferralCodeLength gives 32^8 possible codes.
	ReferralCodeLength = 8
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomRead                 = rand.Read
)

// HashSecret hashes a secret (API key) using bcrypt
func HashSecret(secret string, cost int) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(bytes), nil
}

// CheckSecret compares a secret with a bcrypt hash
func CheckSecret(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

// ConstantTimeEqual compares two secrets without leaking timing information.
// Empty values never match.
func ConstantTimeEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// GenerateRandomToken generates a random token of specified length
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateReferralCode returns a random code drawn from ReferralAlphabet.
func GenerateReferralCode() (string, error) {
	bytes := make([]byte, ReferralCodeLength)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate referral code: %w", err)
	}
	code := make([]byte, ReferralCodeLength)
	for i, b := range bytes {
		// 256 is a multiple of 32, so the modulo is unbiased.
		code[i] = ReferralAlphabet[int(b)%len(ReferralAlphabet)]
	}
	return string(code), nil
}
