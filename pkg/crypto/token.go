package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenHashCost is the bcrypt cost for one-time tokens
	TokenHashCost = 10

	// VerificationTokenBytes is the raw length of a verification token.
	VerificationTokenBytes = 16
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomRead                 = rand.Read
)

// HashToken hashes a one-time token for storage
func HashToken(token string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(token), TokenHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}
	return string(bytes), nil
}

// CompareToken reports whether token matches a stored hash
func CompareToken(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}

// GenerateRandomToken returns length random bytes hex encoded
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateVerificationToken returns a 32-character verification token
func GenerateVerificationToken() (string, error) {
	return GenerateRandomToken(VerificationTokenBytes)
}
