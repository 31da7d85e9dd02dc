package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationChallenge is an open identity verification attempt. Only the
// bcrypt hash of the challenge token is stored.
type VerificationChallenge struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	TokenHash   string    `json:"-"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CompletedAt null.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VerificationChallengeResponse carries the plaintext token exactly once
type VerificationChallengeResponse struct {
	ChallengeID uuid.UUID `json:"challengeId"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// CompleteVerificationInput represents input for finishing verification
type CompleteVerificationInput struct {
	Token string `json:"token" binding:"required"`
}
