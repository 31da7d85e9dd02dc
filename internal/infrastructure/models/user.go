package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name       string     `gorm:"type:varchar(100);not null"`
	Verified   bool       `gorm:"not null;default:false"`
	VerifiedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type VerificationChallenge struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	TokenHash   string     `gorm:"type:varchar(255);not null"`
	ExpiresAt   time.Time  `gorm:"index;not null"`
	CompletedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time
}
