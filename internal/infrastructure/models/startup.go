package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Startup struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Description string    `gorm:"type:text"`
	FounderID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

type Position struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	StartupID      uuid.UUID      `gorm:"type:uuid;index;not null"`
	Title          string         `gorm:"type:varchar(120);not null"`
	Description    string         `gorm:"type:text"`
	Skills         pq.StringArray `gorm:"type:text[]"`
	Experience     string         `gorm:"type:varchar(255)"`
	Education      *string        `gorm:"type:varchar(255)"`
	EmploymentType string         `gorm:"type:varchar(32);not null"`
	Location       string         `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Application struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PositionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_application_position_user"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_application_position_user;index"`
	Status     string    `gorm:"type:varchar(16);not null;default:'PENDING'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Like and Dislike share a shape but live in separate tables so each gets
// its own (startup_id, user_id) unique index.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_startup_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_startup_user"`
	CreatedAt time.Time
}

type Dislike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dislike_startup_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dislike_startup_user"`
	CreatedAt time.Time
}

type Comment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StartupID uuid.UUID  `gorm:"type:uuid;index;not null"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Content   string     `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
