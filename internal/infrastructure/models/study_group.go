package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudyGroup struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(120);not null"`
	Description string         `gorm:"type:text"`
	Type        string         `gorm:"type:varchar(64)"`
	Level       string         `gorm:"type:varchar(64)"`
	Roadmap     datatypes.JSON `gorm:"type:jsonb"`
	Schedule    datatypes.JSON `gorm:"type:jsonb"`
	CreatorID   uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StudyGroupMember struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StudyGroupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_study_group_member"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_study_group_member"`
	Role         string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
}
