package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Profile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Bio                string         `gorm:"type:text"`
	AdvancedSkills     pq.StringArray `gorm:"type:text[]"`
	IntermediateSkills pq.StringArray `gorm:"type:text[]"`
	BeginnerSkills     pq.StringArray `gorm:"type:text[]"`
	Links              datatypes.JSON `gorm:"type:jsonb"`
	Projects           datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CourseEnrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_profile_course"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_profile_course"`
	CreatedAt time.Time
}

type Organization struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Slug string    `gorm:"type:varchar(120);uniqueIndex;not null"`
}

type Department struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_department_org_name"`
	Name           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_department_org_name"`
}

type Course struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_department_code"`
	Code         string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_course_department_code"`
	Name         string    `gorm:"type:varchar(255);not null"`
}
