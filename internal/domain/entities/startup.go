package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EmploymentType represents the kind of engagement a position offers
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentInternship EmploymentType = "INTERNSHIP"
	EmploymentContract   EmploymentType = "CONTRACT"
)

// IsValid reports whether t is a known employment type.
func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentInternship, EmploymentContract:
		return true
	}
	return false
}

// Startup represents a student startup listing
type Startup struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FounderID   uuid.UUID `json:"founderId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PositionRequirements holds the structured requirements of a position
type PositionRequirements struct {
	Skills     []string    `json:"skills"`
	Experience string      `json:"experience"`
	Education  null.String `json:"education,omitempty"`
}

// Position represents an open role at a startup
type Position struct {
	ID             uuid.UUID            `json:"id"`
	StartupID      uuid.UUID            `json:"startupId"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Requirements   PositionRequirements `json:"requirements"`
	EmploymentType EmploymentType       `json:"employmentType"`
	Location       string               `json:"location"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	Applications   []*Application       `json:"applications,omitempty"`
}

// CreateStartupInput represents input for creating a startup
type CreateStartupInput struct {
	Name        string `json:"name" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=5000"`
}

// CreatePositionInput represents input for opening a position
type CreatePositionInput struct {
	Title          string         `json:"title" binding:"required,min=1,max=120"`
	Description    string         `json:"description"`
	Skills         []string       `json:"skills"`
	Experience     string         `json:"experience"`
	Education      string         `json:"education"`
	EmploymentType EmploymentType `json:"employmentType" binding:"required"`
	Location       string         `json:"location"`
}

// StartupAggregate is the composed read view of a startup
type StartupAggregate struct {
	Startup
	Founder      *UserSummary     `json:"founder,omitempty"`
	Positions    []*Position      `json:"positions"`
	Likes        []*Reaction      `json:"likes"`
	Dislikes     []*Reaction      `json:"dislikes"`
	LikeCount    int              `json:"likeCount"`
	DislikeCount int              `json:"dislikeCount"`
	Comments     []*CommentThread `json:"comments"`
}
