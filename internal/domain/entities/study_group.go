package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StudyGroupRole represents a member's role inside a group
type StudyGroupRole string

const (
	StudyGroupRoleAdmin  StudyGroupRole = "admin"
	StudyGroupRoleMember StudyGroupRole = "member"
)

// StudyGroup represents a student-run study group. Roadmap and Schedule are
// opaque structured documents owned by the client.
type StudyGroup struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Type        string              `json:"type"`
	Level       string              `json:"level"`
	Roadmap     null.JSON           `json:"roadmap,omitempty"`
	Schedule    null.JSON           `json:"schedule,omitempty"`
	CreatorID   uuid.UUID           `json:"creatorId"`
	MemberCount int                 `json:"memberCount"`
	Members     []*StudyGroupMember `json:"members,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// StudyGroupMember is one row of the membership join table
type StudyGroupMember struct {
	ID           uuid.UUID      `json:"id"`
	StudyGroupID uuid.UUID      `json:"studyGroupId"`
	UserID       uuid.UUID      `json:"userId"`
	Role         StudyGroupRole `json:"role"`
	User         *UserSummary   `json:"user,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// CreateStudyGroupInput represents input for creating a study group
type CreateStudyGroupInput struct {
	Name        string `json:"name" binding:"required,min=1,max=120"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Level       string `json:"level"`
	Roadmap     any    `json:"roadmap,omitempty"`
	Schedule    any    `json:"schedule,omitempty"`
}
