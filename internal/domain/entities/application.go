package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// ACCEPTED and REJECTED are terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending: {ApplicationAccepted, ApplicationRejected},
}

// ParseApplicationStatus converts a raw string to a status.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition reports whether an application may move from -> to.
func (from ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	for _, s := range applicationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Application represents a user's application to a position
type Application struct {
	ID         uuid.UUID         `json:"id"`
	PositionID uuid.UUID         `json:"positionId"`
	UserID     uuid.UUID         `json:"userId"`
	Status     ApplicationStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`

	// Populated by list queries that join position, startup and applicant.
	PositionTitle  string     `json:"positionTitle,omitempty"`
	StartupID      *uuid.UUID `json:"startupId,omitempty"`
	StartupName    string     `json:"startupName,omitempty"`
	ApplicantName  string     `json:"applicantName,omitempty"`
	ApplicantEmail string     `json:"applicantEmail,omitempty"`
}

// ApplyInput represents input for applying to a position
type ApplyInput struct {
	StartupID  string `json:"startupId" binding:"required"`
	PositionID string `json:"positionId" binding:"required"`
}

// UpdateApplicationStatusInput represents a founder's review decision
type UpdateApplicationStatusInput struct {
	Status string `json:"status" binding:"required"`
}
