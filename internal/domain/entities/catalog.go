package entities

import "github.com/google/uuid"

// Organization is a university or school
type Organization struct {
	ID   uuid.UUID `json:"id" yaml:"-"`
	Name string    `json:"name" yaml:"name"`
	Slug string    `json:"slug" yaml:"slug"`
}

// Department belongs to an organization
type Department struct {
	ID             uuid.UUID `json:"id" yaml:"-"`
	OrganizationID uuid.UUID `json:"organizationId" yaml:"-"`
	Name           string    `json:"name" yaml:"name"`
}

// Course belongs to a department
type Course struct {
	ID           uuid.UUID `json:"id" yaml:"-"`
	DepartmentID uuid.UUID `json:"departmentId" yaml:"-"`
	Code         string    `json:"code" yaml:"code"`
	Name         string    `json:"name" yaml:"name"`
}
