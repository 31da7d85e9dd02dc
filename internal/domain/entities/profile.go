package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MaxSkillsPerLevel caps each skill bucket.
const MaxSkillsPerLevel = 5

// SkillSet groups a user's skills by proficiency
type SkillSet struct {
	Advanced     []string `json:"advanced"`
	Intermediate []string `json:"intermediate"`
	Beginner     []string `json:"beginner"`
}

// Normalize trims every value and validates the bucket rules: no empty
// values, at most MaxSkillsPerLevel distinct values per bucket, and no value
// in more than one bucket. Comparison is case-insensitive.
func (s SkillSet) Normalize() (SkillSet, error) {
	seen := make(map[string]string)
	buckets := []struct {
		name   string
		values []string
	}{
		{"advanced", s.Advanced},
		{"intermediate", s.Intermediate},
		{"beginner", s.Beginner},
	}

	out := make([][]string, len(buckets))
	for i, b := range buckets {
		cleaned := make([]string, 0, len(b.values))
		local := make(map[string]bool)
		for _, raw := range b.values {
			v := strings.TrimSpace(raw)
			if v == "" {
				return SkillSet{}, fmt.Errorf("%s skills must not contain empty values", b.name)
			}
			key := strings.ToLower(v)
			if local[key] {
				continue
			}
			if other, ok := seen[key]; ok {
				return SkillSet{}, fmt.Errorf("skill %q is listed as both %s and %s", v, other, b.name)
			}
			local[key] = true
			seen[key] = b.name
			cleaned = append(cleaned, v)
		}
		if len(cleaned) > MaxSkillsPerLevel {
			return SkillSet{}, fmt.Errorf("at most %d %s skills are allowed", MaxSkillsPerLevel, b.name)
		}
		out[i] = cleaned
	}

	return SkillSet{Advanced: out[0], Intermediate: out[1], Beginner: out[2]}, nil
}

// Profile is the one-to-one extension of a user
type Profile struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"userId"`
	Bio         string              `json:"bio"`
	Skills      SkillSet            `json:"skills"`
	Links       null.JSON           `json:"links,omitempty"`
	Projects    null.JSON           `json:"projects,omitempty"`
	Enrollments []*CourseEnrollment `json:"enrollments"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// CourseEnrollment links a profile to a catalog course
type CourseEnrollment struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profileId"`
	CourseID  uuid.UUID `json:"courseId"`
	Course    *Course   `json:"course,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileInput represents editable profile details
type UpdateProfileInput struct {
	Bio      string `json:"bio" binding:"max=2000"`
	Links    any    `json:"links,omitempty"`
	Projects any    `json:"projects,omitempty"`
}

// EnrollCourseInput represents input for a course enrollment
type EnrollCourseInput struct {
	CourseID string `json:"courseId" binding:"required"`
}
