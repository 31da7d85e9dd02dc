package usecases

import (
	"context"
	"errors"
	"strings"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/domain/repositories"
	"community-hub.backend/pkg/utils"
	"github.com/google/uuid"
)

// ProfileUsecase handles the actor's own profile
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
	catalogRepo repositories.CatalogRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(profileRepo repositories.ProfileRepository, catalogRepo repositories.CatalogRepository) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
	}
}

// GetMine returns the actor's profile with enrollments, creating an empty
// profile on first access.
func (u *ProfileUsecase) GetMine(ctx context.Context, actor entities.Actor) (*entities.Profile, error) {
	profile, err := u.getOrCreate(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	enrollments, err := u.profileRepo.ListEnrollments(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.Enrollments = enrollments
	return profile, nil
}

// UpdateSkills replaces the actor's skill buckets
func (u *ProfileUsecase) UpdateSkills(ctx context.Context, actor entities.Actor, skills entities.SkillSet) (*entities.Profile, error) {
	normalized, err := skills.Normalize()
	if err != nil {
		return nil, domainerrors.BadRequest(err.Error())
	}

	profile, err := u.getOrCreate(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := u.profileRepo.UpdateSkills(ctx, profile.ID, normalized); err != nil {
		return nil, err
	}
	return u.GetMine(ctx, actor)
}

// UpdateDetails saves bio, links and projects
func (u *ProfileUsecase) UpdateDetails(ctx context.Context, actor entities.Actor, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	links, err := marshalDocument(input.Links)
	if err != nil {
		return nil, domainerrors.BadRequest("links must be valid JSON")
	}
	projects, err := marshalDocument(input.Projects)
	if err != nil {
		return nil, domainerrors.BadRequest("projects must be valid JSON")
	}

	profile, err := u.getOrCreate(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	profile.Bio = strings.TrimSpace(input.Bio)
	profile.Links = links
	profile.Projects = projects
	if err := u.profileRepo.UpdateDetails(ctx, profile); err != nil {
		return nil, err
	}
	return u.GetMine(ctx, actor)
}

// Enroll records that the actor takes a catalog course
func (u *ProfileUsecase) Enroll(ctx context.Context, actor entities.Actor, courseID uuid.UUID) (*entities.CourseEnrollment, error) {
	course, err := u.catalogRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("course not found")
		}
		return nil, err
	}

	profile, err := u.getOrCreate(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	enrollment := &entities.CourseEnrollment{
		ID:        utils.GenerateUUIDv7(),
		ProfileID: profile.ID,
		CourseID:  course.ID,
		Course:    course,
	}
	if err := u.profileRepo.AddEnrollment(ctx, enrollment); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("already enrolled in this course")
		}
		return nil, err
	}
	return enrollment, nil
}

func (u *ProfileUsecase) getOrCreate(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	profile = &entities.Profile{
		ID:     utils.GenerateUUIDv7(),
		UserID: userID,
		Skills: entities.SkillSet{
			Advanced:     []string{},
			Intermediate: []string{},
			Beginner:     []string{},
		},
		Enrollments: []*entities.CourseEnrollment{},
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.profileRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return profile, nil
}
