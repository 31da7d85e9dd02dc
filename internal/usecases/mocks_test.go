package usecases_test

import (
	"context"
	"time"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/pkg/redis"
	"community-hub.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

func (m *MockUnitOfWork) WithLock(ctx context.Context) context.Context {
	args := m.Called(ctx)
	return args.Get(0).(context.Context)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// Mock VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, challenge *entities.VerificationChallenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockVerificationRepository) ListOpenByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entities.VerificationChallenge, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationChallenge), args.Error(1)
}

func (m *MockVerificationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockVerificationRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// Mock StartupRepository
type MockStartupRepository struct {
	mock.Mock
}

func (m *MockStartupRepository) Create(ctx context.Context, startup *entities.Startup) error {
	args := m.Called(ctx, startup)
	return args.Error(0)
}

func (m *MockStartupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Startup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Startup), args.Error(1)
}

func (m *MockStartupRepository) GetByFounderID(ctx context.Context, founderID uuid.UUID) (*entities.Startup, error) {
	args := m.Called(ctx, founderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Startup), args.Error(1)
}

func (m *MockStartupRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Startup, int64, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Startup), args.Get(1).(int64), args.Error(2)
}

// Mock PositionRepository
type MockPositionRepository struct {
	mock.Mock
}

func (m *MockPositionRepository) Create(ctx context.Context, position *entities.Position) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

func (m *MockPositionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Position), args.Error(1)
}

func (m *MockPositionRepository) ListByStartupIDs(ctx context.Context, startupIDs []uuid.UUID) ([]*entities.Position, error) {
	args := m.Called(ctx, startupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Position), args.Error(1)
}

// Mock ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *entities.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByPositionAndUser(ctx context.Context, positionID, userID uuid.UUID) (*entities.Application, error) {
	args := m.Called(ctx, positionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByPositionIDs(ctx context.Context, positionIDs []uuid.UUID) ([]*entities.Application, error) {
	args := m.Called(ctx, positionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByStartupID(ctx context.Context, startupID uuid.UUID) ([]*entities.Application, error) {
	args := m.Called(ctx, startupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock ReactionRepository
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Find(ctx context.Context, kind entities.ReactionKind, startupID, userID uuid.UUID) (*entities.Reaction, error) {
	args := m.Called(ctx, kind, startupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Reaction), args.Error(1)
}

func (m *MockReactionRepository) Create(ctx context.Context, reaction *entities.Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *MockReactionRepository) Delete(ctx context.Context, kind entities.ReactionKind, id uuid.UUID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockReactionRepository) ListByStartupIDs(ctx context.Context, kind entities.ReactionKind, startupIDs []uuid.UUID) ([]*entities.Reaction, error) {
	args := m.Called(ctx, kind, startupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Reaction), args.Error(1)
}

// Mock CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByStartupIDs(ctx context.Context, startupIDs []uuid.UUID) ([]*entities.Comment, error) {
	args := m.Called(ctx, startupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Comment), args.Error(1)
}

// Mock StudyGroupRepository
type MockStudyGroupRepository struct {
	mock.Mock
}

func (m *MockStudyGroupRepository) Create(ctx context.Context, group *entities.StudyGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockStudyGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.StudyGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudyGroup), args.Error(1)
}

func (m *MockStudyGroupRepository) List(ctx context.Context) ([]*entities.StudyGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.StudyGroup), args.Error(1)
}

func (m *MockStudyGroupRepository) AddMember(ctx context.Context, member *entities.StudyGroupMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStudyGroupRepository) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*entities.StudyGroupMember, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudyGroupMember), args.Error(1)
}

func (m *MockStudyGroupRepository) RemoveMember(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudyGroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entities.StudyGroupMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.StudyGroupMember), args.Error(1)
}

func (m *MockStudyGroupRepository) CountMembers(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, groupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateSkills(ctx context.Context, id uuid.UUID, skills entities.SkillSet) error {
	args := m.Called(ctx, id, skills)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateDetails(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) AddEnrollment(ctx context.Context, enrollment *entities.CourseEnrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockProfileRepository) ListEnrollments(ctx context.Context, profileID uuid.UUID) ([]*entities.CourseEnrollment, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CourseEnrollment), args.Error(1)
}

// Mock CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Organization), args.Error(1)
}

func (m *MockCatalogRepository) ListDepartments(ctx context.Context, organizationID uuid.UUID) ([]*entities.Department, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Department), args.Error(1)
}

func (m *MockCatalogRepository) ListCourses(ctx context.Context, departmentID uuid.UUID) ([]*entities.Course, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Course), args.Error(1)
}

func (m *MockCatalogRepository) GetCourseByID(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *MockCatalogRepository) UpsertOrganization(ctx context.Context, org *entities.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpsertDepartment(ctx context.Context, dept *entities.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpsertCourse(ctx context.Context, course *entities.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

// Mock SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}

func (m *MockSessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis.SessionData), args.Error(1)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
