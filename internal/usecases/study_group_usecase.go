package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/domain/repositories"
	"community-hub.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StudyGroupUsecase manages study groups and their membership
type StudyGroupUsecase struct {
	uow       repositories.UnitOfWork
	groupRepo repositories.StudyGroupRepository
	userRepo  repositories.UserRepository
}

// NewStudyGroupUsecase creates a new study group usecase
func NewStudyGroupUsecase(
	uow repositories.UnitOfWork,
	groupRepo repositories.StudyGroupRepository,
	userRepo repositories.UserRepository,
) *StudyGroupUsecase {
	return &StudyGroupUsecase{
		uow:       uow,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// Create creates a group and enrolls the creator as its admin
func (u *StudyGroupUsecase) Create(ctx context.Context, actor entities.Actor, input *entities.CreateStudyGroupInput) (*entities.StudyGroup, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("name is required")
	}
	roadmap, err := marshalDocument(input.Roadmap)
	if err != nil {
		return nil, domainerrors.BadRequest("roadmap must be valid JSON")
	}
	schedule, err := marshalDocument(input.Schedule)
	if err != nil {
		return nil, domainerrors.BadRequest("schedule must be valid JSON")
	}

	group := &entities.StudyGroup{
		ID:          utils.GenerateUUIDv7(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Type:        strings.TrimSpace(input.Type),
		Level:       strings.TrimSpace(input.Level),
		Roadmap:     roadmap,
		Schedule:    schedule,
		CreatorID:   actor.UserID,
	}
	admin := &entities.StudyGroupMember{
		ID:           utils.GenerateUUIDv7(),
		StudyGroupID: group.ID,
		UserID:       actor.UserID,
		Role:         entities.StudyGroupRoleAdmin,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.groupRepo.Create(txCtx, group); err != nil {
			return err
		}
		return u.groupRepo.AddMember(txCtx, admin)
	})
	if err != nil {
		return nil, err
	}

	group.MemberCount = 1
	group.Members = []*entities.StudyGroupMember{admin}
	return group, nil
}

// List returns every group newest first with its member count
func (u *StudyGroupUsecase) List(ctx context.Context) ([]*entities.StudyGroup, error) {
	groups, err := u.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return groups, nil
	}

	ids := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	counts, err := u.groupRepo.CountMembers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		g.MemberCount = counts[g.ID]
	}
	return groups, nil
}

// Get returns one group with its members
func (u *StudyGroupUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.StudyGroup, error) {
	group, err := u.findGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := u.groupRepo.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	users, err := u.userRepo.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entities.User, len(users))
	for _, usr := range users {
		byID[usr.ID] = usr
	}
	for _, m := range members {
		m.User = byID[m.UserID].Summary()
	}

	group.Members = members
	group.MemberCount = len(members)
	return group, nil
}

// Join adds the actor to a group as a regular member
func (u *StudyGroupUsecase) Join(ctx context.Context, actor entities.Actor, groupID uuid.UUID) (*entities.StudyGroupMember, error) {
	var member *entities.StudyGroupMember
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		group, err := u.findGroup(u.uow.WithLock(txCtx), groupID)
		if err != nil {
			return err
		}

		_, err = u.groupRepo.GetMember(txCtx, group.ID, actor.UserID)
		if err == nil {
			return domainerrors.Conflict("already a member")
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		member = &entities.StudyGroupMember{
			ID:           utils.GenerateUUIDv7(),
			StudyGroupID: group.ID,
			UserID:       actor.UserID,
			Role:         entities.StudyGroupRoleMember,
		}
		if err := u.groupRepo.AddMember(txCtx, member); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("already a member")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Leave removes the actor from a group. The last admin cannot leave while
// other members remain.
func (u *StudyGroupUsecase) Leave(ctx context.Context, actor entities.Actor, groupID uuid.UUID) error {
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		group, err := u.findGroup(u.uow.WithLock(txCtx), groupID)
		if err != nil {
			return err
		}

		member, err := u.groupRepo.GetMember(txCtx, group.ID, actor.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("not a member of this group")
			}
			return err
		}

		if member.Role == entities.StudyGroupRoleAdmin {
			members, err := u.groupRepo.ListMembers(txCtx, group.ID)
			if err != nil {
				return err
			}
			admins := 0
			for _, m := range members {
				if m.Role == entities.StudyGroupRoleAdmin {
					admins++
				}
			}
			if admins == 1 && len(members) > 1 {
				return domainerrors.Conflict("the last admin cannot leave while other members remain")
			}
		}

		return u.groupRepo.RemoveMember(txCtx, member.ID)
	})
}

func (u *StudyGroupUsecase) findGroup(ctx context.Context, id uuid.UUID) (*entities.StudyGroup, error) {
	group, err := u.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("study group not found")
		}
		return nil, err
	}
	return group, nil
}

// marshalDocument encodes a client supplied JSON document. A nil value
// stays null.
func marshalDocument(v any) (null.JSON, error) {
	if v == nil {
		return null.JSON{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return null.JSON{}, err
	}
	return null.JSONFrom(raw), nil
}
