// internal/service/group.go
package service

import (
	"context"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GroupService struct {
	repo     repository.GroupRepositoryIface
	members  repository.MemberRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
}

func NewGroupService(
	repo repository.GroupRepositoryIface,
	members repository.MemberRepositoryIface,
	recorder audit.Recorder,
) *GroupService {
	return &GroupService{
		repo:     repo,
		members:  members,
		recorder: recorder,
		validate: validator.New(),
	}
}

type GroupInput struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	LeaderID    *uuid.UUID `json:"leader_id"`
}

func (s *GroupService) Create(ctx context.Context, id tenant.Identity, input GroupInput) (*model.Group, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if input.LeaderID != nil {
		if _, err := s.members.FindByID(ctx, id.Scope(), *input.LeaderID); err != nil {
			return nil, err
		}
	}

	group := &model.Group{
		ChurchID:    id.ChurchID,
		Name:        input.Name,
		Description: input.Description,
		LeaderID:    input.LeaderID,
	}

	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "group", group.ID, model.Details{
		"name": group.Name,
	})

	return group, nil
}

func (s *GroupService) Get(ctx context.Context, id tenant.Identity, groupID uuid.UUID) (*model.Group, error) {
	return s.repo.FindByID(ctx, id.Scope(), groupID)
}

func (s *GroupService) List(ctx context.Context, id tenant.Identity) ([]*model.Group, error) {
	return s.repo.FindAll(ctx, id.Scope())
}

func (s *GroupService) Update(ctx context.Context, id tenant.Identity, groupID uuid.UUID, input GroupInput) (*model.Group, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	group, err := s.repo.FindByID(ctx, id.Scope(), groupID)
	if err != nil {
		return nil, err
	}

	group.Name = input.Name
	group.Description = input.Description
	group.LeaderID = input.LeaderID

	if err := s.repo.Update(ctx, group); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionUpdate, "group", group.ID, nil)

	return group, nil
}

func (s *GroupService) Delete(ctx context.Context, id tenant.Identity, groupID uuid.UUID) error {
	group, err := s.repo.FindByID(ctx, id.Scope(), groupID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id.Scope(), group.ID); err != nil {
		return err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionDelete, "group", group.ID, nil)

	return nil
}

// AddMember adds a directory member to a group. Both sides are fetched
// through the scope first, so neither can cross tenants.
func (s *GroupService) AddMember(ctx context.Context, id tenant.Identity, groupID, memberID uuid.UUID) (*model.GroupMember, error) {
	scope := id.Scope()

	group, err := s.repo.FindByID(ctx, scope, groupID)
	if err != nil {
		return nil, err
	}
	member, err := s.members.FindByID(ctx, scope, memberID)
	if err != nil {
		return nil, err
	}

	gm := &model.GroupMember{
		ChurchID: id.ChurchID,
		GroupID:  group.ID,
		MemberID: member.ID,
	}

	if err := s.repo.AddMember(ctx, gm); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "group_member", gm.ID, model.Details{
		"group_id":  group.ID.String(),
		"member_id": member.ID.String(),
	})

	return gm, nil
}

func (s *GroupService) RemoveMember(ctx context.Context, id tenant.Identity, groupID, memberID uuid.UUID) error {
	if err := s.repo.RemoveMember(ctx, id.Scope(), groupID, memberID); err != nil {
		return err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionDelete, "group_member", memberID, model.Details{
		"group_id": groupID.String(),
	})

	return nil
}

func (s *GroupService) Members(ctx context.Context, id tenant.Identity, groupID uuid.UUID) ([]*model.GroupMember, error) {
	if _, err := s.repo.FindByID(ctx, id.Scope(), groupID); err != nil {
		return nil, err
	}
	return s.repo.FindMembers(ctx, id.Scope(), groupID)
}
