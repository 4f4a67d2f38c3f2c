// internal/service/member.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MemberService struct {
	repo     repository.MemberRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
}

func NewMemberService(repo repository.MemberRepositoryIface, recorder audit.Recorder) *MemberService {
	return &MemberService{
		repo:     repo,
		recorder: recorder,
		validate: validator.New(),
	}
}

type MemberInput struct {
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Phone     string     `json:"phone"`
	Birthday  *time.Time `json:"birthday"`
	IsChild   bool       `json:"is_child"`
	Notes     string     `json:"notes"`
}

func (s *MemberService) Create(ctx context.Context, id tenant.Identity, input MemberInput) (*model.Member, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	scope := id.Scope()
	if input.Email != "" {
		taken, err := s.repo.EmailExists(ctx, scope, input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: member email already in use", domain.ErrConflict)
		}
	}

	member := &model.Member{
		ChurchID:  id.ChurchID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Birthday:  input.Birthday,
		IsChild:   input.IsChild,
		Notes:     input.Notes,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "member", member.ID, model.Details{
		"first_name": member.FirstName,
		"last_name":  member.LastName,
	})

	return member, nil
}

func (s *MemberService) Get(ctx context.Context, id tenant.Identity, memberID uuid.UUID) (*model.Member, error) {
	return s.repo.FindByID(ctx, id.Scope(), memberID)
}

func (s *MemberService) List(ctx context.Context, id tenant.Identity, offset, limit int) ([]*model.Member, int64, error) {
	return s.repo.FindAllPaginated(ctx, id.Scope(), offset, limit)
}

func (s *MemberService) Update(ctx context.Context, id tenant.Identity, memberID uuid.UUID, input MemberInput) (*model.Member, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	scope := id.Scope()

	// Ownership check: the scoped fetch fails with not-found for rows that
	// belong to another church.
	member, err := s.repo.FindByID(ctx, scope, memberID)
	if err != nil {
		return nil, err
	}

	// The email column is citext, so a case change of the member's own
	// address is not a new address.
	if input.Email != "" && !strings.EqualFold(input.Email, member.Email) {
		taken, err := s.repo.EmailExists(ctx, scope, input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: member email already in use", domain.ErrConflict)
		}
	}

	member.FirstName = input.FirstName
	member.LastName = input.LastName
	member.Email = input.Email
	member.Phone = input.Phone
	member.Birthday = input.Birthday
	member.IsChild = input.IsChild
	member.Notes = input.Notes

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionUpdate, "member", member.ID, nil)

	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, id tenant.Identity, memberID uuid.UUID) error {
	member, err := s.repo.FindByID(ctx, id.Scope(), memberID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id.Scope(), member.ID); err != nil {
		return err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionDelete, "member", member.ID, nil)

	return nil
}
