// internal/service/donation.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type DonationService struct {
	funds     repository.FundRepositoryIface
	donations repository.DonationRepositoryIface
	members   repository.MemberRepositoryIface
	recorder  audit.Recorder
	validate  *validator.Validate
}

func NewDonationService(
	funds repository.FundRepositoryIface,
	donations repository.DonationRepositoryIface,
	members repository.MemberRepositoryIface,
	recorder audit.Recorder,
) *DonationService {
	return &DonationService{
		funds:     funds,
		donations: donations,
		members:   members,
		recorder:  recorder,
		validate:  validator.New(),
	}
}

type FundInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *DonationService) CreateFund(ctx context.Context, id tenant.Identity, input FundInput) (*model.Fund, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fund := &model.Fund{
		ChurchID:    id.ChurchID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.funds.Create(ctx, fund); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "fund", fund.ID, model.Details{
		"name": fund.Name,
	})

	return fund, nil
}

func (s *DonationService) ListFunds(ctx context.Context, id tenant.Identity) ([]*model.Fund, error) {
	return s.funds.FindAll(ctx, id.Scope())
}

type DonationInput struct {
	FundID      uuid.UUID            `json:"fund_id" validate:"required"`
	MemberID    *uuid.UUID           `json:"member_id"`
	AmountCents int64                `json:"amount_cents" validate:"required,gt=0"`
	Method      model.DonationMethod `json:"method"`
	Note        string               `json:"note"`
	GivenAt     time.Time            `json:"given_at"`
}

// Create records a donation and bumps the fund total in one transaction.
func (s *DonationService) Create(ctx context.Context, id tenant.Identity, input DonationInput) (*model.Donation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	scope := id.Scope()

	fund, err := s.funds.FindByID(ctx, scope, input.FundID)
	if err != nil {
		return nil, err
	}
	if input.MemberID != nil {
		if _, err := s.members.FindByID(ctx, scope, *input.MemberID); err != nil {
			return nil, err
		}
	}

	method := input.Method
	if method == "" {
		method = model.MethodCash
	}
	givenAt := input.GivenAt
	if givenAt.IsZero() {
		givenAt = time.Now().UTC()
	}

	donation := &model.Donation{
		ChurchID:    id.ChurchID,
		FundID:      fund.ID,
		MemberID:    input.MemberID,
		AmountCents: input.AmountCents,
		Method:      method,
		Note:        input.Note,
		GivenAt:     givenAt,
	}

	if err := s.donations.CreateWithFundTotal(ctx, donation); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "donation", donation.ID, model.Details{
		"fund_id":      fund.ID.String(),
		"amount_cents": donation.AmountCents,
	})

	return donation, nil
}

func (s *DonationService) List(ctx context.Context, id tenant.Identity, offset, limit int) ([]*model.Donation, int64, error) {
	return s.donations.FindAllPaginated(ctx, id.Scope(), offset, limit)
}
