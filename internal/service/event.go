// internal/service/event.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/identifier"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	checkInCodeLen  = 6
	securityCodeLen = 4
)

type EventService struct {
	repo     repository.EventRepositoryIface
	members  repository.MemberRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
}

func NewEventService(
	repo repository.EventRepositoryIface,
	members repository.MemberRepositoryIface,
	recorder audit.Recorder,
) *EventService {
	return &EventService{
		repo:     repo,
		members:  members,
		recorder: recorder,
		validate: validator.New(),
	}
}

type EventInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at"`
}

// Create creates an event with a check-in code allocated in the church's
// code namespace. A code collision at insert redraws rather than failing.
func (s *EventService) Create(ctx context.Context, id tenant.Identity, input EventInput) (*model.Event, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	event := &model.Event{
		ChurchID:    id.ChurchID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
	}

	scope := id.Scope()
	ns := identifier.NamespaceFunc(func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.CheckInCodeExists(ctx, scope, candidate)
	})
	code, err := identifier.ShortCode(ctx, checkInCodeLen, ns, func(ctx context.Context, candidate string) error {
		event.CheckInCode = candidate
		return s.repo.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	event.CheckInCode = code

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "event", event.ID, model.Details{
		"title": event.Title,
		"code":  event.CheckInCode,
	})

	return event, nil
}

func (s *EventService) Get(ctx context.Context, id tenant.Identity, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByID(ctx, id.Scope(), eventID)
}

func (s *EventService) List(ctx context.Context, id tenant.Identity, offset, limit int) ([]*model.Event, int64, error) {
	return s.repo.FindAllPaginated(ctx, id.Scope(), offset, limit)
}

func (s *EventService) Update(ctx context.Context, id tenant.Identity, eventID uuid.UUID, input EventInput) (*model.Event, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	event, err := s.repo.FindByID(ctx, id.Scope(), eventID)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt

	// CheckInCode is immutable after allocation.

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionUpdate, "event", event.ID, nil)

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id tenant.Identity, eventID uuid.UUID) error {
	event, err := s.repo.FindByID(ctx, id.Scope(), eventID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id.Scope(), event.ID); err != nil {
		return err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionDelete, "event", event.ID, nil)

	return nil
}

type CheckInInput struct {
	MemberID    uuid.UUID `json:"member_id" validate:"required"`
	ServiceDate time.Time `json:"service_date"`
}

// CheckIn records attendance. One check-in per member, event, and day; a
// repeat same-day attempt fails with the already-checked-in conflict, while
// a different event the same day goes through. Child check-ins get a pickup
// security code unique for the event and day.
func (s *EventService) CheckIn(ctx context.Context, id tenant.Identity, eventID uuid.UUID, input CheckInInput) (*model.Attendance, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	scope := id.Scope()

	event, err := s.repo.FindByID(ctx, scope, eventID)
	if err != nil {
		return nil, err
	}

	member, err := s.members.FindByID(ctx, scope, input.MemberID)
	if err != nil {
		return nil, err
	}

	serviceDate := input.ServiceDate
	if serviceDate.IsZero() {
		serviceDate = time.Now().UTC()
	}
	serviceDate = serviceDate.Truncate(24 * time.Hour)

	att := &model.Attendance{
		ChurchID:    id.ChurchID,
		EventID:     event.ID,
		MemberID:    member.ID,
		ServiceDate: serviceDate,
		CheckedInBy: id.UserID,
	}

	if member.IsChild {
		// The insert claims the code, so a code that loses the race between
		// the existence check and the unique index is redrawn while a repeat
		// check-in still surfaces as the conflict it is.
		ns := identifier.NamespaceFunc(func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SecurityCodeExists(ctx, event.ID, serviceDate, candidate)
		})
		code, err := identifier.ShortCode(ctx, securityCodeLen, ns, func(ctx context.Context, candidate string) error {
			att.SecurityCode = candidate
			return s.repo.CreateAttendance(ctx, att)
		})
		if err != nil {
			return nil, err
		}
		att.SecurityCode = code
	} else if err := s.repo.CreateAttendance(ctx, att); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "attendance", att.ID, model.Details{
		"event_id":  event.ID.String(),
		"member_id": member.ID.String(),
	})

	return att, nil
}

func (s *EventService) Attendance(ctx context.Context, id tenant.Identity, eventID uuid.UUID, serviceDate time.Time) ([]*model.Attendance, error) {
	if serviceDate.IsZero() {
		serviceDate = time.Now().UTC()
	}
	serviceDate = serviceDate.Truncate(24 * time.Hour)
	return s.repo.FindAttendance(ctx, id.Scope(), eventID, serviceDate)
}
