package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/pkg/validate"
	"github.com/smediamanagement84-star/ModelApp/internal/services/unlocks"
)

var (
	ErrValidation = errors.New("validation error")
	ErrLocked     = errors.New("talent must be unlocked before booking")
)

type Store interface {
	Create(ctx context.Context, b model.BookingRequest) error
	ListByAgency(ctx context.Context, agencyID string) ([]model.BookingRequest, error)
}

type TalentSource interface {
	Get(ctx context.Context, id string) (model.TalentRecord, error)
}

type Gate interface {
	IsUnlocked(ctx context.Context, viewerID, talentID string) (bool, error)
}

type CreateInput struct {
	TalentID     string
	ProjectName  string
	Description  string
	ShootDate    time.Time
	DurationDays int
	Budget       int
}

// Service handles booking requests from agencies to talents. Booking
// requires the requesting viewer to have unlocked the talent first.
type Service struct {
	store   Store
	talents TalentSource
	gate    Gate
	log     *zap.Logger
	now     func() time.Time
}

func NewService(store Store, talents TalentSource, gate Gate, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, talents: talents, gate: gate, log: log, now: time.Now}
}

func (s *Service) Create(ctx context.Context, agencyID string, in CreateInput) (model.BookingRequest, error) {
	if agencyID == "" {
		return model.BookingRequest{}, unlocks.ErrUnauthenticated
	}
	if !validate.Required(in.TalentID) {
		return model.BookingRequest{}, fmt.Errorf("%w: talent id is required", ErrValidation)
	}
	if !validate.Required(in.ProjectName) {
		return model.BookingRequest{}, fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if in.DurationDays <= 0 {
		return model.BookingRequest{}, fmt.Errorf("%w: duration must be at least one day", ErrValidation)
	}
	if in.Budget < 0 {
		return model.BookingRequest{}, fmt.Errorf("%w: budget cannot be negative", ErrValidation)
	}

	unlocked, err := s.gate.IsUnlocked(ctx, agencyID, in.TalentID)
	if err != nil {
		return model.BookingRequest{}, fmt.Errorf("check unlock state: %w", err)
	}
	if !unlocked {
		return model.BookingRequest{}, ErrLocked
	}

	talent, err := s.talents.Get(ctx, in.TalentID)
	if err != nil {
		return model.BookingRequest{}, fmt.Errorf("load talent: %w", err)
	}

	booking := model.BookingRequest{
		ID:           uuid.NewString(),
		TalentID:     talent.ID,
		TalentName:   talent.Name,
		AgencyID:     agencyID,
		ProjectName:  in.ProjectName,
		Description:  in.Description,
		ShootDate:    in.ShootDate,
		DurationDays: in.DurationDays,
		Budget:       in.Budget,
		Status:       model.BookingPending,
		CreatedAt:    s.now(),
	}

	if err := s.store.Create(ctx, booking); err != nil {
		return model.BookingRequest{}, fmt.Errorf("save booking: %w", err)
	}

	s.log.Info("booking request created",
		zap.String("booking_id", booking.ID),
		zap.String("talent_id", booking.TalentID),
		zap.String("agency_id", agencyID))

	return booking, nil
}

func (s *Service) List(ctx context.Context, agencyID string) ([]model.BookingRequest, error) {
	if agencyID == "" {
		return nil, unlocks.ErrUnauthenticated
	}
	return s.store.ListByAgency(ctx, agencyID)
}
