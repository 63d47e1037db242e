package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
	"github.com/foodisbae/foodisbae-backend/pkg/metrics"
	"github.com/foodisbae/foodisbae-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies who is calling a reservation operation.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

// Service defines reservation operations for customers and staff.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*ReservationDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]ReservationDTO, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationDTO, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationDTO, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*ReservationList, error)
}

type repository interface {
	Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Reservation, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*ReservationList, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ReservationStatus) error
}

type service struct {
	repo    repository
	metrics *metrics.DomainMetrics
}

// NewService constructs a reservations service. Metrics may be nil in tests.
func NewService(repo repository, domainMetrics *metrics.DomainMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reservations repository is required")
	}
	return &service{repo: repo, metrics: domainMetrics}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*ReservationDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.TimeSlot) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date and time slot are required")
	}
	if req.Guests < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "guests must be at least 1")
	}

	reservation, err := s.repo.Create(ctx, &models.Reservation{
		UserID:   userID,
		Name:     name,
		Date:     strings.TrimSpace(req.Date),
		TimeSlot: strings.TrimSpace(req.TimeSlot),
		Guests:   req.Guests,
		Notes:    req.Notes,
		Status:   enums.ReservationStatusConfirmed,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create reservation")
	}

	s.metrics.IncReservationCreated()
	return FromModel(reservation), nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]ReservationDTO, error) {
	reservations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reservations")
	}
	return fromModels(reservations), nil
}

func (s *service) Get(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationDTO, error) {
	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != actor.UserID && !actor.Role.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "reservation belongs to another user")
	}
	return FromModel(reservation), nil
}

// Cancel moves the reservation to cancelled. Cancelling an already cancelled
// reservation succeeds without touching the row.
func (s *service) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationDTO, error) {
	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != actor.UserID && !actor.Role.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "reservation belongs to another user")
	}

	if reservation.Status == enums.ReservationStatusCancelled {
		return FromModel(reservation), nil
	}

	if err := s.repo.UpdateStatus(ctx, id, enums.ReservationStatusCancelled); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancel reservation")
	}

	s.metrics.IncReservationCancelled()
	reservation.Status = enums.ReservationStatusCancelled
	return FromModel(reservation), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters ListFilters) (*ReservationList, error) {
	list, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reservations")
	}
	return list, nil
}

func (s *service) findReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup reservation")
	}
	return reservation, nil
}
