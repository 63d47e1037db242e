package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/foodisbae/foodisbae-backend/internal/reservations"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
	"github.com/foodisbae/foodisbae-backend/pkg/pagination"
)

type stubReservationsService struct {
	reservation *reservations.ReservationDTO
	list        []reservations.ReservationDTO
	page        *reservations.ReservationList
	err         error
	cancelled   uuid.UUID
}

func (s *stubReservationsService) Create(ctx context.Context, userID uuid.UUID, req reservations.CreateRequest) (*reservations.ReservationDTO, error) {
	return s.reservation, s.err
}

func (s *stubReservationsService) ListForUser(ctx context.Context, userID uuid.UUID) ([]reservations.ReservationDTO, error) {
	return s.list, s.err
}

func (s *stubReservationsService) Get(ctx context.Context, actor reservations.Actor, id uuid.UUID) (*reservations.ReservationDTO, error) {
	return s.reservation, s.err
}

func (s *stubReservationsService) Cancel(ctx context.Context, actor reservations.Actor, id uuid.UUID) (*reservations.ReservationDTO, error) {
	s.cancelled = id
	return s.reservation, s.err
}

func (s *stubReservationsService) List(ctx context.Context, params pagination.Params, filters reservations.ListFilters) (*reservations.ReservationList, error) {
	return s.page, s.err
}

func TestReservationCreateReturns201(t *testing.T) {
	dto := &reservations.ReservationDTO{
		ID:     uuid.New(),
		Status: enums.ReservationStatusConfirmed,
		Guests: 4,
	}
	handler := ReservationCreate(&stubReservationsService{reservation: dto}, nil)

	body := `{"name":"Dupont","date":"2026-09-12","time_slot":"20:00","guests":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req = withActor(req, uuid.New(), "customer")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data reservations.ReservationDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != enums.ReservationStatusConfirmed {
		t.Fatalf("unexpected status %s", envelope.Data.Status)
	}
}

func TestReservationCreateRejectsZeroGuests(t *testing.T) {
	handler := ReservationCreate(&stubReservationsService{}, nil)

	body := `{"name":"Dupont","date":"2026-09-12","time_slot":"20:00","guests":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req = withActor(req, uuid.New(), "customer")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestReservationCancel(t *testing.T) {
	reservationID := uuid.New()
	svc := &stubReservationsService{reservation: &reservations.ReservationDTO{
		ID:     reservationID,
		Status: enums.ReservationStatusCancelled,
	}}
	handler := ReservationCancel(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+reservationID.String()+"/cancel", nil)
	req = withActor(req, uuid.New(), "customer")
	req = withURLParam(req, "reservationId", reservationID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.cancelled != reservationID {
		t.Fatalf("expected cancel of %s got %s", reservationID, svc.cancelled)
	}
}

func TestReservationCancelForbidden(t *testing.T) {
	svc := &stubReservationsService{err: pkgerrors.New(pkgerrors.CodeForbidden, "not your reservation")}
	handler := ReservationCancel(svc, nil)

	reservationID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/"+reservationID.String()+"/cancel", nil)
	req = withActor(req, uuid.New(), "customer")
	req = withURLParam(req, "reservationId", reservationID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}

func TestAdminReservationListRejectsUnknownStatus(t *testing.T) {
	handler := AdminReservationList(&stubReservationsService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/reservations?status=waitlisted", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
