package reservations

import (
	"time"

	"github.com/google/uuid"

	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
)

// ListFilters describe the inputs supported by the admin reservations list.
type ListFilters struct {
	Status *enums.ReservationStatus
	UserID *uuid.UUID
}

// CreateRequest carries the booking form fields. Date and TimeSlot are kept
// as submitted; no calendar math is applied to them.
type CreateRequest struct {
	Name     string  `json:"name" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	TimeSlot string  `json:"time_slot" validate:"required"`
	Guests   int     `json:"guests" validate:"required,min=1"`
	Notes    *string `json:"notes,omitempty"`
}

// ReservationDTO is the transport shape for one booking.
type ReservationDTO struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"user_id"`
	Name      string                  `json:"name"`
	Date      string                  `json:"date"`
	TimeSlot  string                  `json:"time_slot"`
	Guests    int                     `json:"guests"`
	Notes     *string                 `json:"notes,omitempty"`
	Status    enums.ReservationStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// ReservationList wraps a cursor page of reservations.
type ReservationList struct {
	Reservations []ReservationDTO `json:"reservations"`
	NextCursor   string           `json:"next_cursor,omitempty"`
}

func FromModel(reservation *models.Reservation) *ReservationDTO {
	if reservation == nil {
		return nil
	}
	return &ReservationDTO{
		ID:        reservation.ID,
		UserID:    reservation.UserID,
		Name:      reservation.Name,
		Date:      reservation.Date,
		TimeSlot:  reservation.TimeSlot,
		Guests:    reservation.Guests,
		Notes:     reservation.Notes,
		Status:    reservation.Status,
		CreatedAt: reservation.CreatedAt,
		UpdatedAt: reservation.UpdatedAt,
	}
}

func fromModels(reservations []models.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(reservations))
	for i := range reservations {
		out = append(out, *FromModel(&reservations[i]))
	}
	return out
}
