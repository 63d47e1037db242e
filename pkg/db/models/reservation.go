package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/foodisbae/foodisbae-backend/pkg/enums"
)

// Reservation is a booking request with a one-way status. Date and TimeSlot
// stay as the submitted form strings; no conflict or capacity accounting is
// applied to them. Rows are never hard-deleted.
type Reservation struct {
	ID        uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID               `gorm:"column:user_id;type:uuid;not null;index"`
	Name      string                  `gorm:"column:name;not null"`
	Date      string                  `gorm:"column:date;not null"`
	TimeSlot  string                  `gorm:"column:time_slot;not null"`
	Guests    int                     `gorm:"column:guests;not null"`
	Notes     *string                 `gorm:"column:notes"`
	Status    enums.ReservationStatus `gorm:"column:status;type:text;not null;default:'confirmed'"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
