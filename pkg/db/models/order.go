package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foodisbae/foodisbae-backend/pkg/enums"
)

// Order is an immutable-after-creation snapshot of purchased items with a
// mutable status. Total is frozen at checkout, never recomputed from the
// live catalog.
type Order struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Total     decimal.Decimal   `gorm:"column:total;type:numeric(10,2);not null"`
	Status    enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Items     []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
