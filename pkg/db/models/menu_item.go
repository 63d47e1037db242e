package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/foodisbae/foodisbae-backend/pkg/enums"
)

// MenuItem is a purchasable catalog entry. Image holds the display glyph.
type MenuItem struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string             `gorm:"column:name;not null"`
	Description string             `gorm:"column:description;not null"`
	Price       decimal.Decimal    `gorm:"column:price;type:numeric(10,2);not null"`
	Category    enums.MenuCategory `gorm:"column:category;type:text;not null"`
	Image       string             `gorm:"column:image;not null"`
	Popular     bool               `gorm:"column:popular;not null;default:false"`
	Allergens   pq.StringArray     `gorm:"column:allergens;type:text[]"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
