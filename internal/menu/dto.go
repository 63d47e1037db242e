package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
)

// ItemDTO is the transport shape for one catalog entry.
type ItemDTO struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       decimal.Decimal    `json:"price"`
	Category    enums.MenuCategory `json:"category"`
	Image       string             `json:"image"`
	Popular     bool               `json:"popular"`
	Allergens   []string           `json:"allergens"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateItemRequest carries the admin payload for a new catalog entry.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Image       string          `json:"image" validate:"required"`
	Popular     bool            `json:"popular"`
	Allergens   []string        `json:"allergens"`
}

// UpdateItemRequest carries the admin payload for a partial update. Nil fields
// are left untouched.
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Popular     *bool            `json:"popular,omitempty"`
	Allergens   *[]string        `json:"allergens,omitempty"`
}

// CategoryDTO pairs a category value with its display ordering position.
type CategoryDTO struct {
	Value enums.MenuCategory `json:"value"`
}

func FromModel(item *models.MenuItem) *ItemDTO {
	if item == nil {
		return nil
	}
	allergens := []string(item.Allergens)
	if allergens == nil {
		allergens = []string{}
	}
	return &ItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Popular:     item.Popular,
		Allergens:   append([]string(nil), allergens...),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func fromModels(items []models.MenuItem) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
