package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Summary is the transport shape for the cart plus its derived totals.
type Summary struct {
	Items      []Line          `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// AddItemRequest identifies the catalog entry to add.
type AddItemRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}

// SetQuantityRequest carries the replacement quantity for one line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Service owns cart mutations. Each call loads the stored state, applies one
// reducer step, and writes the result back.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*Summary, error)
	AddItem(ctx context.Context, userID, itemID uuid.UUID) (*Summary, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*Summary, error)
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*Summary, error)
	Clear(ctx context.Context, userID uuid.UUID) (*Summary, error)
}

type menuRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

type service struct {
	store *Store
	menu  menuRepository
}

// NewService constructs a cart service backed by the provided store and catalog.
func NewService(store *Store, menu menuRepository) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if menu == nil {
		return nil, fmt.Errorf("menu repository is required")
	}
	return &service{store: store, menu: menu}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	state, err := s.store.Load(ctx, userID.String())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return summarize(state), nil
}

func (s *service) AddItem(ctx context.Context, userID, itemID uuid.UUID) (*Summary, error) {
	item, err := s.menu.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup menu item")
	}

	return s.apply(ctx, userID, func(state State) State {
		return Add(state, Line{
			ItemID: item.ID,
			Name:   item.Name,
			Price:  item.Price,
			Image:  item.Image,
		})
	})
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*Summary, error) {
	return s.apply(ctx, userID, func(state State) State {
		return Remove(state, itemID)
	})
}

func (s *service) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*Summary, error) {
	return s.apply(ctx, userID, func(state State) State {
		return SetQuantity(state, itemID, quantity)
	})
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	if err := s.store.Drop(ctx, userID.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return summarize(Empty()), nil
}

func (s *service) apply(ctx context.Context, userID uuid.UUID, step func(State) State) (*Summary, error) {
	key := userID.String()
	state, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	next := step(state)
	if err := s.store.Save(ctx, key, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return summarize(next), nil
}

func summarize(state State) *Summary {
	return &Summary{
		Items:      state.Items,
		TotalItems: TotalItems(state),
		TotalPrice: TotalPrice(state),
	}
}
