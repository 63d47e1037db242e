package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service defines the catalog operations used by public and admin controllers.
type Service interface {
	List(ctx context.Context) ([]ItemDTO, error)
	ListByCategory(ctx context.Context, category string) ([]ItemDTO, error)
	ListPopular(ctx context.Context) ([]ItemDTO, error)
	Categories() []CategoryDTO
	Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error)
	Create(ctx context.Context, req CreateItemRequest) (*ItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	ListByCategory(ctx context.Context, category enums.MenuCategory) ([]models.MenuItem, error)
	ListPopular(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a menu service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list menu")
	}
	return fromModels(items), nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]ItemDTO, error) {
	parsed, err := enums.ParseMenuCategory(strings.TrimSpace(category))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
	}
	items, err := s.repo.ListByCategory(ctx, parsed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list menu by category")
	}
	return fromModels(items), nil
}

func (s *service) ListPopular(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.repo.ListPopular(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list popular menu")
	}
	return fromModels(items), nil
}

func (s *service) Categories() []CategoryDTO {
	categories := enums.MenuCategories()
	out := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategoryDTO{Value: category})
	}
	return out
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup menu item")
	}
	return FromModel(item), nil
}

func (s *service) Create(ctx context.Context, req CreateItemRequest) (*ItemDTO, error) {
	category, err := enums.ParseMenuCategory(strings.TrimSpace(req.Category))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	allergens := req.Allergens
	if allergens == nil {
		allergens = []string{}
	}

	item, err := s.repo.Create(ctx, &models.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Category:    category,
		Image:       req.Image,
		Popular:     req.Popular,
		Allergens:   pq.StringArray(allergens),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create menu item")
	}
	return FromModel(item), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemDTO, error) {
	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		category, err := enums.ParseMenuCategory(strings.TrimSpace(*req.Category))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
		}
		updates["category"] = category
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Popular != nil {
		updates["popular"] = *req.Popular
	}
	if req.Allergens != nil {
		updates["allergens"] = pq.StringArray(*req.Allergens)
	}

	// verify existence before applying column updates so a missing row
	// surfaces as 404 rather than a silent no-op
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update menu item")
		}
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete menu item")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	return nil
}
