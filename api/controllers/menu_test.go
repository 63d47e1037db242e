package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foodisbae/foodisbae-backend/internal/menu"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
)

type stubMenuService struct {
	items       []menu.ItemDTO
	item        *menu.ItemDTO
	err         error
	listedByCat string
	created     *menu.CreateItemRequest
	deleted     uuid.UUID
	listedPop   bool
}

func (s *stubMenuService) List(ctx context.Context) ([]menu.ItemDTO, error) {
	return s.items, s.err
}

func (s *stubMenuService) ListByCategory(ctx context.Context, category string) ([]menu.ItemDTO, error) {
	s.listedByCat = category
	return s.items, s.err
}

func (s *stubMenuService) ListPopular(ctx context.Context) ([]menu.ItemDTO, error) {
	s.listedPop = true
	return s.items, s.err
}

func (s *stubMenuService) Categories() []menu.CategoryDTO {
	out := make([]menu.CategoryDTO, 0, len(enums.MenuCategories()))
	for _, category := range enums.MenuCategories() {
		out = append(out, menu.CategoryDTO{Value: category})
	}
	return out
}

func (s *stubMenuService) Get(ctx context.Context, id uuid.UUID) (*menu.ItemDTO, error) {
	return s.item, s.err
}

func (s *stubMenuService) Create(ctx context.Context, req menu.CreateItemRequest) (*menu.ItemDTO, error) {
	s.created = &req
	return s.item, s.err
}

func (s *stubMenuService) Update(ctx context.Context, id uuid.UUID, req menu.UpdateItemRequest) (*menu.ItemDTO, error) {
	return s.item, s.err
}

func (s *stubMenuService) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = id
	return s.err
}

func TestMenuListAll(t *testing.T) {
	svc := &stubMenuService{items: []menu.ItemDTO{
		{ID: uuid.New(), Name: "Burger Classic FoodIsBae", Category: enums.MenuCategoryBurgers},
	}}
	handler := MenuList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.listedByCat != "" {
		t.Fatalf("category filter applied unexpectedly: %q", svc.listedByCat)
	}
}

func TestMenuListByCategory(t *testing.T) {
	svc := &stubMenuService{items: []menu.ItemDTO{}}
	handler := MenuList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu?category=pizzas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.listedByCat != "pizzas" {
		t.Fatalf("expected category pizzas got %q", svc.listedByCat)
	}
}

func TestMenuPopular(t *testing.T) {
	svc := &stubMenuService{items: []menu.ItemDTO{}}
	handler := MenuPopular(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/popular", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !svc.listedPop {
		t.Fatal("expected popular listing to be called")
	}
}

func TestMenuCategoriesIncludesAll(t *testing.T) {
	handler := MenuCategories(&stubMenuService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/categories", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope struct {
		Data []menu.CategoryDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != len(enums.MenuCategories()) {
		t.Fatalf("expected %d categories got %d", len(enums.MenuCategories()), len(envelope.Data))
	}
}

func TestMenuItemDetailRejectsMalformedID(t *testing.T) {
	handler := MenuItemDetail(&stubMenuService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/not-a-uuid", nil)
	req = withURLParam(req, "itemId", "not-a-uuid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAdminMenuCreate(t *testing.T) {
	item := &menu.ItemDTO{ID: uuid.New(), Name: "Tarte Tatin", Price: decimal.RequireFromString("8.50")}
	svc := &stubMenuService{item: item}
	handler := AdminMenuCreate(svc, nil)

	body := `{"name":"Tarte Tatin","description":"Tarte aux pommes caramelisees","price":"8.50","category":"desserts","image":"🥧"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/menu", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.created == nil || svc.created.Name != "Tarte Tatin" {
		t.Fatalf("create payload not forwarded: %+v", svc.created)
	}
}

func TestAdminMenuCreateUnknownCategory(t *testing.T) {
	svc := &stubMenuService{err: pkgerrors.New(pkgerrors.CodeValidation, "unknown category")}
	handler := AdminMenuCreate(svc, nil)

	body := `{"name":"Soupe","description":"Soupe du jour","price":"6.00","category":"soups","image":"🍜"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/menu", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAdminMenuDelete(t *testing.T) {
	itemID := uuid.New()
	svc := &stubMenuService{}
	handler := AdminMenuDelete(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/v1/menu/"+itemID.String(), nil)
	req = withURLParam(req, "itemId", itemID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.deleted != itemID {
		t.Fatalf("expected delete of %s got %s", itemID, svc.deleted)
	}
}
