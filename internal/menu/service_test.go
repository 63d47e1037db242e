package menu

import (
	"context"
	"testing"

	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenuService(t *testing.T) (Service, *Repository) {
	t.Helper()

	repo := NewRepository(setupMenuTestDB(t))
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestServiceCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMenuService(t)

	created, err := svc.Create(ctx, CreateItemRequest{
		Name:        "Pizza Margherita",
		Description: "Sauce tomate, mozzarella, basilic",
		Price:       decimal.NewFromFloat(12.50),
		Category:    "pizzas",
		Image:       "🍕",
		Popular:     true,
		Allergens:   []string{"gluten", "lactose"},
	})
	require.NoError(t, err)
	assert.Equal(t, enums.MenuCategoryPizzas, created.Category)
	assert.Equal(t, []string{"gluten", "lactose"}, created.Allergens)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Margherita", got.Name)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(12.50)))
}

func TestServiceCreateRejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestMenuService(t)

	_, err := svc.Create(context.Background(), CreateItemRequest{
		Name:        "Sushi Box",
		Description: "Assortiment",
		Price:       decimal.NewFromFloat(18.00),
		Category:    "sushi",
		Image:       "🍱",
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceCreateRejectsNegativePrice(t *testing.T) {
	svc, _ := newTestMenuService(t)

	_, err := svc.Create(context.Background(), CreateItemRequest{
		Name:        "Erreur",
		Description: "prix négatif",
		Price:       decimal.NewFromFloat(-1),
		Category:    "pizzas",
		Image:       "🍕",
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceListByCategoryValidatesInput(t *testing.T) {
	svc, _ := newTestMenuService(t)

	_, err := svc.ListByCategory(context.Background(), "nope")
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceUpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMenuService(t)

	created, err := svc.Create(ctx, CreateItemRequest{
		Name:        "Tacos Poulet",
		Description: "Tortilla, poulet épicé",
		Price:       decimal.NewFromFloat(10.50),
		Category:    "tacos",
		Image:       "🌮",
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(11.00)
	popular := true
	updated, err := svc.Update(ctx, created.ID, UpdateItemRequest{
		Price:   &newPrice,
		Popular: &popular,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.True(t, updated.Popular)
	assert.Equal(t, "Tacos Poulet", updated.Name)
}

func TestServiceUpdateMissingItemIsNotFound(t *testing.T) {
	svc, _ := newTestMenuService(t)

	name := "Fantôme"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateItemRequest{Name: &name})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMenuService(t)

	created, err := svc.Create(ctx, CreateItemRequest{
		Name:        "Limonade",
		Description: "Citron pressé",
		Price:       decimal.NewFromFloat(4.50),
		Category:    "boissons",
		Image:       "🍋",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceCategoriesCoversAllSections(t *testing.T) {
	svc, _ := newTestMenuService(t)

	categories := svc.Categories()
	assert.Len(t, categories, len(enums.MenuCategories()))
}

func TestSeedSampleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupMenuTestDB(t))

	inserted, err := SeedSample(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, len(SampleItems()), inserted)

	again, err := SeedSample(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, again)
}
