package menu

import (
	"context"

	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SampleItems returns the starter catalog loaded into fresh environments.
func SampleItems() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:        "Burger Classic FoodIsBae",
			Description: "Bœuf grillé, cheddar fondant, laitue, tomate et sauce maison",
			Price:       decimal.NewFromFloat(14.90),
			Category:    enums.MenuCategoryBurgers,
			Image:       "🍔",
			Popular:     true,
			Allergens:   pq.StringArray{"gluten", "lactose"},
		},
		{
			Name:        "Pizza Margherita",
			Description: "Sauce tomate, mozzarella di bufala, basilic frais",
			Price:       decimal.NewFromFloat(12.50),
			Category:    enums.MenuCategoryPizzas,
			Image:       "🍕",
			Popular:     true,
			Allergens:   pq.StringArray{"gluten", "lactose"},
		},
		{
			Name:        "Salade César",
			Description: "Romaine, poulet grillé, parmesan, croûtons et sauce César",
			Price:       decimal.NewFromFloat(11.00),
			Category:    enums.MenuCategorySalades,
			Image:       "🥗",
			Popular:     false,
			Allergens:   pq.StringArray{"gluten", "lactose", "oeuf"},
		},
		{
			Name:        "Pâtes Carbonara",
			Description: "Spaghetti, guanciale, pecorino, œuf et poivre noir",
			Price:       decimal.NewFromFloat(13.50),
			Category:    enums.MenuCategoryPates,
			Image:       "🍝",
			Popular:     true,
			Allergens:   pq.StringArray{"gluten", "lactose", "oeuf"},
		},
		{
			Name:        "Bowl Saumon",
			Description: "Riz vinaigré, saumon frais, avocat, edamame, sauce soja",
			Price:       decimal.NewFromFloat(15.90),
			Category:    enums.MenuCategoryBowls,
			Image:       "🍣",
			Popular:     false,
			Allergens:   pq.StringArray{"poisson", "soja"},
		},
		{
			Name:        "Tacos Poulet",
			Description: "Tortilla de blé, poulet épicé, guacamole, pico de gallo",
			Price:       decimal.NewFromFloat(10.50),
			Category:    enums.MenuCategoryTacos,
			Image:       "🌮",
			Popular:     true,
			Allergens:   pq.StringArray{"gluten"},
		},
		{
			Name:        "Tiramisu Maison",
			Description: "Mascarpone, café espresso, cacao et biscuits imbibés",
			Price:       decimal.NewFromFloat(7.50),
			Category:    enums.MenuCategoryDesserts,
			Image:       "🍰",
			Popular:     true,
			Allergens:   pq.StringArray{"gluten", "lactose", "oeuf"},
		},
		{
			Name:        "Limonade Artisanale",
			Description: "Citron pressé, menthe fraîche, eau pétillante",
			Price:       decimal.NewFromFloat(4.50),
			Category:    enums.MenuCategoryBoissons,
			Image:       "🍋",
			Popular:     false,
			Allergens:   pq.StringArray{},
		},
		{
			Name:        "Steak Frites",
			Description: "Entrecôte grillée, frites maison, beurre persillé",
			Price:       decimal.NewFromFloat(19.90),
			Category:    enums.MenuCategoryPlats,
			Image:       "🥩",
			Popular:     true,
			Allergens:   pq.StringArray{"lactose"},
		},
		{
			Name:        "Smoothie Tropical",
			Description: "Mangue, ananas, fruit de la passion et lait de coco",
			Price:       decimal.NewFromFloat(5.90),
			Category:    enums.MenuCategoryBoissons,
			Image:       "🥤",
			Popular:     false,
			Allergens:   pq.StringArray{},
		},
	}
}

// SeedSample inserts the starter catalog when the table is empty.
func SeedSample(ctx context.Context, repo *Repository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	items := SampleItems()
	for i := range items {
		if _, err := repo.Create(ctx, &items[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
