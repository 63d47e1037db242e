package enums

import "fmt"

// MenuCategory is the known set of menu sections.
type MenuCategory string

const (
	MenuCategoryBurgers  MenuCategory = "burgers"
	MenuCategoryPizzas   MenuCategory = "pizzas"
	MenuCategorySalades  MenuCategory = "salades"
	MenuCategoryPates    MenuCategory = "pates"
	MenuCategoryBowls    MenuCategory = "bowls"
	MenuCategoryTacos    MenuCategory = "tacos"
	MenuCategoryPlats    MenuCategory = "plats"
	MenuCategoryDesserts MenuCategory = "desserts"
	MenuCategoryBoissons MenuCategory = "boissons"
)

var validMenuCategories = []MenuCategory{
	MenuCategoryBurgers,
	MenuCategoryPizzas,
	MenuCategorySalades,
	MenuCategoryPates,
	MenuCategoryBowls,
	MenuCategoryTacos,
	MenuCategoryPlats,
	MenuCategoryDesserts,
	MenuCategoryBoissons,
}

// String implements fmt.Stringer.
func (m MenuCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MenuCategory.
func (m MenuCategory) IsValid() bool {
	for _, candidate := range validMenuCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuCategory converts raw input into a MenuCategory.
func ParseMenuCategory(value string) (MenuCategory, error) {
	for _, candidate := range validMenuCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu category %q", value)
}

// MenuCategories returns the full category set for listings.
func MenuCategories() []MenuCategory {
	return append([]MenuCategory(nil), validMenuCategories...)
}
