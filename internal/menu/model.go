package menu

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is the closed set of menu sections.
type Category string

const (
	CategoryAppetizer  Category = "appetizer"
	CategoryMainCourse Category = "main_course"
	CategoryDessert    Category = "dessert"
	CategoryBeverage   Category = "beverage"
	CategorySalad      Category = "salad"
)

// ParseCategory maps a raw string onto the enum. Adding a category here
// forces a review of every switch below.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage, CategorySalad:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// Item is the persisted menu entity. It only ever exists in a valid state:
// construction goes through NewItem, which enforces every rule.
type Item struct {
	ID              int64
	Name            string
	Description     string
	Category        Category
	Price           decimal.Decimal
	IsAvailable     bool
	PreparationTime int
	Ingredients     []string
	Calories        *int
	IsVegetarian    bool
	IsSpicy         bool
}

var (
	priceBudgetBelow = decimal.NewFromInt(10)
	priceMidRangeTop = decimal.NewFromInt(25)
)

// PriceCategory buckets the price for presentation. Computed on read,
// never stored.
func (i Item) PriceCategory() string {
	switch {
	case i.Price.LessThan(priceBudgetBelow):
		return "Budget"
	case i.Price.LessThanOrEqual(priceMidRangeTop):
		return "Mid-range"
	default:
		return "Premium"
	}
}

// DietaryInfo lists dietary labels in a fixed order: Vegetarian, then Spicy.
func (i Item) DietaryInfo() []string {
	info := make([]string, 0, 2)
	if i.IsVegetarian {
		info = append(info, "Vegetarian")
	}
	if i.IsSpicy {
		info = append(info, "Spicy")
	}
	return info
}

// ItemInput carries the raw field values for creating or replacing an item.
// is_available is a pointer so an omitted field defaults to true.
type ItemInput struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	IsAvailable     *bool           `json:"is_available"`
	PreparationTime int             `json:"preparation_time"`
	Ingredients     []string        `json:"ingredients"`
	Calories        *int            `json:"calories"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	IsSpicy         bool            `json:"is_spicy"`
}
