package menu

import (
	"regexp"
	"unicode/utf8"

	"restomenu-be/internal/validation"

	"github.com/shopspring/decimal"
)

var namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

var (
	priceMin = decimal.RequireFromString("1.00")
	priceMax = decimal.RequireFromString("100.00")
)

// NewItem runs the two-phase validation pipeline and constructs an Item.
// Phase 1 checks every field independently; phase 2 runs the cross-field
// rules only when phase 1 passed. The returned item carries no ID — the
// caller assigns identity.
func NewItem(input ItemInput) (Item, error) {
	var errs validation.Errors

	// Lengths count characters, not bytes.
	if n := utf8.RuneCountInString(input.Name); n < 3 || n > 100 {
		errs.Add("name", "must be between 3 and 100 characters")
	} else if !namePattern.MatchString(input.Name) {
		errs.Add("name", "must contain only letters and spaces")
	}

	if n := utf8.RuneCountInString(input.Description); n < 10 || n > 500 {
		errs.Add("description", "must be between 10 and 500 characters")
	}

	category, err := ParseCategory(input.Category)
	if err != nil {
		errs.Add("category", "must be one of appetizer, main_course, dessert, beverage, salad")
	}

	if !input.Price.Equal(input.Price.Round(2)) {
		errs.Add("price", "must have at most 2 decimal places")
	} else if input.Price.LessThan(priceMin) || input.Price.GreaterThan(priceMax) {
		errs.Add("price", "must be between 1.00 and 100.00")
	}

	if input.PreparationTime < 1 || input.PreparationTime > 120 {
		errs.Add("preparation_time", "must be between 1 and 120 minutes")
	}

	if len(input.Ingredients) == 0 {
		errs.Add("ingredients", "must contain at least one entry")
	}

	if input.Calories != nil && *input.Calories <= 0 {
		errs.Add("calories", "must be a positive integer")
	}

	if !errs.Empty() {
		return Item{}, errs.Err()
	}

	// Cross-field rules, each failing independently.
	switch category {
	case CategoryDessert, CategoryBeverage:
		if input.IsSpicy {
			errs.Add("is_spicy", "desserts and beverages cannot be marked as spicy")
		}
	case CategoryAppetizer, CategoryMainCourse, CategorySalad:
	}

	if input.IsVegetarian && input.Calories != nil && *input.Calories >= 800 {
		errs.Add("calories", "vegetarian items should have calories < 800")
	}

	if category == CategoryBeverage && input.PreparationTime > 10 {
		errs.Add("preparation_time", "preparation time for beverages must be at most 10 minutes")
	}

	if !errs.Empty() {
		return Item{}, errs.Err()
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	return Item{
		Name:            input.Name,
		Description:     input.Description,
		Category:        category,
		Price:           input.Price,
		IsAvailable:     available,
		PreparationTime: input.PreparationTime,
		Ingredients:     input.Ingredients,
		Calories:        input.Calories,
		IsVegetarian:    input.IsVegetarian,
		IsSpicy:         input.IsSpicy,
	}, nil
}
