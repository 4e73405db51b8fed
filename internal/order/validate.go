package order

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"restomenu-be/internal/validation"

	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// unitPriceCap bounds unit_price to 6 significant digits with 2 of them
// fractional, so the integer part stays below 10000.
var unitPriceCap = decimal.NewFromInt(10000)

// NewOrder validates customer info and line items and constructs an Order.
// Timestamps default to construction time when not supplied. The order
// carries no ID — the caller assigns identity.
func NewOrder(input OrderInput) (Order, error) {
	var errs validation.Errors

	// Lengths count characters, not bytes.
	if n := utf8.RuneCountInString(input.Customer.Name); n < 3 || n > 100 {
		errs.Add("customer.name", "must be between 3 and 100 characters")
	}

	if !phonePattern.MatchString(input.Customer.Phone) {
		errs.Add("customer.phone", "must be exactly 10 digits")
	}

	if len(input.Items) == 0 {
		errs.Add("items", "must contain at least one item")
	}

	for idx, item := range input.Items {
		field := func(name string) string {
			return fmt.Sprintf("items[%d].%s", idx, name)
		}

		if item.MenuItemID < 1 {
			errs.Add(field("menu_item_id"), "must be a positive integer")
		}

		if n := utf8.RuneCountInString(item.MenuItemName); n < 1 || n > 100 {
			errs.Add(field("menu_item_name"), "must be between 1 and 100 characters")
		}

		if item.Quantity < 1 || item.Quantity > 10 {
			errs.Add(field("quantity"), "must be between 1 and 10")
		}

		if !item.UnitPrice.IsPositive() {
			errs.Add(field("unit_price"), "must be a positive amount")
		} else if !item.UnitPrice.Equal(item.UnitPrice.Round(2)) {
			errs.Add(field("unit_price"), "must have at most 2 decimal places")
		} else if item.UnitPrice.GreaterThanOrEqual(unitPriceCap) {
			errs.Add(field("unit_price"), "must have at most 6 significant digits")
		}
	}

	status, err := ParseStatus(input.Status)
	if err != nil {
		errs.Add("status", "must be one of pending, confirmed, ready, delivered")
	}

	if !errs.Empty() {
		return Order{}, errs.Err()
	}

	now := time.Now()
	createdAt := now
	if input.CreatedAt != nil {
		createdAt = *input.CreatedAt
	}
	updatedAt := now
	if input.UpdatedAt != nil {
		updatedAt = *input.UpdatedAt
	}

	items := make([]OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, OrderItem{
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	return Order{
		Customer:  Customer(input.Customer),
		Items:     items,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
