package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the closed set of order states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusReady, StatusDelivered:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Customer is embedded in an order, never stored on its own.
type Customer struct {
	Name  string
	Phone string
}

// OrderItem snapshots a menu item at order time. Name and unit price are
// copied, not linked: later menu edits do not touch existing orders. The
// menu_item_id is a referential hint and is not checked against the menu
// store.
type OrderItem struct {
	MenuItemID   int64
	MenuItemName string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// ItemTotal is unit_price × quantity, computed on read.
func (i OrderItem) ItemTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the persisted purchase request. The total is never stored; it is
// always recomputed from the items.
type Order struct {
	ID        int64
	Customer  Customer
	Items     []OrderItem
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalPrice sums every item total with exact decimal arithmetic.
func (o Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.ItemTotal())
	}
	return total
}

// CustomerInput, OrderItemInput and OrderInput carry the raw request fields.
// A caller-supplied total_price is deliberately absent: the total is derived.
type CustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type OrderItemInput struct {
	MenuItemID   int64           `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

type OrderInput struct {
	Customer  CustomerInput    `json:"customer"`
	Items     []OrderItemInput `json:"items"`
	Status    string           `json:"status"`
	CreatedAt *time.Time       `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at"`
}
