package order

import "time"

// OrderItemResponse is the wire shape of a line item; item_total is
// recomputed on every mapping.
type OrderItemResponse struct {
	MenuItemID   int64  `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	ItemTotal    string `json:"item_total"`
}

// CustomerResponse is the wire shape of the customer on an order.
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderResponse exposes order_total and order_status as read-only aliases of
// total_price and status; the domain model keeps a single source of truth.
type OrderResponse struct {
	ID          int64               `json:"id"`
	Customer    CustomerResponse    `json:"customer"`
	Items       []OrderItemResponse `json:"items"`
	Status      string              `json:"status"`
	OrderStatus string              `json:"order_status"`
	TotalPrice  string              `json:"total_price"`
	OrderTotal  string              `json:"order_total"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func ToOrderResponse(o Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.StringFixed(2),
			ItemTotal:    item.ItemTotal().StringFixed(2),
		})
	}

	total := o.TotalPrice().StringFixed(2)

	return OrderResponse{
		ID:          o.ID,
		Customer:    CustomerResponse(o.Customer),
		Items:       items,
		Status:      string(o.Status),
		OrderStatus: string(o.Status),
		TotalPrice:  total,
		OrderTotal:  total,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func ToOrderResponses(orders []Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
