package menu

// ItemResponse is the wire shape of a menu item. Money renders as a
// fixed-point string with exactly 2 fractional digits; price_category and
// dietary_info are re-derived on every mapping.
type ItemResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           string   `json:"price"`
	IsAvailable     bool     `json:"is_available"`
	PreparationTime int      `json:"preparation_time"`
	Ingredients     []string `json:"ingredients"`
	Calories        *int     `json:"calories"`
	IsVegetarian    bool     `json:"is_vegetarian"`
	IsSpicy         bool     `json:"is_spicy"`
	PriceCategory   string   `json:"price_category"`
	DietaryInfo     []string `json:"dietary_info"`
}

func ToItemResponse(i Item) ItemResponse {
	return ItemResponse{
		ID:              i.ID,
		Name:            i.Name,
		Description:     i.Description,
		Category:        string(i.Category),
		Price:           i.Price.StringFixed(2),
		IsAvailable:     i.IsAvailable,
		PreparationTime: i.PreparationTime,
		Ingredients:     i.Ingredients,
		Calories:        i.Calories,
		IsVegetarian:    i.IsVegetarian,
		IsSpicy:         i.IsSpicy,
		PriceCategory:   i.PriceCategory(),
		DietaryInfo:     i.DietaryInfo(),
	}
}

func ToItemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToItemResponse(item))
	}
	return out
}
