package menu

import "errors"

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrInvalidCategory = errors.New("invalid category")
)
