package menu

import (
	"context"

	"restomenu-be/internal/logger"
	"restomenu-be/internal/validation"

	"go.uber.org/zap"
)

// Service defines the business logic for the menu.
type Service interface {
	ListItems(ctx context.Context) []Item
	GetItem(ctx context.Context, id int64) (Item, error)
	AddItem(ctx context.Context, input ItemInput) (Item, error)
	UpdateItem(ctx context.Context, id int64, input ItemInput) (Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ListByCategory(ctx context.Context, category string) ([]Item, error)
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new menu service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListItems returns every menu item in insertion order.
func (s *service) ListItems(ctx context.Context) []Item {
	return s.repo.List(ctx)
}

func (s *service) GetItem(ctx context.Context, id int64) (Item, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

// AddItem validates the input, assigns a fresh id and stores the item.
// On failure nothing is stored.
func (s *service) AddItem(ctx context.Context, input ItemInput) (Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
	)

	item, err := NewItem(input)
	if err != nil {
		log.Info("menu item rejected", zap.Error(err))
		return Item{}, err
	}

	item.ID = s.repo.NextID()
	s.repo.Put(ctx, item)

	log.Info("menu item added", zap.Int64("item_id", item.ID))
	return item, nil
}

// UpdateItem wholesale-replaces the item under id with freshly validated
// content. The id is kept; it is never re-drawn from the sequence.
func (s *service) UpdateItem(ctx context.Context, id int64, input ItemInput) (Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateItem"),
		zap.Int64("item_id", id),
	)

	if _, err := s.repo.Get(ctx, id); err != nil {
		return Item{}, err
	}

	item, err := NewItem(input)
	if err != nil {
		log.Info("menu item update rejected", zap.Error(err))
		return Item{}, err
	}

	item.ID = id
	// Replace is atomic: a delete racing the update cannot resurrect the item.
	if err := s.repo.Replace(ctx, item); err != nil {
		return Item{}, err
	}

	log.Info("menu item updated")
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteItem"),
		zap.Int64("item_id", id),
	)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("menu item deleted")
	return nil
}

// ListByCategory filters the menu by category equality. An unknown category
// is a validation failure, not an empty result.
func (s *service) ListByCategory(ctx context.Context, category string) ([]Item, error) {
	parsed, err := ParseCategory(category)
	if err != nil {
		var errs validation.Errors
		errs.Add("category", "must be one of appetizer, main_course, dessert, beverage, salad")
		return nil, errs.Err()
	}

	return s.repo.ListByCategory(ctx, parsed), nil
}
