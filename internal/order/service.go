package order

import (
	"context"

	"restomenu-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for orders.
type Service interface {
	ListOrders(ctx context.Context) []Order
	GetOrder(ctx context.Context, id int64) (Order, error)
	CreateOrder(ctx context.Context, input OrderInput) (Order, error)
	UpdateOrder(ctx context.Context, id int64, input OrderInput) (Order, error)
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new order service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListOrders(ctx context.Context) []Order {
	return s.repo.List(ctx)
}

func (s *service) GetOrder(ctx context.Context, id int64) (Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

// CreateOrder validates the input, assigns a fresh id and stores the order.
// On failure nothing is stored.
func (s *service) CreateOrder(ctx context.Context, input OrderInput) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	o, err := NewOrder(input)
	if err != nil {
		log.Info("order rejected", zap.Error(err))
		return Order{}, err
	}

	o.ID = s.repo.NextID()
	s.repo.Put(ctx, o)

	log.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.String("total", o.TotalPrice().StringFixed(2)),
	)
	return o, nil
}

// UpdateOrder wholesale-replaces the order under id with freshly validated
// content, keeping the existing id.
func (s *service) UpdateOrder(ctx context.Context, id int64, input OrderInput) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrder"),
		zap.Int64("order_id", id),
	)

	if _, err := s.repo.Get(ctx, id); err != nil {
		return Order{}, err
	}

	o, err := NewOrder(input)
	if err != nil {
		log.Info("order update rejected", zap.Error(err))
		return Order{}, err
	}

	o.ID = id
	// Replace swaps only while the order still exists, in one critical section.
	if err := s.repo.Replace(ctx, o); err != nil {
		return Order{}, err
	}

	log.Info("order updated")
	return o, nil
}
