package order

import (
	"context"

	"restomenu-be/internal/store"
)

// Repository owns order storage and identity allocation, mirroring the menu
// repository so the backing store can later move to real persistence.
type Repository interface {
	NextID() int64
	Get(ctx context.Context, id int64) (Order, error)
	List(ctx context.Context) []Order
	Put(ctx context.Context, o Order)
	Replace(ctx context.Context, o Order) error
}

type memoryRepository struct {
	orders *store.Memory[Order]
	seq    *store.Sequence
}

// NewRepository creates an in-memory repository with its own id sequence,
// independent from the menu sequence.
func NewRepository() Repository {
	return &memoryRepository{
		orders: store.NewMemory[Order](),
		seq:    store.NewSequence(),
	}
}

func (r *memoryRepository) NextID() int64 {
	return r.seq.Next()
}

func (r *memoryRepository) Get(_ context.Context, id int64) (Order, error) {
	o, ok := r.orders.Get(id)
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (r *memoryRepository) List(_ context.Context) []Order {
	return r.orders.List()
}

func (r *memoryRepository) Put(_ context.Context, o Order) {
	r.orders.Put(o.ID, o)
}

func (r *memoryRepository) Replace(_ context.Context, o Order) error {
	if !r.orders.Replace(o.ID, o) {
		return ErrOrderNotFound
	}
	return nil
}
