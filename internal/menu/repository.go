package menu

import (
	"context"

	"restomenu-be/internal/store"
)

// Repository owns menu item storage and identity allocation. The in-memory
// implementation below is the only one today; the interface keeps the
// validation core untouched when a real persistence layer replaces it.
type Repository interface {
	NextID() int64
	Get(ctx context.Context, id int64) (Item, error)
	List(ctx context.Context) []Item
	ListByCategory(ctx context.Context, category Category) []Item
	Put(ctx context.Context, item Item)
	Replace(ctx context.Context, item Item) error
	Delete(ctx context.Context, id int64) error
}

type memoryRepository struct {
	items *store.Memory[Item]
	seq   *store.Sequence
}

// NewRepository creates an in-memory repository with its own id sequence.
// Menu items and orders deliberately do not share a sequence.
func NewRepository() Repository {
	return &memoryRepository{
		items: store.NewMemory[Item](),
		seq:   store.NewSequence(),
	}
}

func (r *memoryRepository) NextID() int64 {
	return r.seq.Next()
}

func (r *memoryRepository) Get(_ context.Context, id int64) (Item, error) {
	item, ok := r.items.Get(id)
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

func (r *memoryRepository) List(_ context.Context) []Item {
	return r.items.List()
}

func (r *memoryRepository) ListByCategory(_ context.Context, category Category) []Item {
	return r.items.ListFunc(func(item Item) bool {
		return item.Category == category
	})
}

func (r *memoryRepository) Put(_ context.Context, item Item) {
	r.items.Put(item.ID, item)
}

func (r *memoryRepository) Replace(_ context.Context, item Item) error {
	if !r.items.Replace(item.ID, item) {
		return ErrItemNotFound
	}
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	if !r.items.Delete(id) {
		return ErrItemNotFound
	}
	return nil
}
