package menu

import (
	"context"
	"testing"

	"restomenu-be/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) NextID() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) []Item {
	args := m.Called(ctx)
	return args.Get(0).([]Item)
}

func (m *MockRepository) ListByCategory(ctx context.Context, category Category) []Item {
	args := m.Called(ctx, category)
	return args.Get(0).([]Item)
}

func (m *MockRepository) Put(ctx context.Context, item Item) {
	m.Called(ctx, item)
}

func (m *MockRepository) Replace(ctx context.Context, item Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns id from the sequence and stores", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("NextID").Return(int64(7))
		repo.On("Put", ctx, mock.MatchedBy(func(item Item) bool {
			return item.ID == 7 && item.Name == "Tomato Soup"
		})).Return()

		svc := NewService(repo)
		item, err := svc.AddItem(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, int64(7), item.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid input stores nothing", func(t *testing.T) {
		repo := new(MockRepository)

		svc := NewService(repo)
		in := validInput()
		in.Name = "X"

		_, err := svc.AddItem(ctx, in)

		require.Error(t, err)
		_, ok := validation.AsError(err)
		assert.True(t, ok)
		repo.AssertNotCalled(t, "NextID")
		repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces under the existing id", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(3)).Return(Item{ID: 3}, nil)
		repo.On("Replace", ctx, mock.MatchedBy(func(item Item) bool {
			return item.ID == 3
		})).Return(nil)

		svc := NewService(repo)
		item, err := svc.UpdateItem(ctx, 3, validInput())

		require.NoError(t, err)
		assert.Equal(t, int64(3), item.ID)
		repo.AssertNotCalled(t, "NextID")
		repo.AssertExpectations(t)
	})

	t.Run("Concurrent delete between check and replace", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(3)).Return(Item{ID: 3}, nil)
		repo.On("Replace", ctx, mock.Anything).Return(ErrItemNotFound)

		svc := NewService(repo)
		_, err := svc.UpdateItem(ctx, 3, validInput())

		assert.ErrorIs(t, err, ErrItemNotFound, "a racing delete must not be resurrected")
	})

	t.Run("Unknown id", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(99)).Return(Item{}, ErrItemNotFound)

		svc := NewService(repo)
		_, err := svc.UpdateItem(ctx, 99, validInput())

		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("Invalid replacement leaves the stored item alone", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(3)).Return(Item{ID: 3}, nil)

		svc := NewService(repo)
		in := validInput()
		in.Description = "short"

		_, err := svc.UpdateItem(ctx, 3, in)

		require.Error(t, err)
		repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", ctx, int64(2)).Return(nil)

		svc := NewService(repo)
		assert.NoError(t, svc.DeleteItem(ctx, 2))
	})

	t.Run("Unknown id", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", ctx, int64(2)).Return(ErrItemNotFound)

		svc := NewService(repo)
		assert.ErrorIs(t, svc.DeleteItem(ctx, 2), ErrItemNotFound)
	})
}

func TestListByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid category filters via repository", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListByCategory", ctx, CategorySalad).Return([]Item{{ID: 1}})

		svc := NewService(repo)
		items, err := svc.ListByCategory(ctx, "salad")

		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Unknown category is a validation failure", func(t *testing.T) {
		repo := new(MockRepository)

		svc := NewService(repo)
		_, err := svc.ListByCategory(ctx, "snack")

		require.Error(t, err)
		ve, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "category", ve.Violations[0].Field)
		repo.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
	})
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	t.Run("Lifecycle", func(t *testing.T) {
		item, err := NewItem(validInput())
		require.NoError(t, err)
		item.ID = repo.NextID()
		repo.Put(ctx, item)

		got, err := repo.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.Name, got.Name)

		assert.Len(t, repo.List(ctx), 1)
		assert.Len(t, repo.ListByCategory(ctx, CategoryAppetizer), 1)
		assert.Empty(t, repo.ListByCategory(ctx, CategoryDessert))

		require.NoError(t, repo.Delete(ctx, item.ID))
		assert.ErrorIs(t, repo.Delete(ctx, item.ID), ErrItemNotFound)
	})

	t.Run("Get on a never created id", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
