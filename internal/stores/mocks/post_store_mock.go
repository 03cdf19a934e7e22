package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ElenaG518/wdconnect-server/internal/schemas"
)

// MockPostStore is a mock of the PostStore interface.
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(ctx context.Context, post *schemas.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*schemas.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Post), args.Error(1)
}

func (m *MockPostStore) List(ctx context.Context) ([]schemas.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Post), args.Error(1)
}

func (m *MockPostStore) SetLikes(ctx context.Context, id primitive.ObjectID, likes []schemas.Like) error {
	args := m.Called(ctx, id, likes)
	return args.Error(0)
}

func (m *MockPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostStore) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}
