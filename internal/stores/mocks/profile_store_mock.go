package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ElenaG518/wdconnect-server/internal/schemas"
)

// MockProfileStore is a mock of the ProfileStore interface.
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Create(ctx context.Context, profile *schemas.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) FindByOwner(ctx context.Context, owner primitive.ObjectID) (*schemas.Profile, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Profile), args.Error(1)
}

func (m *MockProfileStore) ReplaceByOwner(ctx context.Context, profile *schemas.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) List(ctx context.Context) ([]schemas.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Profile), args.Error(1)
}

func (m *MockProfileStore) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}
