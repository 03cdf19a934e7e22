package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockDatabaseManager is a mock of the DatabaseMgr interface.
type MockDatabaseManager struct {
	mock.Mock
}

func (m *MockDatabaseManager) Collection(name string) *mongo.Collection {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*mongo.Collection)
}

func (m *MockDatabaseManager) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDatabaseManager) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
