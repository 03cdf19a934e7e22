// Package mocks provides testify mocks for the manager interfaces.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockGithubManager is a mock of the GithubMgr interface. It simulates the
// GitHub repository proxy in tests.
type MockGithubManager struct {
	mock.Mock
}

func (m *MockGithubManager) ListRepositories(ctx context.Context, username string) (json.RawMessage, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
