// Package testutil provides testing utilities and helpers for service tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planarkit/planarkit/internal/types"
)

// AssertSuccess fails the test unless the result reports success.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result)
	if !result.Success && result.Error != nil {
		t.Fatalf("expected success, got error: %s", *result.Error)
	}
	require.True(t, result.Success)
}

// AssertError fails the test unless the result reports a failure.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.Success)
	require.NotNil(t, result.Error)
}

// MockServiceProvider is a mock implementation of service.Provider.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}
