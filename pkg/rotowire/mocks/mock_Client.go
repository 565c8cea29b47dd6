// Package mocks provides test doubles for the rotowire client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	rotowire "github.com/gridiron-tools/dfs-cli/pkg/rotowire"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// GamesByMarket provides a mock function with given fields: ctx, week, season
func (_m *MockClient) GamesByMarket(ctx context.Context, week int, season int) ([]rotowire.Game, error) {
	ret := _m.Called(ctx, week, season)

	if len(ret) == 0 {
		panic("no return value specified for GamesByMarket")
	}

	var r0 []rotowire.Game
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]rotowire.Game, error)); ok {
		return rf(ctx, week, season)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []rotowire.Game); ok {
		r0 = rf(ctx, week, season)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]rotowire.Game)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, week, season)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
