// Package mocks provides test doubles for the draftkings client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	draftkings "github.com/gridiron-tools/dfs-cli/pkg/draftkings"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// DraftGroups provides a mock function with given fields: ctx
func (_m *MockClient) DraftGroups(ctx context.Context) (*draftkings.DraftGroupsResponse, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for DraftGroups")
	}

	var r0 *draftkings.DraftGroupsResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*draftkings.DraftGroupsResponse, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *draftkings.DraftGroupsResponse); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*draftkings.DraftGroupsResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchCSV provides a mock function with given fields: ctx, csvURL
func (_m *MockClient) FetchCSV(ctx context.Context, csvURL string) ([]byte, error) {
	ret := _m.Called(ctx, csvURL)

	if len(ret) == 0 {
		panic("no return value specified for FetchCSV")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]byte, error)); ok {
		return rf(ctx, csvURL)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, csvURL)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, csvURL)
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
