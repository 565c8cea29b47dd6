// Package mocks provides test doubles for the sheets client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// SpreadsheetTitle provides a mock function with given fields: ctx
func (_m *MockClient) SpreadsheetTitle(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for SpreadsheetTitle")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (string, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) string); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// EnsureWorksheet provides a mock function with given fields: ctx, title
func (_m *MockClient) EnsureWorksheet(ctx context.Context, title string) error {
	ret := _m.Called(ctx, title)

	if len(ret) == 0 {
		panic("no return value specified for EnsureWorksheet")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, title)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ClearWorksheet provides a mock function with given fields: ctx, title
func (_m *MockClient) ClearWorksheet(ctx context.Context, title string) error {
	ret := _m.Called(ctx, title)

	if len(ret) == 0 {
		panic("no return value specified for ClearWorksheet")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, title)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpdateValues provides a mock function with given fields: ctx, title, values
func (_m *MockClient) UpdateValues(ctx context.Context, title string, values [][]string) error {
	ret := _m.Called(ctx, title, values)

	if len(ret) == 0 {
		panic("no return value specified for UpdateValues")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, [][]string) error); ok {
		r0 = rf(ctx, title, values)
	} else {
		r0 = ret.Error(0)
	}

	return r0
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
