package usecase

import (
	context "context"

	entity "github.com/rocketscienceinc/xo-backend/internal/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockhistoryRepoDep is an autogenerated mock type for the historyRepo type
type MockhistoryRepoDep struct {
	mock.Mock
}

type MockhistoryRepoDep_Expecter struct {
	mock *mock.Mock
}

func (_m *MockhistoryRepoDep) EXPECT() *MockhistoryRepoDep_Expecter {
	return &MockhistoryRepoDep_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: ctx, entry
func (_m *MockhistoryRepoDep) Append(ctx context.Context, entry entity.HistoryEntry) error {
	ret := _m.Called(ctx, entry)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.HistoryEntry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockhistoryRepoDep_Append_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Append'
type MockhistoryRepoDep_Append_Call struct {
	*mock.Call
}

// Append is a helper method to define mock.On call
//   - ctx context.Context
//   - entry entity.HistoryEntry
func (_e *MockhistoryRepoDep_Expecter) Append(ctx interface{}, entry interface{}) *MockhistoryRepoDep_Append_Call {
	return &MockhistoryRepoDep_Append_Call{Call: _e.mock.On("Append", ctx, entry)}
}

func (_c *MockhistoryRepoDep_Append_Call) Run(run func(ctx context.Context, entry entity.HistoryEntry)) *MockhistoryRepoDep_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.HistoryEntry))
	})
	return _c
}

func (_c *MockhistoryRepoDep_Append_Call) Return(_a0 error) *MockhistoryRepoDep_Append_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockhistoryRepoDep_Append_Call) RunAndReturn(run func(context.Context, entity.HistoryEntry) error) *MockhistoryRepoDep_Append_Call {
	_c.Call.Return(run)
	return _c
}

// GetByUsername provides a mock function with given fields: ctx, username, limit
func (_m *MockhistoryRepoDep) GetByUsername(ctx context.Context, username string, limit int) ([]entity.HistoryEntry, error) {
	ret := _m.Called(ctx, username, limit)

	if len(ret) == 0 {
		panic("no return value specified for GetByUsername")
	}

	var r0 []entity.HistoryEntry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]entity.HistoryEntry, error)); ok {
		return rf(ctx, username, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []entity.HistoryEntry); ok {
		r0 = rf(ctx, username, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]entity.HistoryEntry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, username, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockhistoryRepoDep_GetByUsername_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByUsername'
type MockhistoryRepoDep_GetByUsername_Call struct {
	*mock.Call
}

// GetByUsername is a helper method to define mock.On call
//   - ctx context.Context
//   - username string
//   - limit int
func (_e *MockhistoryRepoDep_Expecter) GetByUsername(ctx interface{}, username interface{}, limit interface{}) *MockhistoryRepoDep_GetByUsername_Call {
	return &MockhistoryRepoDep_GetByUsername_Call{Call: _e.mock.On("GetByUsername", ctx, username, limit)}
}

func (_c *MockhistoryRepoDep_GetByUsername_Call) Run(run func(ctx context.Context, username string, limit int)) *MockhistoryRepoDep_GetByUsername_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockhistoryRepoDep_GetByUsername_Call) Return(_a0 []entity.HistoryEntry, _a1 error) *MockhistoryRepoDep_GetByUsername_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockhistoryRepoDep_GetByUsername_Call) RunAndReturn(run func(context.Context, string, int) ([]entity.HistoryEntry, error)) *MockhistoryRepoDep_GetByUsername_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockhistoryRepoDep creates a new instance of MockhistoryRepoDep. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockhistoryRepoDep(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockhistoryRepoDep {
	mock := &MockhistoryRepoDep{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
