package usecase

import (
	context "context"

	entity "github.com/rocketscienceinc/xo-backend/internal/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockleaderboardRepoDep is an autogenerated mock type for the leaderboardRepo type
type MockleaderboardRepoDep struct {
	mock.Mock
}

type MockleaderboardRepoDep_Expecter struct {
	mock *mock.Mock
}

func (_m *MockleaderboardRepoDep) EXPECT() *MockleaderboardRepoDep_Expecter {
	return &MockleaderboardRepoDep_Expecter{mock: &_m.Mock}
}

// Top provides a mock function with given fields: ctx, limit
func (_m *MockleaderboardRepoDep) Top(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for Top")
	}

	var r0 []entity.LeaderboardRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]entity.LeaderboardRecord, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []entity.LeaderboardRecord); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]entity.LeaderboardRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockleaderboardRepoDep_Top_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Top'
type MockleaderboardRepoDep_Top_Call struct {
	*mock.Call
}

// Top is a helper method to define mock.On call
//   - ctx context.Context
//   - limit int
func (_e *MockleaderboardRepoDep_Expecter) Top(ctx interface{}, limit interface{}) *MockleaderboardRepoDep_Top_Call {
	return &MockleaderboardRepoDep_Top_Call{Call: _e.mock.On("Top", ctx, limit)}
}

func (_c *MockleaderboardRepoDep_Top_Call) Run(run func(ctx context.Context, limit int)) *MockleaderboardRepoDep_Top_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockleaderboardRepoDep_Top_Call) Return(_a0 []entity.LeaderboardRecord, _a1 error) *MockleaderboardRepoDep_Top_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockleaderboardRepoDep_Top_Call) RunAndReturn(run func(context.Context, int) ([]entity.LeaderboardRecord, error)) *MockleaderboardRepoDep_Top_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockleaderboardRepoDep creates a new instance of MockleaderboardRepoDep. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockleaderboardRepoDep(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockleaderboardRepoDep {
	mock := &MockleaderboardRepoDep{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
