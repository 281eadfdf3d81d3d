package usecase

import (
	context "context"

	entity "github.com/rocketscienceinc/xo-backend/internal/entity"
	mock "github.com/stretchr/testify/mock"
)

// MocksessionRepoDep is an autogenerated mock type for the sessionRepo type
type MocksessionRepoDep struct {
	mock.Mock
}

type MocksessionRepoDep_Expecter struct {
	mock *mock.Mock
}

func (_m *MocksessionRepoDep) EXPECT() *MocksessionRepoDep_Expecter {
	return &MocksessionRepoDep_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, username
func (_m *MocksessionRepoDep) Get(ctx context.Context, username entity.Username) (*entity.SessionRecord, error) {
	ret := _m.Called(ctx, username)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.SessionRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Username) (*entity.SessionRecord, error)); ok {
		return rf(ctx, username)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Username) *entity.SessionRecord); ok {
		r0 = rf(ctx, username)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.SessionRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Username) error); ok {
		r1 = rf(ctx, username)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MocksessionRepoDep_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MocksessionRepoDep_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - username entity.Username
func (_e *MocksessionRepoDep_Expecter) Get(ctx interface{}, username interface{}) *MocksessionRepoDep_Get_Call {
	return &MocksessionRepoDep_Get_Call{Call: _e.mock.On("Get", ctx, username)}
}

func (_c *MocksessionRepoDep_Get_Call) Run(run func(ctx context.Context, username entity.Username)) *MocksessionRepoDep_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Username))
	})
	return _c
}

func (_c *MocksessionRepoDep_Get_Call) Return(_a0 *entity.SessionRecord, _a1 error) *MocksessionRepoDep_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MocksessionRepoDep_Get_Call) RunAndReturn(run func(context.Context, entity.Username) (*entity.SessionRecord, error)) *MocksessionRepoDep_Get_Call {
	_c.Call.Return(run)
	return _c
}

// NewMocksessionRepoDep creates a new instance of MocksessionRepoDep. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMocksessionRepoDep(t interface {
	mock.TestingT
	Cleanup(func())
}) *MocksessionRepoDep {
	mock := &MocksessionRepoDep{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
