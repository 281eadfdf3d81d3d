package usecase

import (
	entity "github.com/rocketscienceinc/xo-backend/internal/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockrecorderDep is an autogenerated mock type for the recorder type
type MockrecorderDep struct {
	mock.Mock
}

type MockrecorderDep_Expecter struct {
	mock *mock.Mock
}

func (_m *MockrecorderDep) EXPECT() *MockrecorderDep_Expecter {
	return &MockrecorderDep_Expecter{mock: &_m.Mock}
}

// RecordResult provides a mock function with given fields: result
func (_m *MockrecorderDep) RecordResult(result entity.MatchResult) {
	_m.Called(result)
}

// MockrecorderDep_RecordResult_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordResult'
type MockrecorderDep_RecordResult_Call struct {
	*mock.Call
}

// RecordResult is a helper method to define mock.On call
//   - result entity.MatchResult
func (_e *MockrecorderDep_Expecter) RecordResult(result interface{}) *MockrecorderDep_RecordResult_Call {
	return &MockrecorderDep_RecordResult_Call{Call: _e.mock.On("RecordResult", result)}
}

func (_c *MockrecorderDep_RecordResult_Call) Run(run func(result entity.MatchResult)) *MockrecorderDep_RecordResult_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.MatchResult))
	})
	return _c
}

func (_c *MockrecorderDep_RecordResult_Call) Return() *MockrecorderDep_RecordResult_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockrecorderDep_RecordResult_Call) RunAndReturn(run func(entity.MatchResult)) *MockrecorderDep_RecordResult_Call {
	_c.Call.Return(run)
	return _c
}

// SaveSession provides a mock function with given fields: record
func (_m *MockrecorderDep) SaveSession(record entity.SessionRecord) {
	_m.Called(record)
}

// MockrecorderDep_SaveSession_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveSession'
type MockrecorderDep_SaveSession_Call struct {
	*mock.Call
}

// SaveSession is a helper method to define mock.On call
//   - record entity.SessionRecord
func (_e *MockrecorderDep_Expecter) SaveSession(record interface{}) *MockrecorderDep_SaveSession_Call {
	return &MockrecorderDep_SaveSession_Call{Call: _e.mock.On("SaveSession", record)}
}

func (_c *MockrecorderDep_SaveSession_Call) Run(run func(record entity.SessionRecord)) *MockrecorderDep_SaveSession_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.SessionRecord))
	})
	return _c
}

func (_c *MockrecorderDep_SaveSession_Call) Return() *MockrecorderDep_SaveSession_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockrecorderDep_SaveSession_Call) RunAndReturn(run func(entity.SessionRecord)) *MockrecorderDep_SaveSession_Call {
	_c.Call.Return(run)
	return _c
}

// ClearSession provides a mock function with given fields: username
func (_m *MockrecorderDep) ClearSession(username entity.Username) {
	_m.Called(username)
}

// MockrecorderDep_ClearSession_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ClearSession'
type MockrecorderDep_ClearSession_Call struct {
	*mock.Call
}

// ClearSession is a helper method to define mock.On call
//   - username entity.Username
func (_e *MockrecorderDep_Expecter) ClearSession(username interface{}) *MockrecorderDep_ClearSession_Call {
	return &MockrecorderDep_ClearSession_Call{Call: _e.mock.On("ClearSession", username)}
}

func (_c *MockrecorderDep_ClearSession_Call) Run(run func(username entity.Username)) *MockrecorderDep_ClearSession_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.Username))
	})
	return _c
}

func (_c *MockrecorderDep_ClearSession_Call) Return() *MockrecorderDep_ClearSession_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockrecorderDep_ClearSession_Call) RunAndReturn(run func(entity.Username)) *MockrecorderDep_ClearSession_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockrecorderDep creates a new instance of MockrecorderDep. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockrecorderDep(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockrecorderDep {
	mock := &MockrecorderDep{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
