package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/scheduleapp/internal/model"
)

// AuthGateway is a mock type for the AuthGateway type
type AuthGateway struct {
	mock.Mock
}

// GetSession provides a mock function with given fields: ctx
func (_m *AuthGateway) GetSession(ctx context.Context) (*model.Session, error) {
	ret := _m.Called(ctx)

	var r0 *model.Session
	if rf, ok := ret.Get(0).(func(context.Context) *model.Session); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Session)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SignInWithPassword provides a mock function with given fields: ctx, email, password
func (_m *AuthGateway) SignInWithPassword(ctx context.Context, email string, password string) error {
	ret := _m.Called(ctx, email, password)
	return ret.Error(0)
}

// SignUp provides a mock function with given fields: ctx, email, password
func (_m *AuthGateway) SignUp(ctx context.Context, email string, password string) error {
	ret := _m.Called(ctx, email, password)
	return ret.Error(0)
}

// SignOut provides a mock function with given fields: ctx
func (_m *AuthGateway) SignOut(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// OnAuthStateChange provides a mock function with given fields: handler
func (_m *AuthGateway) OnAuthStateChange(handler model.AuthChangeHandler) model.Subscription {
	ret := _m.Called(handler)

	var r0 model.Subscription
	if rf, ok := ret.Get(0).(func(model.AuthChangeHandler) model.Subscription); ok {
		r0 = rf(handler)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Subscription)
	}

	return r0
}

// NewAuthGateway creates a new instance of AuthGateway. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthGateway {
	m := &AuthGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Subscription is a mock type for the Subscription type
type Subscription struct {
	mock.Mock
}

// Unsubscribe provides a mock function with no fields
func (_m *Subscription) Unsubscribe() {
	_m.Called()
}
