package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/scheduleapp/internal/model"
)

// IdentitySource is a mock type for the IdentitySource type
type IdentitySource struct {
	mock.Mock
}

// CurrentUser provides a mock function with no fields
func (_m *IdentitySource) CurrentUser() (model.Identity, bool) {
	ret := _m.Called()

	var r0 model.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Identity)
	}

	return r0, ret.Bool(1)
}
