package mocks

import (
	"context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// PreferenceStore is a mock type for the PreferenceStore type
type PreferenceStore struct {
	mock.Mock
}

// ActiveOrgID provides a mock function with given fields: ctx
func (_m *PreferenceStore) ActiveOrgID(ctx context.Context) (uuid.UUID, error) {
	ret := _m.Called(ctx)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}

	return r0, ret.Error(1)
}

// SetActiveOrgID provides a mock function with given fields: ctx, id
func (_m *PreferenceStore) SetActiveOrgID(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
