package mocks

import (
	"context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/scheduleapp/internal/model"
)

// ProfileStore is a mock type for the ProfileStore type
type ProfileStore struct {
	mock.Mock
}

// GetProfile provides a mock function with given fields: ctx, userID
func (_m *ProfileStore) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	ret := _m.Called(ctx, userID)

	var r0 model.Profile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Profile)
	}

	return r0, ret.Error(1)
}

// UpsertProfile provides a mock function with given fields: ctx, profile
func (_m *ProfileStore) UpsertProfile(ctx context.Context, profile model.Profile) error {
	ret := _m.Called(ctx, profile)
	return ret.Error(0)
}
