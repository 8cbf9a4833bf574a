package mocks

import (
	"context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/scheduleapp/internal/model"
)

// InviteStore is a mock type for the InviteStore type
type InviteStore struct {
	mock.Mock
}

// ListInvites provides a mock function with given fields: ctx, orgID
func (_m *InviteStore) ListInvites(ctx context.Context, orgID uuid.UUID) ([]model.Invite, error) {
	ret := _m.Called(ctx, orgID)

	var r0 []model.Invite
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Invite)
	}

	return r0, ret.Error(1)
}

// CreateInvite provides a mock function with given fields: ctx, orgID, email, role
func (_m *InviteStore) CreateInvite(ctx context.Context, orgID uuid.UUID, email string, role model.OrgRole) (string, error) {
	ret := _m.Called(ctx, orgID, email, role)
	return ret.String(0), ret.Error(1)
}

// RedeemInvite provides a mock function with given fields: ctx, token
func (_m *InviteStore) RedeemInvite(ctx context.Context, token string) (uuid.UUID, error) {
	ret := _m.Called(ctx, token)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}

	return r0, ret.Error(1)
}
