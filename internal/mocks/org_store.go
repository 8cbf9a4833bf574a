package mocks

import (
	"context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/scheduleapp/internal/model"
)

// OrgStore is a mock type for the OrgStore type
type OrgStore struct {
	mock.Mock
}

// ListOrganizations provides a mock function with given fields: ctx
func (_m *OrgStore) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	ret := _m.Called(ctx)

	var r0 []model.Organization
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Organization)
	}

	return r0, ret.Error(1)
}

// CreateOrganization provides a mock function with given fields: ctx, name
func (_m *OrgStore) CreateOrganization(ctx context.Context, name string) (uuid.UUID, error) {
	ret := _m.Called(ctx, name)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}

	return r0, ret.Error(1)
}

// ListMembers provides a mock function with given fields: ctx, orgID
func (_m *OrgStore) ListMembers(ctx context.Context, orgID uuid.UUID) ([]model.OrgMember, error) {
	ret := _m.Called(ctx, orgID)

	var r0 []model.OrgMember
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrgMember)
	}

	return r0, ret.Error(1)
}
