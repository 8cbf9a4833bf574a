package mocks

import (
	"context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/scheduleapp/internal/model"
)

// WorkSiteStore is a mock type for the WorkSiteStore type
type WorkSiteStore struct {
	mock.Mock
}

// ListWorkSites provides a mock function with given fields: ctx, orgID
func (_m *WorkSiteStore) ListWorkSites(ctx context.Context, orgID uuid.UUID) ([]model.WorkSite, error) {
	ret := _m.Called(ctx, orgID)

	var r0 []model.WorkSite
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.WorkSite)
	}

	return r0, ret.Error(1)
}

// CreateWorkSite provides a mock function with given fields: ctx, site
func (_m *WorkSiteStore) CreateWorkSite(ctx context.Context, site model.NewWorkSite) error {
	ret := _m.Called(ctx, site)
	return ret.Error(0)
}
