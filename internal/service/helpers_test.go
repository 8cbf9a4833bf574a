package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/scheduleapp/internal/mocks"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/testutil"
)

// newOrgsWithActive returns an Orgs service with orgID selected.
func newOrgsWithActive(store *mocks.OrgStore, orgID uuid.UUID) *Orgs {
	prefs := &mocks.PreferenceStore{}
	prefs.On("SetActiveOrgID", mock.Anything, mock.Anything).Return(nil)
	prefs.On("ActiveOrgID", mock.Anything).Return(uuid.Nil, model.ErrNotFound)

	s := NewOrgs(store, prefs, testutil.MakeNoopLogger())
	if orgID != uuid.Nil {
		s.SetActiveOrgID(context.Background(), orgID)
	}
	return s
}

func identityOf(user model.Identity, ok bool) *mocks.IdentitySource {
	m := &mocks.IdentitySource{}
	m.On("CurrentUser").Return(user, ok)
	return m
}
