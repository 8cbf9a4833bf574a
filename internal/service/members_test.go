package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/scheduleapp/internal/mocks"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestMembers_Fetch(t *testing.T) {
	orgID := uuid.New()
	rows := []model.OrgMember{{MemberType: model.OrgMemberActive, Role: model.OrgRoleOwner}}

	t.Run("caches within stale time", func(t *testing.T) {
		store := &mocks.OrgStore{}
		store.On("ListMembers", mock.Anything, orgID).Return(rows, nil)

		now := time.Now()
		s := NewMembers(store, 30*time.Second, testutil.MakeNoopLogger())
		s.now = func() time.Time { return now }

		_, err := s.Fetch(context.Background(), orgID)
		require.NoError(t, err)

		now = now.Add(29 * time.Second)
		got, err := s.Fetch(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
		store.AssertNumberOfCalls(t, "ListMembers", 1)

		now = now.Add(2 * time.Second)
		_, err = s.Fetch(context.Background(), orgID)
		require.NoError(t, err)
		store.AssertNumberOfCalls(t, "ListMembers", 2)
	})

	t.Run("callers cannot modify the cache", func(t *testing.T) {
		store := &mocks.OrgStore{}
		store.On("ListMembers", mock.Anything, orgID).
			Return([]model.OrgMember{{MemberType: model.OrgMemberActive, Role: model.OrgRoleOwner}}, nil).Once()

		s := NewMembers(store, time.Minute, testutil.MakeNoopLogger())
		first, err := s.Fetch(context.Background(), orgID)
		require.NoError(t, err)
		first[0].Role = model.OrgRoleEmployee

		second, err := s.Fetch(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, model.OrgRoleOwner, second[0].Role)
		second[0].Role = model.OrgRoleManager

		third, err := s.Fetch(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, model.OrgRoleOwner, third[0].Role)
		store.AssertNumberOfCalls(t, "ListMembers", 1)
	})

	t.Run("invalidate forces refetch", func(t *testing.T) {
		store := &mocks.OrgStore{}
		store.On("ListMembers", mock.Anything, orgID).Return(rows, nil)

		s := NewMembers(store, time.Minute, testutil.MakeNoopLogger())
		_, err := s.Fetch(context.Background(), orgID)
		require.NoError(t, err)

		s.Invalidate(orgID)
		_, err = s.Fetch(context.Background(), orgID)
		require.NoError(t, err)
		store.AssertNumberOfCalls(t, "ListMembers", 2)
	})

	t.Run("no active org", func(t *testing.T) {
		s := NewMembers(&mocks.OrgStore{}, time.Minute, testutil.MakeNoopLogger())
		_, err := s.Fetch(context.Background(), uuid.Nil)
		require.ErrorIs(t, err, model.ErrNoActiveOrg)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		store := &mocks.OrgStore{}
		store.On("ListMembers", mock.Anything, orgID).Return(nil, errors.New("boom")).Once()
		store.On("ListMembers", mock.Anything, orgID).Return(rows, nil).Once()

		s := NewMembers(store, time.Minute, testutil.MakeNoopLogger())
		_, err := s.Fetch(context.Background(), orgID)
		require.Error(t, err)

		got, err := s.Fetch(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		member model.OrgMember
		want   string
	}{
		{name: "full name", member: model.OrgMember{FirstName: strPtr("Ann"), LastName: strPtr("Lee"), Email: strPtr("a@b.c")}, want: "Ann Lee"},
		{name: "first name only", member: model.OrgMember{FirstName: strPtr("Ann"), LastName: strPtr("")}, want: "Ann"},
		{name: "last name only", member: model.OrgMember{LastName: strPtr("Lee")}, want: "Lee"},
		{name: "email fallback", member: model.OrgMember{Email: strPtr("a@b.c")}, want: "a@b.c"},
		{name: "unknown", member: model.OrgMember{}, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.member))
		})
	}
}
