package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

type membersEntry struct {
	members   []model.OrgMember
	fetchedAt time.Time
}

// Members lists organization members, caching each organization for staleTime.
type Members struct {
	store     model.OrgStore
	staleTime time.Duration
	logger    *logger.Logger
	now       func() time.Time

	mu    sync.Mutex
	cache map[uuid.UUID]membersEntry
}

func NewMembers(store model.OrgStore, staleTime time.Duration, logger *logger.Logger) *Members {
	return &Members{
		store:     store,
		staleTime: staleTime,
		logger:    logger,
		now:       time.Now,
		cache:     make(map[uuid.UUID]membersEntry),
	}
}

func (s *Members) Fetch(ctx context.Context, orgID uuid.UUID) ([]model.OrgMember, error) {
	if orgID == uuid.Nil {
		return nil, model.ErrNoActiveOrg
	}

	s.mu.Lock()
	e, ok := s.cache[orgID]
	s.mu.Unlock()

	if ok && s.now().Sub(e.fetchedAt) < s.staleTime {
		return append([]model.OrgMember(nil), e.members...), nil
	}

	members, err := s.store.ListMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	s.mu.Lock()
	s.cache[orgID] = membersEntry{members: append([]model.OrgMember(nil), members...), fetchedAt: s.now()}
	s.mu.Unlock()

	s.logger.Debug("Members service: members fetched", "org_id", orgID, "count", len(members))

	return members, nil
}

// Invalidate forces the next Fetch for orgID to hit the backend.
func (s *Members) Invalidate(orgID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, orgID)
}

// DisplayName is "first last", falling back to email and then "Unknown".
func DisplayName(m model.OrgMember) string {
	var parts []string
	for _, p := range []*string{m.FirstName, m.LastName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if name := strings.Join(parts, " "); name != "" {
		return name
	}
	if m.Email != nil && *m.Email != "" {
		return *m.Email
	}
	return "Unknown"
}
