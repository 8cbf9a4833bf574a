package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

// Orgs holds the organizations of the current user and the active selection.
type Orgs struct {
	store  model.OrgStore
	prefs  model.PreferenceStore
	logger *logger.Logger

	mu       sync.Mutex
	orgs     []model.Organization
	activeID uuid.UUID
	restored bool
}

func NewOrgs(store model.OrgStore, prefs model.PreferenceStore, logger *logger.Logger) *Orgs {
	return &Orgs{
		store:  store,
		prefs:  prefs,
		logger: logger,
	}
}

// FetchOrgs reloads the organization list. When nothing is selected the
// remembered selection is restored, or else the newest organization is picked.
func (s *Orgs) FetchOrgs(ctx context.Context) error {
	s.restore(ctx)

	orgs, err := s.store.ListOrganizations(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch organizations: %w", err)
	}

	s.mu.Lock()
	s.orgs = orgs
	prev := s.activeID
	pick := prev
	switch {
	case len(orgs) == 0:
		pick = uuid.Nil
	case !containsOrg(orgs, prev):
		pick = orgs[0].ID
	}
	s.mu.Unlock()

	if pick != prev {
		s.SetActiveOrgID(ctx, pick)
	}

	return nil
}

func (s *Orgs) restore(ctx context.Context) {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return
	}
	s.restored = true
	s.mu.Unlock()

	id, err := s.prefs.ActiveOrgID(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Warn("Orgs service: failed to restore active organization", "error", err.Error())
		}
		return
	}

	s.mu.Lock()
	if s.activeID == uuid.Nil {
		s.activeID = id
	}
	s.mu.Unlock()
}

// SetActiveOrgID selects an organization and remembers it. uuid.Nil clears the selection.
func (s *Orgs) SetActiveOrgID(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	s.activeID = id
	s.restored = true
	s.mu.Unlock()

	if err := s.prefs.SetActiveOrgID(ctx, id); err != nil {
		s.logger.Warn("Orgs service: failed to persist active organization", "error", err.Error())
	}
}

// CreateOrg creates an organization owned by the caller and selects it.
func (s *Orgs) CreateOrg(ctx context.Context, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, model.NewValidationError("Missing name", "Enter an organization name.")
	}

	id, err := s.store.CreateOrganization(ctx, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create failed: %w", err)
	}

	s.logger.Info("Orgs service: organization created", "org_id", id, "name", name)

	if err := s.FetchOrgs(ctx); err != nil {
		return uuid.Nil, err
	}
	s.SetActiveOrgID(ctx, id)

	return id, nil
}

func (s *Orgs) Orgs() []model.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Organization(nil), s.orgs...)
}

func (s *Orgs) ActiveOrgID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ActiveOrg returns the selected organization if it is among the fetched ones.
func (s *Orgs) ActiveOrg() (model.Organization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orgs {
		if o.ID == s.activeID {
			return o, true
		}
	}
	return model.Organization{}, false
}

func containsOrg(orgs []model.Organization, id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	for _, o := range orgs {
		if o.ID == id {
			return true
		}
	}
	return false
}
