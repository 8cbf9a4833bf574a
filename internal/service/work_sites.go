package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

type WorkSites struct {
	store    model.WorkSiteStore
	orgs     *Orgs
	identity model.IdentitySource
	logger   *logger.Logger
}

func NewWorkSites(store model.WorkSiteStore, orgs *Orgs, identity model.IdentitySource, logger *logger.Logger) *WorkSites {
	return &WorkSites{
		store:    store,
		orgs:     orgs,
		identity: identity,
		logger:   logger,
	}
}

func (s *WorkSites) List(ctx context.Context) ([]model.WorkSite, error) {
	orgID := s.orgs.ActiveOrgID()
	if orgID == uuid.Nil {
		return nil, model.ErrNoActiveOrg
	}

	sites, err := s.store.ListWorkSites(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sites: %w", err)
	}
	return sites, nil
}

// Create adds a work site to the active organization. A blank nickname is stored as null.
func (s *WorkSites) Create(ctx context.Context, name, nickname string) error {
	orgID := s.orgs.ActiveOrgID()
	if orgID == uuid.Nil {
		return model.ErrNoActiveOrg
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return model.NewValidationError("Missing name", "Enter a work site name.")
	}

	user, ok := s.identity.CurrentUser()
	if !ok {
		return model.ErrNotAuthenticated
	}

	site := model.NewWorkSite{
		OrgID:     orgID,
		Name:      name,
		CreatedBy: user.ID,
	}
	if nick := strings.TrimSpace(nickname); nick != "" {
		site.Nickname = &nick
	}

	if err := s.store.CreateWorkSite(ctx, site); err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	s.logger.Info("Work sites service: site created", "org_id", orgID, "name", name)

	return nil
}
