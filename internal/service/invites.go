package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

type Invites struct {
	store   model.InviteStore
	orgs    *Orgs
	members *Members
	logger  *logger.Logger
}

func NewInvites(store model.InviteStore, orgs *Orgs, members *Members, logger *logger.Logger) *Invites {
	return &Invites{
		store:   store,
		orgs:    orgs,
		members: members,
		logger:  logger,
	}
}

// List returns invites of the active organization.
func (s *Invites) List(ctx context.Context) ([]model.Invite, error) {
	orgID := s.orgs.ActiveOrgID()
	if orgID == uuid.Nil {
		return nil, model.ErrNoActiveOrg
	}

	invites, err := s.store.ListInvites(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invites: %w", err)
	}
	return invites, nil
}

// Create invites email to the active organization and returns the invite token.
func (s *Invites) Create(ctx context.Context, email string, role model.OrgRole) (string, error) {
	orgID := s.orgs.ActiveOrgID()
	if orgID == uuid.Nil {
		return "", model.ErrNoActiveOrg
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", model.NewValidationError("Missing email", "Enter an email to invite.")
	}
	if role != model.OrgRoleEmployee && role != model.OrgRoleManager {
		return "", model.NewValidationError("Invalid role", "Choose employee or manager.")
	}

	token, err := s.store.CreateInvite(ctx, orgID, email, role)
	if err != nil {
		return "", fmt.Errorf("invite failed: %w", err)
	}

	s.members.Invalidate(orgID)

	s.logger.Info("Invites service: invite created", "org_id", orgID, "email", email, "role", string(role))

	return token, nil
}

// Redeem joins the organization behind token and makes it the active one.
func (s *Invites) Redeem(ctx context.Context, token string) (uuid.UUID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, model.NewValidationError("Missing token", "Paste the invite token.")
	}

	orgID, err := s.store.RedeemInvite(ctx, token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("redeem failed: %w", err)
	}

	s.logger.Info("Invites service: invite redeemed", "org_id", orgID)

	if err := s.orgs.FetchOrgs(ctx); err != nil {
		s.logger.Warn("Invites service: failed to refresh organizations", "error", err.Error())
	}
	s.orgs.SetActiveOrgID(ctx, orgID)
	s.members.Invalidate(orgID)

	return orgID, nil
}
