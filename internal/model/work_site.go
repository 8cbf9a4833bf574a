package model

import (
	"context"

	"github.com/google/uuid"
)

// WorkSiteStore defines remote operations on work sites.
type WorkSiteStore interface {
	ListWorkSites(ctx context.Context, orgID uuid.UUID) ([]WorkSite, error)
	CreateWorkSite(ctx context.Context, site NewWorkSite) error
}

// WorkSite is a physical location shifts are scheduled at.
type WorkSite struct {
	ID       uuid.UUID `json:"id" yaml:"id"`
	OrgID    uuid.UUID `json:"org_id" yaml:"org_id"`
	Name     string    `json:"name" yaml:"name"`
	Nickname *string   `json:"nickname" yaml:"nickname"`
	Active   bool      `json:"active" yaml:"active"`
}

// NewWorkSite contains parameters to create a work site.
type NewWorkSite struct {
	OrgID     uuid.UUID `json:"org_id"`
	Name      string    `json:"name"`
	Nickname  *string   `json:"nickname"`
	CreatedBy uuid.UUID `json:"created_by"`
}
