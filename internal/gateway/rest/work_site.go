package rest

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

// ListWorkSites returns work sites of an organization, newest first.
func (c *Client) ListWorkSites(ctx context.Context, orgID uuid.UUID) ([]model.WorkSite, error) {
	q := url.Values{}
	q.Set("select", "id,org_id,name,nickname,active")
	q.Set("org_id", eq(orgID.String()))
	q.Set("order", "created_at.desc")

	var sites []model.WorkSite
	if err := c.selectRows(ctx, "list work sites", "work_sites", q, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// CreateWorkSite inserts a work site.
func (c *Client) CreateWorkSite(ctx context.Context, site model.NewWorkSite) error {
	return c.write(ctx, "create work site", "work_sites", nil, "return=minimal", site)
}
