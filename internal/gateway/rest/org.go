package rest

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

// ListOrganizations returns organizations visible to the caller, newest first.
func (c *Client) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	q := url.Values{}
	q.Set("select", "id,name,timezone")
	q.Set("order", "created_at.desc")

	var orgs []model.Organization
	if err := c.selectRows(ctx, "list organizations", "organizations", q, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// CreateOrganization creates an organization owned by the caller.
func (c *Client) CreateOrganization(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.rpc(ctx, "create organization", "create_organization_with_owner",
		map[string]any{"p_name": name}, &id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ListMembers returns joined members and pending invitees of an organization.
func (c *Client) ListMembers(ctx context.Context, orgID uuid.UUID) ([]model.OrgMember, error) {
	var members []model.OrgMember
	err := c.rpc(ctx, "list members", "get_org_members",
		map[string]any{"p_org_id": orgID}, &members)
	if err != nil {
		return nil, err
	}
	return members, nil
}
