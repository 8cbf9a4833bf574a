package rest

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

// ListInvites returns invites of an organization, newest first.
func (c *Client) ListInvites(ctx context.Context, orgID uuid.UUID) ([]model.Invite, error) {
	q := url.Values{}
	q.Set("select", "id,org_id,email,role,status,token,expires_at,created_at")
	q.Set("org_id", eq(orgID.String()))
	q.Set("order", "created_at.desc")

	var invites []model.Invite
	if err := c.selectRows(ctx, "list invites", "org_invites", q, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// CreateInvite creates an invite and returns its token.
func (c *Client) CreateInvite(ctx context.Context, orgID uuid.UUID, email string, role model.OrgRole) (string, error) {
	var token string
	err := c.rpc(ctx, "create invite", "create_org_invite", map[string]any{
		"p_org_id": orgID,
		"p_email":  email,
		"p_role":   role,
	}, &token)
	if err != nil {
		return "", err
	}
	return token, nil
}

// RedeemInvite joins the caller to the invite's organization and returns its id.
func (c *Client) RedeemInvite(ctx context.Context, token string) (uuid.UUID, error) {
	var orgID uuid.UUID
	err := c.rpc(ctx, "redeem invite", "redeem_org_invite",
		map[string]any{"p_token": token}, &orgID)
	if err != nil {
		return uuid.Nil, err
	}
	return orgID, nil
}
