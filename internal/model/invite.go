package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InviteStore defines remote operations on organization invites.
type InviteStore interface {
	ListInvites(ctx context.Context, orgID uuid.UUID) ([]Invite, error)
	CreateInvite(ctx context.Context, orgID uuid.UUID, email string, role OrgRole) (string, error)
	RedeemInvite(ctx context.Context, token string) (uuid.UUID, error)
}

// InviteStatus enumerates invite lifecycle states.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRevoked  InviteStatus = "revoked"
	InviteStatusExpired  InviteStatus = "expired"
)

// Invite is an invitation for an email address to join an organization.
type Invite struct {
	ID        uuid.UUID    `json:"id" yaml:"id"`
	OrgID     uuid.UUID    `json:"org_id" yaml:"org_id"`
	Email     string       `json:"email" yaml:"email"`
	Role      OrgRole      `json:"role" yaml:"role"`
	Status    InviteStatus `json:"status" yaml:"status"`
	Token     string       `json:"token" yaml:"token"`
	ExpiresAt time.Time    `json:"expires_at" yaml:"expires_at"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
}
