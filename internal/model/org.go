package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrgStore defines remote operations on organizations and their members.
type OrgStore interface {
	ListOrganizations(ctx context.Context) ([]Organization, error)
	CreateOrganization(ctx context.Context, name string) (uuid.UUID, error)
	ListMembers(ctx context.Context, orgID uuid.UUID) ([]OrgMember, error)
}

// Organization is a tenant the current user belongs to.
type Organization struct {
	ID       uuid.UUID `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Timezone string    `json:"timezone" yaml:"timezone"`
}

// OrgRole enumerates membership roles.
type OrgRole string

const (
	// OrgRoleOwner created the organization.
	OrgRoleOwner OrgRole = "owner"
	// OrgRoleManager may invite and manage sites.
	OrgRoleManager OrgRole = "manager"
	// OrgRoleEmployee is a regular member.
	OrgRoleEmployee OrgRole = "employee"
)

// Valid reports whether r is a known role.
func (r OrgRole) Valid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleManager, OrgRoleEmployee:
		return true
	}
	return false
}

// OrgMemberType distinguishes joined members from pending invitees.
type OrgMemberType string

const (
	OrgMemberActive  OrgMemberType = "active"
	OrgMemberInvited OrgMemberType = "invited"
)

// OrgMember is a row returned by the get_org_members procedure.
type OrgMember struct {
	MemberType OrgMemberType `json:"member_type" yaml:"member_type"`
	UserID     *uuid.UUID    `json:"user_id" yaml:"user_id"`
	Email      *string       `json:"email" yaml:"email"`
	FirstName  *string       `json:"first_name" yaml:"first_name"`
	LastName   *string       `json:"last_name" yaml:"last_name"`
	Role       OrgRole       `json:"role" yaml:"role"`
	JoinedAt   *time.Time    `json:"joined_at" yaml:"joined_at"`
	InvitedAt  *time.Time    `json:"invited_at" yaml:"invited_at"`
}
