package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

func (r *Repository) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	query := `SELECT id, name, timezone FROM organizations ORDER BY created_at DESC`

	var orgs []model.Organization
	err := r.inTx(ctx, "list organizations", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var o model.Organization
			if err := rows.Scan(&o.ID, &o.Name, &o.Timezone); err != nil {
				return fmt.Errorf("failed to scan organization: %w", err)
			}
			orgs = append(orgs, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return orgs, nil
}

func (r *Repository) CreateOrganization(ctx context.Context, name string) (uuid.UUID, error) {
	query := `SELECT create_organization_with_owner($1)`

	var id uuid.UUID
	err := r.inTx(ctx, "create organization", func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) ListMembers(ctx context.Context, orgID uuid.UUID) ([]model.OrgMember, error) {
	query := `SELECT member_type, user_id, email, first_name, last_name, role, joined_at, invited_at
			  FROM get_org_members($1)`

	var members []model.OrgMember
	err := r.inTx(ctx, "list members", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, orgID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var m model.OrgMember
			if err := rows.Scan(
				&m.MemberType, &m.UserID, &m.Email, &m.FirstName, &m.LastName,
				&m.Role, &m.JoinedAt, &m.InvitedAt,
			); err != nil {
				return fmt.Errorf("failed to scan member: %w", err)
			}
			members = append(members, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}
