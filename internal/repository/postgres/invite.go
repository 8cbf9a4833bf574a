package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

func (r *Repository) ListInvites(ctx context.Context, orgID uuid.UUID) ([]model.Invite, error) {
	query := `SELECT id, org_id, email, role, status, token, expires_at, created_at
			  FROM org_invites WHERE org_id = $1 ORDER BY created_at DESC`

	var invites []model.Invite
	err := r.inTx(ctx, "list invites", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, orgID)
		if err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var i model.Invite
			if err := rows.Scan(
				&i.ID, &i.OrgID, &i.Email, &i.Role, &i.Status, &i.Token, &i.ExpiresAt, &i.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to scan invite: %w", err)
			}
			invites = append(invites, i)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return invites, nil
}

func (r *Repository) CreateInvite(ctx context.Context, orgID uuid.UUID, email string, role model.OrgRole) (string, error) {
	query := `SELECT create_org_invite($1, $2, $3)`

	var token string
	err := r.inTx(ctx, "create invite", func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, orgID, email, string(role)).Scan(&token); err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (r *Repository) RedeemInvite(ctx context.Context, token string) (uuid.UUID, error) {
	query := `SELECT redeem_org_invite($1)`

	var orgID uuid.UUID
	err := r.inTx(ctx, "redeem invite", func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, token).Scan(&orgID); err != nil {
			return fmt.Errorf("failed to redeem invite: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return orgID, nil
}
