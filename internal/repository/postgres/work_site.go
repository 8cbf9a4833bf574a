package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

func (r *Repository) ListWorkSites(ctx context.Context, orgID uuid.UUID) ([]model.WorkSite, error) {
	query := `SELECT id, org_id, name, nickname, active
			  FROM work_sites WHERE org_id = $1 ORDER BY created_at DESC`

	var sites []model.WorkSite
	err := r.inTx(ctx, "list work sites", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, orgID)
		if err != nil {
			return fmt.Errorf("failed to list work sites: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var s model.WorkSite
			if err := rows.Scan(&s.ID, &s.OrgID, &s.Name, &s.Nickname, &s.Active); err != nil {
				return fmt.Errorf("failed to scan work site: %w", err)
			}
			sites = append(sites, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return sites, nil
}

func (r *Repository) CreateWorkSite(ctx context.Context, site model.NewWorkSite) error {
	query := `INSERT INTO work_sites (org_id, name, nickname, created_by) VALUES ($1, $2, $3, $4)`

	return r.inTx(ctx, "create work site", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, site.OrgID, site.Name, site.Nickname, site.CreatedBy); err != nil {
			return fmt.Errorf("failed to create work site: %w", err)
		}
		return nil
	})
}
