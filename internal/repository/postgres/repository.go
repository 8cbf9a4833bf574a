package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

var (
	_ model.OrgStore      = (*Repository)(nil)
	_ model.InviteStore   = (*Repository)(nil)
	_ model.WorkSiteStore = (*Repository)(nil)
	_ model.ProfileStore  = (*Repository)(nil)
)

const setClaimsQuery = `SELECT set_config('request.jwt.claims', $1, true)`

// Repository implements the feature stores directly against the database.
// Every call runs in its own transaction scoped to the caller's claims, so
// row policies and procedures see the same user as through the REST gateway.
type Repository struct {
	db       *sql.DB
	identity model.IdentitySource
	logger   *logger.Logger
}

func NewRepository(db *sql.DB, identity model.IdentitySource, logger *logger.Logger) *Repository {
	return &Repository{
		db:       db,
		identity: identity,
		logger:   logger,
	}
}

type claims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *Repository) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	user, ok := r.identity.CurrentUser()
	if !ok {
		return model.ErrNotAuthenticated
	}

	c, err := json.Marshal(claims{Sub: user.ID.String(), Email: user.Email, Role: "authenticated"})
	if err != nil {
		return fmt.Errorf("failed to encode claims: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to %s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, setClaimsQuery, string(c)); err != nil {
		return fmt.Errorf("failed to %s: set claims: %w", op, err)
	}

	if err := fn(tx); err != nil {
		r.logger.Debug("Repository: query failed", "op", op, "error", err.Error())
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to %s: commit: %w", op, err)
	}
	return nil
}
