package model

import (
	"context"

	"github.com/google/uuid"
)

// SessionStorage persists the last known session between process runs.
// Load returns ErrNotFound when nothing was saved.
type SessionStorage interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, session Session) error
	Clear(ctx context.Context) error
}

// PreferenceStore persists small per-device preferences.
type PreferenceStore interface {
	ActiveOrgID(ctx context.Context) (uuid.UUID, error)
	SetActiveOrgID(ctx context.Context, id uuid.UUID) error
}
