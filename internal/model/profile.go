package model

import (
	"context"

	"github.com/google/uuid"
)

// ProfileStore defines remote operations on user profiles.
// GetProfile returns ErrNotFound when the user has no profile row yet.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpsertProfile(ctx context.Context, profile Profile) error
}

// Profile holds the editable personal details of a user.
type Profile struct {
	ID            uuid.UUID `json:"id" yaml:"id"`
	Email         string    `json:"email,omitempty" yaml:"email,omitempty"`
	FirstName     string    `json:"first_name" yaml:"first_name"`
	LastName      string    `json:"last_name" yaml:"last_name"`
	StreetAddress string    `json:"street_address" yaml:"street_address"`
	City          string    `json:"city" yaml:"city"`
	State         string    `json:"state" yaml:"state"`
	Country       string    `json:"country" yaml:"country"`
	Zipcode       string    `json:"zipcode" yaml:"zipcode"`
}
