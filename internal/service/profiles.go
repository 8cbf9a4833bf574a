package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

// ProfileInput holds the editable profile fields.
type ProfileInput struct {
	FirstName     string
	LastName      string
	StreetAddress string
	City          string
	State         string
	Country       string
	Zipcode       string
}

type Profiles struct {
	store    model.ProfileStore
	identity model.IdentitySource
	logger   *logger.Logger
}

func NewProfiles(store model.ProfileStore, identity model.IdentitySource, logger *logger.Logger) *Profiles {
	return &Profiles{
		store:    store,
		identity: identity,
		logger:   logger,
	}
}

// Load returns the current user's profile. A missing row yields an empty profile.
func (s *Profiles) Load(ctx context.Context) (model.Profile, error) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return model.Profile{}, model.ErrNotAuthenticated
	}

	p, err := s.store.GetProfile(ctx, user.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{ID: user.ID, Email: user.Email}, nil
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	p.ID = user.ID
	p.Email = user.Email
	return p, nil
}

// Save upserts the current user's profile.
func (s *Profiles) Save(ctx context.Context, in ProfileInput) error {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return model.ErrNotAuthenticated
	}

	p := model.Profile{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		StreetAddress: in.StreetAddress,
		City:          in.City,
		State:         in.State,
		Country:       in.Country,
		Zipcode:       in.Zipcode,
	}

	if err := s.store.UpsertProfile(ctx, p); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}

	s.logger.Info("Profiles service: profile saved", "user_id", user.ID)

	return nil
}

// InputFromProfile returns the editable fields of p.
func InputFromProfile(p model.Profile) ProfileInput {
	return ProfileInput{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		StreetAddress: p.StreetAddress,
		City:          p.City,
		State:         p.State,
		Country:       p.Country,
		Zipcode:       p.Zipcode,
	}
}
