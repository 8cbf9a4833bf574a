package rest

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

// GetProfile returns the profile of userID or model.ErrNotFound.
func (c *Client) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	q := url.Values{}
	q.Set("select", "id,first_name,last_name,street_address,city,state,country,zipcode")
	q.Set("id", eq(userID.String()))
	q.Set("limit", "1")

	var rows []model.Profile
	if err := c.selectRows(ctx, "get profile", "profiles", q, &rows); err != nil {
		return model.Profile{}, err
	}
	if len(rows) == 0 {
		return model.Profile{}, model.ErrNotFound
	}
	return rows[0], nil
}

// UpsertProfile creates or updates the profile row keyed by p.ID.
func (c *Client) UpsertProfile(ctx context.Context, p model.Profile) error {
	q := url.Values{}
	q.Set("on_conflict", "id")

	return c.write(ctx, "save profile", "profiles", q, "resolution=merge-duplicates,return=minimal", p)
}
