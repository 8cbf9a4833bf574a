package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/model"
)

func (r *Repository) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	query := `SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(street_address, ''),
			  COALESCE(city, ''), COALESCE(state, ''), COALESCE(country, ''), COALESCE(zipcode, '')
			  FROM profiles WHERE id = $1`

	var p model.Profile
	err := r.inTx(ctx, "get profile", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, userID).Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.StreetAddress, &p.City, &p.State, &p.Country, &p.Zipcode,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.ErrNotFound
			}
			return fmt.Errorf("failed to get profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Profile{}, err
	}

	return p, nil
}

func (r *Repository) UpsertProfile(ctx context.Context, p model.Profile) error {
	query := `INSERT INTO profiles (id, email, first_name, last_name, street_address, city, state, country, zipcode)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  ON CONFLICT (id) DO UPDATE SET
			  email = EXCLUDED.email,
			  first_name = EXCLUDED.first_name,
			  last_name = EXCLUDED.last_name,
			  street_address = EXCLUDED.street_address,
			  city = EXCLUDED.city,
			  state = EXCLUDED.state,
			  country = EXCLUDED.country,
			  zipcode = EXCLUDED.zipcode`

	return r.inTx(ctx, "save profile", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			p.ID, p.Email, p.FirstName, p.LastName, p.StreetAddress, p.City, p.State, p.Country, p.Zipcode,
		)
		if err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		return nil
	})
}
