package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrdesk/hr-backend/pkg/database"
	"github.com/hrdesk/hr-backend/pkg/errors"
)

const placeSelect = `
	SELECT p.place_id, p.street_address, p.postal_code, p.city, p.state_province, p.state_id,
	       st.state_name, a.area_name
	FROM places p
	LEFT JOIN states st ON st.state_id = p.state_id
	LEFT JOIN areas a ON a.area_id = st.area_id
`

// PlaceRepository handles place persistence
type PlaceRepository struct {
	db *database.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *database.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// List returns all places ordered by id
func (r *PlaceRepository) List(ctx context.Context) ([]Place, error) {
	places := make([]Place, 0)
	if err := r.db.SelectContext(ctx, &places, placeSelect+` ORDER BY p.place_id`); err != nil {
		return nil, err
	}
	return places, nil
}

// GetByID gets a place by ID
func (r *PlaceRepository) GetByID(ctx context.Context, id int64) (*Place, error) {
	var place Place
	err := r.db.GetContext(ctx, &place, placeSelect+` WHERE p.place_id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("place")
	}
	if err != nil {
		return nil, err
	}

	return &place, nil
}

// Create inserts a place, letting the database assign the id, and returns the stored row
func (r *PlaceRepository) Create(ctx context.Context, place *Place) (*Place, error) {
	query := `
		INSERT INTO places (street_address, postal_code, city, state_province, state_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING place_id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		place.StreetAddress, place.PostalCode, place.City, place.StateProvince, place.StateID,
	).Scan(&id)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return nil, appErr
		}
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	return r.GetByID(ctx, id)
}
