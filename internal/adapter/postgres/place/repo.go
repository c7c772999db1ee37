// Package place implements the mirror repository for place cards using
// PostgreSQL. The mirror exists for proximity queries the sheet cannot
// answer; the sheet stays the source of truth.
package place

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guidecr/placebot/internal/adapter/postgres"
	"github.com/guidecr/placebot/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides place-mirror persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new place mirror repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert writes the card's current values keyed by its sheet identifier.
// Coordinates are optional; a nil pair keeps whatever the mirror already
// has for the card.
func (r *Repo) Upsert(ctx context.Context, place *domain.Place, coords *domain.Coordinates) error {
	var lat, lon interface{}
	if coords != nil {
		lat, lon = coords.Lat, coords.Lon
	}

	query, args, err := qb.Insert("places").
		Columns("id", "place_id", "name", "category", "photos_link", "map_link",
			"phone_number", "whatsapp_number", "hours_of_operation",
			"lat", "lon", "filled").
		Values(uuid.New(), place.ID, place.Name, string(place.Category),
			place.PhotoFolderLink, place.MapLink,
			place.PhoneNumber, place.WhatsAppNumber, place.HoursOfOperation,
			lat, lon, place.IsFilled()).
		Suffix(`ON CONFLICT (place_id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			photos_link = EXCLUDED.photos_link,
			map_link = EXCLUDED.map_link,
			phone_number = EXCLUDED.phone_number,
			whatsapp_number = EXCLUDED.whatsapp_number,
			hours_of_operation = EXCLUDED.hours_of_operation,
			lat = COALESCE(EXCLUDED.lat, places.lat),
			lon = COALESCE(EXCLUDED.lon, places.lon),
			filled = EXCLUDED.filled,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "place", place.ID)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return postgres.MapError(err, "place", place.ID)
}

// ListUnfilled returns cards with at least one blank field, nearest to the
// given point first. Distance is a squared-degree approximation, good
// enough for ordering within one country. Cards without stored coordinates
// cannot be ranked and are excluded.
func (r *Repo) ListUnfilled(ctx context.Context, near domain.Coordinates, limit int) ([]*domain.Place, error) {
	query, args, err := qb.Select("place_id", "name", "category", "photos_link", "map_link",
		"phone_number", "whatsapp_number", "hours_of_operation").
		From("places").
		Where(sq.Eq{"filled": false}).
		Where("lat IS NOT NULL AND lon IS NOT NULL").
		OrderByClause("POWER(lat - ?, 2) + POWER(lon - ?, 2)", near.Lat, near.Lon).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "place", "list")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "place", "list")
	}
	defer rows.Close()

	var places []*domain.Place
	for rows.Next() {
		var p domain.Place
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &category, &p.PhotoFolderLink, &p.MapLink,
			&p.PhoneNumber, &p.WhatsAppNumber, &p.HoursOfOperation); err != nil {
			return nil, postgres.MapError(err, "place", "list")
		}
		p.Category = domain.Category(category)
		places = append(places, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "place", "list")
	}
	return places, nil
}
