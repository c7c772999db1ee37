// Package maps expands shortened Google Maps links and extracts the place
// coordinates embedded in the expanded URL.
package maps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/guidecr/placebot/internal/domain"
)

// coordsRe matches the "@lat,lng" segment of an expanded maps URL.
var coordsRe = regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`)

// Resolver turns short map links into coordinates by following redirects.
type Resolver struct {
	httpClient *http.Client
	log        *slog.Logger
}

func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "maps"),
	}
}

// Coordinates expands the short link and parses the coordinates out of the
// final URL the redirect chain lands on.
func (r *Resolver) Coordinates(ctx context.Context, shortURL string) (domain.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("maps: build request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("maps: expand link: %w", errors.Join(domain.ErrUpstream, err))
	}
	defer resp.Body.Close()

	expanded := resp.Request.URL.String()
	coords, err := extractCoordinates(expanded)
	if err != nil {
		return domain.Coordinates{}, err
	}

	r.log.DebugContext(ctx, "link expanded",
		slog.String("short_url", shortURL),
		slog.Float64("lat", coords.Lat),
		slog.Float64("lon", coords.Lon),
	)
	return coords, nil
}

func extractCoordinates(expandedURL string) (domain.Coordinates, error) {
	m := coordsRe.FindStringSubmatch(expandedURL)
	if m == nil {
		return domain.Coordinates{}, fmt.Errorf("maps: no coordinates in expanded url: %w", domain.ErrNotFound)
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("maps: parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("maps: parse longitude: %w", err)
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
