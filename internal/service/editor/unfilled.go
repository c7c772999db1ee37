package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/session"
)

// RequestUnfilled handles the "Show unfilled places" menu button by asking
// the operator to share a location.
func (s *Service) RequestUnfilled(ctx context.Context, chatID int64) []Reply {
	if _, ok := s.sessions.Get(chatID); !ok {
		return []Reply{{Text: msgNotStarted}}
	}
	if s.mirror == nil {
		return []Reply{{Text: msgMirrorDisabled}}
	}
	return []Reply{{Text: msgShareLocation, Markup: MarkupShareLocation}}
}

// HandleLocation lists cards with blank fields, nearest to the shared
// location first.
func (s *Service) HandleLocation(ctx context.Context, chatID int64, lat, lon float64) []Reply {
	if _, ok := s.sessions.Get(chatID); !ok {
		return []Reply{{Text: msgNotStarted}}
	}
	if s.mirror == nil {
		return []Reply{{Text: msgMirrorDisabled}}
	}

	places, err := s.mirror.ListUnfilled(ctx, domain.Coordinates{Lat: lat, Lon: lon}, unfilledLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "unfilled lookup failed", slog.String("error", err.Error()))
		return []Reply{{Text: msgLookupFailed}}
	}
	if len(places) == 0 {
		return []Reply{{Text: "All nearby places are fully filled."}}
	}

	var b strings.Builder
	b.WriteString("Unfilled places near you:\n")
	for i, p := range places {
		missing := make([]string, 0, len(p.MissingFields()))
		for _, f := range p.MissingFields() {
			missing = append(missing, f.Label())
		}
		fmt.Fprintf(&b, "%d. %s (missing: %s)\n", i+1, p.Name, strings.Join(missing, ", "))
	}
	return []Reply{{Text: strings.TrimRight(b.String(), "\n")}}
}

// mirrorSaved mirrors a saved card (with coordinates extracted from its map
// link) into the local database. Best effort: failures are logged and never
// fail the save.
func (s *Service) mirrorSaved(ctx context.Context, sess *session.Session) {
	if s.mirror == nil {
		return
	}
	place := sess.Place

	var coords *domain.Coordinates
	if s.geo != nil && place.MapLink != "" {
		c, err := s.geo.Coordinates(ctx, place.MapLink)
		if err != nil {
			s.log.WarnContext(ctx, "coordinate extraction failed",
				slog.String("map_link", place.MapLink),
				slog.String("error", err.Error()),
			)
		} else {
			coords = &c
		}
	}

	if err := s.mirror.Upsert(ctx, place, coords); err != nil {
		s.log.WarnContext(ctx, "mirror upsert failed",
			slog.String("place_id", place.ID),
			slog.String("error", err.Error()),
		)
	}
}
