package editor

import (
	"context"
	"log/slog"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/session"
)

// RequestName prompts for a company name after the "Show place card" menu
// button.
func (s *Service) RequestName(ctx context.Context, chatID int64) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}
	if err := sess.Fire(ctx, session.EventRequestName); err != nil {
		// Mid-edit menu presses are rejected; the card stays as it was.
		return []Reply{{Text: msgSaveOrExit, Markup: MarkupSaveExit}}
	}
	return []Reply{{Text: msgEnterName, Markup: MarkupForceReply}}
}

// submitName validates the entered company name, loads or creates the card,
// and displays it with the edit bar. Validation failure re-prompts and stays
// in the name-requested state.
func (s *Service) submitName(ctx context.Context, sess *session.Session, name string) []Reply {
	if err := domain.ValidateName(name); err != nil {
		return []Reply{
			{Text: msgInvalidName},
			{Text: msgEnterName, Markup: MarkupForceReply},
		}
	}

	place, created, err := s.records.FindOrCreate(ctx, name)
	if err != nil {
		s.log.ErrorContext(ctx, "record lookup failed",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return []Reply{{Text: msgLookupFailed, Markup: MarkupForceReply}}
	}

	sess.Place = place
	if created {
		// Baseline for a fresh card: all fields blank.
		sess.Baseline = &domain.Place{ID: place.ID}
	} else {
		sess.Baseline = place.Clone()
	}

	if err := sess.Fire(ctx, session.EventCardLoaded); err != nil {
		return []Reply{{Text: msgNotStarted}}
	}

	msg := msgCompanyFound
	if created {
		msg = msgCompanyCreated
	}
	s.log.InfoContext(ctx, "card loaded",
		slog.String("place_id", place.ID),
		slog.String("name", place.Name),
		slog.Bool("created", created),
	)

	return append([]Reply{{Text: msg}}, s.cardReplies(place)...)
}
