package editor

import (
	"context"
	"log/slog"

	"github.com/guidecr/placebot/internal/session"
)

// Save writes the session's card to the record store. If the store returns
// prior values, the change notifier fans out the diff; a brand-new insertion
// deliberately skips notification. On store failure the session is preserved
// and the error surfaced; on success the session clears back to the menu.
func (s *Service) Save(ctx context.Context, chatID int64) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}
	if sess.Place == nil || !(sess.Is(session.StateCard) || sess.Is(session.StateFieldSelected)) {
		return []Reply{{Text: msgCardFirst}}
	}

	prior, inserted, err := s.records.Write(ctx, sess.Place)
	if err != nil {
		// Session stays at its last stable point; the operator may retry.
		s.log.ErrorContext(ctx, "record write failed",
			slog.String("place_id", sess.Place.ID),
			slog.String("error", err.Error()),
		)
		return []Reply{{Text: msgSaveFailed}}
	}

	s.log.InfoContext(ctx, "card saved",
		slog.String("place_id", sess.Place.ID),
		slog.Int64("user_id", sess.Operator.ID),
		slog.Bool("inserted", inserted),
	)

	replies := []Reply{{Text: msgSaved}, {Text: sess.Place.Summary()}}

	if !inserted {
		results := s.notify.PlaceUpdated(ctx, sess.Operator, prior, sess.Place)
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			s.log.WarnContext(ctx, "some notifications failed",
				slog.Int("failed", failed),
				slog.Int("total", len(results)),
			)
		}
	}

	s.mirrorSaved(ctx, sess)

	op := sess.Operator
	s.sessions.Delete(chatID)
	s.sessions.Put(session.New(chatID, op))

	return append(replies, Reply{Text: msgChooseAction, Markup: MarkupMainMenu})
}
