package editor

import (
	"context"
	"strings"

	"github.com/guidecr/placebot/internal/session"
)

// HandleText routes free-form text by session state: a requested name, a new
// field value, or (with no field selected) the implicit show-card phrase.
// Anything else is a "no field selected" error that changes nothing.
func (s *Service) HandleText(ctx context.Context, chatID int64, text string) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}

	switch {
	case sess.Is(session.StateNameRequested):
		return s.submitName(ctx, sess, text)
	case sess.Is(session.StateFieldSelected):
		return s.applyValue(ctx, sess, text)
	case sess.Is(session.StatePhotoCollecting):
		return []Reply{{Text: msgSendPhotos}}
	}

	if strings.EqualFold(strings.TrimSpace(text), showCardPhrase) && sess.Place != nil {
		return s.cardReplies(sess.Place)
	}
	return []Reply{{Text: msgNoFieldSelected}}
}
