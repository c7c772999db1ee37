package editor

import (
	"context"
	"log/slog"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/session"
)

// Start authenticates the operator against the static allow-list and opens a
// fresh session at the main menu. Unauthorized users get a rejection and no
// session.
func (s *Service) Start(ctx context.Context, chatID int64, op domain.Operator) []Reply {
	if !s.isOperator(op.ID) {
		s.log.WarnContext(ctx, "unauthorized start", slog.Int64("user_id", op.ID))
		return []Reply{{Text: msgNotAuthorized}}
	}

	s.log.InfoContext(ctx, "operator authenticated",
		slog.Int64("user_id", op.ID),
		slog.Int64("chat_id", chatID),
	)

	// Any previous session for this chat is discarded.
	s.sessions.Put(session.New(chatID, op))

	return []Reply{{Text: msgChooseAction, Markup: MarkupMainMenu}}
}

// Exit discards the session's card and pending edits without writing
// anything, then reopens the main menu.
func (s *Service) Exit(ctx context.Context, chatID int64) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}

	s.log.InfoContext(ctx, "session exited",
		slog.Int64("chat_id", chatID),
		slog.String("state", sess.State()),
	)

	op := sess.Operator
	s.sessions.Delete(chatID)
	s.sessions.Put(session.New(chatID, op))

	return []Reply{
		{Text: msgExited},
		{Text: msgChooseAction, Markup: MarkupMainMenu},
	}
}
