// Package notifier computes the field-level diff of a saved card and fans the
// rendered change report out to a static distribution list.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/guidecr/placebot/internal/domain"
)

// sender delivers one formatted message to one recipient chat.
type sender interface {
	Send(ctx context.Context, chatID int64, text string) (int, error)
}

// DeliveryResult is the per-recipient outcome of a notification fan-out.
type DeliveryResult struct {
	ChatID    int64
	MessageID int
	Err       error
}

// Service renders change notifications and delivers them independently to
// every recipient on the distribution list.
type Service struct {
	send       sender
	recipients []int64
	log        *slog.Logger
}

// NewService creates a notifier over the given delivery channel and static
// recipient list.
func NewService(log *slog.Logger, send sender, recipients []int64) *Service {
	return &Service{
		send:       send,
		recipients: recipients,
		log:        log.With("service", "notifier"),
	}
}

// PlaceUpdated diffs the prior snapshot against the saved card, renders the
// change report, and delivers it to every recipient. One recipient's failure
// never prevents delivery to the others; outcomes are returned in recipient
// order. The caller is responsible for skipping this entirely when the store
// reported an insertion rather than an update.
func (s *Service) PlaceUpdated(ctx context.Context, actor domain.Operator, prior, current *domain.Place) []DeliveryResult {
	changes := domain.Diff(prior, current)
	if changes.Empty() {
		s.log.InfoContext(ctx, "no changes to report", slog.String("place_id", current.ID))
		return nil
	}
	text := renderMessage(actor, current.Name, changes)

	batchID := uuid.NewString()
	s.log.InfoContext(ctx, "sending change notification",
		slog.String("batch_id", batchID),
		slog.String("place_id", current.ID),
		slog.Int("changes", len(changes)),
		slog.Int("recipients", len(s.recipients)),
	)

	results := make([]DeliveryResult, len(s.recipients))

	var g errgroup.Group
	for i, chatID := range s.recipients {
		i, chatID := i, chatID
		g.Go(func() error {
			msgID, err := s.send.Send(ctx, chatID, text)
			results[i] = DeliveryResult{ChatID: chatID, MessageID: msgID, Err: err}
			if err != nil {
				s.log.ErrorContext(ctx, "notification delivery failed",
					slog.String("batch_id", batchID),
					slog.Int64("chat_id", chatID),
					slog.String("error", err.Error()),
				)
			}
			// Failures are isolated per recipient; never escalate.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// renderMessage composes the MarkdownV2 notification body.
func renderMessage(actor domain.Operator, placeName string, changes domain.ChangeSet) string {
	return fmt.Sprintf(
		"*From:* %s %s\n*Name:* %s\n*Changes:*\n%s",
		EscapeMarkdownV2(actor.FirstName),
		EscapeMarkdownV2(actor.LastName),
		EscapeMarkdownV2(placeName),
		EscapeMarkdownV2(changes.Render()),
	)
}
