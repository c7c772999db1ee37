package editor

import (
	"context"
	"log/slog"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/session"
)

// AddPhoto appends a photo's retrievable source location to the session's
// pending list. Photos outside the collection state are ignored with a hint.
func (s *Service) AddPhoto(ctx context.Context, chatID int64, sourceURL string) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}
	if !sess.Is(session.StatePhotoCollecting) {
		return []Reply{{Text: msgNoFieldSelected}}
	}

	sess.AddPendingPhoto(sourceURL)
	s.log.InfoContext(ctx, "photo queued",
		slog.String("place_id", sess.Place.ID),
		slog.Int("pending", len(sess.PendingPhotos)),
	)
	return nil
}

// FinishPhotos uploads the accumulated photos to a folder named after the
// card and stores the shareable link. Upload failure is non-fatal: the photo
// field is left untouched and the session returns to the card either way.
func (s *Service) FinishPhotos(ctx context.Context, chatID int64) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}
	if !sess.Is(session.StatePhotoCollecting) {
		return []Reply{{Text: msgNoFieldSelected}}
	}

	if err := domain.ValidatePhotos(sess.PendingPhotos); err != nil {
		return []Reply{{Text: msgNoPhotos}}
	}

	replies := []Reply{{Text: msgUploading}}

	link, err := s.blobs.Upload(ctx, sess.Place.Name, sess.PendingPhotos)

	sess.ClearPendingPhotos()
	sess.ClearField()
	if ferr := sess.Fire(ctx, session.EventPhotosDone); ferr != nil {
		return []Reply{{Text: msgNotStarted}}
	}

	if err != nil {
		s.log.ErrorContext(ctx, "photo upload failed",
			slog.String("place_id", sess.Place.ID),
			slog.String("error", err.Error()),
		)
		return append(append(replies, Reply{Text: msgUploadFailed}), s.cardReplies(sess.Place)...)
	}

	sess.Place.PhotoFolderLink = link
	s.log.InfoContext(ctx, "photos uploaded",
		slog.String("place_id", sess.Place.ID),
		slog.String("folder_link", link),
	)
	return append(append(replies, Reply{Text: msgUploaded}), s.cardReplies(sess.Place)...)
}
