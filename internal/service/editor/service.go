// Package editor drives the per-chat edit session: it classifies validated
// operator input, mutates the session's card, and orchestrates the record
// store, blob store, and change notifier around it.
package editor

import (
	"context"
	"log/slog"
	"slices"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/service/notifier"
	"github.com/guidecr/placebot/internal/session"
)

// unfilledLimit caps the unfilled-places listing.
const unfilledLimit = 10

type recordStore interface {
	// FindOrCreate returns the card matching the name, or a freshly created
	// blank card (created=true) when no match exists.
	FindOrCreate(ctx context.Context, name string) (place *domain.Place, created bool, err error)
	// Write persists the card and returns the prior values of the row it
	// overwrote, or inserted=true when the card was appended as new.
	Write(ctx context.Context, place *domain.Place) (prior *domain.Place, inserted bool, err error)
}

type blobStore interface {
	// Upload stores every source location under a folder named after the
	// card and returns the folder's shareable link.
	Upload(ctx context.Context, folderName string, sourceURLs []string) (string, error)
}

type changeNotifier interface {
	PlaceUpdated(ctx context.Context, actor domain.Operator, prior, current *domain.Place) []notifier.DeliveryResult
}

type placeMirror interface {
	Upsert(ctx context.Context, place *domain.Place, coords *domain.Coordinates) error
	ListUnfilled(ctx context.Context, near domain.Coordinates, limit int) ([]*domain.Place, error)
}

type linkResolver interface {
	Coordinates(ctx context.Context, shortURL string) (domain.Coordinates, error)
}

// Service is the edit-session state machine's driver.
type Service struct {
	sessions  *session.Registry
	records   recordStore
	blobs     blobStore
	notify    changeNotifier
	mirror    placeMirror  // nil when the mirror database is not configured
	geo       linkResolver // nil when the mirror is disabled
	operators []int64
	log       *slog.Logger
}

// NewService creates the editor service. mirror and geo may be nil; the
// unfilled-places feature is then disabled.
func NewService(
	log *slog.Logger,
	sessions *session.Registry,
	records recordStore,
	blobs blobStore,
	notify changeNotifier,
	mirror placeMirror,
	geo linkResolver,
	operators []int64,
) *Service {
	return &Service{
		sessions:  sessions,
		records:   records,
		blobs:     blobs,
		notify:    notify,
		mirror:    mirror,
		geo:       geo,
		operators: operators,
		log:       log.With("service", "editor"),
	}
}

func (s *Service) isOperator(id int64) bool {
	return slices.Contains(s.operators, id)
}

// cardReplies re-displays the card, the edit bar, and the save/exit bar.
func (s *Service) cardReplies(p *domain.Place) []Reply {
	return []Reply{
		{Text: p.Summary()},
		{Text: msgChooseField, Markup: MarkupEditBar},
		{Text: msgSaveOrExit, Markup: MarkupSaveExit},
	}
}
