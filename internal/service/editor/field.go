package editor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/guidecr/placebot/internal/domain"
	"github.com/guidecr/placebot/internal/session"
)

// SelectField handles an edit-bar button press: it records the field awaiting
// a value and prompts for it. Selecting photos enters the photo-collection
// sub-state directly; selecting category offers the enumeration as buttons.
func (s *Service) SelectField(ctx context.Context, chatID int64, raw string) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}

	f := domain.Field(raw)
	if !f.IsValid() {
		s.log.WarnContext(ctx, "invalid field selected", slog.String("field", raw))
		return []Reply{{Text: msgInvalidField}}
	}

	if err := sess.Fire(ctx, session.EventSelectField); err != nil {
		return []Reply{{Text: msgCardFirst}}
	}
	sess.SelectField(f)

	switch f {
	case domain.FieldPhotos:
		if err := sess.Fire(ctx, session.EventCollectPhotos); err != nil {
			return []Reply{{Text: msgCardFirst}}
		}
		return []Reply{{Text: msgSendPhotos}}
	case domain.FieldCategory:
		return []Reply{{Text: msgChooseCategory, Markup: MarkupCategoryChoices}}
	}
	return []Reply{{Text: fmt.Sprintf("Enter new value for %s", f.Label())}}
}

// SubmitCategory handles a category button press while the category field is
// selected.
func (s *Service) SubmitCategory(ctx context.Context, chatID int64, value string) []Reply {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return []Reply{{Text: msgNotStarted}}
	}
	if !sess.Is(session.StateFieldSelected) || sess.FieldToUpdate == nil || *sess.FieldToUpdate != domain.FieldCategory {
		return []Reply{{Text: msgNoFieldSelected}}
	}
	return s.applyValue(ctx, sess, value)
}

// applyValue validates the submitted value for the selected field, mutates
// the session's card, and re-displays it. On validation failure the prompt is
// re-issued and the state machine does not advance.
func (s *Service) applyValue(ctx context.Context, sess *session.Session, value string) []Reply {
	f := *sess.FieldToUpdate

	var confirm string
	switch f {
	case domain.FieldName:
		if err := domain.ValidateName(value); err != nil {
			return []Reply{{Text: msgInvalidName}}
		}
	case domain.FieldCategory:
		c, err := domain.ValidateCategory(value)
		if err != nil {
			return []Reply{{Text: msgInvalidCategory, Markup: MarkupCategoryChoices}}
		}
		value = string(c)
		confirm = fmt.Sprintf("Category updated to %s", c)
	case domain.FieldMapLink:
		if err := domain.ValidateMapLink(value); err != nil {
			return []Reply{{Text: msgInvalidMapLink}}
		}
	case domain.FieldPhone, domain.FieldWhatsApp:
		value = domain.NormalizePhone(value)
	}

	if ok := sess.Place.SetValue(f, value); !ok {
		return []Reply{{Text: msgInvalidField}}
	}
	sess.ClearField()
	if err := sess.Fire(ctx, session.EventValueApplied); err != nil {
		return []Reply{{Text: msgCardFirst}}
	}

	s.log.InfoContext(ctx, "field updated",
		slog.String("place_id", sess.Place.ID),
		slog.String("field", string(f)),
	)

	replies := s.cardReplies(sess.Place)
	if confirm != "" {
		replies = append([]Reply{{Text: confirm}}, replies...)
	}
	return replies
}
