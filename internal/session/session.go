// Package session holds per-chat edit-session state. Each chat owns at most
// one Session; the Registry maps chat IDs to sessions. A missing session
// means the chat is idle.
package session

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/guidecr/placebot/internal/domain"
)

// Session states. Idle is represented by the session's absence from the
// registry; a freshly started session begins at the main menu.
const (
	StateMenu            = "menu"
	StateNameRequested   = "name_requested"
	StateCard            = "card"
	StateFieldSelected   = "field_selected"
	StatePhotoCollecting = "photo_collecting"
)

// Session transition events.
const (
	EventRequestName   = "request_name"
	EventCardLoaded    = "card_loaded"
	EventSelectField   = "select_field"
	EventValueApplied  = "value_applied"
	EventCollectPhotos = "collect_photos"
	EventPhotosDone    = "photos_done"
)

// Session is the mutable working state of one conversation: the card being
// edited, the baseline snapshot taken at load time, the field currently
// awaiting a value, and photos accumulated while collecting.
type Session struct {
	ChatID   int64
	Operator domain.Operator

	Place         *domain.Place
	Baseline      *domain.Place
	FieldToUpdate *domain.Field
	PendingPhotos []string

	machine *fsm.FSM
}

// New creates a session at the main menu for an authenticated operator.
func New(chatID int64, op domain.Operator) *Session {
	return &Session{
		ChatID:   chatID,
		Operator: op,
		machine: fsm.NewFSM(
			StateMenu,
			fsm.Events{
				{Name: EventRequestName, Src: []string{StateMenu}, Dst: StateNameRequested},
				{Name: EventCardLoaded, Src: []string{StateNameRequested}, Dst: StateCard},
				{Name: EventSelectField, Src: []string{StateCard, StateFieldSelected}, Dst: StateFieldSelected},
				{Name: EventValueApplied, Src: []string{StateFieldSelected}, Dst: StateCard},
				{Name: EventCollectPhotos, Src: []string{StateFieldSelected}, Dst: StatePhotoCollecting},
				{Name: EventPhotosDone, Src: []string{StatePhotoCollecting}, Dst: StateCard},
			},
			fsm.Callbacks{},
		),
	}
}

// State returns the current state name.
func (s *Session) State() string { return s.machine.Current() }

// Is reports whether the session is in the given state.
func (s *Session) Is(state string) bool { return s.machine.Is(state) }

// Fire attempts the given transition event. Invalid transitions return an
// error and leave the state unchanged.
func (s *Session) Fire(ctx context.Context, event string) error {
	return s.machine.Event(ctx, event)
}

// SelectField records the field awaiting a value.
func (s *Session) SelectField(f domain.Field) { s.FieldToUpdate = &f }

// ClearField clears the field-to-update cursor.
func (s *Session) ClearField() { s.FieldToUpdate = nil }

// AddPendingPhoto appends a photo source location to the pending list.
func (s *Session) AddPendingPhoto(src string) {
	s.PendingPhotos = append(s.PendingPhotos, src)
}

// ClearPendingPhotos drops all accumulated photo locations.
func (s *Session) ClearPendingPhotos() { s.PendingPhotos = nil }
