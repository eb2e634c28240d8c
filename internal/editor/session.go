package editor

import (
	"context"
	"errors"
	"fmt"
)

type Mode string

const (
	ModeViewing    Mode = "viewing"
	ModeEditing    Mode = "editing"
	ModeSubmitting Mode = "submitting"
)

type Event string

const (
	EventEdit      Event = "edit"
	EventCancel    Event = "cancel"
	EventSubmit    Event = "submit"
	EventSucceeded Event = "succeeded"
	EventFailed    Event = "failed"
)

var ErrInvalidTransition = errors.New("invalid edit mode transition")

var transitions = map[Mode]map[Event]Mode{
	ModeViewing: {
		EventEdit: ModeEditing,
	},
	ModeEditing: {
		EventSubmit: ModeSubmitting,
		EventCancel: ModeViewing,
	},
	ModeSubmitting: {
		EventSucceeded: ModeViewing,
		EventFailed:    ModeEditing,
	},
}

// Transition returns the mode that follows from on ev.
func Transition(from Mode, ev Event) (Mode, error) {
	if to, ok := transitions[from][ev]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, from)
}

// Session drives one surface through the edit modes. It keeps the last
// fetched view so that a cancelled edit can be discarded without a reload.
// A Session is not safe for concurrent use.
type Session struct {
	editor  *Editor
	surface Surface
	ownerID string

	mode Mode
	view *View
}

// Open loads the surface and starts in its initial mode.
func (e *Editor) Open(ctx context.Context, s Surface, ownerID string) (*Session, error) {
	view, err := e.Load(ctx, s, ownerID)
	if err != nil {
		return nil, err
	}

	return &Session{
		editor:  e,
		surface: s,
		ownerID: ownerID,
		mode:    view.Mode,
		view:    view,
	}, nil
}

func (s *Session) Mode() Mode { return s.mode }

// View is the data last fetched from the store.
func (s *Session) View() *View { return s.view }

func (s *Session) Edit() error {
	return s.fire(EventEdit)
}

// Cancel leaves editing and falls back to the last fetched view.
func (s *Session) Cancel() error {
	return s.fire(EventCancel)
}

// Submit saves sub. On success the session is viewing again and the surface
// is reloaded; on failure it stays editing and the error is returned.
func (s *Session) Submit(ctx context.Context, sub Submission) error {
	if sub.Surface != s.surface {
		return fmt.Errorf("submission for %s sent to the %s surface", sub.Surface, s.surface)
	}
	if err := s.fire(EventSubmit); err != nil {
		return err
	}

	if err := s.editor.Submit(ctx, s.ownerID, sub); err != nil {
		_ = s.fire(EventFailed)
		return err
	}

	if err := s.fire(EventSucceeded); err != nil {
		return err
	}

	view, err := s.editor.Load(ctx, s.surface, s.ownerID)
	if err != nil {
		return fmt.Errorf("reload after save: %w", err)
	}
	s.view = view
	return nil
}

func (s *Session) fire(ev Event) error {
	next, err := Transition(s.mode, ev)
	if err != nil {
		return err
	}
	s.mode = next
	return nil
}
