package tui

import (
	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/focus"
	"github.com/go-drift/aria/pkg/ids"
	"github.com/go-drift/aria/pkg/widgets"
)

// Session owns the frame loop, transition listeners and focus shared by the
// widgets of one preview.
type Session struct {
	Loop        *animation.Loop
	Transitions *animation.Transitions
	Focus       *focus.Manager
	Coordinator *animation.Coordinator
	IDs         ids.Generator
}

// NewSession returns a session. A nil generator uses ids.Default.
func NewSession(gen ids.Generator) *Session {
	if gen == nil {
		gen = ids.Default
	}
	s := &Session{
		Loop:        animation.NewLoop(),
		Transitions: animation.NewTransitions(),
		Focus:       focus.NewManager(),
		IDs:         gen,
	}
	s.Coordinator = animation.NewCoordinator(s.Loop, s.Transitions)
	return s
}

// Options returns widget options bound to the session.
func (s *Session) Options() widgets.Options {
	return widgets.Options{
		IDs:         s.IDs,
		Focus:       s.Focus,
		Coordinator: s.Coordinator,
	}
}
