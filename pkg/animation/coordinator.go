package animation

import "golang.org/x/net/html"

// Animator starts the visual transition for item. opening is true when the
// item is being expanded, opened, or selected.
type Animator func(item *html.Node, opening bool)

// Coordinator sequences attribute commits around frames and
// transition-completion signals.
//
// Each item has at most one pending deferred commit. Registering a new one
// cancels the previous, so a stale completion from an earlier transition can
// never overwrite a newer state.
type Coordinator struct {
	Frames      FrameScheduler
	Transitions *Transitions

	pending map[*html.Node]*Handle
}

// NewCoordinator creates a coordinator. A nil frames scheduler runs frame
// callbacks immediately; nil transitions get a fresh registry.
func NewCoordinator(frames FrameScheduler, transitions *Transitions) *Coordinator {
	if frames == nil {
		frames = Immediate{}
	}
	if transitions == nil {
		transitions = NewTransitions()
	}
	return &Coordinator{
		Frames:      frames,
		Transitions: transitions,
		pending:     make(map[*html.Node]*Handle),
	}
}

// BeforeCommit runs fn after one frame when animated, otherwise immediately.
func (c *Coordinator) BeforeCommit(animated bool, fn func()) {
	if animated {
		c.Frames.RequestFrame(fn)
		return
	}
	fn()
}

// NextFrame runs fn on the next frame.
func (c *Coordinator) NextFrame(fn func()) {
	c.Frames.RequestFrame(fn)
}

// Defer registers fn to run when target's transition ends, replacing any
// pending deferred commit for item.
func (c *Coordinator) Defer(item, target *html.Node, fn func()) *Handle {
	c.Cancel(item)
	var h *Handle
	h = c.Transitions.Once(target, func() {
		if c.pending[item] == h {
			delete(c.pending, item)
		}
		fn()
	})
	c.pending[item] = h
	return h
}

// Cancel drops the pending deferred commit for item. It reports whether one
// was pending.
func (c *Coordinator) Cancel(item *html.Node) bool {
	h, ok := c.pending[item]
	if !ok {
		return false
	}
	delete(c.pending, item)
	return h.Cancel()
}

// Pending reports whether item has a deferred commit waiting.
func (c *Coordinator) Pending(item *html.Node) bool {
	_, ok := c.pending[item]
	return ok
}
