package animation

import (
	"sync"

	"golang.org/x/net/html"
)

// Transitions holds one-shot transition-completion listeners keyed by element.
type Transitions struct {
	mu        sync.Mutex
	listeners map[*html.Node][]*Handle
}

// NewTransitions creates an empty listener registry.
func NewTransitions() *Transitions {
	return &Transitions{listeners: make(map[*html.Node][]*Handle)}
}

// Handle is a registered transition-completion listener.
type Handle struct {
	owner    *Transitions
	target   *html.Node
	fn       func()
	onCancel func()
	done     bool
}

// Once registers fn to run the next time target's transition ends. The
// listener fires at most once.
func (t *Transitions) Once(target *html.Node, fn func()) *Handle {
	h := &Handle{owner: t, target: target, fn: fn}
	t.mu.Lock()
	t.listeners[target] = append(t.listeners[target], h)
	t.mu.Unlock()
	return h
}

// End signals that target's visual transition finished. Every pending
// listener for target fires, in registration order, and is removed. It
// returns the number of listeners fired.
func (t *Transitions) End(target *html.Node) int {
	t.mu.Lock()
	pending := t.listeners[target]
	delete(t.listeners, target)
	t.mu.Unlock()

	fired := 0
	for _, h := range pending {
		if h.fire() {
			fired++
		}
	}
	return fired
}

// Pending returns the number of listeners waiting on target.
func (t *Transitions) Pending(target *html.Node) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[target])
}

// Targets returns every element with at least one pending listener.
func (t *Transitions) Targets() []*html.Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*html.Node, 0, len(t.listeners))
	for n := range t.listeners {
		out = append(out, n)
	}
	return out
}

func (h *Handle) fire() bool {
	if h.done {
		return false
	}
	h.done = true
	if h.fn != nil {
		h.fn()
	}
	return true
}

// Cancel removes the listener without running it. It reports whether the
// listener was still pending.
func (h *Handle) Cancel() bool {
	if h == nil || h.done {
		return false
	}
	h.done = true
	t := h.owner
	t.mu.Lock()
	list := t.listeners[h.target]
	for i, other := range list {
		if other == h {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(t.listeners, h.target)
	} else {
		t.listeners[h.target] = list
	}
	t.mu.Unlock()

	if h.onCancel != nil {
		h.onCancel()
	}
	return true
}

// OnCancel registers fn to run if the listener is cancelled before firing.
func (h *Handle) OnCancel(fn func()) *Handle {
	h.onCancel = fn
	return h
}

// Done reports whether the listener fired or was cancelled.
func (h *Handle) Done() bool {
	return h == nil || h.done
}
