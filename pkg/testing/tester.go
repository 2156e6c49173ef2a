package testing

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/focus"
	"github.com/go-drift/aria/pkg/ids"
	"github.com/go-drift/aria/pkg/semantics"
	"github.com/go-drift/aria/pkg/widgets"
)

// FrameDuration is how far the fake clock moves on every Pump.
const FrameDuration = 16 * time.Millisecond

// settleLimit bounds Settle and PumpAndSettle.
const settleLimit = 100

var (
	// ErrSettleTimeout is returned when frames or transitions keep coming.
	ErrSettleTimeout = errors.New("settle timed out: widget did not go idle")
	// ErrNoBlock is returned when a fixture has no element to decorate.
	ErrNoBlock = errors.New("fixture has no block element")
)

// AnimatorCall records one invocation of the animation callback.
type AnimatorCall struct {
	Item    *html.Node
	Opening bool
}

// WidgetTester drives a decorated widget without a browser. It owns the
// document body, a frame loop, the transition registry, a focus manager and
// a deterministic id sequence.
type WidgetTester struct {
	clock       *FakeClock
	prevClock   animation.Clock
	loop        *animation.Loop
	transitions *animation.Transitions
	coordinator *animation.Coordinator
	focus       *focus.Manager
	ids         *ids.Sequence
	body        *html.Node
	widget      widgets.Interactive
	animations  []AnimatorCall
}

// NewWidgetTester creates a tester with an empty body.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	loop := animation.NewLoop()
	transitions := animation.NewTransitions()
	t := &WidgetTester{
		clock:       clk,
		loop:        loop,
		transitions: transitions,
		coordinator: animation.NewCoordinator(loop, transitions),
		focus:       focus.NewManager(),
		ids:         &ids.Sequence{},
		body:        dom.NewElement("body"),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock.
func (t *WidgetTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock.
func (t *WidgetTester) Clock() *FakeClock { return t.clock }

// Loop returns the frame loop widgets schedule on.
func (t *WidgetTester) Loop() *animation.Loop { return t.loop }

// Transitions returns the transition registry widgets listen on.
func (t *WidgetTester) Transitions() *animation.Transitions { return t.transitions }

// FocusManager returns the focus manager given to widgets.
func (t *WidgetTester) FocusManager() *focus.Manager { return t.focus }

// Body returns the document body fixtures are loaded into.
func (t *WidgetTester) Body() *html.Node { return t.body }

// Options returns widget options wired to this tester. The animator records
// every call; see Animations.
func (t *WidgetTester) Options() widgets.Options {
	return widgets.Options{
		IDs:         t.ids,
		Focus:       t.focus,
		Coordinator: t.coordinator,
		Animate: func(item *html.Node, opening bool) {
			t.animations = append(t.animations, AnimatorCall{Item: item, Opening: opening})
		},
	}
}

// Load replaces the body content with markup and returns the first element.
func (t *WidgetTester) Load(markup string) (*html.Node, error) {
	dom.Empty(t.body)
	if err := dom.ParseInto(t.body, markup); err != nil {
		return nil, err
	}
	block := dom.FirstElementChild(t.body)
	if block == nil {
		return nil, ErrNoBlock
	}
	return block, nil
}

// PumpWidget loads markup and decorates its first element with w.
func (t *WidgetTester) PumpWidget(w widgets.Interactive, markup string) error {
	block, err := t.Load(markup)
	if err != nil {
		return err
	}
	t.widget = w
	return w.Decorate(block)
}

// Widget returns the widget given to PumpWidget.
func (t *WidgetTester) Widget() widgets.Interactive { return t.widget }

// Pump advances the clock by one frame and runs the frame callbacks queued
// before it. It returns how many ran.
func (t *WidgetTester) Pump() int {
	t.clock.Advance(FrameDuration)
	return t.loop.Step()
}

// PumpAndSettle pumps frames until none are requested.
func (t *WidgetTester) PumpAndSettle() error {
	for i := 0; i < settleLimit; i++ {
		if t.loop.Pending() == 0 {
			return nil
		}
		t.Pump()
	}
	return ErrSettleTimeout
}

// EndTransition signals that the transition on target finished and returns
// the number of listeners fired.
func (t *WidgetTester) EndTransition(target *html.Node) int {
	return t.transitions.End(target)
}

// EndTransitions ends the transition on every element with a listener.
func (t *WidgetTester) EndTransitions() int {
	fired := 0
	for _, target := range t.transitions.Targets() {
		fired += t.transitions.End(target)
	}
	return fired
}

// Settle pumps frames and ends transitions until neither is pending.
func (t *WidgetTester) Settle() error {
	for i := 0; i < settleLimit; i++ {
		if t.loop.Pending() == 0 && len(t.transitions.Targets()) == 0 {
			return nil
		}
		t.Pump()
		t.EndTransitions()
	}
	return ErrSettleTimeout
}

// Click delivers a click on target to the widget.
func (t *WidgetTester) Click(target *html.Node) bool {
	if t.widget == nil || target == nil {
		return false
	}
	return t.widget.HandleClick(target)
}

// Key delivers key to the focused element. It reports false when nothing
// has focus or the widget ignored the key.
func (t *WidgetTester) Key(key widgets.Key) bool {
	return t.KeyOn(t.focus.Focused(), key)
}

// KeyOn delivers key as if target had focus.
func (t *WidgetTester) KeyOn(target *html.Node, key widgets.Key) bool {
	if t.widget == nil || target == nil {
		return false
	}
	return t.widget.HandleKey(target, key)
}

// Focused returns the element with focus.
func (t *WidgetTester) Focused() *html.Node { return t.focus.Focused() }

// Animations returns the animator calls recorded so far.
func (t *WidgetTester) Animations() []AnimatorCall { return t.animations }

// ClearAnimations forgets the recorded animator calls.
func (t *WidgetTester) ClearAnimations() { t.animations = nil }

// Find evaluates a finder against the body.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	return FinderResult{
		nodes:  finder.Evaluate(t.body),
		finder: finder,
	}
}

// Tree returns the accessibility tree of the visible body content.
func (t *WidgetTester) Tree() *semantics.Node {
	return semantics.Snapshot(t.body, semantics.SnapshotOptions{Focused: t.focus.Focused()})
}
