package animation

import (
	"math"
	"testing"
	"time"

	"golang.org/x/net/html"
)

func TestLoopRunsQueuedCallbacksOnNextStep(t *testing.T) {
	loop := NewLoop()
	var order []string
	loop.RequestFrame(func() {
		order = append(order, "a")
		loop.RequestFrame(func() { order = append(order, "c") })
	})
	loop.RequestFrame(func() { order = append(order, "b") })

	if n := loop.Step(); n != 2 {
		t.Fatalf("Step ran %d callbacks, want 2", n)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order after first step = %v", order)
	}
	if loop.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", loop.Pending())
	}
	loop.Step()
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("order after second step = %v", order)
	}
	if loop.Frame() != 2 {
		t.Errorf("Frame = %d, want 2", loop.Frame())
	}
}

func TestLoopDrain(t *testing.T) {
	loop := NewLoop()
	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			loop.RequestFrame(again)
		}
	}
	loop.RequestFrame(again)
	if steps := loop.Drain(10); steps != 3 {
		t.Errorf("Drain steps = %d, want 3", steps)
	}
	if count != 3 {
		t.Errorf("count = %d", count)
	}
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestLoopUsesClock(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := SetClock(fixedClock{now: at})
	defer SetClock(prev)

	loop := NewLoop()
	loop.Step()
	if !loop.LastFrame().Equal(at) {
		t.Errorf("LastFrame = %v, want %v", loop.LastFrame(), at)
	}
}

func TestTransitionsFireOnce(t *testing.T) {
	tr := NewTransitions()
	target := &html.Node{Type: html.ElementNode, Data: "div"}
	fired := 0
	tr.Once(target, func() { fired++ })

	if tr.Pending(target) != 1 {
		t.Fatalf("Pending = %d", tr.Pending(target))
	}
	if n := tr.End(target); n != 1 {
		t.Errorf("End fired %d", n)
	}
	if n := tr.End(target); n != 0 {
		t.Errorf("second End fired %d", n)
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestHandleCancel(t *testing.T) {
	tr := NewTransitions()
	target := &html.Node{Type: html.ElementNode, Data: "div"}
	fired := false
	h := tr.Once(target, func() { fired = true })
	if !h.Cancel() {
		t.Error("Cancel should report a pending listener")
	}
	if h.Cancel() {
		t.Error("second Cancel should report false")
	}
	tr.End(target)
	if fired {
		t.Error("cancelled listener fired")
	}
	if len(tr.Targets()) != 0 {
		t.Error("no targets should remain")
	}
}

func TestOpThenAndAll(t *testing.T) {
	a, b := NewOp(), NewOp()
	all := All(a, b)
	calls := 0
	a.Then(func() { calls++ })
	a.Settle()
	a.Settle()
	if calls != 1 {
		t.Errorf("Then ran %d times", calls)
	}
	if all.IsSettled() {
		t.Error("All settled before every op")
	}
	b.Settle()
	if !all.IsSettled() {
		t.Error("All should settle once every op has")
	}
	ran := false
	Settled().Then(func() { ran = true })
	if !ran {
		t.Error("Then on a settled op should run immediately")
	}
	if !All().IsSettled() {
		t.Error("All() with no ops is settled")
	}
}

func TestCoordinatorReplacesPendingCommit(t *testing.T) {
	c := NewCoordinator(NewLoop(), nil)
	item := &html.Node{Type: html.ElementNode, Data: "details"}

	var got []string
	c.Defer(item, item, func() { got = append(got, "first") })
	c.Defer(item, item, func() { got = append(got, "second") })
	if !c.Pending(item) {
		t.Fatal("item should have a pending commit")
	}
	c.Transitions.End(item)
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("commits = %v, want [second]", got)
	}
	if c.Pending(item) {
		t.Error("pending commit should clear after firing")
	}
	if c.Cancel(item) {
		t.Error("nothing left to cancel")
	}
}

func TestCoordinatorBeforeCommit(t *testing.T) {
	loop := NewLoop()
	c := NewCoordinator(loop, nil)
	done := false
	c.BeforeCommit(false, func() { done = true })
	if !done {
		t.Error("non-animated commit should be immediate")
	}
	done = false
	c.BeforeCommit(true, func() { done = true })
	if done {
		t.Error("animated commit should wait for a frame")
	}
	loop.Step()
	if !done {
		t.Error("animated commit should run on the next frame")
	}
}

func TestCurves(t *testing.T) {
	for _, curve := range []Curve{Linear, Ease, EaseInOut} {
		if curve(0) != 0 || curve(1) != 1 {
			t.Error("curves must map 0->0 and 1->1")
		}
	}
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-3 {
		t.Errorf("EaseInOut(0.5) = %v, want ~0.5", got)
	}
	if got := Progress(50*time.Millisecond, 100*time.Millisecond, nil); got != 0.5 {
		t.Errorf("Progress = %v", got)
	}
	if got := Progress(time.Second, 0, Ease); got != 1 {
		t.Errorf("Progress with zero duration = %v", got)
	}
}

func TestHandleOnCancel(t *testing.T) {
	tr := NewTransitions()
	target := &html.Node{Type: html.ElementNode, Data: "div"}
	cancelled := 0
	h := tr.Once(target, func() {}).OnCancel(func() { cancelled++ })
	h.Cancel()
	h.Cancel()
	if cancelled != 1 {
		t.Errorf("OnCancel ran %d times, want 1", cancelled)
	}

	fired := tr.Once(target, func() {}).OnCancel(func() { cancelled++ })
	tr.End(target)
	fired.Cancel()
	if cancelled != 1 {
		t.Error("OnCancel must not run after the listener fired")
	}
}
