// Package animation coordinates widget state changes with externally driven
// visual transitions.
//
// # Frames
//
// A [FrameScheduler] stands in for the host's "next visual frame"
// opportunity. [Loop] is the cooperative implementation: callbacks requested
// with RequestFrame run on the next call to Step, and callbacks requested
// while a step is running wait for the following step. Hosts call Step once
// per frame; tests call it to advance deterministically.
//
// # Transitions
//
// [Transitions] records one-shot transition-completion listeners per element.
// The host (or a test) calls End when the visual transition for an element
// finishes. Each listener fires at most once and can be cancelled through its
// [Handle].
//
// # Protocol
//
// Every animated state change follows the same sequence, implemented by
// [Coordinator]:
//
//  1. Wait one frame before mutating any attribute.
//  2. Opening: commit immediately, then fire the animator.
//  3. Closing: fire the animator immediately, commit on the element's
//     transition-completion signal.
//
// Without animation the sequence collapses to an immediate synchronous commit.
//
//	loop := animation.NewLoop()
//	coord := animation.NewCoordinator(loop, animation.NewTransitions())
//	coord.BeforeCommit(true, func() { fmt.Println("committed") })
//	loop.Step() // prints "committed"
package animation

import (
	"sync"
	"time"
)

// FrameScheduler schedules a callback for the next visual frame.
type FrameScheduler interface {
	RequestFrame(cb func())
}

// Loop is a cooperative frame scheduler driven by Step.
type Loop struct {
	mu        sync.Mutex
	queue     []func()
	frame     uint64
	lastFrame time.Time
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{}
}

// RequestFrame queues cb for the next Step.
func (l *Loop) RequestFrame(cb func()) {
	if cb == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, cb)
	l.mu.Unlock()
}

// Step runs every callback queued before the call and returns how many ran.
func (l *Loop) Step() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.frame++
	l.lastFrame = Now()
	l.mu.Unlock()

	for _, cb := range batch {
		cb()
	}
	return len(batch)
}

// Drain steps until no callbacks are pending or maxFrames steps have run.
// It returns the number of steps taken.
func (l *Loop) Drain(maxFrames int) int {
	steps := 0
	for steps < maxFrames && l.Pending() > 0 {
		l.Step()
		steps++
	}
	return steps
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Frame returns the number of steps run so far.
func (l *Loop) Frame() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}

// LastFrame returns the clock time of the most recent step.
func (l *Loop) LastFrame() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastFrame
}

// Immediate is a FrameScheduler that runs callbacks synchronously.
type Immediate struct{}

// RequestFrame runs cb immediately.
func (Immediate) RequestFrame(cb func()) {
	if cb != nil {
		cb()
	}
}
