package animation

import "sync"

// Op tracks the completion of an asynchronous widget operation. It settles
// exactly once; callbacks registered with Then run when it does.
type Op struct {
	mu      sync.Mutex
	settled bool
	then    []func()
}

// NewOp returns a pending operation.
func NewOp() *Op {
	return &Op{}
}

// Settled returns an operation that has already completed.
func Settled() *Op {
	return &Op{settled: true}
}

// Settle marks the operation complete and runs its callbacks. Later calls are
// no-ops.
func (o *Op) Settle() {
	o.mu.Lock()
	if o.settled {
		o.mu.Unlock()
		return
	}
	o.settled = true
	then := o.then
	o.then = nil
	o.mu.Unlock()

	for _, fn := range then {
		fn()
	}
}

// IsSettled reports whether the operation completed.
func (o *Op) IsSettled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.settled
}

// Then runs fn once the operation settles, immediately if it already has.
func (o *Op) Then(fn func()) {
	o.mu.Lock()
	if !o.settled {
		o.then = append(o.then, fn)
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()
	fn()
}

// All returns an operation that settles once every op has settled.
func All(ops ...*Op) *Op {
	all := NewOp()
	remaining := len(ops)
	if remaining == 0 {
		all.Settle()
		return all
	}
	for _, op := range ops {
		op.Then(func() {
			remaining--
			if remaining == 0 {
				all.Settle()
			}
		})
	}
	return all
}
