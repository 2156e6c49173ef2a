package errors

import "sync"

// Collector is an ErrorHandler that keeps everything it receives, for hosts
// that present decoration failures themselves. Safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	errors []*AriaError
	panics []*PanicError
}

// HandleError records err.
func (c *Collector) HandleError(err *AriaError) {
	c.mu.Lock()
	c.errors = append(c.errors, err)
	c.mu.Unlock()
}

// HandlePanic records err.
func (c *Collector) HandlePanic(err *PanicError) {
	c.mu.Lock()
	c.panics = append(c.panics, err)
	c.mu.Unlock()
}

// Errors returns the recorded errors in report order.
func (c *Collector) Errors() []*AriaError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*AriaError(nil), c.errors...)
}

// Panics returns the recorded panics in report order.
func (c *Collector) Panics() []*PanicError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*PanicError(nil), c.panics...)
}

// ByWidget returns the recorded errors for one widget variant.
func (c *Collector) ByWidget(widget string) []*AriaError {
	var out []*AriaError
	for _, err := range c.Errors() {
		if err.Widget == widget {
			out = append(out, err)
		}
	}
	return out
}

// Reset discards everything recorded so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.errors, c.panics = nil, nil
	c.mu.Unlock()
}
