// Package ids generates element identifiers for decorated widgets.
package ids

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
)

// DefaultPrefix is used when New is called with an empty prefix.
const DefaultPrefix = "hlx"

// Generator produces identifiers of the form "<prefix>-<suffix>".
type Generator interface {
	New(prefix string) string
}

// Random generates identifiers from random UUIDs.
type Random struct{}

// New returns prefix followed by 16 random hex digits.
func (Random) New(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + suffix[:16]
}

// Sequence generates predictable identifiers ("tab-1", "tab-2", ...).
// The counter is shared across prefixes. Safe for concurrent use.
type Sequence struct {
	mu sync.Mutex
	n  int
}

// New returns the next identifier in the sequence.
func (s *Sequence) New(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	s.mu.Lock()
	s.n++
	n := s.n
	s.mu.Unlock()
	return prefix + "-" + strconv.Itoa(n)
}

// Default is the generator used when none is configured.
var Default Generator = Random{}

// Ensure returns the element's id, assigning a generated one if it has none.
func Ensure(g Generator, n *html.Node, prefix string) string {
	if id := dom.ID(n); id != "" {
		return id
	}
	if g == nil {
		g = Default
	}
	id := g.New(prefix)
	dom.SetAttr(n, "id", id)
	return id
}
