// Package focus tracks keyboard focus in a widget document and implements
// roving tabindex: exactly one element of a composite widget is in the tab
// order (tabindex="0") while its siblings are excluded (tabindex="-1").
package focus

import (
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
)

// Tab order markers.
const (
	TabStop     = "0"
	NotTabStop  = "-1"
	tabIndexKey = "tabindex"
)

// Manager holds the primary focus of a document.
type Manager struct {
	// OnChange is called after primary focus moves.
	OnChange func(prev, next *html.Node)

	primary *html.Node
}

// NewManager returns a manager with nothing focused.
func NewManager() *Manager {
	return &Manager{}
}

// Focus gives n primary focus.
func (m *Manager) Focus(n *html.Node) {
	if m.primary == n {
		return
	}
	prev := m.primary
	m.primary = n
	if m.OnChange != nil {
		m.OnChange(prev, n)
	}
}

// Blur clears primary focus if n holds it.
func (m *Manager) Blur(n *html.Node) {
	if m.primary == n {
		m.Focus(nil)
	}
}

// Focused returns the element with primary focus, or nil.
func (m *Manager) Focused() *html.Node {
	return m.primary
}

// HasFocus reports whether n or one of its descendants has primary focus.
func (m *Manager) HasFocus(n *html.Node) bool {
	return m.primary != nil && dom.Contains(n, m.primary)
}

// Rove makes target the only tab stop among the elements of scope that
// match, then focuses it. A nil manager only moves the marker.
func Rove(m *Manager, scope *html.Node, match dom.Matcher, target *html.Node) {
	for _, n := range dom.FindAll(scope, match) {
		if n != target && dom.GetAttr(n, tabIndexKey) == TabStop {
			dom.SetAttr(n, tabIndexKey, NotTabStop)
		}
	}
	dom.SetAttr(target, tabIndexKey, TabStop)
	if m != nil {
		m.Focus(target)
	}
}

// CurrentTabStop returns the first element of scope matching match that is a
// tab stop.
func CurrentTabStop(scope *html.Node, match dom.Matcher) *html.Node {
	return dom.Find(scope, dom.And(match, dom.AttrEquals(tabIndexKey, TabStop)))
}

// Exclude removes n from the tab order.
func Exclude(n *html.Node) {
	dom.SetAttr(n, tabIndexKey, NotTabStop)
}

// Step returns the element delta positions away from current in items,
// wrapping at both ends. If current is not in items the first (delta > 0) or
// last (delta < 0) element is returned.
func Step(items []*html.Node, current *html.Node, delta int) *html.Node {
	if len(items) == 0 {
		return nil
	}
	index := indexOf(items, current)
	if index < 0 {
		if delta < 0 {
			return items[len(items)-1]
		}
		return items[0]
	}
	n := len(items)
	return items[((index+delta)%n+n)%n]
}

// First returns the first element, or nil.
func First(items []*html.Node) *html.Node {
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

// Last returns the last element, or nil.
func Last(items []*html.Node) *html.Node {
	if len(items) == 0 {
		return nil
	}
	return items[len(items)-1]
}

func indexOf(items []*html.Node, n *html.Node) int {
	for i, item := range items {
		if item == n {
			return i
		}
	}
	return -1
}
