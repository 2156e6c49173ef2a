// Package semantics defines the accessibility wire contract produced by the
// widgets: ARIA role and attribute names, boolean state encoding, and a
// snapshot of the resulting accessibility tree.
//
// Attribute names and values must match exactly; assistive technology reads
// them directly.
package semantics

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
)

// Roles.
const (
	RoleTree         = "tree"
	RoleTreeItem     = "treeitem"
	RoleGroup        = "group"
	RoleTabList      = "tablist"
	RoleTab          = "tab"
	RoleTabPanel     = "tabpanel"
	RoleNone         = "none"
	RolePresentation = "presentation"
	RoleNavigation   = "navigation"
	RoleButton       = "button"
	RoleLink         = "link"
	RoleList         = "list"
	RoleListItem     = "listitem"
)

// Attributes.
const (
	AttrRole            = "role"
	AttrExpanded        = "aria-expanded"
	AttrSelected        = "aria-selected"
	AttrChecked         = "aria-checked"
	AttrControls        = "aria-controls"
	AttrOwns            = "aria-owns"
	AttrLabel           = "aria-label"
	AttrLabelledBy      = "aria-labelledby"
	AttrDescription     = "aria-description"
	AttrDescribedBy     = "aria-describedby"
	AttrMultiselectable = "aria-multiselectable"
	AttrOrientation     = "aria-orientation"
	AttrCurrent         = "aria-current"
	AttrHidden          = "hidden"
	AttrDisabled        = "disabled"
	AttrOpen            = "open"
	AttrTabIndex        = "tabindex"
)

// Orientations.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Role returns the explicit role of n.
func Role(n *html.Node) string {
	return dom.GetAttr(n, AttrRole)
}

// SetRole sets the explicit role of n.
func SetRole(n *html.Node, role string) {
	dom.SetAttr(n, AttrRole, role)
}

// HasRole matches elements with the given explicit role.
func HasRole(role string) dom.Matcher {
	return dom.AttrEquals(AttrRole, role)
}

// SetState writes a boolean ARIA state as "true" or "false".
func SetState(n *html.Node, attr string, on bool) {
	if on {
		dom.SetAttr(n, attr, "true")
	} else {
		dom.SetAttr(n, attr, "false")
	}
}

// State reads a boolean ARIA state. present is false when the attribute is
// missing, which for aria-expanded means the element is not expandable.
func State(n *html.Node, attr string) (on, present bool) {
	v, ok := dom.Attr(n, attr)
	return v == "true", ok
}

// IsTrue reports whether the ARIA state attr is "true".
func IsTrue(n *html.Node, attr string) bool {
	on, _ := State(n, attr)
	return on
}

// IDRefs splits a space-separated id reference list.
func IDRefs(n *html.Node, attr string) []string {
	return strings.Fields(dom.GetAttr(n, attr))
}

// Flag is one accessibility state bit.
type Flag uint16

const (
	FlagExpandable Flag = 1 << iota
	FlagExpanded
	FlagSelected
	FlagChecked
	FlagHidden
	FlagDisabled
	FlagFocusable
	FlagFocused
	FlagOpen
	FlagCurrent
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagExpandable, "expandable"},
	{FlagExpanded, "expanded"},
	{FlagSelected, "selected"},
	{FlagChecked, "checked"},
	{FlagHidden, "hidden"},
	{FlagDisabled, "disabled"},
	{FlagFocusable, "focusable"},
	{FlagFocused, "focused"},
	{FlagOpen, "open"},
	{FlagCurrent, "current"},
}

// Flags is a set of accessibility states.
type Flags uint16

// Has reports whether f is set.
func (s Flags) Has(f Flag) bool { return s&Flags(f) != 0 }

// Set returns s with f set.
func (s Flags) Set(f Flag) Flags { return s | Flags(f) }

// Clear returns s with f cleared.
func (s Flags) Clear(f Flag) Flags { return s &^ Flags(f) }

// Names returns the names of the set flags in a fixed order.
func (s Flags) Names() []string {
	var out []string
	for _, fn := range flagNames {
		if s.Has(fn.flag) {
			out = append(out, fn.name)
		}
	}
	return out
}

// FlagsOf derives the state flags of an element from its attributes.
func FlagsOf(n *html.Node) Flags {
	var s Flags
	if expanded, ok := State(n, AttrExpanded); ok {
		s = s.Set(FlagExpandable)
		if expanded {
			s = s.Set(FlagExpanded)
		}
	}
	if IsTrue(n, AttrSelected) {
		s = s.Set(FlagSelected)
	}
	if IsTrue(n, AttrChecked) {
		s = s.Set(FlagChecked)
	}
	if dom.HasAttr(n, AttrHidden) {
		s = s.Set(FlagHidden)
	}
	if dom.HasAttr(n, AttrDisabled) {
		s = s.Set(FlagDisabled)
	}
	if dom.GetAttr(n, AttrTabIndex) == "0" {
		s = s.Set(FlagFocusable)
	}
	if dom.Is(n, "details") && dom.HasAttr(n, AttrOpen) {
		s = s.Set(FlagOpen)
	}
	if dom.HasAttr(n, AttrCurrent) {
		s = s.Set(FlagCurrent)
	}
	return s
}
