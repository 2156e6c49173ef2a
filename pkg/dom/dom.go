// Package dom provides element-tree helpers over golang.org/x/net/html nodes.
//
// The widgets in this module treat an *html.Node tree as their document: every
// piece of widget state (open, selected, expanded, hidden, tabindex) lives in
// element attributes, and these helpers are the only way the engines read or
// mutate it. Only element nodes are considered "children" unless a helper
// says otherwise.
package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Matcher reports whether a node satisfies a query.
type Matcher func(n *html.Node) bool

// NewElement creates a detached element. attrs are name/value pairs.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		SetAttr(n, attrs[i], attrs[i+1])
	}
	return n
}

// NewText creates a detached text node.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// Is reports whether n is an element with one of the given tag names.
func Is(n *html.Node, tags ...string) bool {
	if !IsElement(n) {
		return false
	}
	for _, t := range tags {
		if n.Data == t {
			return true
		}
	}
	return false
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// GetAttr returns the value of the named attribute, or "" when absent.
func GetAttr(n *html.Node, name string) string {
	v, _ := Attr(n, name)
	return v
}

// HasAttr reports whether the named attribute is present.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// SetAttr sets an attribute, replacing any existing value.
func SetAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes an attribute if present.
func RemoveAttr(n *html.Node, name string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ToggleAttr adds (as an empty boolean attribute) or removes name.
func ToggleAttr(n *html.Node, name string, on bool) {
	if on {
		if !HasAttr(n, name) {
			SetAttr(n, name, "")
		}
		return
	}
	RemoveAttr(n, name)
}

// ID returns the element id.
func ID(n *html.Node) string {
	return GetAttr(n, "id")
}

// Classes returns the element's class list.
func Classes(n *html.Node) []string {
	return strings.Fields(GetAttr(n, "class"))
}

// HasClass reports whether the element's class list contains c.
func HasClass(n *html.Node, c string) bool {
	for _, cl := range Classes(n) {
		if cl == c {
			return true
		}
	}
	return false
}

// Children returns the element children of n in order.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	if n == nil {
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// ChildElementCount returns the number of element children.
func ChildElementCount(n *html.Node) int {
	return len(Children(n))
}

// FirstElementChild returns the first element child, or nil.
func FirstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// NextElementSibling returns the next sibling element, or nil.
func NextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// PrevElementSibling returns the previous sibling element, or nil.
func PrevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// ParentElement returns n's parent when it is an element.
func ParentElement(n *html.Node) *html.Node {
	if n == nil || !IsElement(n.Parent) {
		return nil
	}
	return n.Parent
}

// Detach removes n from its parent, if any.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Append moves each child to the end of parent.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		Detach(c)
		parent.AppendChild(c)
	}
}

// Prepend moves child to the front of parent.
func Prepend(parent, child *html.Node) {
	Detach(child)
	if parent.FirstChild == nil {
		parent.AppendChild(child)
		return
	}
	parent.InsertBefore(child, parent.FirstChild)
}

// InsertBefore moves n so that it directly precedes ref.
func InsertBefore(ref, n *html.Node) {
	Detach(n)
	ref.Parent.InsertBefore(n, ref)
}

// InsertAfter moves n so that it directly follows ref.
func InsertAfter(ref, n *html.Node) {
	Detach(n)
	if ref.NextSibling == nil {
		ref.Parent.AppendChild(n)
		return
	}
	ref.Parent.InsertBefore(n, ref.NextSibling)
}

// ReplaceWith puts replacement where old is and detaches old.
func ReplaceWith(old, replacement *html.Node) {
	if old.Parent == nil {
		return
	}
	InsertBefore(old, replacement)
	Detach(old)
}

// MoveChildren moves every child node (text included) of from to the end of to.
func MoveChildren(from, to *html.Node) {
	for c := from.FirstChild; c != nil; c = from.FirstChild {
		from.RemoveChild(c)
		to.AppendChild(c)
	}
}

// Empty removes all child nodes.
func Empty(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// Contains reports whether n is ancestor itself or one of its descendants.
func Contains(ancestor, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Closest returns the nearest inclusive ancestor of n that matches.
func Closest(n *html.Node, match Matcher) *html.Node {
	for p := n; p != nil; p = p.Parent {
		if IsElement(p) && match(p) {
			return p
		}
	}
	return nil
}

// Find returns the first descendant element of root (excluding root) that matches,
// in document order.
func Find(root *html.Node, match Matcher) *html.Node {
	if root == nil {
		return nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c) && match(c) {
			return c
		}
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element of root (excluding root) that
// matches, in document order.
func FindAll(root *html.Node, match Matcher) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if IsElement(c) && match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ByID returns the descendant element of root with the given id.
func ByID(root *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	return Find(root, AttrEquals("id", id))
}

// TextContent returns the concatenated text of n and its descendants.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return sb.String()
}

// Tag matches elements with one of the given tag names.
func Tag(tags ...string) Matcher {
	return func(n *html.Node) bool { return Is(n, tags...) }
}

// AttrPresent matches elements carrying the named attribute.
func AttrPresent(name string) Matcher {
	return func(n *html.Node) bool { return HasAttr(n, name) }
}

// AttrEquals matches elements whose named attribute equals value.
func AttrEquals(name, value string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, name)
		return ok && v == value
	}
}

// Class matches elements whose class list contains c.
func Class(c string) Matcher {
	return func(n *html.Node) bool { return HasClass(n, c) }
}

// And matches when every matcher matches.
func And(ms ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Not inverts a matcher.
func Not(m Matcher) Matcher {
	return func(n *html.Node) bool { return !m(n) }
}

// Headings matches h1 through h6.
var Headings = Tag("h1", "h2", "h3", "h4", "h5", "h6")

// Lists matches ul and ol.
var Lists = Tag("ul", "ol")

// bodyContext is the fragment parsing context.
var bodyContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

// ParseFragment parses s as body content and returns the top-level nodes.
func ParseFragment(s string) ([]*html.Node, error) {
	return html.ParseFragment(strings.NewReader(s), bodyContext)
}

// ParseInto parses s as body content and appends the result to parent.
func ParseInto(parent *html.Node, s string) error {
	nodes, err := ParseFragment(s)
	if err != nil {
		return err
	}
	Append(parent, nodes...)
	return nil
}

// Body returns the body element of a parsed document.
func Body(doc *html.Node) *html.Node {
	return Find(doc, Tag("body"))
}

// Render serialises n as HTML.
func Render(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML serialises the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// Clone returns a detached deep copy of n.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// CloneChildren appends deep copies of from's children to to.
func CloneChildren(from, to *html.Node) {
	for child := from.FirstChild; child != nil; child = child.NextSibling {
		to.AppendChild(Clone(child))
	}
}
