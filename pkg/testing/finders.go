package testing

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
)

// Finder locates elements in the document.
type Finder interface {
	// Evaluate returns all matching elements under root in document order.
	Evaluate(root *html.Node) []*html.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*html.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *html.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *html.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *html.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in document order.
func (r FinderResult) All() []*html.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

type matcherFinder struct {
	match dom.Matcher
	desc  string
}

func (f *matcherFinder) Evaluate(root *html.Node) []*html.Node {
	return dom.FindAll(root, f.match)
}

func (f *matcherFinder) Description() string {
	return f.desc
}

// ByRole matches elements with the given explicit role.
func ByRole(role string) Finder {
	return &matcherFinder{match: dom.AttrEquals("role", role), desc: fmt.Sprintf("ByRole(%q)", role)}
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) Finder {
	return &matcherFinder{match: dom.Tag(tag), desc: fmt.Sprintf("ByTag(%q)", tag)}
}

// ByID matches the element with the given id.
func ByID(id string) Finder {
	return &matcherFinder{match: dom.AttrEquals("id", id), desc: fmt.Sprintf("ByID(%q)", id)}
}

// ByAttr matches elements whose attribute name equals value.
func ByAttr(name, value string) Finder {
	return &matcherFinder{match: dom.AttrEquals(name, value), desc: fmt.Sprintf("ByAttr(%s=%q)", name, value)}
}

// ByText matches elements whose trimmed text content equals text. Only the
// innermost matches are kept, so a wrapper around a matching label is not
// reported twice.
func ByText(text string) Finder {
	return &innermostFinder{
		match: func(n *html.Node) bool { return strings.TrimSpace(dom.TextContent(n)) == text },
		desc:  fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining matches the innermost elements whose text contains substring.
func ByTextContaining(substring string) Finder {
	return &innermostFinder{
		match: func(n *html.Node) bool { return strings.Contains(dom.TextContent(n), substring) },
		desc:  fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(*html.Node) bool) Finder {
	return &matcherFinder{match: fn, desc: "ByPredicate(...)"}
}

type innermostFinder struct {
	match dom.Matcher
	desc  string
}

func (f *innermostFinder) Evaluate(root *html.Node) []*html.Node {
	var results []*html.Node
	for _, n := range dom.FindAll(root, f.match) {
		if dom.Find(n, f.match) == nil {
			results = append(results, n)
		}
	}
	return results
}

func (f *innermostFinder) Description() string {
	return f.desc
}

// descendantFinder finds elements matching 'matching' that are descendants
// of elements matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *html.Node) []*html.Node {
	var results []*html.Node
	seen := make(map[*html.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, match := range f.matching.Evaluate(ancestor) {
			if !seen[match] {
				seen[match] = true
				results = append(results, match)
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements satisfying 'matching'
// that are descendants of elements matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}
