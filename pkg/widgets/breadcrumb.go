package widgets

import (
	"net/url"

	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/errors"
	"github.com/go-drift/aria/pkg/semantics"
)

// Breadcrumb is a navigation landmark listing the links of a block in an
// ordered list. The link pointing at the current page is marked with
// aria-current="page".
type Breadcrumb struct {
	*Widget

	page *url.URL
	list *html.Node
}

// NewBreadcrumb creates an undecorated breadcrumb for the page at pageURL,
// which may be a bare path. Relative links are resolved against it.
func NewBreadcrumb(opts Options, pageURL string) *Breadcrumb {
	page, err := url.Parse(pageURL)
	if err != nil {
		page = &url.URL{Path: "/"}
	}
	b := &Breadcrumb{page: page}
	b.Widget = newWidget(VariantBreadcrumb, opts, nil)
	semantics.SetRole(b.root, semantics.RoleNavigation)
	b.list = dom.NewElement("ol")
	dom.Append(b.root, b.list)
	return b
}

// Decorate moves every link of block into the breadcrumb list and puts the
// widget in the block's place.
func (b *Breadcrumb) Decorate(block *html.Node) error {
	anchors := dom.FindAll(block, dom.And(dom.Tag("a"), dom.AttrPresent("href")))
	if len(anchors) == 0 {
		return &errors.StructureError{Widget: b.variant.String(), Reason: "a breadcrumb needs at least 1 link"}
	}
	for _, a := range anchors {
		b.AddItem(a)
	}
	b.handOff(block)
	return nil
}

// AddItem appends anchor to the list, dropping its classes.
func (b *Breadcrumb) AddItem(anchor *html.Node) {
	dom.RemoveAttr(anchor, "class")
	if b.isCurrent(dom.GetAttr(anchor, "href")) {
		dom.SetAttr(anchor, semantics.AttrCurrent, "page")
	} else {
		dom.RemoveAttr(anchor, semantics.AttrCurrent)
	}
	li := dom.NewElement("li")
	dom.Append(li, anchor)
	dom.Append(b.list, li)
}

// Items returns the links in order.
func (b *Breadcrumb) Items() []*html.Node {
	return dom.FindAll(b.list, dom.Tag("a"))
}

// Current returns the link to the current page, or nil.
func (b *Breadcrumb) Current() *html.Node {
	return dom.Find(b.list, dom.AttrEquals(semantics.AttrCurrent, "page"))
}

func (b *Breadcrumb) isCurrent(href string) bool {
	ref, err := url.Parse(href)
	if err != nil {
		return false
	}
	return b.page.ResolveReference(ref).Path == b.page.Path
}

// HandleClick does nothing; links navigate on their own.
func (b *Breadcrumb) HandleClick(*html.Node) bool { return false }

// HandleKey does nothing.
func (b *Breadcrumb) HandleKey(*html.Node, Key) bool { return false }
