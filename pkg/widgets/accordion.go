package widgets

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/errors"
	"github.com/go-drift/aria/pkg/semantics"
)

const (
	defaultExpandAllLabel   = "Expand All"
	defaultCollapseAllLabel = "Collapse All"

	roleExpand   = "expand"
	roleCollapse = "collapse"
)

// Accordion is a group of disclosure panels built from <details> elements.
// An item is the <details> element; its first child is the <summary> title
// and its second a <div> wrapping the panel.
type Accordion struct {
	*Widget
	cfg AccordionConfig

	controls *html.Node
	expand   *html.Node
	collapse *html.Node
}

// NewAccordion creates an undecorated accordion.
func NewAccordion(opts Options, cfg AccordionConfig) *Accordion {
	a := &Accordion{cfg: cfg}
	a.Widget = newWidget(VariantAccordion, opts, &a.cfg)
	if cfg.ExpandAllLabel != "" {
		dom.SetAttr(a.root, "expand-all-label", cfg.ExpandAllLabel)
	}
	if cfg.CollapseAllLabel != "" {
		dom.SetAttr(a.root, "collapse-all-label", cfg.CollapseAllLabel)
	}
	return a
}

// Config returns the current configuration.
func (a *Accordion) Config() AccordionConfig { return a.cfg }

type accordionRow struct {
	title, panel, image *html.Node
}

// Decorate turns block into an accordion and puts the accordion in its place.
//
// Two shapes are accepted. When the first row has a single cell, the rows
// alternate title, panel, title, panel. Otherwise every row is either
// (title, panel) or (image, title, panel), the image being the <picture>
// found in the first cell.
func (a *Accordion) Decorate(block *html.Node) error {
	rows := dom.Children(block)
	if len(rows) == 0 {
		return &errors.StructureError{Widget: a.variant.String(), Reason: "an accordion needs at least 1 item"}
	}

	var items []accordionRow
	if dom.ChildElementCount(rows[0]) == 1 {
		for i := 1; i < len(rows); i += 2 {
			items = append(items, accordionRow{title: rows[i-1], panel: rows[i]})
		}
	} else {
		for _, row := range rows {
			cells := dom.Children(row)
			switch len(cells) {
			case 2:
				items = append(items, accordionRow{title: cells[0], panel: cells[1]})
			case 3:
				items = append(items, accordionRow{
					title: cells[1],
					panel: cells[2],
					image: dom.Find(cells[0], dom.Tag("picture")),
				})
			}
		}
	}
	if len(items) == 0 {
		return &errors.StructureError{Widget: a.variant.String(), Reason: "no row has a title and a panel"}
	}

	for _, row := range items {
		a.AddItem(row.title, row.panel, row.image)
	}
	if a.cfg.WithControls && !a.cfg.Single {
		a.addControls()
	}
	a.handOff(block)
	return nil
}

// AddItem appends a new item built from title, panel and an optional image.
func (a *Accordion) AddItem(title, panel, image *html.Node) *html.Node {
	details := dom.NewElement("details")
	summary := dom.NewElement("summary")
	if image != nil {
		dom.Append(summary, image)
	}
	dom.Append(summary, title)
	dom.Append(details, summary)
	wrapper := dom.NewElement("div")
	dom.Append(wrapper, panel)
	dom.Append(details, wrapper)
	a.newID(details, "accordion")
	dom.Append(a.root, details)
	a.updateControls()
	return details
}

// RemoveItem removes the item containing n.
func (a *Accordion) RemoveItem(n *html.Node) {
	details := dom.Closest(n, dom.Tag("details"))
	if details == nil || !dom.Contains(a.root, details) {
		return
	}
	a.coord().Cancel(details)
	dom.Detach(details)
	a.updateControls()
}

// Items returns the accordion items in order.
func (a *Accordion) Items() []*html.Node {
	return dom.FindAll(a.root, dom.Tag("details"))
}

// IsOpen reports whether item is open.
func (a *Accordion) IsOpen(item *html.Node) bool {
	return dom.HasAttr(item, semantics.AttrOpen)
}

// Summary returns the item's <summary> element.
func (a *Accordion) Summary(item *html.Node) *html.Node {
	return dom.FirstElementChild(item)
}

// Panel returns the element wrapping the item's panel.
func (a *Accordion) Panel(item *html.Node) *html.Node {
	if s := a.Summary(item); s != nil {
		return dom.NextElementSibling(s)
	}
	return nil
}

// Controls returns the "expand all" and "collapse all" buttons, or nils
// when the accordion has none.
func (a *Accordion) Controls() (expand, collapse *html.Node) {
	return a.expand, a.collapse
}

// TransitionTarget returns the element whose transition end commits a close.
func (a *Accordion) TransitionTarget(item *html.Node) *html.Node {
	return item
}

func (a *Accordion) addControls() {
	a.controls = dom.NewElement("div", semantics.AttrRole, semantics.RoleGroup)
	a.expand = dom.NewElement("button", "data-role", roleExpand)
	dom.Append(a.expand, dom.NewText(attrOr(a.root, "expand-all-label", defaultExpandAllLabel)))
	a.collapse = dom.NewElement("button", "data-role", roleCollapse)
	dom.Append(a.collapse, dom.NewText(attrOr(a.root, "collapse-all-label", defaultCollapseAllLabel)))
	dom.Append(a.controls, a.expand, a.collapse)
	dom.Prepend(a.root, a.controls)
	a.updateControls()
}

func (a *Accordion) hasControls() bool {
	return a.expand != nil && a.cfg.WithControls && !a.cfg.Single
}

// updateControls refreshes aria-controls and the disabled state of the
// aggregate buttons.
func (a *Accordion) updateControls() {
	if !a.hasControls() {
		return
	}
	items := a.Items()
	ids := make([]string, 0, len(items))
	allOpen, allClosed := true, true
	for _, item := range items {
		ids = append(ids, dom.ID(item))
		if a.IsOpen(item) {
			allClosed = false
		} else {
			allOpen = false
		}
	}
	controls := strings.Join(ids, " ")
	dom.SetAttr(a.expand, semantics.AttrControls, controls)
	dom.SetAttr(a.collapse, semantics.AttrControls, controls)
	dom.ToggleAttr(a.expand, semantics.AttrDisabled, allOpen)
	dom.ToggleAttr(a.collapse, semantics.AttrDisabled, allClosed)
}

// ToggleItem opens or closes item. In single mode, opening first closes
// every other item open at commit time. The returned operation settles once
// the new state is committed; an animated close commits on the item's
// transition end.
func (a *Accordion) ToggleItem(item *html.Node, open bool) *animation.Op {
	op := animation.NewOp()
	animated := a.cfg.IsAnimated
	a.coord().BeforeCommit(animated, func() {
		var closes []*animation.Op
		if open && a.cfg.Single {
			for _, other := range a.Items() {
				if other != item && a.IsOpen(other) {
					closes = append(closes, a.ToggleItem(other, false))
				}
			}
		}
		if !open && animated {
			a.coord().Defer(item, item, func() {
				dom.ToggleAttr(item, semantics.AttrOpen, false)
				a.updateControls()
				op.Settle()
			}).OnCancel(op.Settle)
			a.animate(item, false)
			return
		}
		a.coord().Cancel(item)
		dom.ToggleAttr(item, semantics.AttrOpen, open)
		if animated {
			a.animate(item, true)
		}
		a.updateControls()
		// In single mode the open only settles once the others have closed.
		animation.All(closes...).Then(op.Settle)
	})
	return op
}

// ExpandAll opens every item. It is a no-op in single mode.
func (a *Accordion) ExpandAll() *animation.Op {
	if a.cfg.Single {
		return animation.Settled()
	}
	var ops []*animation.Op
	for _, item := range a.Items() {
		dom.ToggleAttr(item, semantics.AttrOpen, true)
		ops = append(ops, a.ToggleItem(item, true))
	}
	return animation.All(ops...)
}

// CollapseAll closes every item.
func (a *Accordion) CollapseAll() *animation.Op {
	var ops []*animation.Op
	for _, item := range a.Items() {
		ops = append(ops, a.ToggleItem(item, false))
	}
	return animation.All(ops...)
}

// HandleClick dispatches a click on target. Clicking a summary toggles its
// item; clicking an aggregate button expands or collapses everything.
func (a *Accordion) HandleClick(target *html.Node) bool {
	if !dom.Contains(a.root, target) {
		return false
	}
	if summary := dom.Closest(target, dom.Tag("summary")); summary != nil {
		if details := dom.Closest(summary, dom.Tag("details")); details != nil {
			a.ToggleItem(details, !a.IsOpen(details))
			return true
		}
	}
	button := dom.Closest(target, dom.And(
		dom.Tag("button"),
		dom.AttrPresent(semantics.AttrControls),
		dom.AttrPresent("data-role"),
	))
	if button == nil {
		return false
	}
	if dom.HasAttr(button, semantics.AttrDisabled) {
		return true
	}
	if dom.GetAttr(button, "data-role") == roleExpand {
		a.ExpandAll()
	} else {
		a.CollapseAll()
	}
	return true
}

// HandleKey activates a focused summary or control button on Enter or Space.
func (a *Accordion) HandleKey(target *html.Node, key Key) bool {
	if key != KeyEnter && key != KeySpace {
		return false
	}
	return a.HandleClick(target)
}
