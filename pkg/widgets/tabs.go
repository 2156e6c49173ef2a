package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/errors"
	"github.com/go-drift/aria/pkg/focus"
	"github.com/go-drift/aria/pkg/semantics"
)

var isTab = semantics.HasRole(semantics.RoleTab)

// Tabs switches between panels with a tab list. An item is the tab element
// (role="tab"); it controls exactly one panel (role="tabpanel").
type Tabs struct {
	*Widget
	cfg TabsConfig

	tablist   *html.Node
	tabpanels *html.Node
}

// NewTabs creates an undecorated tabs widget.
func NewTabs(opts Options, cfg TabsConfig) *Tabs {
	t := &Tabs{cfg: cfg}
	t.Widget = newWidget(VariantTabs, opts, &t.cfg)
	t.tablist = dom.NewElement("ul", semantics.AttrRole, semantics.RoleTabList)
	t.tabpanels = dom.NewElement("div")
	t.syncOrientation()
	dom.Append(t.root, t.tablist, t.tabpanels)
	t.onConfig = func(attr string) {
		if attr == "is-vertical" {
			t.syncOrientation()
		}
	}
	return t
}

// Config returns the current configuration.
func (t *Tabs) Config() TabsConfig { return t.cfg }

func (t *Tabs) syncOrientation() {
	orientation := semantics.Horizontal
	if t.cfg.IsVertical {
		orientation = semantics.Vertical
	}
	dom.SetAttr(t.tablist, semantics.AttrOrientation, orientation)
}

// Decorate turns block into a tabs widget and puts it in the block's place.
//
// When the first row holds a single cell, its links are the tab labels and
// the remaining rows are the panels. Without links, one tab is made per row
// from the row's first heading. Without panel rows, panels are pulled from
// the sibling sections following the block's section that carry a
// data-tab-panel attribute. When the first row holds several cells, each row
// is a (label, panel) pair. The first tab ends up selected.
func (t *Tabs) Decorate(block *html.Node) error {
	rows := dom.Children(block)
	if len(rows) == 0 {
		return t.structureError("a tabs widget needs at least 1 item")
	}

	var labels, panels []*html.Node
	var err error
	if dom.ChildElementCount(rows[0]) == 1 {
		labels, panels, err = t.listShape(block, rows)
	} else {
		labels, panels, err = t.rowShape(rows)
	}
	if err != nil {
		return err
	}

	for i, label := range labels {
		wrapper := dom.NewElement("div")
		dom.Append(wrapper, panels[i])
		t.AddItem(label, wrapper)
	}
	t.handOff(block)
	if first := dom.Find(t.tablist, isTab); first != nil {
		t.commitSelection(first, false, animation.NewOp())
		focus.Rove(nil, t.tablist, isTab, first)
	}
	return nil
}

func (t *Tabs) listShape(block *html.Node, rows []*html.Node) (labels, panels []*html.Node, err error) {
	labels = dom.FindAll(dom.FirstElementChild(rows[0]), dom.Tag("a"))
	panels = rows
	if len(labels) > 0 {
		panels = rows[1:]
	} else {
		headings := make([]*html.Node, 0, len(panels))
		for _, panel := range panels {
			heading := dom.Find(panel, dom.Headings)
			if heading == nil {
				return nil, nil, t.structureError("a tab panel without tab links needs a heading")
			}
			headings = append(headings, heading)
		}
		for _, heading := range headings {
			link := dom.NewElement("a", "href", "#"+t.newID(heading, "heading"))
			dom.CloneChildren(heading, link)
			labels = append(labels, link)
		}
	}
	if len(panels) == 0 {
		panels = continuationPanels(block)
	}
	if len(panels) != len(labels) {
		return nil, nil, t.structureError("inconsistent number of tabs and tab panels")
	}
	return labels, panels, nil
}

func (t *Tabs) rowShape(rows []*html.Node) (labels, panels []*html.Node, err error) {
	for _, row := range rows {
		cells := dom.Children(row)
		if len(cells) != 2 {
			return nil, nil, t.structureError("inconsistent number of tabs and tab panels")
		}
		label := dom.Find(cells[0], dom.Tag("a"))
		if label == nil {
			label = dom.NewElement("a")
			dom.MoveChildren(cells[0], label)
		}
		labels = append(labels, label)
		panels = append(panels, cells[1])
	}
	return labels, panels, nil
}

// continuationPanels collects the first child of each section following the
// block's section, for as long as those sections carry a non-empty
// data-tab-panel attribute. Any non-empty value counts.
func continuationPanels(block *html.Node) []*html.Node {
	var panels []*html.Node
	section := dom.Closest(block, dom.Class("section"))
	if section == nil {
		return panels
	}
	for next := dom.NextElementSibling(section); next != nil; next = dom.NextElementSibling(next) {
		if v, ok := dom.Attr(next, "data-tab-panel"); !ok || v == "" {
			break
		}
		if panel := dom.FirstElementChild(next); panel != nil {
			panels = append(panels, panel)
		}
	}
	return panels
}

func (t *Tabs) structureError(reason string) error {
	return &errors.StructureError{Widget: t.variant.String(), Reason: reason}
}

// AddItem appends a tab and the panel it controls. The panel starts hidden.
func (t *Tabs) AddItem(label, panel *html.Node) {
	li := dom.NewElement("li", semantics.AttrRole, semantics.RolePresentation)
	semantics.SetRole(label, semantics.RoleTab)
	focus.Exclude(label)
	semantics.SetState(label, semantics.AttrSelected, false)
	tabID := t.newID(label, "tab")
	dom.Append(li, label)
	dom.Append(t.tablist, li)

	semantics.SetRole(panel, semantics.RoleTabPanel)
	panelID := t.newID(panel, "tabpanel")
	dom.SetAttr(label, semantics.AttrControls, panelID)
	dom.SetAttr(panel, semantics.AttrLabelledBy, tabID)
	dom.ToggleAttr(panel, semantics.AttrHidden, true)
	dom.Append(t.tabpanels, panel)
}

// RemoveItem removes a tab and its panel. When the removed tab was
// selected, the first remaining tab is selected.
func (t *Tabs) RemoveItem(tab *html.Node) {
	if tab == nil || !dom.Contains(t.tablist, tab) {
		return
	}
	wasSelected := semantics.IsTrue(tab, semantics.AttrSelected)
	wasStop := dom.GetAttr(tab, semantics.AttrTabIndex) == focus.TabStop
	if panel := t.Panel(tab); panel != nil {
		t.coord().Cancel(panel)
		dom.Detach(panel)
	}
	if li := dom.ParentElement(tab); li != nil && li.Parent == t.tablist {
		dom.Detach(li)
	} else {
		dom.Detach(tab)
	}
	t.Focus().Blur(tab)

	first := dom.Find(t.tablist, isTab)
	if first == nil {
		return
	}
	if wasSelected {
		t.commitSelection(first, false, animation.NewOp())
	}
	if wasStop {
		stop := t.Selected()
		if stop == nil {
			stop = first
		}
		focus.Rove(nil, t.tablist, isTab, stop)
	}
}

// Tabs returns the tab elements in order.
func (t *Tabs) Tabs() []*html.Node {
	return dom.FindAll(t.tablist, isTab)
}

// TabList returns the role="tablist" element.
func (t *Tabs) TabList() *html.Node { return t.tablist }

// Panel returns the panel controlled by tab.
func (t *Tabs) Panel(tab *html.Node) *html.Node {
	return dom.ByID(t.tabpanels, dom.GetAttr(tab, semantics.AttrControls))
}

// Selected returns the selected tab, or nil.
func (t *Tabs) Selected() *html.Node {
	return dom.Find(t.tablist, dom.And(isTab, dom.AttrEquals(semantics.AttrSelected, "true")))
}

// TransitionTarget returns the element whose transition end hides the
// panel of a deselected tab.
func (t *Tabs) TransitionTarget(tab *html.Node) *html.Node {
	return t.Panel(tab)
}

// FocusItem moves the roving tab stop and focus to tab.
func (t *Tabs) FocusItem(tab *html.Node) {
	focus.Rove(t.Focus(), t.tablist, isTab, tab)
}

// SelectItem focuses tab and makes it the selected tab. The previous tab's
// panel is hidden (after its transition when animated) and tab's panel is
// shown. The operation settles once the previous panel is hidden.
func (t *Tabs) SelectItem(tab *html.Node) *animation.Op {
	if tab == nil || !dom.Contains(t.tablist, tab) {
		return animation.Settled()
	}
	t.FocusItem(tab)
	op := animation.NewOp()
	animated := t.cfg.IsAnimated
	t.coord().BeforeCommit(animated, func() {
		t.commitSelection(tab, animated, op)
	})
	return op
}

func (t *Tabs) commitSelection(tab *html.Node, animated bool, op *animation.Op) {
	pending := false
	if current := t.Selected(); current != nil && current != tab {
		semantics.SetState(current, semantics.AttrSelected, false)
		if panel := t.Panel(current); panel != nil {
			if animated {
				pending = true
				t.coord().Defer(panel, panel, func() {
					dom.ToggleAttr(panel, semantics.AttrHidden, true)
					op.Settle()
				}).OnCancel(op.Settle)
				t.animate(current, false)
			} else {
				dom.ToggleAttr(panel, semantics.AttrHidden, true)
			}
		}
	}

	semantics.SetState(tab, semantics.AttrSelected, true)
	if panel := t.Panel(tab); panel != nil {
		t.coord().Cancel(panel)
		dom.ToggleAttr(panel, semantics.AttrHidden, false)
	}
	if animated {
		t.coord().NextFrame(func() { t.animate(tab, true) })
	}
	if !pending {
		op.Settle()
	}
}

// HandleClick selects the clicked tab.
func (t *Tabs) HandleClick(target *html.Node) bool {
	tab := dom.Closest(target, isTab)
	if tab == nil || !dom.Contains(t.tablist, tab) {
		return false
	}
	if !semantics.IsTrue(tab, semantics.AttrSelected) {
		t.SelectItem(tab)
	}
	return true
}

// HandleKey implements the tab list keyboard protocol for the tab holding
// target: Home/End jump to the ends, the arrow keys of the widget's
// orientation move with wrapping, and Enter/Space select. With AutoSelect a
// move also selects; otherwise it only moves focus. It reports whether the
// key was consumed.
func (t *Tabs) HandleKey(target *html.Node, key Key) bool {
	tab := dom.Closest(target, isTab)
	if tab == nil || !dom.Contains(t.tablist, tab) {
		return false
	}
	tabs := t.Tabs()
	var dest *html.Node
	switch key {
	case KeyHome:
		dest = focus.First(tabs)
	case KeyEnd:
		dest = focus.Last(tabs)
	case KeyLeft, KeyRight:
		if t.cfg.IsVertical {
			return false
		}
		dest = focus.Step(tabs, tab, delta(key == KeyRight))
	case KeyUp, KeyDown:
		if !t.cfg.IsVertical {
			return false
		}
		dest = focus.Step(tabs, tab, delta(key == KeyDown))
	case KeyEnter, KeySpace:
		if !semantics.IsTrue(tab, semantics.AttrSelected) {
			t.SelectItem(tab)
		}
		return true
	default:
		return false
	}

	if t.cfg.AutoSelect {
		t.SelectItem(dest)
	} else {
		t.FocusItem(dest)
	}
	return true
}

func delta(forward bool) int {
	if forward {
		return 1
	}
	return -1
}
