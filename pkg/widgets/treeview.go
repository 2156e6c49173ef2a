package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/errors"
	"github.com/go-drift/aria/pkg/focus"
	"github.com/go-drift/aria/pkg/semantics"
)

var (
	isTreeItem = semantics.HasRole(semantics.RoleTreeItem)
	isGroup    = semantics.HasRole(semantics.RoleGroup)
)

// TreeView is a hierarchical list of items built from nested lists. An item
// is the <a> or <span> carrying role="treeitem"; its <li> has role="none".
// A non-leaf item owns a group (the nested list) through aria-owns and is
// followed by a disclosure button referencing it through aria-controls.
type TreeView struct {
	*Widget
	cfg TreeViewConfig

	tree *html.Node
}

// NewTreeView creates an undecorated tree view.
func NewTreeView(opts Options, cfg TreeViewConfig) *TreeView {
	t := &TreeView{cfg: cfg}
	t.Widget = newWidget(VariantTreeView, opts, &t.cfg)
	t.onConfig = func(string) { t.syncSelectionAttrs() }
	return t
}

// Config returns the current configuration.
func (t *TreeView) Config() TreeViewConfig { return t.cfg }

// Tree returns the role="tree" list, or nil before decoration.
func (t *TreeView) Tree() *html.Node { return t.tree }

// Decorate turns the first list found in block into a tree and puts the
// widget in the block's place. List items without a leading link or span
// get their content wrapped in a span so that every list item holds exactly
// one tree item followed by its optional nested list.
func (t *TreeView) Decorate(block *html.Node) error {
	if dom.ChildElementCount(block) == 0 {
		return t.structureError("a tree view needs at least 1 item")
	}
	list := dom.Find(block, dom.Lists)
	if list == nil {
		return t.structureError("a tree view needs a list")
	}

	t.adoptTree(list)
	adoptStrayLists(list)
	for _, group := range dom.FindAll(list, dom.Lists) {
		semantics.SetRole(group, semantics.RoleGroup)
	}
	lis := dom.FindAll(list, dom.Tag("li"))
	for _, li := range lis {
		semantics.SetRole(li, semantics.RoleNone)
		if first := dom.FirstElementChild(li); first == nil || !dom.Is(first, "a", "span") {
			wrapLabel(li)
		}
	}
	for _, li := range lis {
		item := dom.FirstElementChild(li)
		t.addItem(item, t.parentOfLI(li))
	}

	t.handOff(block)
	if first := dom.Find(t.tree, isTreeItem); first != nil {
		focus.Rove(nil, t.tree, isTreeItem, first)
	}
	return nil
}

func (t *TreeView) adoptTree(list *html.Node) {
	t.tree = list
	semantics.SetRole(list, semantics.RoleTree)
	dom.SetAttr(list, semantics.AttrOrientation, semantics.Vertical)
	t.syncSelectionAttrs()
	dom.Append(t.root, list)
}

func (t *TreeView) ensureTree() {
	if t.tree == nil {
		t.adoptTree(dom.NewElement("ul"))
	}
}

// wrapLabel moves the direct content of li, except its first nested list,
// into a new span.
func wrapLabel(li *html.Node) {
	var group *html.Node
	for _, c := range dom.Children(li) {
		if dom.Is(c, "ul", "ol") {
			group = c
			break
		}
	}
	dom.Detach(group)
	span := dom.NewElement("span")
	dom.MoveChildren(li, span)
	dom.Append(li, span)
	if group != nil {
		dom.Append(li, group)
	}
}

// adoptStrayLists moves every list nested directly in another list into
// the preceding list item. A stray list with no preceding item has its items
// spliced into the outer list.
func adoptStrayLists(list *html.Node) {
	for _, inner := range dom.FindAll(list, dom.Lists) {
		outer := dom.ParentElement(inner)
		if outer == nil || !dom.Lists(outer) {
			continue
		}
		if prev := dom.PrevElementSibling(inner); prev != nil && dom.Is(prev, "li") {
			dom.Append(prev, inner)
			continue
		}
		for _, c := range dom.Children(inner) {
			dom.InsertBefore(inner, c)
		}
		dom.Detach(inner)
	}
}

func (t *TreeView) parentOfLI(li *html.Node) *html.Node {
	group := dom.ParentElement(li)
	if group == nil || group == t.tree {
		return nil
	}
	owner := dom.ParentElement(group)
	if owner == nil || !dom.Is(owner, "li") {
		return nil
	}
	if item := dom.FirstElementChild(owner); item != nil && isTreeItem(item) {
		return item
	}
	return nil
}

func (t *TreeView) structureError(reason string) error {
	return &errors.StructureError{Widget: t.variant.String(), Reason: reason}
}

// AddItem adds item as the last child of parent, or as a top-level item
// when parent is nil. Adding the first child to a leaf makes it expandable
// (collapsed).
func (t *TreeView) AddItem(item, parent *html.Node) *html.Node {
	t.ensureTree()
	t.addItem(item, parent)
	return item
}

func (t *TreeView) addItem(item, parent *html.Node) {
	container := t.tree
	if parent != nil {
		if !dom.HasAttr(parent, semantics.AttrOwns) {
			t.addGroup(parent)
		}
		container = t.ownedGroup(parent)
	}
	semantics.SetRole(item, semantics.RoleTreeItem)
	t.newID(item, "treeitem")
	focus.Exclude(item)
	if t.cfg.IsSelectable {
		semantics.SetState(item, semantics.AttrSelected, false)
	}
	if t.cfg.IsMultiselectable {
		semantics.SetState(item, semantics.AttrChecked, false)
	}
	if !dom.Contains(t.tree, item) {
		li := dom.NewElement("li", semantics.AttrRole, semantics.RoleNone)
		dom.Append(li, item)
		dom.Append(container, li)
	}
}

// addGroup gives item an owned group: the first list among its following
// siblings, or a new one.
func (t *TreeView) addGroup(item *html.Node) {
	itemID := t.newID(item, "treeitem")
	var group *html.Node
	for n := dom.NextElementSibling(item); n != nil; n = dom.NextElementSibling(n) {
		if dom.Is(n, "ul", "ol") {
			group = n
			break
		}
	}
	if group == nil {
		group = dom.NewElement("ul")
		dom.InsertAfter(item, group)
	}
	groupID := t.newID(group, "group")
	semantics.SetRole(group, semantics.RoleGroup)
	dom.SetAttr(group, semantics.AttrLabelledBy, itemID)
	dom.ToggleAttr(group, semantics.AttrHidden, true)
	semantics.SetState(item, semantics.AttrExpanded, false)
	dom.SetAttr(item, semantics.AttrOwns, groupID)

	toggle := dom.NewElement("button", semantics.AttrControls, itemID)
	focus.Exclude(toggle)
	dom.InsertAfter(item, toggle)
}

// removeGroup turns item back into a leaf.
func (t *TreeView) removeGroup(item *html.Node) {
	if group := t.ownedGroup(item); group != nil {
		t.coord().Cancel(item)
		dom.Detach(group)
	}
	if toggle := t.toggleButton(item); toggle != nil {
		dom.Detach(toggle)
	}
	dom.RemoveAttr(item, semantics.AttrOwns)
	dom.RemoveAttr(item, semantics.AttrExpanded)
}

func (t *TreeView) toggleButton(item *html.Node) *html.Node {
	for n := dom.NextElementSibling(item); n != nil; n = dom.NextElementSibling(n) {
		if dom.Is(n, "button") && dom.GetAttr(n, semantics.AttrControls) == dom.ID(item) {
			return n
		}
	}
	return nil
}

func (t *TreeView) syncSelectionAttrs() {
	if t.tree == nil {
		return
	}
	dom.SetAttr(t.tree, semantics.AttrMultiselectable, boolString(t.cfg.IsMultiselectable))
	for _, item := range t.Items() {
		syncState(item, semantics.AttrSelected, t.cfg.IsSelectable)
		syncState(item, semantics.AttrChecked, t.cfg.IsMultiselectable)
	}
}

func syncState(item *html.Node, attr string, enabled bool) {
	switch {
	case !enabled:
		dom.RemoveAttr(item, attr)
	case !dom.HasAttr(item, attr):
		semantics.SetState(item, attr, false)
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// RemoveItem removes item and its subtree. A parent left without children
// becomes a leaf.
func (t *TreeView) RemoveItem(item *html.Node) {
	if item == nil || t.tree == nil || !dom.Contains(t.tree, item) {
		return
	}
	li := dom.ParentElement(item)
	parent := t.Parent(item)
	hadStop := focus.CurrentTabStop(li, isTreeItem) != nil
	hadFocus := t.Focus().HasFocus(li)

	for _, n := range dom.FindAll(li, isTreeItem) {
		t.coord().Cancel(n)
	}
	t.coord().Cancel(item)
	dom.Detach(li)
	if hadFocus {
		t.Focus().Blur(t.Focus().Focused())
	}

	if parent != nil && len(t.Children(parent)) == 0 {
		t.removeGroup(parent)
	}
	if !hadStop {
		return
	}
	next := parent
	if next == nil {
		next = dom.Find(t.tree, isTreeItem)
	}
	if next != nil {
		focus.Rove(nil, t.tree, isTreeItem, next)
	}
}

// Items returns every tree item in document order, visible or not.
func (t *TreeView) Items() []*html.Node {
	if t.tree == nil {
		return nil
	}
	return dom.FindAll(t.tree, isTreeItem)
}

// VisibleItems returns the items whose every ancestor is expanded: the set
// keyboard navigation moves through.
func (t *TreeView) VisibleItems() []*html.Node {
	var out []*html.Node
	for _, item := range t.Items() {
		if t.IsVisible(item) {
			out = append(out, item)
		}
	}
	return out
}

// IsVisible reports whether every ancestor of item is expanded.
func (t *TreeView) IsVisible(item *html.Node) bool {
	for p := t.Parent(item); p != nil; p = t.Parent(p) {
		if !t.IsExpanded(p) {
			return false
		}
	}
	return true
}

// IsExpanded reports whether item is expanded.
func (t *TreeView) IsExpanded(item *html.Node) bool {
	return semantics.IsTrue(item, semantics.AttrExpanded)
}

// IsLeaf reports whether item has no group.
func (t *TreeView) IsLeaf(item *html.Node) bool {
	return !dom.HasAttr(item, semantics.AttrExpanded)
}

// Parent returns the item owning the group item belongs to, or nil for a
// top-level item.
func (t *TreeView) Parent(item *html.Node) *html.Node {
	group := t.groupOf(item)
	if group == nil {
		return nil
	}
	return dom.Find(t.tree, dom.AttrEquals(semantics.AttrOwns, dom.ID(group)))
}

// Children returns the direct child items of item.
func (t *TreeView) Children(item *html.Node) []*html.Node {
	group := t.ownedGroup(item)
	if group == nil {
		return nil
	}
	var out []*html.Node
	for _, li := range dom.Children(group) {
		if child := dom.FirstElementChild(li); child != nil && isTreeItem(child) {
			out = append(out, child)
		}
	}
	return out
}

func (t *TreeView) groupOf(item *html.Node) *html.Node {
	li := dom.ParentElement(item)
	if li == nil {
		return nil
	}
	group := dom.ParentElement(li)
	if group == nil || group == t.tree || !isGroup(group) {
		return nil
	}
	return group
}

func (t *TreeView) ownedGroup(item *html.Node) *html.Node {
	id := dom.GetAttr(item, semantics.AttrOwns)
	if id == "" || t.tree == nil {
		return nil
	}
	return dom.ByID(t.tree, id)
}

// TransitionTarget returns the element whose transition end commits a
// collapse of item.
func (t *TreeView) TransitionTarget(item *html.Node) *html.Node {
	return t.ownedGroup(item)
}

// FocusItem expands every collapsed ancestor of item, including ancestors
// whose collapse is waiting on a transition, then makes it the tab stop and
// focuses it.
func (t *TreeView) FocusItem(item *html.Node) {
	if item == nil || t.tree == nil || !dom.Contains(t.tree, item) {
		return
	}
	var ancestors []*html.Node
	for p := t.Parent(item); p != nil; p = t.Parent(p) {
		ancestors = append(ancestors, p)
	}
	for i := len(ancestors) - 1; i >= 0; i-- {
		if !t.IsExpanded(ancestors[i]) || t.coord().Pending(ancestors[i]) {
			t.expandNow(ancestors[i])
		}
	}
	focus.Rove(t.Focus(), t.tree, isTreeItem, item)
}

// expandNow commits an expansion without waiting for a frame.
func (t *TreeView) expandNow(item *html.Node) {
	t.coord().Cancel(item)
	semantics.SetState(item, semantics.AttrExpanded, true)
	if group := t.ownedGroup(item); group != nil {
		dom.ToggleAttr(group, semantics.AttrHidden, false)
	}
	if t.cfg.IsAnimated {
		t.coord().NextFrame(func() { t.animate(item, true) })
	}
}

// ToggleItem flips the expanded state of item. Leaves are left alone.
func (t *TreeView) ToggleItem(item *html.Node) *animation.Op {
	return t.SetExpanded(item, !t.IsExpanded(item))
}

// SetExpanded expands or collapses item. Expanded descendants are collapsed
// first, deepest first. An animated collapse commits on the transition end
// of the item's group. Leaves are left alone.
func (t *TreeView) SetExpanded(item *html.Node, expanded bool) *animation.Op {
	if item == nil || t.IsLeaf(item) {
		return animation.Settled()
	}
	op := animation.NewOp()
	animated := t.cfg.IsAnimated
	t.coord().BeforeCommit(animated, func() {
		t.collapseDescendants(item)
		switch {
		case expanded:
			t.expandNow(item)
			op.Settle()
		case animated:
			t.coord().Defer(item, t.ownedGroup(item), func() {
				t.commitCollapse(item)
				op.Settle()
			}).OnCancel(op.Settle)
			t.animate(item, false)
		default:
			t.commitCollapse(item)
			op.Settle()
		}
	})
	return op
}

// collapseDescendants collapses every expanded item below item. Reverse
// document order visits children before their parents.
func (t *TreeView) collapseDescendants(item *html.Node) {
	group := t.ownedGroup(item)
	if group == nil {
		return
	}
	expanded := dom.FindAll(group, dom.And(isTreeItem, dom.AttrEquals(semantics.AttrExpanded, "true")))
	for i := len(expanded) - 1; i >= 0; i-- {
		t.coord().Cancel(expanded[i])
		t.commitCollapse(expanded[i])
	}
}

// commitCollapse marks item collapsed and hides its group. A tab stop or
// focus inside the hidden group moves to item.
func (t *TreeView) commitCollapse(item *html.Node) {
	semantics.SetState(item, semantics.AttrExpanded, false)
	group := t.ownedGroup(item)
	if group == nil {
		return
	}
	dom.ToggleAttr(group, semantics.AttrHidden, true)
	switch {
	case t.Focus().HasFocus(group):
		focus.Rove(t.Focus(), t.tree, isTreeItem, item)
	case focus.CurrentTabStop(group, isTreeItem) != nil:
		focus.Rove(nil, t.tree, isTreeItem, item)
	}
}

// Selected returns the selected item, or nil.
func (t *TreeView) Selected() *html.Node {
	if t.tree == nil {
		return nil
	}
	return dom.Find(t.tree, dom.And(isTreeItem, dom.AttrEquals(semantics.AttrSelected, "true")))
}

// Select focuses item and makes it the only selected item, deselecting the
// previous one first. It is a no-op unless the tree is selectable.
func (t *TreeView) Select(item *html.Node) *animation.Op {
	if !t.cfg.IsSelectable || item == nil {
		return animation.Settled()
	}
	t.FocusItem(item)
	op := animation.NewOp()
	prev := t.Selected()
	if prev == nil || prev == item {
		semantics.SetState(item, semantics.AttrSelected, true)
		op.Settle()
		return op
	}
	t.Deselect(prev).Then(func() {
		semantics.SetState(item, semantics.AttrSelected, true)
		op.Settle()
	})
	return op
}

// Deselect clears the selected state of item.
func (t *TreeView) Deselect(item *html.Node) *animation.Op {
	if t.cfg.IsSelectable && item != nil {
		semantics.SetState(item, semantics.AttrSelected, false)
	}
	return animation.Settled()
}

// ToggleChecked focuses item and flips its checked state. It is a no-op
// unless the tree is multiselectable.
func (t *TreeView) ToggleChecked(item *html.Node) {
	if !t.cfg.IsMultiselectable || item == nil {
		return
	}
	t.FocusItem(item)
	semantics.SetState(item, semantics.AttrChecked, !semantics.IsTrue(item, semantics.AttrChecked))
}

// HandleClick dispatches a click. A disclosure button toggles the item it
// controls. Clicking an item focuses it, updates its selection and checked
// states as configured, then toggles its expansion.
func (t *TreeView) HandleClick(target *html.Node) bool {
	if t.tree == nil || !dom.Contains(t.tree, target) {
		return false
	}
	if toggle := dom.Closest(target, dom.And(dom.Tag("button"), dom.AttrPresent(semantics.AttrControls))); toggle != nil {
		if item := dom.ByID(t.tree, dom.GetAttr(toggle, semantics.AttrControls)); item != nil {
			t.ToggleItem(item)
			return true
		}
	}
	item := dom.Closest(target, isTreeItem)
	if item == nil {
		return false
	}
	t.FocusItem(item)
	if t.cfg.IsSelectable {
		t.Select(item)
	}
	if t.cfg.IsMultiselectable {
		t.ToggleChecked(item)
	}
	t.ToggleItem(item)
	return true
}

// HandleKey implements the tree keyboard protocol over the visible items.
// It reports whether the key was consumed.
func (t *TreeView) HandleKey(target *html.Node, key Key) bool {
	if t.tree == nil {
		return false
	}
	item := dom.Closest(target, isTreeItem)
	if item == nil || !dom.Contains(t.tree, item) {
		return false
	}
	visible := t.VisibleItems()
	switch key {
	case KeyUp:
		t.FocusItem(focus.Step(visible, item, -1))
	case KeyDown:
		t.FocusItem(focus.Step(visible, item, 1))
	case KeyHome:
		t.FocusItem(focus.First(visible))
	case KeyEnd:
		t.FocusItem(focus.Last(visible))
	case KeyRight:
		switch {
		case t.IsLeaf(item):
		case !t.IsExpanded(item):
			t.SetExpanded(item, true)
		default:
			if children := t.Children(item); len(children) > 0 {
				t.FocusItem(children[0])
			}
		}
	case KeyLeft:
		if t.IsExpanded(item) {
			t.SetExpanded(item, false)
		} else if parent := t.Parent(item); parent != nil {
			t.FocusItem(parent)
		}
	case KeySpace:
		switch {
		case t.cfg.IsMultiselectable:
			t.ToggleChecked(item)
		case t.cfg.IsSelectable:
			if semantics.IsTrue(item, semantics.AttrSelected) {
				t.Deselect(item)
			} else {
				t.Select(item)
			}
		default:
			return false
		}
	default:
		return false
	}
	return true
}
