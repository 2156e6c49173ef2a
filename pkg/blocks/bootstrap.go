package blocks

import (
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/widgets"
)

// Accordion decorates an accordion block. Classes: "single-item" keeps one
// item open, "with-controls" adds the expand/collapse all buttons.
func Accordion(block *html.Node, env Env) (widgets.Interactive, error) {
	acc := widgets.NewAccordion(env.Options, widgets.AccordionConfig{
		IsAnimated:       env.Animated,
		Single:           dom.HasClass(block, "single-item"),
		WithControls:     dom.HasClass(block, "with-controls"),
		ExpandAllLabel:   env.ExpandAllLabel,
		CollapseAllLabel: env.CollapseAllLabel,
	})
	acc.SetAnimator(AccordionAnimator(acc))
	if err := acc.Decorate(block); err != nil {
		return nil, err
	}
	return acc, nil
}

// Tabs decorates a tabs block. Classes: "auto" selects on focus, "vertical"
// lays the tab list out vertically.
func Tabs(block *html.Node, env Env) (widgets.Interactive, error) {
	tabs := widgets.NewTabs(env.Options, widgets.TabsConfig{
		IsAnimated: env.Animated,
		AutoSelect: dom.HasClass(block, "auto"),
		IsVertical: dom.HasClass(block, "vertical"),
	})
	tabs.SetAnimator(TabsAnimator(tabs))
	if err := tabs.Decorate(block); err != nil {
		return nil, err
	}
	return tabs, nil
}

// TreeView decorates a tree view block. Classes: "is-selectable" and
// "is-multiselectable" enable selection and checking.
func TreeView(block *html.Node, env Env) (widgets.Interactive, error) {
	tree := widgets.NewTreeView(env.Options, widgets.TreeViewConfig{
		IsAnimated:        env.Animated,
		IsSelectable:      dom.HasClass(block, "is-selectable"),
		IsMultiselectable: dom.HasClass(block, "is-multiselectable"),
	})
	tree.SetAnimator(TreeViewAnimator(tree))
	if err := tree.Decorate(block); err != nil {
		return nil, err
	}
	return tree, nil
}

// Breadcrumb decorates a breadcrumb block for env.Page.
func Breadcrumb(block *html.Node, env Env) (widgets.Interactive, error) {
	b := widgets.NewBreadcrumb(env.Options, env.Page)
	b.SetLabel(widgets.Text("Navigation"))
	b.SetDescription(widgets.Text("The navigation widget"))
	if err := b.Decorate(block); err != nil {
		return nil, err
	}
	return b, nil
}
