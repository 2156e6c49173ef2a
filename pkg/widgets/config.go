package widgets

import "golang.org/x/net/html"

// AccordionConfig configures an Accordion.
type AccordionConfig struct {
	// IsAnimated sequences open/close through the animation protocol.
	IsAnimated bool
	// Single keeps at most one item open.
	Single bool
	// WithControls adds "expand all" and "collapse all" buttons. Ignored
	// when Single is set.
	WithControls bool
	// ExpandAllLabel overrides the "Expand All" button text.
	ExpandAllLabel string
	// CollapseAllLabel overrides the "Collapse All" button text.
	CollapseAllLabel string
}

func (c *AccordionConfig) fields() []flagField {
	return []flagField{
		{"is-animated", &c.IsAnimated},
		{"single", &c.Single},
		{"with-controls", &c.WithControls},
	}
}

// AccordionConfigFrom reads an accordion configuration from an element's
// attributes. A flag is set when its attribute is present.
func AccordionConfigFrom(el *html.Node) AccordionConfig {
	var c AccordionConfig
	readFlags(&c, el)
	c.ExpandAllLabel = attrOr(el, "expand-all-label", "")
	c.CollapseAllLabel = attrOr(el, "collapse-all-label", "")
	return c
}

// TabsConfig configures a Tabs widget.
type TabsConfig struct {
	// AutoSelect selects a tab as soon as keyboard focus reaches it.
	AutoSelect bool
	// IsAnimated sequences panel changes through the animation protocol.
	IsAnimated bool
	// IsVertical lays the tab list out vertically (Up/Down navigation).
	IsVertical bool
}

func (c *TabsConfig) fields() []flagField {
	return []flagField{
		{"auto-select", &c.AutoSelect},
		{"is-animated", &c.IsAnimated},
		{"is-vertical", &c.IsVertical},
	}
}

// TabsConfigFrom reads a tabs configuration from an element's attributes.
func TabsConfigFrom(el *html.Node) TabsConfig {
	var c TabsConfig
	readFlags(&c, el)
	return c
}

// TreeViewConfig configures a TreeView.
type TreeViewConfig struct {
	// IsAnimated sequences expand/collapse through the animation protocol.
	IsAnimated bool
	// IsSelectable enables exclusive single selection (aria-selected).
	IsSelectable bool
	// IsMultiselectable enables independent per-item checking (aria-checked).
	IsMultiselectable bool
}

func (c *TreeViewConfig) fields() []flagField {
	return []flagField{
		{"is-animated", &c.IsAnimated},
		{"is-selectable", &c.IsSelectable},
		{"is-multiselectable", &c.IsMultiselectable},
	}
}

// TreeViewConfigFrom reads a tree view configuration from an element's attributes.
func TreeViewConfigFrom(el *html.Node) TreeViewConfig {
	var c TreeViewConfig
	readFlags(&c, el)
	return c
}

func attrOr(el *html.Node, name, fallback string) string {
	for _, a := range el.Attr {
		if a.Key == name && a.Val != "" {
			return a.Val
		}
	}
	return fallback
}
