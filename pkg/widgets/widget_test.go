package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/aria/pkg/dom"
	ariatest "github.com/go-drift/aria/pkg/testing"
	"github.com/go-drift/aria/pkg/widgets"
)

func TestVariant_StringAndTag(t *testing.T) {
	tests := []struct {
		v    widgets.Variant
		name string
	}{
		{widgets.VariantAccordion, "accordion"},
		{widgets.VariantTabs, "tabs"},
		{widgets.VariantTreeView, "treeview"},
		{widgets.VariantBreadcrumb, "breadcrumb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.v.String())
			assert.Equal(t, "hlx-aria-"+tt.name, tt.v.Tag())
		})
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"true", true},
		{"is-animated", true},
		{"0", true},
		{"False", true},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, widgets.ParseFlag(tt.value))
		})
	}
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "single", widgets.FlagName("single"))
	assert.Equal(t, "isAnimated", widgets.FlagName("is-animated"))
	assert.Equal(t, "isMultiselectable", widgets.FlagName("is-multiselectable"))
	assert.Equal(t, "withControls", widgets.FlagName("with-controls"))
}

func TestObservedAttributes(t *testing.T) {
	assert.Equal(t, []string{"is-animated", "single", "with-controls"}, widgets.ObservedAttributes(widgets.VariantAccordion))
	assert.Equal(t, []string{"auto-select", "is-animated", "is-vertical"}, widgets.ObservedAttributes(widgets.VariantTabs))
	assert.Equal(t, []string{"is-animated", "is-selectable", "is-multiselectable"}, widgets.ObservedAttributes(widgets.VariantTreeView))
	assert.Empty(t, widgets.ObservedAttributes(widgets.VariantBreadcrumb))
}

func TestWidget_FlagsMirrorConfig(t *testing.T) {
	tester := ariatest.NewWidgetTesterWithT(t)
	tabs := widgets.NewTabs(tester.Options(), widgets.TabsConfig{AutoSelect: true})

	assert.Equal(t, map[string]bool{
		"autoSelect": true,
		"isAnimated": false,
		"isVertical": false,
	}, tabs.Flags())
	assert.True(t, dom.HasAttr(tabs.Root(), "auto-select"))
	assert.False(t, dom.HasAttr(tabs.Root(), "is-animated"))
}

func TestWidget_AttributeChanged(t *testing.T) {
	tester := ariatest.NewWidgetTesterWithT(t)
	tree := widgets.NewTreeView(tester.Options(), widgets.TreeViewConfig{})

	require.True(t, tree.AttributeChanged("is-selectable", ""))
	assert.True(t, tree.Config().IsSelectable)

	require.True(t, tree.AttributeChanged("is-selectable", "false"))
	assert.False(t, tree.Config().IsSelectable)

	require.True(t, tree.AttributeChanged("is-multiselectable", "yes"))
	assert.True(t, tree.Config().IsMultiselectable)

	require.True(t, tree.RemoveAttribute("is-multiselectable"))
	assert.False(t, tree.Config().IsMultiselectable)
	assert.False(t, dom.HasAttr(tree.Root(), "is-multiselectable"))

	assert.False(t, tree.AttributeChanged("data-unrelated", "1"))
	assert.Equal(t, "1", dom.GetAttr(tree.Root(), "data-unrelated"))
}

func TestWidget_SetLabelText(t *testing.T) {
	tester := ariatest.NewWidgetTesterWithT(t)
	b := widgets.NewBreadcrumb(tester.Options(), "/")

	b.SetLabel(widgets.Text("Navigation"))
	b.SetDescription(widgets.Text("The navigation widget"))

	assert.Equal(t, "Navigation", dom.GetAttr(b.Root(), "aria-label"))
	assert.Equal(t, "The navigation widget", dom.GetAttr(b.Root(), "aria-description"))
}

func TestWidget_SetLabelElement(t *testing.T) {
	tester := ariatest.NewWidgetTesterWithT(t)
	acc := widgets.NewAccordion(tester.Options(), widgets.AccordionConfig{})
	heading := dom.NewElement("h2")
	described := dom.NewElement("p", "id", "intro")

	acc.SetLabel(widgets.Element(heading))
	acc.SetDescription(widgets.Element(described))

	assert.Equal(t, "hlx-1", dom.ID(heading))
	assert.Equal(t, "hlx-1", dom.GetAttr(acc.Root(), "aria-labelledby"))
	assert.Equal(t, "intro", dom.GetAttr(acc.Root(), "aria-describedby"))
}

func TestConfigFrom_Presence(t *testing.T) {
	el := dom.NewElement("div", "single", "", "expand-all-label", "Open everything", "is-animated", "false")

	cfg := widgets.AccordionConfigFrom(el)

	assert.True(t, cfg.Single)
	assert.True(t, cfg.IsAnimated, "presence wins at attachment")
	assert.False(t, cfg.WithControls)
	assert.Equal(t, "Open everything", cfg.ExpandAllLabel)
	assert.Empty(t, cfg.CollapseAllLabel)
}
