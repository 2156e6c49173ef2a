package widgets_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/aria/pkg/dom"
	ariaerrors "github.com/go-drift/aria/pkg/errors"
	ariatest "github.com/go-drift/aria/pkg/testing"
	"github.com/go-drift/aria/pkg/widgets"
)

const tabsLinks = `<div class="tabs">
  <div><div><a href="#a">A</a><a href="#b">B</a><a href="#c">C</a><a href="#d">D</a></div></div>
  <div><div>Panel A</div></div>
  <div><div>Panel B</div></div>
  <div><div>Panel C</div></div>
  <div><div>Panel D</div></div>
</div>`

const tabsHeadings = `<div class="tabs">
  <div><div><h2>Overview</h2><p>First</p></div></div>
  <div><div><h3 id="specs">Specs</h3><p>Second</p></div></div>
</div>`

const tabsCells = `<div class="tabs">
  <div><div>Label 1</div><div>Panel 1</div></div>
  <div><div><a href="#two">Label 2</a></div><div>Panel 2</div></div>
</div>`

const tabsContinuation = `<main>
  <div class="section"><div class="tabs"><div><div><a href="#x">X</a><a href="#y">Y</a></div></div></div></div>
  <div class="section" data-tab-panel="x"><div>Panel X</div></div>
  <div class="section" data-tab-panel="y"><div>Panel Y</div></div>
  <div class="section"><div>Not a panel</div></div>
</main>`

const tabsContinuationAnyValue = `<main>
  <div class="section"><div class="tabs"><div><div><a href="#x">X</a><a href="#y">Y</a></div></div></div></div>
  <div class="section" data-tab-panel="x"><div>Panel X</div></div>
  <div class="section" data-tab-panel="false"><div>Panel Y</div></div>
  <div class="section" data-tab-panel=""><div>Not a panel</div></div>
</main>`

func pumpTabs(t *testing.T, cfg widgets.TabsConfig, markup string) (*ariatest.WidgetTester, *widgets.Tabs) {
	t.Helper()
	tester := ariatest.NewWidgetTesterWithT(t)
	tabs := widgets.NewTabs(tester.Options(), cfg)
	require.NoError(t, tester.PumpWidget(tabs, markup))
	return tester, tabs
}

// assertOneSelected checks that exactly one tab is selected and that its
// panel is the only visible one.
func assertOneSelected(t *testing.T, tabs *widgets.Tabs, want int) {
	t.Helper()
	all := tabs.Tabs()
	selected := 0
	for i, tab := range all {
		isSelected := dom.GetAttr(tab, "aria-selected") == "true"
		visible := !dom.HasAttr(tabs.Panel(tab), "hidden")
		if isSelected {
			selected++
		}
		assert.Equal(t, i == want, isSelected, "tab %d selected", i)
		assert.Equal(t, i == want, visible, "panel %d visible", i)
	}
	assert.Equal(t, 1, selected)
}

func TestTabs_DecorateLinks(t *testing.T) {
	_, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsLinks)

	all := tabs.Tabs()
	require.Len(t, all, 4)
	assertOneSelected(t, tabs, 0)

	list := tabs.TabList()
	assert.Equal(t, "tablist", dom.GetAttr(list, "role"))
	assert.Equal(t, "horizontal", dom.GetAttr(list, "aria-orientation"))
	for i, tab := range all {
		panel := tabs.Panel(tab)
		require.NotNil(t, panel)
		assert.Equal(t, "tab", dom.GetAttr(tab, "role"))
		assert.Equal(t, "presentation", dom.GetAttr(dom.ParentElement(tab), "role"))
		assert.Equal(t, "tabpanel", dom.GetAttr(panel, "role"))
		assert.Equal(t, dom.ID(tab), dom.GetAttr(panel, "aria-labelledby"))
		assert.Equal(t, fmt.Sprintf("Panel %c", 'A'+i), text(panel))
	}
	assert.Equal(t, "0", dom.GetAttr(all[0], "tabindex"))
	assert.Equal(t, "-1", dom.GetAttr(all[1], "tabindex"))
}

func TestTabs_DecorateHeadings(t *testing.T) {
	_, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsHeadings)

	all := tabs.Tabs()
	require.Len(t, all, 2)
	assert.Equal(t, "Overview", text(all[0]))
	assert.Equal(t, "Specs", text(all[1]))
	assert.Equal(t, "#specs", dom.GetAttr(all[1], "href"))

	heading := dom.Find(tabs.Panel(all[0]), dom.Tag("h2"))
	require.NotNil(t, heading)
	assert.Equal(t, "#"+dom.ID(heading), dom.GetAttr(all[0], "href"))
	assertOneSelected(t, tabs, 0)
}

func TestTabs_DecorateCells(t *testing.T) {
	_, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsCells)

	all := tabs.Tabs()
	require.Len(t, all, 2)
	assert.Equal(t, "Label 1", text(all[0]))
	assert.Equal(t, "#two", dom.GetAttr(all[1], "href"))
	assert.Equal(t, "Panel 2", text(tabs.Panel(all[1])))
}

func TestTabs_DecorateContinuationPanels(t *testing.T) {
	tester := ariatest.NewWidgetTesterWithT(t)
	main, err := tester.Load(tabsContinuation)
	require.NoError(t, err)
	tabs := widgets.NewTabs(tester.Options(), widgets.TabsConfig{})

	require.NoError(t, tabs.Decorate(dom.Find(main, dom.Class("tabs"))))

	all := tabs.Tabs()
	require.Len(t, all, 2)
	assert.Equal(t, "Panel X", text(tabs.Panel(all[0])))
	assert.Equal(t, "Panel Y", text(tabs.Panel(all[1])))
	assert.True(t, tester.Find(ariatest.ByText("Not a panel")).Exists())
}

func TestTabs_ContinuationPanelsAcceptAnyValue(t *testing.T) {
	tester := ariatest.NewWidgetTesterWithT(t)
	main, err := tester.Load(tabsContinuationAnyValue)
	require.NoError(t, err)
	tabs := widgets.NewTabs(tester.Options(), widgets.TabsConfig{})

	require.NoError(t, tabs.Decorate(dom.Find(main, dom.Class("tabs"))))

	all := tabs.Tabs()
	require.Len(t, all, 2)
	assert.Equal(t, "Panel Y", text(tabs.Panel(all[1])))
	assert.True(t, tester.Find(ariatest.ByText("Not a panel")).Exists())
}

func TestTabs_MismatchedCounts(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"two tabs one panel", `<div><div><div><a href="#1">1</a><a href="#2">2</a></div></div><div><div>Only</div></div></div>`},
		{"empty block", `<div class="tabs"></div>`},
		{"three cells", `<div><div><div>L</div><div>P</div><div>Extra</div></div></div>`},
		{"missing heading", `<div><div><div><p>No heading</p></div></div></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := ariatest.NewWidgetTesterWithT(t)
			tabs := widgets.NewTabs(tester.Options(), widgets.TabsConfig{})

			err := tester.PumpWidget(tabs, tt.markup)

			var structErr *ariaerrors.StructureError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, "tabs", structErr.Widget)
			assert.Nil(t, tabs.Root().Parent)
		})
	}
}

func TestTabs_ArrowRightWithoutAutoSelect(t *testing.T) {
	tester, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsLinks)
	all := tabs.Tabs()
	tabs.FocusItem(all[0])

	require.True(t, tester.Key(widgets.KeyRight))
	require.True(t, tester.Key(widgets.KeyRight))

	assert.Equal(t, all[2], tester.Focused())
	assert.Equal(t, "0", dom.GetAttr(all[2], "tabindex"))
	assert.Equal(t, "-1", dom.GetAttr(all[0], "tabindex"))
	assertOneSelected(t, tabs, 0)

	require.True(t, tester.Key(widgets.KeyEnter))
	assertOneSelected(t, tabs, 2)
}

func TestTabs_AutoSelect(t *testing.T) {
	tester, tabs := pumpTabs(t, widgets.TabsConfig{AutoSelect: true}, tabsLinks)
	all := tabs.Tabs()
	tabs.FocusItem(all[0])

	tester.Key(widgets.KeyLeft)

	assert.Equal(t, all[3], tester.Focused(), "left wraps to the last tab")
	assertOneSelected(t, tabs, 3)

	tester.Key(widgets.KeyRight)
	assert.Equal(t, all[0], tester.Focused(), "right wraps to the first tab")
	assertOneSelected(t, tabs, 0)
}

func TestTabs_HomeEndIdempotent(t *testing.T) {
	tester, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsLinks)
	all := tabs.Tabs()
	tabs.FocusItem(all[2])

	tester.Key(widgets.KeyHome)
	once := tester.Focused()
	tester.Key(widgets.KeyHome)

	assert.Equal(t, all[0], once)
	assert.Equal(t, once, tester.Focused())

	tester.Key(widgets.KeyEnd)
	assert.Equal(t, all[3], tester.Focused())
}

func TestTabs_Vertical(t *testing.T) {
	tester, tabs := pumpTabs(t, widgets.TabsConfig{IsVertical: true}, tabsLinks)
	all := tabs.Tabs()
	tabs.FocusItem(all[0])

	assert.Equal(t, "vertical", dom.GetAttr(tabs.TabList(), "aria-orientation"))
	assert.False(t, tester.Key(widgets.KeyRight))
	assert.Equal(t, all[0], tester.Focused())

	assert.True(t, tester.Key(widgets.KeyDown))
	assert.Equal(t, all[1], tester.Focused())
	assert.True(t, tester.Key(widgets.KeyUp))
	assert.True(t, tester.Key(widgets.KeyUp))
	assert.Equal(t, all[3], tester.Focused())
}

func TestTabs_OrientationFollowsAttribute(t *testing.T) {
	_, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsLinks)

	tabs.AttributeChanged("is-vertical", "")
	assert.Equal(t, "vertical", dom.GetAttr(tabs.TabList(), "aria-orientation"))

	tabs.AttributeChanged("is-vertical", "false")
	assert.Equal(t, "horizontal", dom.GetAttr(tabs.TabList(), "aria-orientation"))
}

func TestTabs_ClickSelects(t *testing.T) {
	tester, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsLinks)
	all := tabs.Tabs()

	require.True(t, tester.Click(all[1]))

	assertOneSelected(t, tabs, 1)
	assert.Equal(t, all[1], tester.Focused())
	assert.False(t, tester.Click(tabs.Panel(all[1])))
}

func TestTabs_AnimatedSelection(t *testing.T) {
	tester, tabs := pumpTabs(t, widgets.TabsConfig{IsAnimated: true}, tabsLinks)
	all := tabs.Tabs()
	oldPanel := tabs.Panel(all[0])
	newPanel := tabs.Panel(all[1])

	op := tabs.SelectItem(all[1])
	assert.Equal(t, all[1], tester.Focused(), "focus moves before the frame")
	assert.Equal(t, all[0], tabs.Selected())

	tester.Pump()
	assert.Equal(t, all[1], tabs.Selected())
	assert.False(t, dom.HasAttr(newPanel, "hidden"))
	assert.False(t, dom.HasAttr(oldPanel, "hidden"), "old panel hides after its transition")
	require.Len(t, tester.Animations(), 1)
	assert.Equal(t, ariatest.AnimatorCall{Item: all[0], Opening: false}, tester.Animations()[0])
	assert.False(t, op.IsSettled())

	tester.Pump()
	require.Len(t, tester.Animations(), 2)
	assert.Equal(t, ariatest.AnimatorCall{Item: all[1], Opening: true}, tester.Animations()[1])

	assert.Equal(t, 1, tester.EndTransition(tabs.TransitionTarget(all[0])))
	assert.True(t, dom.HasAttr(oldPanel, "hidden"))
	assert.True(t, op.IsSettled())
	assertOneSelected(t, tabs, 1)
}

func TestTabs_AnimatedReselectCancelsHide(t *testing.T) {
	tester, tabs := pumpTabs(t, widgets.TabsConfig{IsAnimated: true}, tabsLinks)
	all := tabs.Tabs()

	first := tabs.SelectItem(all[1])
	tester.Pump()
	second := tabs.SelectItem(all[0])
	require.NoError(t, tester.Settle())

	assert.True(t, first.IsSettled())
	assert.True(t, second.IsSettled())
	assertOneSelected(t, tabs, 0)
}

func TestTabs_RemoveSelected(t *testing.T) {
	_, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsLinks)
	all := tabs.Tabs()
	tabs.SelectItem(all[2])

	tabs.RemoveItem(all[2])

	remaining := tabs.Tabs()
	require.Len(t, remaining, 3)
	assertOneSelected(t, tabs, 0)
	assert.Equal(t, "0", dom.GetAttr(remaining[0], "tabindex"))
	assert.Nil(t, dom.ByID(tabs.Root(), dom.GetAttr(all[2], "aria-controls")))
}

func TestTabs_AddItem(t *testing.T) {
	_, tabs := pumpTabs(t, widgets.TabsConfig{}, tabsLinks)
	label := dom.NewElement("a", "href", "#e")
	panel := dom.NewElement("div")

	tabs.AddItem(label, panel)

	require.Len(t, tabs.Tabs(), 5)
	assert.Equal(t, panel, tabs.Panel(label))
	assert.True(t, dom.HasAttr(panel, "hidden"))
	assert.Equal(t, "-1", dom.GetAttr(label, "tabindex"))
	assertOneSelected(t, tabs, 0)
}
