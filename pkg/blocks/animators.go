package blocks

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/widgets"
)

// AccordionAnimator collapses or expands the panel wrapper of an item
// through grid-template-rows.
func AccordionAnimator(acc *widgets.Accordion) animation.Animator {
	return func(item *html.Node, opening bool) {
		if panel := acc.Panel(item); panel != nil {
			SetStyle(panel, "grid-template-rows", pick(opening, "1fr", "0fr"))
		}
	}
}

// TabsAnimator collapses or expands the panel controlled by a tab.
func TabsAnimator(tabs *widgets.Tabs) animation.Animator {
	return func(tab *html.Node, opening bool) {
		if panel := tabs.Panel(tab); panel != nil {
			SetStyle(panel, "grid-template-rows", pick(opening, "1fr", "0fr"))
		}
	}
}

// TreeViewAnimator grows the item's list entry, then fades its group in;
// collapsing runs the same steps in reverse.
func TreeViewAnimator(tree *widgets.TreeView) animation.Animator {
	return func(item *html.Node, opening bool) {
		if li := dom.ParentElement(item); li != nil {
			SetStyle(li, "grid-template-rows", pick(opening, "min-content 1fr", "min-content 0fr"))
			SetStyle(li, "transition-delay", pick(opening, "0s", ".15s"))
		}
		if group := tree.TransitionTarget(item); group != nil {
			SetStyle(group, "opacity", pick(opening, "1", "0"))
			SetStyle(group, "transition-delay", pick(opening, ".15s", "0s"))
		}
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// Style returns the value of prop in n's inline style.
func Style(n *html.Node, prop string) string {
	for _, decl := range strings.Split(dom.GetAttr(n, "style"), ";") {
		name, value, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(name) == prop {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// SetStyle sets prop in n's inline style, keeping the other declarations
// in order.
func SetStyle(n *html.Node, prop, value string) {
	var decls []string
	found := false
	for _, decl := range strings.Split(dom.GetAttr(n, "style"), ";") {
		name, _, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(name) == prop {
			decl = prop + ": " + value
			found = true
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if !found {
		decls = append(decls, prop+": "+value)
	}
	dom.SetAttr(n, "style", strings.Join(decls, "; "))
}
