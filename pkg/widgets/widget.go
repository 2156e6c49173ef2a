package widgets

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/focus"
	"github.com/go-drift/aria/pkg/ids"
	"github.com/go-drift/aria/pkg/semantics"
)

// Variant identifies which accessibility pattern a widget implements.
type Variant int

const (
	VariantAccordion Variant = iota
	VariantTabs
	VariantTreeView
	VariantBreadcrumb
)

func (v Variant) String() string {
	switch v {
	case VariantAccordion:
		return "accordion"
	case VariantTabs:
		return "tabs"
	case VariantTreeView:
		return "treeview"
	case VariantBreadcrumb:
		return "breadcrumb"
	default:
		return "unknown"
	}
}

// Tag returns the custom element name used for the widget root.
func (v Variant) Tag() string {
	return "hlx-aria-" + v.String()
}

// Options carries the collaborators shared by every widget. Zero values are
// replaced with defaults by the constructors.
type Options struct {
	// IDs generates element identifiers. Defaults to ids.Default.
	IDs ids.Generator
	// Focus tracks document focus. Defaults to a fresh manager.
	Focus *focus.Manager
	// Coordinator sequences animated commits. Defaults to a coordinator
	// whose frames run immediately.
	Coordinator *animation.Coordinator
	// Animate is called to start visual transitions. May be nil.
	Animate animation.Animator
}

func (o Options) withDefaults() Options {
	if o.IDs == nil {
		o.IDs = ids.Default
	}
	if o.Focus == nil {
		o.Focus = focus.NewManager()
	}
	if o.Coordinator == nil {
		o.Coordinator = animation.NewCoordinator(nil, nil)
	}
	return o
}

// Interactive is the capability set shared by all decorated widgets.
type Interactive interface {
	Root() *html.Node
	Variant() Variant
	Decorate(block *html.Node) error
	HandleClick(target *html.Node) bool
	HandleKey(target *html.Node, key Key) bool
}

// Widget is the state shared by all variants: the root element, the
// configuration flags it mirrors, and the injected collaborators.
type Widget struct {
	variant Variant
	root    *html.Node
	opts    Options
	flags   flagSet

	// onConfig is called after a flag changes.
	onConfig func(attr string)
}

func newWidget(v Variant, opts Options, flags flagSet) *Widget {
	w := &Widget{
		variant: v,
		root:    dom.NewElement(v.Tag()),
		opts:    opts.withDefaults(),
		flags:   flags,
	}
	if flags != nil {
		writeFlags(flags, w.root)
	}
	return w
}

// Root returns the widget's root element.
func (w *Widget) Root() *html.Node { return w.root }

// Variant returns the widget variant.
func (w *Widget) Variant() Variant { return w.variant }

// Focus returns the focus manager the widget reports to.
func (w *Widget) Focus() *focus.Manager { return w.opts.Focus }

// Coordinator returns the animation coordinator.
func (w *Widget) Coordinator() *animation.Coordinator { return w.opts.Coordinator }

// SetAnimator replaces the animation callback.
func (w *Widget) SetAnimator(fn animation.Animator) { w.opts.Animate = fn }

// Flags returns the current configuration flags keyed by camel-cased
// attribute name ("is-animated" becomes "isAnimated").
func (w *Widget) Flags() map[string]bool {
	out := make(map[string]bool)
	if w.flags == nil {
		return out
	}
	for _, f := range w.flags.fields() {
		out[FlagName(f.attr)] = *f.ptr
	}
	return out
}

// AttributeChanged applies a host attribute mutation. Recognised flags become
// true for any value other than the literal "false". It reports whether the
// attribute is an observed flag.
func (w *Widget) AttributeChanged(name, value string) bool {
	dom.SetAttr(w.root, name, value)
	if w.flags == nil || !setFlag(w.flags, name, ParseFlag(value)) {
		return false
	}
	if w.onConfig != nil {
		w.onConfig(name)
	}
	return true
}

// RemoveAttribute clears a flag attribute, turning the flag off.
func (w *Widget) RemoveAttribute(name string) bool {
	dom.RemoveAttr(w.root, name)
	if w.flags == nil || !setFlag(w.flags, name, false) {
		return false
	}
	if w.onConfig != nil {
		w.onConfig(name)
	}
	return true
}

// LabelSource is accepted by SetLabel and SetDescription: either literal
// text or an element to reference by id.
type LabelSource interface {
	apply(w *Widget, textAttr, refAttr string)
}

// Text is a literal accessible label or description.
type Text string

func (t Text) apply(w *Widget, textAttr, _ string) {
	dom.SetAttr(w.root, textAttr, string(t))
}

type elementSource struct{ n *html.Node }

// Element references n as the label or description, assigning it an id if
// it has none.
func Element(n *html.Node) LabelSource { return elementSource{n: n} }

func (e elementSource) apply(w *Widget, _, refAttr string) {
	id := ids.Ensure(w.opts.IDs, e.n, ids.DefaultPrefix)
	dom.SetAttr(w.root, refAttr, id)
}

// SetLabel sets the widget's accessible name.
func (w *Widget) SetLabel(src LabelSource) {
	src.apply(w, semantics.AttrLabel, semantics.AttrLabelledBy)
}

// SetDescription sets the widget's accessible description.
func (w *Widget) SetDescription(src LabelSource) {
	src.apply(w, semantics.AttrDescription, semantics.AttrDescribedBy)
}

// handOff puts the widget root where block was. Whatever content of block
// was not moved into the widget is discarded with it.
func (w *Widget) handOff(block *html.Node) {
	if block.Parent != nil {
		dom.ReplaceWith(block, w.root)
	}
}

func (w *Widget) newID(n *html.Node, prefix string) string {
	return ids.Ensure(w.opts.IDs, n, prefix)
}

func (w *Widget) coord() *animation.Coordinator { return w.opts.Coordinator }

func (w *Widget) animate(item *html.Node, opening bool) {
	if w.opts.Animate != nil {
		w.opts.Animate(item, opening)
	}
}

// ParseFlag interprets a flag attribute value: anything other than the
// literal string "false" is true.
func ParseFlag(value string) bool {
	return value != "false"
}

// FlagName converts a dashed attribute name to its camel-cased flag name.
func FlagName(attr string) string {
	parts := strings.Split(attr, "-")
	caser := cases.Title(language.Und)
	for i := 1; i < len(parts); i++ {
		parts[i] = caser.String(parts[i])
	}
	return strings.Join(parts, "")
}

type flagField struct {
	attr string
	ptr  *bool
}

type flagSet interface {
	fields() []flagField
}

func setFlag(fs flagSet, attr string, on bool) bool {
	for _, f := range fs.fields() {
		if f.attr == attr {
			*f.ptr = on
			return true
		}
	}
	return false
}

// readFlags sets each flag from the presence of its attribute on el.
func readFlags(fs flagSet, el *html.Node) {
	for _, f := range fs.fields() {
		*f.ptr = dom.HasAttr(el, f.attr)
	}
}

func writeFlags(fs flagSet, el *html.Node) {
	for _, f := range fs.fields() {
		dom.ToggleAttr(el, f.attr, *f.ptr)
	}
}

// ObservedAttributes returns the flag attributes recognised by a variant.
func ObservedAttributes(v Variant) []string {
	var fs flagSet
	switch v {
	case VariantAccordion:
		fs = &AccordionConfig{}
	case VariantTabs:
		fs = &TabsConfig{}
	case VariantTreeView:
		fs = &TreeViewConfig{}
	default:
		return nil
	}
	var out []string
	for _, f := range fs.fields() {
		out = append(out, f.attr)
	}
	return out
}
