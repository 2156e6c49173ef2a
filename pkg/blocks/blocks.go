// Package blocks finds widget source blocks in a page and decorates them.
//
// A block is an element whose class list names a widget ("accordion",
// "tabs", "treeview", "breadcrumb"). Additional classes on the block select
// widget options, and each bootstrap installs an animator that drives the
// CSS grid transitions the widgets' stylesheets expect.
package blocks

import (
	stderrors "errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/errors"
	"github.com/go-drift/aria/pkg/widgets"
)

// Env carries the page-wide settings shared by every bootstrap.
type Env struct {
	// Options is passed to every widget constructor.
	Options widgets.Options
	// Animated turns on the animation protocol for every widget.
	Animated bool
	// Page is the URL or path of the page, used by breadcrumbs.
	Page string
	// ExpandAllLabel and CollapseAllLabel override the accordion controls.
	ExpandAllLabel   string
	CollapseAllLabel string
	// Log receives one debug entry per decorated block. Defaults to the
	// logrus standard logger.
	Log logrus.FieldLogger
}

// DefaultEnv returns an animated environment for the site root.
func DefaultEnv() Env {
	return Env{Animated: true, Page: "/"}
}

func (e Env) log() logrus.FieldLogger {
	if e.Log == nil {
		return logrus.StandardLogger()
	}
	return e.Log
}

// Bootstrap decorates one block.
type Bootstrap func(block *html.Node, env Env) (widgets.Interactive, error)

var registry = []struct {
	class string
	boot  Bootstrap
}{
	{"accordion", Accordion},
	{"tabs", Tabs},
	{"treeview", TreeView},
	{"breadcrumb", Breadcrumb},
}

// Names returns the block classes that have a bootstrap.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, r := range registry {
		out = append(out, r.class)
	}
	return out
}

// Lookup returns the block name and bootstrap for block, or ok=false when
// none of its classes names a widget.
func Lookup(block *html.Node) (name string, boot Bootstrap, ok bool) {
	for _, r := range registry {
		if dom.HasClass(block, r.class) {
			return r.class, r.boot, true
		}
	}
	return "", nil, false
}

// IsBlock matches elements that Lookup recognises.
func IsBlock(n *html.Node) bool {
	_, _, ok := Lookup(n)
	return ok
}

// Decorate runs the bootstrap for block. Failures are reported through
// errors.Report and returned as *errors.AriaError.
func Decorate(block *html.Node, env Env) (widgets.Interactive, error) {
	name, boot, ok := Lookup(block)
	if !ok {
		err := &errors.AriaError{
			Op:   "blocks.Decorate",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("no widget for block classes %q", dom.GetAttr(block, "class")),
		}
		errors.Report(err)
		return nil, err
	}
	w, err := boot(block, env)
	if err != nil {
		kind := errors.KindUnknown
		var structErr *errors.StructureError
		if stderrors.As(err, &structErr) {
			kind = errors.KindStructure
		}
		aerr := &errors.AriaError{Op: "blocks.Decorate", Kind: kind, Widget: name, Err: err}
		errors.Report(aerr)
		return nil, aerr
	}
	env.log().WithFields(logrus.Fields{"widget": name, "id": dom.ID(w.Root())}).Debug("decorated block")
	return w, nil
}

// DecorateDocument decorates every block under root in document order and
// returns the resulting widgets. Blocks that fail are left in place; their
// errors are joined into the returned error. A block nested in another
// block is decorated only if it survives its parent's decoration.
func DecorateDocument(root *html.Node, env Env) ([]widgets.Interactive, error) {
	var (
		out  []widgets.Interactive
		errs []error
	)
	for _, block := range dom.FindAll(root, IsBlock) {
		if !dom.Contains(root, block) {
			continue
		}
		w, err := Decorate(block, env)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, w)
	}
	return out, stderrors.Join(errs...)
}
