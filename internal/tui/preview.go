// Package tui is an interactive terminal preview of a decorated widget. The
// widget's accessibility tree is redrawn after every key; frames are stepped
// on a timer and CSS transitions are simulated by ending them once the
// configured duration has passed.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/animation"
	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/errors"
	"github.com/go-drift/aria/pkg/semantics"
	"github.com/go-drift/aria/pkg/widgets"
)

const (
	defaultTick     = 50 * time.Millisecond
	defaultDuration = 250 * time.Millisecond
	barWidth        = 20
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	focusedStyle  = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hiddenStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var keyMap = map[string]widgets.Key{
	"up":    widgets.KeyUp,
	"down":  widgets.KeyDown,
	"left":  widgets.KeyLeft,
	"right": widgets.KeyRight,
	"home":  widgets.KeyHome,
	"end":   widgets.KeyEnd,
	" ":     widgets.KeySpace,
	"space": widgets.KeySpace,
	"enter": widgets.KeyEnter,
}

// Options configures a Preview.
type Options struct {
	// Tick is the interval between frames.
	Tick time.Duration
	// Duration is how long a simulated transition runs before it ends.
	Duration time.Duration
	// ShowHidden keeps hidden subtrees in the rendered tree.
	ShowHidden bool
}

type tickMsg time.Time

// Preview is the bubbletea model.
type Preview struct {
	session *Session
	widget  widgets.Interactive
	opts    Options

	now     time.Time
	started map[*html.Node]time.Time
	status  string
	err     string
	width   int
}

// New returns a preview of w, which must have been built with
// session.Options() and already decorated.
func New(session *Session, w widgets.Interactive, opts Options) *Preview {
	if opts.Tick <= 0 {
		opts.Tick = defaultTick
	}
	if opts.Duration <= 0 {
		opts.Duration = defaultDuration
	}
	p := &Preview{
		session: session,
		widget:  w,
		opts:    opts,
		started: make(map[*html.Node]time.Time),
	}
	if !dom.Contains(w.Root(), session.Focus.Focused()) {
		if stops := p.tabStops(); len(stops) > 0 {
			session.Focus.Focus(stops[0])
		}
	}
	return p
}

func (p *Preview) tick() tea.Cmd {
	return tea.Tick(p.opts.Tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame timer.
func (p *Preview) Init() tea.Cmd {
	return p.tick()
}

// Update handles keys, frame ticks and resizes.
func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "tab":
			p.moveFocus(1)
		case "shift+tab":
			p.moveFocus(-1)
		default:
			p.dispatch(msg.String())
		}
	case tickMsg:
		p.Advance(time.Time(msg))
		return p, p.tick()
	case tea.WindowSizeMsg:
		p.width = msg.Width
	}
	return p, nil
}

// Advance runs one frame at now and ends every transition that has been
// pending for at least the configured duration.
func (p *Preview) Advance(now time.Time) {
	p.now = now
	p.session.Loop.Step()
	pending := make(map[*html.Node]bool)
	for _, target := range p.session.Transitions.Targets() {
		pending[target] = true
		start, ok := p.started[target]
		if !ok {
			p.started[target] = now
			continue
		}
		if now.Sub(start) >= p.opts.Duration {
			p.session.Transitions.End(target)
			delete(pending, target)
			delete(p.started, target)
		}
	}
	for target := range p.started {
		if !pending[target] {
			delete(p.started, target)
		}
	}
}

// Animating reports whether a transition is in flight.
func (p *Preview) Animating() bool {
	return len(p.session.Transitions.Targets()) > 0
}

// Progress returns the eased progress of the oldest pending transition.
func (p *Preview) Progress() float64 {
	var oldest time.Time
	for _, start := range p.started {
		if oldest.IsZero() || start.Before(oldest) {
			oldest = start
		}
	}
	if oldest.IsZero() {
		return 0
	}
	return animation.Progress(p.now.Sub(oldest), p.opts.Duration, animation.EaseInOut)
}

func (p *Preview) dispatch(name string) {
	defer errors.RecoverWithCallback("tui.dispatch", func(r any) {
		p.err = fmt.Sprint(r)
	})
	key, ok := keyMap[name]
	if !ok {
		p.status = fmt.Sprintf("%q not bound", name)
		return
	}
	target := p.session.Focus.Focused()
	if target == nil {
		p.status = "nothing focused"
		return
	}
	p.err = ""
	handled := p.widget.HandleKey(target, key)
	if !handled && (key == widgets.KeyEnter || key == widgets.KeySpace) {
		handled = p.widget.HandleClick(target)
	}
	if handled {
		p.status = fmt.Sprintf("%s handled", name)
	} else {
		p.status = fmt.Sprintf("%s ignored", name)
	}
}

// tabStops lists the focusable elements of the widget in document order.
func (p *Preview) tabStops() []*html.Node {
	return dom.FindAll(p.widget.Root(), func(n *html.Node) bool {
		switch tabindex, ok := dom.Attr(n, "tabindex"); {
		case ok && tabindex == "0":
		case ok:
			return false
		case dom.Is(n, "summary", "button") || (dom.Is(n, "a") && dom.HasAttr(n, "href")):
		default:
			return false
		}
		return reachable(n)
	})
}

func reachable(n *html.Node) bool {
	if dom.Closest(n, dom.AttrPresent(semantics.AttrHidden)) != nil {
		return false
	}
	details := dom.Closest(n, dom.Tag("details"))
	return details == nil || dom.HasAttr(details, semantics.AttrOpen) || dom.Closest(n, dom.Tag("summary")) != nil
}

func (p *Preview) moveFocus(delta int) {
	stops := p.tabStops()
	if len(stops) == 0 {
		return
	}
	current := p.session.Focus.Focused()
	next := stops[0]
	for i, n := range stops {
		if n == current {
			next = stops[(i+delta+len(stops))%len(stops)]
			break
		}
	}
	p.session.Focus.Focus(next)
}

// View renders the accessibility tree.
func (p *Preview) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("aria preview: " + p.widget.Variant().String()))
	b.WriteString("\n\n")
	tree := semantics.Snapshot(p.widget.Root(), semantics.SnapshotOptions{
		IncludeHidden: p.opts.ShowHidden,
		Focused:       p.session.Focus.Focused(),
	})
	renderNode(&b, tree, 0)
	b.WriteString("\n")
	if p.Animating() {
		filled := int(p.Progress() * barWidth)
		b.WriteString("animating [" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]\n")
	}
	if p.err != "" {
		b.WriteString(errorStyle.Render("error: "+p.err) + "\n")
	}
	if p.status != "" {
		b.WriteString(statusStyle.Render(p.status) + "\n")
	}
	b.WriteString(statusStyle.Render("arrows/home/end move  space/enter activate  tab next stop  q quit"))
	return b.String()
}

func renderNode(b *strings.Builder, n *semantics.Node, depth int) {
	line := n.Role
	if n.Name != "" {
		line += fmt.Sprintf(" %q", n.Name)
	}
	if len(n.States) > 0 {
		line += " [" + strings.Join(n.States, " ") + "]"
	}
	flags := n.Flags()
	switch {
	case flags.Has(semantics.FlagFocused):
		line = focusedStyle.Render(line)
	case flags.Has(semantics.FlagHidden):
		line = hiddenStyle.Render(line)
	case flags.Has(semantics.FlagSelected), flags.Has(semantics.FlagChecked), flags.Has(semantics.FlagCurrent):
		line = selectedStyle.Render(line)
	}
	b.WriteString(strings.Repeat("  ", depth) + line + "\n")
	for _, c := range n.Children {
		renderNode(b, c, depth+1)
	}
}
