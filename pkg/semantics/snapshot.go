package semantics

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/aria/pkg/dom"
)

// Node is one entry in an accessibility tree snapshot.
type Node struct {
	Role        string   `yaml:"role"`
	ID          string   `yaml:"id,omitempty"`
	Name        string   `yaml:"name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	States      []string `yaml:"states,omitempty"`
	Controls    []string `yaml:"controls,omitempty"`
	Owns        []string `yaml:"owns,omitempty"`
	Children    []*Node  `yaml:"children,omitempty"`

	flags Flags
}

// Flags returns the node's state flags.
func (n *Node) Flags() Flags { return n.flags }

// SnapshotOptions controls which elements appear in a snapshot.
type SnapshotOptions struct {
	// IncludeHidden keeps hidden subtrees, marked with the "hidden" state.
	IncludeHidden bool
	// Focused is the element holding focus; it gets the "focused" state.
	Focused *html.Node
}

// implicitRoles maps native elements to the role they expose without an
// explicit role attribute.
var implicitRoles = map[string]string{
	"button":  RoleButton,
	"summary": RoleButton,
	"details": RoleGroup,
	"nav":     RoleNavigation,
	"ol":      RoleList,
	"ul":      RoleList,
	"li":      RoleListItem,
}

// nameFromContent lists roles whose accessible name defaults to their text.
var nameFromContent = map[string]bool{
	RoleTreeItem: true,
	RoleTab:      true,
	RoleButton:   true,
	RoleLink:     true,
}

// Snapshot builds the accessibility tree rooted at root.
func Snapshot(root *html.Node, opts SnapshotOptions) *Node {
	doc := root
	for doc.Parent != nil {
		doc = doc.Parent
	}
	s := &snapshotter{doc: doc, opts: opts}
	out := &Node{Role: "root"}
	s.walk(root, out)
	if len(out.Children) == 1 {
		return out.Children[0]
	}
	return out
}

type snapshotter struct {
	doc  *html.Node
	opts SnapshotOptions
}

func (s *snapshotter) walk(n *html.Node, parent *Node) {
	if !dom.IsElement(n) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.walk(c, parent)
		}
		return
	}
	if dom.HasAttr(n, AttrHidden) && !s.opts.IncludeHidden {
		return
	}
	role := s.role(n)
	if role == "" || role == RoleNone || role == RolePresentation {
		for _, c := range dom.Children(n) {
			s.walk(c, parent)
		}
		return
	}

	flags := FlagsOf(n)
	if s.opts.Focused == n {
		flags = flags.Set(FlagFocused)
	}
	node := &Node{
		Role:        role,
		ID:          dom.ID(n),
		Name:        s.name(n, role),
		Description: s.description(n),
		States:      flags.Names(),
		Controls:    IDRefs(n, AttrControls),
		Owns:        IDRefs(n, AttrOwns),
		flags:       flags,
	}
	parent.Children = append(parent.Children, node)
	for _, c := range dom.Children(n) {
		s.walk(c, node)
	}
}

func (s *snapshotter) role(n *html.Node) string {
	if r := Role(n); r != "" {
		return r
	}
	if dom.Is(n, "a") && dom.HasAttr(n, "href") {
		return RoleLink
	}
	return implicitRoles[n.Data]
}

func (s *snapshotter) name(n *html.Node, role string) string {
	if label := dom.GetAttr(n, AttrLabel); label != "" {
		return label
	}
	if refs := IDRefs(n, AttrLabelledBy); len(refs) > 0 {
		return s.refText(refs)
	}
	if nameFromContent[role] {
		return collapse(dom.TextContent(n))
	}
	return ""
}

func (s *snapshotter) description(n *html.Node) string {
	if d := dom.GetAttr(n, AttrDescription); d != "" {
		return d
	}
	return s.refText(IDRefs(n, AttrDescribedBy))
}

func (s *snapshotter) refText(ids []string) string {
	var parts []string
	for _, id := range ids {
		if ref := dom.ByID(s.doc, id); ref != nil {
			parts = append(parts, collapse(dom.TextContent(ref)))
		}
	}
	return strings.Join(parts, " ")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Find returns the first node in the snapshot (depth first) with the given
// role and name.
func (n *Node) Find(role, name string) *Node {
	if n.Role == role && n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(role, name); found != nil {
			return found
		}
	}
	return nil
}

// YAML encodes the snapshot as YAML.
func (n *Node) YAML() ([]byte, error) {
	return yaml.Marshal(n)
}

// WriteTree writes an indented one-line-per-node rendering of the snapshot.
func (n *Node) WriteTree(w io.Writer) error {
	return n.writeTree(w, 0)
}

func (n *Node) writeTree(w io.Writer, depth int) error {
	line := strings.Repeat("  ", depth) + n.Role
	if n.Name != "" {
		line += fmt.Sprintf(" %q", n.Name)
	}
	if len(n.States) > 0 {
		line += " [" + strings.Join(n.States, " ") + "]"
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.writeTree(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
