package semantics

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/dom"
)

func fixture(t *testing.T, s string) *html.Node {
	t.Helper()
	root := dom.NewElement("div")
	if err := dom.ParseInto(root, s); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestStateEncoding(t *testing.T) {
	n := dom.NewElement("span")
	if _, present := State(n, AttrExpanded); present {
		t.Error("missing attribute must not be present")
	}
	SetState(n, AttrExpanded, false)
	if got := dom.GetAttr(n, AttrExpanded); got != "false" {
		t.Errorf("aria-expanded = %q, want false", got)
	}
	SetState(n, AttrExpanded, true)
	if on, present := State(n, AttrExpanded); !on || !present {
		t.Error("aria-expanded should read true")
	}
}

func TestFlags(t *testing.T) {
	var f Flags
	f = f.Set(FlagSelected).Set(FlagHidden)
	if !f.Has(FlagSelected) || f.Has(FlagChecked) {
		t.Error("unexpected flag membership")
	}
	f = f.Clear(FlagHidden)
	if got := strings.Join(f.Names(), ","); got != "selected" {
		t.Errorf("Names = %q", got)
	}

	n := dom.NewElement("span", AttrExpanded, "false", AttrChecked, "true", AttrTabIndex, "0")
	got := FlagsOf(n)
	for _, want := range []Flag{FlagExpandable, FlagChecked, FlagFocusable} {
		if !got.Has(want) {
			t.Errorf("FlagsOf missing %v", want)
		}
	}
	if got.Has(FlagExpanded) {
		t.Error("collapsed item must not be expanded")
	}
}

func TestSnapshotNamesAndHidden(t *testing.T) {
	root := fixture(t, `
<ul role="tablist">
  <li role="presentation"><a role="tab" id="t1" aria-selected="true" tabindex="0" aria-controls="p1">First  tab</a></li>
  <li role="presentation"><a role="tab" id="t2" aria-selected="false" tabindex="-1" aria-controls="p2">Second</a></li>
</ul>
<div role="tabpanel" id="p1" aria-labelledby="t1">one</div>
<div role="tabpanel" id="p2" aria-labelledby="t2" hidden>two</div>`)

	snap := Snapshot(root, SnapshotOptions{Focused: dom.ByID(root, "t1")})
	tab := snap.Find(RoleTab, "First tab")
	if tab == nil {
		t.Fatal("first tab missing from snapshot")
	}
	if !tab.Flags().Has(FlagSelected) || !tab.Flags().Has(FlagFocused) {
		t.Errorf("tab states = %v", tab.States)
	}
	if len(tab.Controls) != 1 || tab.Controls[0] != "p1" {
		t.Errorf("controls = %v", tab.Controls)
	}
	if snap.Find(RoleTabPanel, "First tab") == nil {
		t.Error("visible panel should be named by its tab")
	}
	if snap.Find(RoleTabPanel, "Second") != nil {
		t.Error("hidden panel should be excluded")
	}

	all := Snapshot(root, SnapshotOptions{IncludeHidden: true})
	if p := all.Find(RoleTabPanel, "Second"); p == nil || !p.Flags().Has(FlagHidden) {
		t.Error("hidden panel should be included and marked hidden")
	}
}

func TestSnapshotOutput(t *testing.T) {
	root := fixture(t, `<nav aria-label="Navigation"><ol><li><a href="/">Home</a></li></ol></nav>`)
	snap := Snapshot(root, SnapshotOptions{})
	if snap.Role != RoleNavigation || snap.Name != "Navigation" {
		t.Fatalf("root = %s %q", snap.Role, snap.Name)
	}

	out, err := snap.YAML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "role: navigation") {
		t.Errorf("yaml = %s", out)
	}

	var sb strings.Builder
	if err := snap.WriteTree(&sb); err != nil {
		t.Fatal(err)
	}
	want := "navigation \"Navigation\"\n  list\n    listitem\n      link \"Home\"\n"
	if sb.String() != want {
		t.Errorf("tree =\n%s\nwant\n%s", sb.String(), want)
	}
}
