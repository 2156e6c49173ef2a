package ids

import (
	"strings"
	"testing"

	"github.com/go-drift/aria/pkg/dom"
)

func TestRandomUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Random{}.New("tab")
		if !strings.HasPrefix(id, "tab-") {
			t.Fatalf("id %q missing prefix", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestRandomDefaultPrefix(t *testing.T) {
	if id := (Random{}).New(""); !strings.HasPrefix(id, DefaultPrefix+"-") {
		t.Errorf("id = %q", id)
	}
}

func TestSequence(t *testing.T) {
	var s Sequence
	if got := s.New("tab"); got != "tab-1" {
		t.Errorf("first = %q", got)
	}
	if got := s.New("panel"); got != "panel-2" {
		t.Errorf("second = %q", got)
	}
}

func TestEnsureKeepsExisting(t *testing.T) {
	var s Sequence
	n := dom.NewElement("a", "id", "keep")
	if got := Ensure(&s, n, "tab"); got != "keep" {
		t.Errorf("Ensure = %q, want keep", got)
	}
	m := dom.NewElement("a")
	if got := Ensure(&s, m, "tab"); got != "tab-1" || dom.ID(m) != "tab-1" {
		t.Errorf("Ensure = %q, id attr = %q", got, dom.ID(m))
	}
}
