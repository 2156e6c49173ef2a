package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/aria/pkg/widgets"
)

type recordingT struct {
	fatal  string
	errors []string
}

func (r *recordingT) Helper()      {}
func (r *recordingT) Name() string { return "TestRecording" }
func (r *recordingT) Fatalf(format string, args ...any) {
	r.fatal = format
}
func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, format)
}

func TestCaptureSnapshot_Tree(t *testing.T) {
	tester := pumpTabs(t)

	snap := tester.CaptureSnapshot()
	if snap.Tree == nil {
		t.Fatal("expected a tree")
	}
	if snap.Tree.Find("tab", "Alpha") == nil {
		t.Error("expected the Alpha tab in the snapshot")
	}
	if snap.Focused != "" {
		t.Errorf("expected nothing focused, got %q", snap.Focused)
	}
}

func TestCaptureSnapshot_Focused(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tabs := widgets.NewTabs(tester.Options(), widgets.TabsConfig{})
	if err := tester.PumpWidget(tabs, tabsFixture); err != nil {
		t.Fatal(err)
	}
	tabs.FocusItem(tabs.Tabs()[1])

	snap := tester.CaptureSnapshot()
	if snap.Focused != "tab-3" {
		t.Errorf("expected tab-3 focused, got %q", snap.Focused)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	tester := pumpTabs(t)

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}

	tabs := tester.Widget().(*widgets.Tabs)
	tabs.SelectItem(tabs.Tabs()[1])
	c := tester.CaptureSnapshot()
	diff := a.Diff(c)
	if diff == "" {
		t.Fatal("expected a diff after selection changed")
	}
	if !strings.HasPrefix(diff, "--- expected\n+++ actual\n") {
		t.Errorf("unexpected diff header:\n%s", diff)
	}
}

func TestSnapshot_UpdateAndMatchFile(t *testing.T) {
	tester := pumpTabs(t)
	path := filepath.Join(t.TempDir(), "nested", "tabs.snapshot.yaml")

	snap := tester.CaptureSnapshot()
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	rec := &recordingT{}
	snap.MatchesFile(rec, path)
	if rec.fatal != "" || len(rec.errors) != 0 {
		t.Errorf("expected a match, got fatal=%q errors=%v", rec.fatal, rec.errors)
	}
}

func TestSnapshot_MatchesFileMissing(t *testing.T) {
	t.Setenv("ARIA_UPDATE_SNAPSHOTS", "")
	tester := pumpTabs(t)

	rec := &recordingT{}
	tester.CaptureSnapshot().MatchesFile(rec, filepath.Join(t.TempDir(), "missing.yaml"))
	if !strings.Contains(rec.fatal, "snapshot file missing") {
		t.Errorf("expected missing-file failure, got %q", rec.fatal)
	}
}
