// Package testing provides a widget testing harness for aria widgets.
//
// # Quick Start
//
// Create a tester, decorate a fixture, and drive the widget:
//
//	func TestMyTabs(t *testing.T) {
//	    tester := ariatest.NewWidgetTesterWithT(t)
//	    tabs := widgets.NewTabs(tester.Options(), widgets.TabsConfig{})
//	    if err := tester.PumpWidget(tabs, fixture); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    tester.Click(tester.Find(ariatest.ByRole("tab")).At(1))
//	    tester.Key(widgets.KeyRight)
//
//	    if tester.Focused() != tester.Find(ariatest.ByRole("tab")).At(2) {
//	        t.Error("expected focus on the third tab")
//	    }
//	}
//
// # Frames and Transitions
//
// The tester owns the frame loop and transition registry given to widgets
// through Options. Nothing animated commits until the test advances it:
//
//	tester.Pump()            // run one frame
//	tester.EndTransitions()  // fire every pending transition end
//	tester.Settle()          // both, until nothing is pending
//
// # Snapshot Testing
//
// Capture and compare accessibility tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/tabs.snapshot.yaml")
//
// Update snapshots with:
//
//	ARIA_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import ariatest "github.com/go-drift/aria/pkg/testing"
package testing
