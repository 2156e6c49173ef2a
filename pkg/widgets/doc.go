// Package widgets turns loosely structured page markup into accessible
// interactive widgets.
//
// Each widget takes a source block (an element whose children are rows of
// cells, or a nested list), rebuilds its content into a role-annotated
// structure under a custom element root, and replaces the block with that
// root. After decoration the widget drives its state machine from host
// events delivered through HandleClick and HandleKey.
//
// # Variants
//
//	Accordion   <details>/<summary> disclosure panels, optional expand/collapse all
//	Tabs        role="tablist" with one role="tabpanel" per tab
//	TreeView    role="tree" over nested lists, with owned role="group" children
//	Breadcrumb  role="navigation" ordered list of links
//
// # Configuration
//
// Flags live in an explicit config struct given to the constructor:
//
//	acc := widgets.NewAccordion(widgets.Options{}, widgets.AccordionConfig{
//	    Single:     true,
//	    IsAnimated: true,
//	})
//
// The root element mirrors each flag as a boolean attribute. When the host
// changes an attribute later, call AttributeChanged: any value other than
// "false" turns the flag on. RemoveAttribute turns it off.
//
// # Animation
//
// Operations that change visible state return an *animation.Op. When a
// widget is animated, the commit waits one frame from the Coordinator's
// scheduler. Opening commits immediately and starts the animator; closing
// starts the animator and commits on the transition end of the item's
// transition target. A new operation on the same item cancels a pending
// close, and the cancelled operation still settles.
//
// # Focus
//
// Tabs and TreeView keep a roving tab stop: exactly one item has
// tabindex="0", the rest "-1". Keyboard moves go through the focus.Manager
// given in Options.
package widgets
