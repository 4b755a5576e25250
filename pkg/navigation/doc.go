// Package navigation filters the admin menu by session role before
// rendering. Each entry carries a static visibility predicate decided at
// registration; filtering is a pure lookup with no state of its own.
//
//	menu := navigation.DefaultMenu()
//	for _, item := range menu.Visible(sessions.Session()) {
//	    // render item.Label linking to item.Path
//	}
//
// Entries registered without a predicate are treated as authenticated-only.
package navigation
