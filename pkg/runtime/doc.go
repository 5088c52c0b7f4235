// Package runtime is a minimal host renderer for vdom trees: it mounts
// a root VNode, keeps component instances with hook-slot state alive
// across renders, and re-renders the smallest dirty subtree on Flush.
//
// The model is single-threaded cooperative. Invalidations may arrive
// from any goroutine (store listeners, async settlement) and only mark
// instances dirty; all rendering, commit, and effect work happens on
// the goroutine that calls Flush. Wake exposes a channel that fires
// when there is work, so a driver loop can sleep between flushes.
package runtime
