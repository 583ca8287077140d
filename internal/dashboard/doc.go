// Package dashboard derives the dashboard view models from already-fetched
// trip and action item snapshots: the month calendar grid, the aggregate
// summary figures and the ordering of outstanding action items.
//
// Every function here is pure. The current instant is always passed in by the
// caller and inputs are never mutated, so results can be computed concurrently
// on separate snapshots.
package dashboard
