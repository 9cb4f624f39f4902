// Package assets correlates samples with on-disk assets and stages them
// into the site output directory.
//
// Source trees are nested (per-artist folders and the like), so lookup goes
// through a flat basename index built by a single walk: the first path seen
// for a basename wins and is never overwritten. Indexing is therefore
// order-sensitive; callers that need a specific subfolder precedence must
// arrange the tree accordingly.
package assets
