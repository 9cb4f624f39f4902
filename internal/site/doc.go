// Package site renders the static viewer page: an interactive Plotly
// scatter of unit light directions with per-sample detail, rank toggles,
// and artist/genre filters. The page is self-contained apart from the
// Plotly CDN script and the staged asset directories.
package site
