// Package history records completed builds in a local SQLite database so
// "lumen runs" can show what was built, from which dataset, and how many
// samples survived each stage.
package history
