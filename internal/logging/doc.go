// Package logging assembles the structured slog loggers used across lumen.
//
// It owns the console and JSON handlers and centralizes level/format
// plumbing so every component emits log lines with the same shape. The
// console format is the default when stdout is a terminal; JSON otherwise.
// Prefer these constructors over hand-rolled slog setup.
package logging
