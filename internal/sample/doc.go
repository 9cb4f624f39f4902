// Package sample models the schema-free records emitted by the upstream
// estimation pipeline and loads them from disk.
//
// Upstream tools disagree on field names and types, so a Record is a plain
// string-keyed map with get-with-default accessors; nothing about a field's
// presence is assumed at compile time, and fields the pipeline does not
// recognize pass through to the output untouched. Numeric coercion is
// best-effort: parse failures yield the caller's fallback, never an error.
//
// Datasets are JSON arrays (.json) or line-delimited JSON (.jsonl), either
// of which may be gzip-compressed (.gz suffix).
package sample
