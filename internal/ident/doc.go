// Package ident canonicalizes the free-form identifiers that upstream
// estimation tools attach to samples.
//
// The same painting shows up under several spellings depending on which tool
// produced the record: as a bare label, as a points-file path
// (Artist_Name_ev-25_points.json.gz), or with a rank prefix (R2_Artist_Name).
// Canonicalize reduces all of them to one stable base id plus the exposure
// tag embedded in the name, so records and quality-report rows from different
// naming schemes can be correlated by (base id, rank).
//
// The stripping order is load-bearing: basename, extensions, _points suffix,
// exposure-tag suffix, rank prefix, then whitespace/underscore cleanup.
// Re-applying Canonicalize to its own output is a no-op.
package ident
