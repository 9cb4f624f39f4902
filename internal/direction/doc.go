// Package direction extracts 3D light-direction vectors from schema-free
// sample records and unit-normalizes them.
//
// Extraction is an ordered first-match-wins search over the field-naming
// conventions the upstream tools are known to emit: flat key triples
// (dir_x/dir_y/dir_z and friends), single vector-valued fields (dir,
// light_dir, ...), and nested objects (dir.x/dir.y/dir.z). The candidate
// order is a documented contract; a candidate with any unparsable component
// is skipped, not fatal. The matched keys are reported back for diagnostics.
package direction
