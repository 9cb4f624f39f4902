// Package pipeline turns a raw sample collection into the normalized,
// confidence-annotated point set the viewer consumes.
//
// Run loads the dataset, joins the quality report for confidence scores,
// extracts a direction vector from each sample's heterogeneous schema, and
// normalizes it to unit length. Samples without a recognizable direction are
// dropped and counted; a dataset that yields zero usable points is an error.
package pipeline
