// Package confidence scores sample quality and joins the scores onto the
// dataset.
//
// The score combines two metrics from the upstream solver's quality report:
// the inlier weight fraction and the weighted mean angular error. The error
// maps onto [0, 1] through a linear ramp between a "good" and a "bad"
// threshold, and the final confidence is the inlier fraction times that ramp
// value, clamped to [0, 1]. Missing or unparsable metrics score zero rather
// than failing.
//
// The report is loaded once per run into a (base id, rank) table, filtered
// to a single exposure condition; the joiner then tries each sample's
// identifier candidates in priority order and attaches the first hit.
package confidence
