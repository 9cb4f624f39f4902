package direction

import (
	"strings"

	"lumen/internal/sample"
)

// NoDirectionKeys is the source descriptor reported when no candidate
// matched.
const NoDirectionKeys = "no_direction_keys_found"

// flatKeyCandidates lists the recognized three-component key triples, in
// priority order. The first triple whose keys are all present and parseable
// wins.
var flatKeyCandidates = [][3]string{
	{"dir_x", "dir_y", "dir_z"},
	{"dir_vx", "dir_vy", "dir_vz"},
	{"dirvx", "dirvy", "dirvz"},
	{"light_dir_x", "light_dir_y", "light_dir_z"},
	{"direction_x", "direction_y", "direction_z"},
	{"vx", "vy", "vz"},
	{"Lx", "Ly", "Lz"},
	{"L_x", "L_y", "L_z"},
}

// singleVectorCandidates lists fields whose value is a sequence of at least
// three components, in priority order.
var singleVectorCandidates = []string{
	"dir", "dir_v", "light_dir", "direction", "dir_vec", "dirv", "L", "light_direction",
}

// nestedRootCandidates lists object-valued fields searched for component
// triples, in priority order.
var nestedRootCandidates = []string{"dir", "direction", "light_dir", "L"}

var nestedComponentCandidates = [][3]string{
	{"x", "y", "z"},
	{"vx", "vy", "vz"},
	{"dir_x", "dir_y", "dir_z"},
}

// Vector is a raw direction extracted from a sample record.
type Vector struct {
	X, Y, Z float64
}

// Extract finds a direction vector in rec, trying flat key triples, then
// single vector-valued fields, then nested objects. Source names the keys
// that matched; ok is false when nothing usable was found, in which case
// source is NoDirectionKeys.
func Extract(rec sample.Record) (v Vector, source string, ok bool) {
	for _, keys := range flatKeyCandidates {
		vals, found := lookupTriple(rec, keys)
		if !found {
			continue
		}
		return vals, strings.Join(keys[:], ","), true
	}

	for _, key := range singleVectorCandidates {
		seq, isSeq := rec[key].([]any)
		if !isSeq || len(seq) < 3 {
			continue
		}
		x, okX := sample.AsFloat(seq[0])
		y, okY := sample.AsFloat(seq[1])
		z, okZ := sample.AsFloat(seq[2])
		if okX && okY && okZ {
			return Vector{x, y, z}, key, true
		}
	}

	for _, root := range nestedRootCandidates {
		obj, isObj := rec[root].(map[string]any)
		if !isObj {
			continue
		}
		for _, comps := range nestedComponentCandidates {
			vals, found := lookupTriple(sample.Record(obj), comps)
			if !found {
				continue
			}
			source := root + "." + comps[0] + "," + root + "." + comps[1] + "," + root + "." + comps[2]
			return vals, source, true
		}
	}

	return Vector{}, NoDirectionKeys, false
}

func lookupTriple(rec sample.Record, keys [3]string) (Vector, bool) {
	for _, k := range keys {
		if _, present := rec[k]; !present {
			return Vector{}, false
		}
	}
	x, okX := sample.AsFloat(rec[keys[0]])
	y, okY := sample.AsFloat(rec[keys[1]])
	z, okZ := sample.AsFloat(rec[keys[2]])
	if !okX || !okY || !okZ {
		return Vector{}, false
	}
	return Vector{x, y, z}, true
}
