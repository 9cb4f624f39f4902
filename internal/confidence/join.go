package confidence

import (
	"lumen/internal/ident"
	"lumen/internal/sample"
)

// candidateFields are the sample fields tried as identifier sources, in
// priority order. The first candidate that resolves to a table entry wins.
var candidateFields = []string{
	"painting_info",
	"painting_rank_id",
	"pose_info",
	"img_path",
	"file",
}

// JoinStats reports join coverage over a dataset.
type JoinStats struct {
	Matched int
	Missing int
}

// Lookup resolves the confidence for one record: each identifier candidate
// is canonicalized and looked up at the record's rank until one hits.
func (t Table) Lookup(rec sample.Record) (float64, bool) {
	rank := rec.Rank()
	for _, field := range candidateFields {
		raw := rec.String(field, "")
		if raw == "" {
			continue
		}
		baseID, _ := ident.Canonicalize(raw)
		if baseID == "" {
			continue
		}
		if conf, ok := t[Key{BaseID: baseID, Rank: rank}]; ok {
			return conf, true
		}
	}
	return 0, false
}

// Join annotates every record with a "confidence" field: the looked-up score
// when a table entry matches, nil otherwise.
func Join(table Table, recs []sample.Record) JoinStats {
	var stats JoinStats
	for _, rec := range recs {
		if conf, ok := table.Lookup(rec); ok {
			rec["confidence"] = conf
			stats.Matched++
		} else {
			rec["confidence"] = nil
			stats.Missing++
		}
	}
	return stats
}
