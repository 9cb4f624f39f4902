package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"sort"

	"lumen/internal/confidence"
	"lumen/internal/direction"
	"lumen/internal/ident"
	"lumen/internal/sample"
)

// ErrNoDirections reports a dataset in which no sample carried a usable
// direction vector. Building a site from such a dataset would publish an
// empty viewer, so the build stops instead.
var ErrNoDirections = errors.New("no samples with usable direction vectors")

// Options configures a pipeline run.
type Options struct {
	DatasetPath string
	// QualityCSV is the solver quality report. Empty disables confidence
	// annotation.
	QualityCSV string
	// ExposureTag filters quality rows. Empty derives the tag from the
	// dataset filename.
	ExposureTag string
	GoodMAE     float64
	BadMAE      float64
	// Normalize scales direction vectors to unit length. Degenerate vectors
	// are dropped. When false, raw components pass through unchanged.
	Normalize bool
}

// Result summarizes a pipeline run.
type Result struct {
	// Samples holds the surviving records, annotated in place with x, y, z,
	// dir_norm_raw, dir_src_keys, and confidence.
	Samples      []sample.Record
	Total        int
	Skipped      int
	SourceCounts map[string]int
	ExposureTag  string
	Load         confidence.LoadStats
	Join         confidence.JoinStats
}

// Run executes the full dataset pipeline.
func Run(logger *slog.Logger, opts Options) (*Result, error) {
	recs, err := sample.Load(opts.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	tag := opts.ExposureTag
	if tag == "" {
		tag = ident.ExposureTag(filepath.Base(opts.DatasetPath))
		if tag != "" {
			logger.Info("derived exposure tag from dataset filename", "tag", tag)
		}
	}

	result := &Result{
		Total:        len(recs),
		SourceCounts: make(map[string]int),
		ExposureTag:  tag,
	}

	var table confidence.Table
	if opts.QualityCSV != "" {
		table, result.Load, err = confidence.LoadTable(logger, opts.QualityCSV, confidence.LoadOptions{
			ExposureTag: tag,
			GoodMAE:     opts.GoodMAE,
			BadMAE:      opts.BadMAE,
		})
		if err != nil {
			return nil, fmt.Errorf("load quality report: %w", err)
		}
	} else {
		logger.Info("no quality report configured, confidence annotation disabled")
	}
	result.Join = confidence.Join(table, recs)

	for _, rec := range recs {
		vec, source, ok := direction.Extract(rec)
		result.SourceCounts[source]++
		if !ok {
			result.Skipped++
			continue
		}

		mag := direction.Magnitude(vec)
		if opts.Normalize {
			unit := direction.Normalize(vec, direction.DefaultEpsilon)
			if !unit.OK {
				result.Skipped++
				logger.Debug("dropping degenerate direction vector",
					"source", source, "magnitude", mag)
				continue
			}
			rec["x"], rec["y"], rec["z"] = unit.X, unit.Y, unit.Z
			rec["dir_norm_raw"] = unit.Magnitude
		} else {
			rec["x"], rec["y"], rec["z"] = vec.X, vec.Y, vec.Z
			if math.IsInf(mag, 0) || math.IsNaN(mag) {
				rec["dir_norm_raw"] = nil
			} else {
				rec["dir_norm_raw"] = mag
			}
		}
		rec["dir_src_keys"] = source
		result.Samples = append(result.Samples, rec)
	}

	if len(result.Samples) == 0 {
		return nil, fmt.Errorf("%w (dataset %s, %d records)", ErrNoDirections, opts.DatasetPath, result.Total)
	}

	logger.Info("pipeline complete",
		"total", result.Total,
		"kept", len(result.Samples),
		"skipped", result.Skipped,
		"confidence_matched", result.Join.Matched,
		"confidence_missing", result.Join.Missing,
	)
	for _, sc := range result.TopSources(5) {
		logger.Debug("direction source", "keys", sc.Source, "count", sc.Count)
	}
	return result, nil
}

// SourceCount pairs a direction-key source with its occurrence count.
type SourceCount struct {
	Source string
	Count  int
}

// TopSources returns the most common direction-key sources, ties broken by
// name, limited to n entries. n <= 0 returns all.
func (r *Result) TopSources(n int) []SourceCount {
	counts := make([]SourceCount, 0, len(r.SourceCounts))
	for source, count := range r.SourceCounts {
		counts = append(counts, SourceCount{Source: source, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Source < counts[j].Source
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
