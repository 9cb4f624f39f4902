package confidence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"lumen/internal/ident"
)

// Key addresses one confidence table entry.
type Key struct {
	BaseID string
	Rank   int
}

// Table maps canonical (base id, rank) pairs to confidence scores. Built
// once per run and read-only afterwards; duplicate keys resolve
// last-write-wins.
type Table map[Key]float64

// LoadStats reports how quality-report loading went.
type LoadStats struct {
	Kept            int
	SkippedExposure int
	SkippedRank     int
}

// LoadOptions control table loading. Zero thresholds fall back to the
// package defaults.
type LoadOptions struct {
	// ExposureTag, when non-empty, keeps only rows whose canonicalized file
	// identifier carries this exposure condition.
	ExposureTag string
	GoodMAE     float64
	BadMAE      float64
}

// LoadTable reads the quality report at path and builds the confidence
// table. An empty or missing path yields an empty table and a warning, not
// an error; rows with unparsable ranks or the wrong exposure tag are
// skipped and counted.
func LoadTable(logger *slog.Logger, path string, opts LoadOptions) (Table, LoadStats, error) {
	table := make(Table)
	var stats LoadStats

	if strings.TrimSpace(path) == "" {
		return table, stats, nil
	}
	if opts.GoodMAE == 0 && opts.BadMAE == 0 {
		opts.GoodMAE = DefaultGoodMAE
		opts.BadMAE = DefaultBadMAE
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("quality report not found; confidence will be empty", "path", path)
			return table, stats, nil
		}
		return nil, stats, fmt.Errorf("open quality report: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			logger.Warn("quality report is empty", "path", path)
			return table, stats, nil
		}
		return nil, stats, fmt.Errorf("read quality report header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, stats, fmt.Errorf("read quality report row: %w", err)
		}

		rank, ok := parseRank(cell(row, columns, "rank", "0"))
		if !ok {
			stats.SkippedRank++
			continue
		}

		baseID, exposure := ident.Canonicalize(cell(row, columns, "file", ""))
		if opts.ExposureTag != "" && exposure != opts.ExposureTag {
			stats.SkippedExposure++
			continue
		}

		frac := floatCell(row, columns, "inlier_weight_frac", 0)
		mae := floatCell(row, columns, "mae_in_deg_weighted", maeSentinel)
		table[Key{BaseID: baseID, Rank: rank}] = Score(frac, mae, opts.GoodMAE, opts.BadMAE)
		stats.Kept++
	}

	logger.Info("loaded confidence table",
		"kept", stats.Kept,
		"skipped_exposure", stats.SkippedExposure,
		"skipped_rank", stats.SkippedRank,
		"exposure_tag", opts.ExposureTag)
	return table, stats, nil
}

func cell(row []string, columns map[string]int, name, fallback string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return fallback
	}
	return row[idx]
}

func floatCell(row []string, columns map[string]int, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell(row, columns, name, "")), 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseRank(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
