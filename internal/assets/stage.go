package assets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lumen/internal/fileutil"
	"lumen/internal/sample"
)

// StageStats reports asset staging coverage.
type StageStats struct {
	Copied  int
	Missing int
}

// StageImages resolves each sample's img_path basename through an index of
// srcDir and copies the matches into outDir/prefix. Missing basenames are
// counted, not fatal. An empty or absent srcDir stages nothing.
func StageImages(logger *slog.Logger, recs []sample.Record, srcDir, outDir, prefix string) (StageStats, error) {
	var stats StageStats
	if !sourceUsable(logger, srcDir, "images") {
		return stats, nil
	}

	idx, err := BuildIndex(srcDir)
	if err != nil {
		return stats, fmt.Errorf("index image source: %w", err)
	}

	needed := make(map[string]struct{})
	for _, rec := range recs {
		p := rec.String("img_path", "")
		if p == "" {
			continue
		}
		base := filepath.Base(strings.ReplaceAll(p, `\`, "/"))
		if base != "" && base != "." {
			needed[base] = struct{}{}
		}
	}

	names := make([]string, 0, len(needed))
	for name := range needed {
		names = append(names, name)
	}
	sort.Strings(names)

	dstRoot := filepath.Join(outDir, prefix)
	for _, name := range names {
		src, found := idx[name]
		if !found {
			stats.Missing++
			logger.Debug("painting image not found under source", "basename", name)
			continue
		}
		if err := fileutil.CopyIfMissing(src, filepath.Join(dstRoot, name)); err != nil {
			return stats, fmt.Errorf("stage image %s: %w", name, err)
		}
		stats.Copied++
	}

	logger.Info("staged painting images", "copied", stats.Copied, "missing", stats.Missing, "dst", dstRoot)
	return stats, nil
}

// StagePlots copies every *.plot.json under srcDir into outDir/prefix.
func StagePlots(logger *slog.Logger, srcDir, outDir, prefix string) (int, error) {
	return stageMatching(logger, srcDir, outDir, prefix, "plot JSON", func(name string) bool {
		return strings.HasSuffix(name, ".plot.json")
	})
}

// StageBalls copies every chrome-ball render (*_ev-XX*.png) under srcDir
// into outDir/prefix.
func StageBalls(logger *slog.Logger, srcDir, outDir, prefix string) (int, error) {
	return stageMatching(logger, srcDir, outDir, prefix, "chrome balls", func(name string) bool {
		low := strings.ToLower(name)
		if !strings.HasSuffix(low, ".png") {
			return false
		}
		return strings.Contains(low, "_ev-00") || strings.Contains(low, "_ev-25") || strings.Contains(low, "_ev-50")
	})
}

func stageMatching(logger *slog.Logger, srcDir, outDir, prefix, what string, match func(string) bool) (int, error) {
	if !sourceUsable(logger, srcDir, what) {
		return 0, nil
	}

	dstRoot := filepath.Join(outDir, prefix)
	copied := 0
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !match(d.Name()) {
			return nil
		}
		if err := fileutil.CopyIfMissing(path, filepath.Join(dstRoot, d.Name())); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("stage %s: %w", what, err)
	}

	logger.Info("staged assets", "kind", what, "copied", copied, "dst", dstRoot)
	return copied, nil
}

func sourceUsable(logger *slog.Logger, srcDir, what string) bool {
	if strings.TrimSpace(srcDir) == "" {
		logger.Info("asset source not configured; skipping", "kind", what)
		return false
	}
	if _, err := os.Stat(srcDir); err != nil {
		logger.Warn("asset source not found; skipping", "kind", what, "path", srcDir)
		return false
	}
	return true
}
