package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"lumen/internal/assets"
	"lumen/internal/config"
	"lumen/internal/history"
	"lumen/internal/pipeline"
	"lumen/internal/site"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var datasetFlag string
	var outDirFlag string
	var noNormalize bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the viewer site from a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(debug)
			if err != nil {
				return err
			}

			dataset := strings.TrimSpace(datasetFlag)
			if dataset == "" {
				dataset = cfg.Paths.Dataset
			}
			if dataset == "" {
				return errors.New("no dataset configured; pass --dataset or set paths.dataset")
			}
			if dataset, err = config.ExpandPath(dataset); err != nil {
				return fmt.Errorf("resolve dataset path: %w", err)
			}

			outDir := strings.TrimSpace(outDirFlag)
			if outDir == "" {
				outDir = cfg.Paths.OutDir
			}
			if outDir, err = config.ExpandPath(outDir); err != nil {
				return fmt.Errorf("resolve output directory: %w", err)
			}

			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "lumen-build.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire build lock: %w", err)
			}
			if !locked {
				return errors.New("another lumen build is already running")
			}
			defer lock.Unlock()

			started := time.Now()
			result, err := pipeline.Run(logger, pipeline.Options{
				DatasetPath: dataset,
				QualityCSV:  cfg.Paths.QualityCSV,
				ExposureTag: cfg.Confidence.ExposureTag,
				GoodMAE:     cfg.Confidence.GoodMAE,
				BadMAE:      cfg.Confidence.BadMAE,
				Normalize:   cfg.Pipeline.Normalize && !noNormalize,
			})
			if err != nil {
				return err
			}

			if _, err := assets.StageImages(logger, result.Samples, cfg.Paths.ImagesDir, outDir, cfg.Site.ImgPrefix); err != nil {
				return fmt.Errorf("stage images: %w", err)
			}
			if _, err := assets.StagePlots(logger, cfg.Paths.PlotsDir, outDir, cfg.Site.PlotsPrefix); err != nil {
				return fmt.Errorf("stage plots: %w", err)
			}
			if _, err := assets.StageBalls(logger, cfg.Paths.BallsDir, outDir, cfg.Site.BallsPrefix); err != nil {
				return fmt.Errorf("stage chrome balls: %w", err)
			}

			indexPath, err := site.WriteSite(logger, outDir, site.Options{
				Title:       cfg.Site.Title,
				ImgPrefix:   cfg.Site.ImgPrefix,
				PlotsPrefix: cfg.Site.PlotsPrefix,
				BallsPrefix: cfg.Site.BallsPrefix,
			}, result.Samples)
			if err != nil {
				return err
			}

			if cfg.History.Enabled {
				if err := recordBuildRun(cfg, result, dataset, outDir, started); err != nil {
					logger.Warn("failed to record build run", "error", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build complete: %d of %d samples kept (%d skipped)\n",
				len(result.Samples), result.Total, result.Skipped)
			if cfg.Paths.QualityCSV != "" {
				fmt.Fprintf(out, "Confidence: %d matched, %d missing\n",
					result.Join.Matched, result.Join.Missing)
			}
			fmt.Fprintf(out, "Viewer: %s\n", indexPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Dataset file (.json/.jsonl, optionally .gz)")
	cmd.Flags().StringVar(&outDirFlag, "out-dir", "", "Output directory for the generated site")
	cmd.Flags().BoolVar(&noNormalize, "no-normalize", false, "Keep raw direction components instead of unit vectors")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}

func recordBuildRun(cfg *config.Config, result *pipeline.Result, dataset, outDir string, started time.Time) error {
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.RecordRun(context.Background(), history.Run{
		StartedAt:            started,
		FinishedAt:           time.Now(),
		Dataset:              dataset,
		ExposureTag:          result.ExposureTag,
		SamplesTotal:         result.Total,
		SamplesKept:          len(result.Samples),
		SamplesSkipped:       result.Skipped,
		ConfMatched:          result.Join.Matched,
		ConfMissing:          result.Join.Missing,
		TableKept:            result.Load.Kept,
		TableSkippedExposure: result.Load.SkippedExposure,
		TableSkippedRank:     result.Load.SkippedRank,
		OutDir:               outDir,
	})
	return err
}
