package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lumen/internal/config"
	"lumen/internal/pipeline"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "inspect <dataset>",
		Short: "Report direction-extraction coverage for a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(debug)
			if err != nil {
				return err
			}

			dataset, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve dataset path: %w", err)
			}

			result, err := pipeline.Run(logger, pipeline.Options{
				DatasetPath: dataset,
				QualityCSV:  cfg.Paths.QualityCSV,
				ExposureTag: cfg.Confidence.ExposureTag,
				GoodMAE:     cfg.Confidence.GoodMAE,
				BadMAE:      cfg.Confidence.BadMAE,
				Normalize:   cfg.Pipeline.Normalize,
			})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.SourceCounts))
			for _, sc := range result.TopSources(0) {
				pct := float64(sc.Count) / float64(result.Total) * 100
				rows = append(rows, []string{
					sc.Source,
					strconv.Itoa(sc.Count),
					fmt.Sprintf("%.1f%%", pct),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dataset: %s\n", dataset)
			if result.ExposureTag != "" {
				fmt.Fprintf(out, "Exposure tag: %s\n", result.ExposureTag)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Direction Source", "Samples", "Share"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Kept %d of %d samples (%d without a usable direction)\n",
				len(result.Samples), result.Total, result.Skipped)
			if cfg.Paths.QualityCSV != "" {
				fmt.Fprintf(out, "Confidence coverage: %d matched, %d missing\n",
					result.Join.Matched, result.Join.Missing)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}
