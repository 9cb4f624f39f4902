package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"lumen/internal/history"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent build runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs yet; run `lumen build` first.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				tag := run.ExposureTag
				if tag == "" {
					tag = "—"
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String(),
					filepath.Base(run.Dataset),
					tag,
					fmt.Sprintf("%d/%d", run.SamplesKept, run.SamplesTotal),
					strconv.Itoa(run.ConfMatched),
					strconv.Itoa(run.ConfMissing),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Duration", "Dataset", "Exposure", "Kept", "Conf OK", "Conf Miss"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	return cmd
}
