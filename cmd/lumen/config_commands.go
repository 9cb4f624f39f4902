package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lumen/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set paths.dataset before running `lumen build`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Show the resolved configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configFlag, _ := cmd.Flags().GetString("config")
			cfg, path, exists, err := config.Load(strings.TrimSpace(configFlag))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; showing defaults")
			}

			rows := [][]string{
				{"paths.dataset", cfg.Paths.Dataset},
				{"paths.quality_csv", cfg.Paths.QualityCSV},
				{"paths.images_dir", cfg.Paths.ImagesDir},
				{"paths.plots_dir", cfg.Paths.PlotsDir},
				{"paths.balls_dir", cfg.Paths.BallsDir},
				{"paths.out_dir", cfg.Paths.OutDir},
				{"paths.log_dir", cfg.Paths.LogDir},
				{"site.title", cfg.Site.Title},
				{"site.img_prefix", cfg.Site.ImgPrefix},
				{"site.plots_prefix", cfg.Site.PlotsPrefix},
				{"site.balls_prefix", cfg.Site.BallsPrefix},
				{"confidence.good_mae_deg", strconv.FormatFloat(cfg.Confidence.GoodMAE, 'g', -1, 64)},
				{"confidence.bad_mae_deg", strconv.FormatFloat(cfg.Confidence.BadMAE, 'g', -1, 64)},
				{"confidence.exposure_tag", cfg.Confidence.ExposureTag},
				{"pipeline.normalize", strconv.FormatBool(cfg.Pipeline.Normalize)},
				{"history.enabled", strconv.FormatBool(cfg.History.Enabled)},
				{"logging.format", cfg.Logging.Format},
				{"logging.level", cfg.Logging.Level},
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Setting", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
