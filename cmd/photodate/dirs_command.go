package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"photodate/internal/dirdate"
	"photodate/internal/logging"
	"photodate/internal/organizer"
	"photodate/internal/pathmatch"
)

func newDirsCommand(ctx *commandContext) *cobra.Command {
	var (
		filesFlag []string
		quantiles []float64
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "dirs [patterns...]",
		Short: "Print commands renaming directories to their date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(quantiles) == 0 {
				quantiles = cfg.Estimate.Quantiles
			}
			for _, q := range quantiles {
				if q < 0 || q > 1 {
					return fmt.Errorf("quantile %v is outside [0, 1]", q)
				}
			}

			dirs, err := pathmatch.Dirs(append(args, filesFlag...))
			if err != nil {
				return err
			}
			if len(dirs) == 0 {
				return fmt.Errorf("no directories match the given patterns")
			}
			sort.Strings(dirs)

			provider, err := ctx.ensureProvider()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()
			estimator := dirdate.New(provider, logger)

			out := cmd.OutOrStdout()
			for _, dir := range dirs {
				est, err := estimator.Estimate(dir, dirdate.Options{
					Quantiles:    quantiles,
					MinRangeDays: cfg.Estimate.MinRangeDays,
					FilePatterns: cfg.Estimate.FilePatterns,
					Recursive:    cfg.Estimate.Recursive,
				})
				if err != nil {
					comment(out, "Skipping %s: %v", dir, err)
					logger.Warn("directory not datable",
						logging.String(logging.FieldDirectory, dir),
						logging.Error(err))
					continue
				}

				if verbose && len(est.Quantiles) > 0 {
					// Stdout stays shell-safe; tables go to stderr.
					fmt.Fprintf(cmd.ErrOrStderr(), "Date quantiles for %s:\n%s\n", dir, quantileTable(est.Quantiles))
				}

				newName := est.Label
				if est.CleanName != "" {
					newName += " " + est.CleanName
				}
				newPath := filepath.Join(filepath.Dir(dir), newName)
				if newPath != filepath.Clean(dir) {
					fmt.Fprintln(out, organizer.Command(cfg.Rename.Command, dir, newPath))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&filesFlag, "files", "f", nil, "Directories or wildcard patterns")
	cmd.Flags().Float64SliceVarP(&quantiles, "quantiles", "q", nil, "Date quantiles between 0 and 1")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print quantile details")
	return cmd
}

func quantileTable(values map[float64]string) string {
	qs := make([]float64, 0, len(values))
	for q := range values {
		qs = append(qs, q)
	}
	sort.Float64s(qs)

	rows := make([][]string, 0, len(qs))
	for _, q := range qs {
		rows = append(rows, []string{
			strconv.FormatFloat(q, 'g', -1, 64),
			values[q],
		})
	}
	return renderTable([]string{"Quantile", "Date"}, rows, []columnAlignment{alignRight, alignLeft})
}
