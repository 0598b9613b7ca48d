package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var (
		filesFlag []string
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [patterns...]",
		Short: "Show the inferred date, source stage, and remainder per file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			files, err := expandFiles(append(args, filesFlag...), recursive)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files match the given patterns")
			}

			provider, err := ctx.ensureProvider()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(files))
			for _, path := range files {
				res := provider.Extract(path, cfg.Extract.ModTimeFallback)
				rows = append(rows, []string{path, res.Date, string(res.Source), res.Remainder})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Date", "Source", "Remainder"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&filesFlag, "files", "f", nil, "Files or wildcard patterns")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recurse into directories")
	return cmd
}
