package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photodate/internal/dedupe"
	"photodate/internal/organizer"
	"photodate/internal/pathmatch"
)

func newDedupeCommand(ctx *commandContext) *cobra.Command {
	var (
		filesFlag []string
		rightFlag []string
		removeCmd string
	)

	cmd := &cobra.Command{
		Use:   "dedupe [patterns...]",
		Short: "Print removal commands for byte-identical files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if removeCmd == "" {
				removeCmd = cfg.Dedupe.Command
			}

			left, err := pathmatch.Expand(append(args, filesFlag...), false)
			if err != nil {
				return err
			}
			if len(left) == 0 {
				return fmt.Errorf("no files match the given patterns")
			}

			out := cmd.OutOrStdout()
			comment(out, "Considering %d file(s)", len(left))

			var right []string
			if len(rightFlag) > 0 {
				right, err = pathmatch.Expand(rightFlag, false)
				if err != nil {
					return err
				}
				comment(out, "Comparing against %d file(s)", len(right))
			}

			detector := dedupe.New(cfg.Dedupe.SampleBytes, ctx.ensureLogger())
			pairs := detector.Detect(left, right)
			if len(pairs) == 0 {
				comment(out, "No duplicates found")
				return nil
			}
			for _, pair := range pairs {
				comment(out, "Duplicate detected: %q and %q", pair.Keep, pair.Remove)
				fmt.Fprintln(out, organizer.Command(removeCmd, pair.Remove))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&filesFlag, "files", "f", nil, "Files or wildcard patterns")
	cmd.Flags().StringSliceVarP(&rightFlag, "right", "r", nil, "Second file set to compare against")
	cmd.Flags().StringVar(&removeCmd, "cmd", "", "Command printed for each duplicate")
	return cmd
}
