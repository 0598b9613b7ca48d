package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"photodate/internal/cluster"
	"photodate/internal/organizer"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		filesFlag     []string
		targetDir     string
		prefix        string
		suffix        string
		minFiles      int
		moveCmd       string
		mergeAdjacent bool
	)

	cmd := &cobra.Command{
		Use:   "organize [patterns...]",
		Short: "Print commands grouping files into per-date directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if moveCmd == "" {
				moveCmd = cfg.Rename.Command
			}
			if !cmd.Flags().Changed("min-files") {
				minFiles = cfg.Organize.MinGroupFiles
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = cfg.Organize.DirPrefix
			}
			if !cmd.Flags().Changed("suffix") {
				suffix = cfg.Organize.DirSuffix
			}
			if !cmd.Flags().Changed("merge-adjacent") {
				mergeAdjacent = cfg.Organize.MergeAdjacent
			}

			files, err := expandFiles(append(args, filesFlag...), false)
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

			out := cmd.OutOrStdout()
			comment(out, "Moving files to directories matching their date:")
			entries := entriesFor(provider, files, cfg.Extract.ModTimeFallback)

			groups := organizer.GroupByDate(entries)
			if mergeAdjacent {
				groups = cluster.Merge(groups)
			}

			plans, notes := organizer.DirPlans(groups, targetDir, prefix, suffix, minFiles)
			for _, note := range notes {
				comment(out, "%s", note)
			}
			for _, plan := range plans {
				fmt.Fprintln(out, organizer.Command("mkdir -p", plan.Dir))
				renames, conflicts := organizer.ResolveBaseNames(plan.Files)
				for _, conflict := range conflicts {
					comment(out, "%s", conflict)
				}
				for _, r := range renames {
					fmt.Fprintln(out, organizer.Command(moveCmd, r.Src, filepath.Join(plan.Dir, r.Dst)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&filesFlag, "files", "f", nil, "Files or wildcard patterns")
	cmd.Flags().StringVarP(&targetDir, "target-directory", "d", ".", "Destination directory")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Directory name prefix")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Directory name suffix")
	cmd.Flags().IntVarP(&minFiles, "min-files", "n", 0, "Minimum files per directory")
	cmd.Flags().StringVar(&moveCmd, "cmd", "", "Command printed for each file")
	cmd.Flags().BoolVar(&mergeAdjacent, "merge-adjacent", false, "Merge directories for consecutive dates")
	return cmd
}
