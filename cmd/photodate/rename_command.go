package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"photodate/internal/organizer"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var (
		filesFlag []string
		targetDir string
		moveCmd   string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "rename [patterns...]",
		Short: "Print commands renaming files to <date> <suffix>",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if moveCmd == "" {
				moveCmd = cfg.Rename.Command
			}
			if separator == "" {
				separator = cfg.Rename.Separator
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
			comment(out, "Renaming files to date+suffix:")
			entries := entriesFor(provider, files, cfg.Extract.ModTimeFallback)
			for _, e := range entries {
				if e.Date == "" {
					comment(out, "No date found in: %s", filepath.Base(e.Path))
				}
			}

			renames := organizer.RenameTargets(entries, targetDir, separator)
			resolved, notes := organizer.ResolveConflicts(renames)
			for _, note := range notes {
				comment(out, "%s", note)
			}
			for _, r := range resolved {
				if r.Src != r.Dst {
					fmt.Fprintln(out, organizer.Command(moveCmd, r.Src, r.Dst))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&filesFlag, "files", "f", nil, "Files or wildcard patterns")
	cmd.Flags().StringVarP(&targetDir, "target-directory", "d", "", "Destination directory (default: each file's own)")
	cmd.Flags().StringVar(&moveCmd, "cmd", "", "Command printed for each file")
	cmd.Flags().StringVarP(&separator, "separator", "s", "", "Separator between date and suffix")
	return cmd
}
