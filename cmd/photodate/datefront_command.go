package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"photodate/internal/organizer"
	"photodate/internal/textutil"
)

func newDateFrontCommand(ctx *commandContext) *cobra.Command {
	var moveCmd string

	cmd := &cobra.Command{
		Use:   "datefront <directory>",
		Short: "Print commands moving embedded dates to the front of file names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if moveCmd == "" {
				moveCmd = cfg.Rename.Command
			}

			dir := args[0]
			dirEntries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("read directory %s: %w", dir, err)
			}

			out := cmd.OutOrStdout()
			bounds := ctx.bounds()
			for _, entry := range dirEntries {
				if entry.IsDir() {
					continue
				}
				name := textutil.NormalizeName(entry.Name())
				newName, ok := organizer.DateFrontName(name, bounds)
				if !ok {
					comment(out, "No date found in: %s", entry.Name())
					continue
				}
				if newName == entry.Name() {
					continue
				}
				fmt.Fprintln(out, organizer.Command(moveCmd,
					filepath.Join(dir, entry.Name()),
					filepath.Join(dir, newName)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&moveCmd, "cmd", "", "Command printed for each file")
	return cmd
}
