package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"photodate/internal/config"
	"photodate/internal/extract"
	"photodate/internal/imagesize"
	"photodate/internal/logging"
	"photodate/internal/organizer"
	"photodate/internal/pathmatch"
)

func newAnnotateCommand(ctx *commandContext) *cobra.Command {
	var (
		filesFlag   []string
		recursive   bool
		withDate    bool
		withDirname bool
		gravity     string
		textDivisor int
		resize      bool
	)

	cmd := &cobra.Command{
		Use:   "annotate [patterns...]",
		Short: "Print ImageMagick commands stamping dates onto images",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !withDate && !withDirname {
				return fmt.Errorf("nothing to annotate: enable --date or --dirname")
			}
			if gravity == "" {
				gravity = cfg.Annotate.Gravity
			}
			if textDivisor == 0 {
				textDivisor = cfg.Annotate.TextDivisor
			}
			if !cmd.Flags().Changed("resize") {
				resize = cfg.Annotate.Resize
			}

			files, err := pathmatch.Expand(append(args, filesFlag...), recursive)
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
			logger := ctx.ensureLogger()

			out := cmd.OutOrStdout()
			comment(out, "Processing %d file(s)", len(files))
			if resize {
				comment(out, "Resize enabled: images over %dpx or %dKB become %dpx at %d%% quality",
					cfg.Annotate.ResizeMaxDimension, cfg.Annotate.ResizeMaxFileSizeKB,
					cfg.Annotate.ResizeTargetDim, cfg.Annotate.ResizeQuality)
			}

			for _, path := range files {
				size, err := imagesize.Probe(path)
				if err != nil {
					logger.Debug("not an image, skipping",
						logging.String(logging.FieldPath, path), logging.Error(err))
					continue
				}
				info, err := os.Stat(path)
				if err != nil {
					comment(out, "Cannot stat %s: %v", path, err)
					continue
				}

				pointsize := size.Max() / textDivisor
				if resize {
					line, scale, needed := resizeLine(path, size.Max(), info.Size(), cfg.Annotate)
					if needed {
						fmt.Fprintln(out, line)
						pointsize = pointsize * scale / 100
					}
				}

				texts := annotationTexts(provider, cfg, path, withDate, withDirname)
				if len(texts) == 0 {
					comment(out, "No annotation for: %s", path)
					continue
				}
				fmt.Fprintln(out, annotateLine(path, strings.Join(texts, " "), gravity, cfg.Annotate.Fill, pointsize))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&filesFlag, "files", "f", nil, "Files or wildcard patterns")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "Recurse into directories")
	cmd.Flags().BoolVar(&withDate, "date", true, "Annotate with the extracted date")
	cmd.Flags().BoolVarP(&withDirname, "dirname", "d", false, "Annotate with the parent directory name")
	cmd.Flags().StringVar(&gravity, "gravity", "", "Text position (southeast, southwest, ...)")
	cmd.Flags().IntVar(&textDivisor, "text-size", 0, "Text size divisor, smaller means larger text")
	cmd.Flags().BoolVar(&resize, "resize", false, "Also shrink oversized images")
	return cmd
}

// annotationTexts collects the annotation parts for one image: the file's
// own date, then the parent directory name stripped of any date it carries.
func annotationTexts(provider extract.Provider, cfg *config.Config, path string, withDate, withDirname bool) []string {
	var texts []string
	if withDate {
		if res := provider.Extract(path, cfg.Extract.ModTimeFallback); res.Date != "" {
			texts = append(texts, res.Date)
		}
	}
	if withDirname {
		parent := filepath.Base(filepath.Dir(path))
		if withDate {
			parent = provider.Extract(filepath.Dir(path), false).Remainder
		}
		if parent = strings.Trim(parent, "_- "); parent != "" && parent != "." {
			texts = append(texts, parent)
		}
	}
	return texts
}

// resizeLine builds the convert invocation shrinking an oversized image in
// place. scale is the integer percentage applied, for adjusting the
// annotation pointsize afterwards.
func resizeLine(path string, maxDim int, fileSize int64, opts config.Annotate) (line string, scale int, needed bool) {
	if maxDim <= opts.ResizeMaxDimension && fileSize <= int64(opts.ResizeMaxFileSizeKB)*1024 {
		return "", 100, false
	}
	scale = min(100, 100*opts.ResizeTargetDim/maxDim)
	line = fmt.Sprintf("convert %s -quality %d%% -resize %d%% %s",
		organizer.ShellQuote(path), opts.ResizeQuality, scale, organizer.ShellQuote(path))
	return line, scale, true
}

func annotateLine(path, text, gravity, fill string, pointsize int) string {
	return fmt.Sprintf("convert %s -gravity %s -pointsize %d -fill %s -annotate 0 %s %s",
		organizer.ShellQuote(path), gravity, pointsize, fill,
		organizer.ShellQuote(text), organizer.ShellQuote(path))
}
