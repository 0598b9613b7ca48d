package config

const (
	defaultYearMin = 1950
	defaultYearMax = 2050

	defaultMinRangeDays  = 5
	defaultMinGroupFiles = 3

	defaultRenameSeparator = " "
	defaultMoveCommand     = "mv"
	defaultRemoveCommand   = "rm -rf"

	defaultAnnotateGravity     = "southeast"
	defaultAnnotateFill        = "yellow"
	defaultAnnotateTextDivisor = 30

	defaultResizeMaxDimension  = 1600
	defaultResizeMaxFileSizeKB = 300
	defaultResizeTargetDim     = 1200
	defaultResizeQuality       = 80

	defaultDedupeSampleBytes = 1024

	defaultCachePath = "~/.cache/photodate/extract.db"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

func defaultImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".bmp", ".heic", ".webp"}
}

func defaultFilePatterns() []string {
	return []string{
		"*.jpg", "*.jpeg", "*.png", "*.gif", "*.heic", "*.webp",
		"*.mp4", "*.mov", "*.avi", "*.mkv",
	}
}

func defaultQuantiles() []float64 {
	return []float64{0.05, 0.5, 0.95}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Match: Match{
			YearMin: defaultYearMin,
			YearMax: defaultYearMax,
		},
		Extract: Extract{
			ImageExtensions: defaultImageExtensions(),
			ModTimeFallback: true,
		},
		Estimate: Estimate{
			Quantiles:    defaultQuantiles(),
			MinRangeDays: defaultMinRangeDays,
			FilePatterns: defaultFilePatterns(),
		},
		Organize: Organize{
			MinGroupFiles: defaultMinGroupFiles,
			MergeAdjacent: true,
		},
		Rename: Rename{
			Separator: defaultRenameSeparator,
			Command:   defaultMoveCommand,
		},
		Annotate: Annotate{
			Gravity:             defaultAnnotateGravity,
			Fill:                defaultAnnotateFill,
			TextDivisor:         defaultAnnotateTextDivisor,
			ResizeMaxDimension:  defaultResizeMaxDimension,
			ResizeMaxFileSizeKB: defaultResizeMaxFileSizeKB,
			ResizeTargetDim:     defaultResizeTargetDim,
			ResizeQuality:       defaultResizeQuality,
		},
		Dedupe: Dedupe{
			Command:     defaultRemoveCommand,
			SampleBytes: defaultDedupeSampleBytes,
		},
		Cache: Cache{
			Enabled: false,
			Path:    defaultCachePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
