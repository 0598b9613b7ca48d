package exifdate

import (
	"log/slog"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"photodate/internal/logging"
)

// Reader reports the capture time recorded in a file's metadata, if any.
// Absence is the only failure signal.
type Reader interface {
	CaptureTime(path string) (time.Time, bool)
}

// ExifReader extracts DateTimeOriginal (falling back to DateTime) from EXIF
// metadata.
type ExifReader struct {
	logger *slog.Logger
}

// New creates an EXIF-backed reader. A nil logger disables diagnostics.
func New(logger *slog.Logger) *ExifReader {
	return &ExifReader{logger: logging.NewComponentLogger(logger, "exifdate")}
}

// CaptureTime opens the file and decodes its EXIF block. Any failure along
// the way is logged at debug level and reported as absence.
func (r *ExifReader) CaptureTime(path string) (_ time.Time, ok bool) {
	// goexif panics on some malformed makernote blocks; contain it here so a
	// corrupt file degrades to "no metadata" like every other stage failure.
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Debug("exif decode panic",
				logging.String(logging.FieldPath, path),
				logging.Any("panic", rec))
			ok = false
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		r.logger.Debug("open for exif failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		r.logger.Debug("exif decode failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return time.Time{}, false
	}

	t, err := x.DateTime()
	if err != nil {
		r.logger.Debug("exif capture time missing",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return time.Time{}, false
	}
	return t, true
}

// ReaderFunc adapts a function to the Reader interface; used by tests.
type ReaderFunc func(path string) (time.Time, bool)

func (f ReaderFunc) CaptureTime(path string) (time.Time, bool) { return f(path) }
