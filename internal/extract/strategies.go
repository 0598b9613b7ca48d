package extract

import (
	"fmt"
	"os"
	"strings"
	"time"

	"photodate/internal/dateparse"
	"photodate/internal/logging"
)

// devicePrefixes are camera/app tokens that precede a compact 8-digit date.
var devicePrefixes = []string{"IMG_", "IMG-", "VID_", "VID-", "PIX_", "PXL_"}

// signalPrefix precedes either a literal YYYY-MM-DD or a compact date.
const signalPrefix = "signal-"

const dateLayout = "2006-01-02"

// fromKnownPrefix handles filenames produced by cameras and messaging apps.
// A token whose following digits do not form a real date falls through to the
// later stages instead of returning early.
func (e *Extractor) fromKnownPrefix(_ string, base string) (Result, bool) {
	upper := strings.ToUpper(base)
	for _, prefix := range devicePrefixes {
		if !strings.HasPrefix(upper, prefix) {
			continue
		}
		rest := base[len(prefix):]
		if date, ok := e.compactDate(rest); ok {
			return Result{Date: date, Remainder: rest[8:], Source: SourcePrefix}, true
		}
	}

	if strings.HasPrefix(strings.ToLower(base), signalPrefix) {
		rest := base[len(signalPrefix):]
		if date, ok := e.literalDate(rest); ok {
			return Result{Date: date, Remainder: rest[10:], Source: SourcePrefix}, true
		}
		if date, ok := e.compactDate(rest); ok {
			return Result{Date: date, Remainder: rest[8:], Source: SourcePrefix}, true
		}
	}
	return Result{}, false
}

// fromLiteralHead accepts names that already start with a normalized date.
func (e *Extractor) fromLiteralHead(_ string, base string) (Result, bool) {
	if date, ok := e.literalDate(base); ok {
		return Result{Date: date, Remainder: base[10:], Source: SourceLiteral}, true
	}
	return Result{}, false
}

// fromPattern delegates to the general matcher over the whole base name.
func (e *Extractor) fromPattern(_ string, base string) (Result, bool) {
	m, ok := dateparse.FindBounded(base, e.bounds)
	if !ok {
		return Result{}, false
	}
	return Result{Date: m.Date, Remainder: dateparse.Remainder(base, m), Source: SourcePattern}, true
}

// fromMetadata consults the EXIF reader for recognized image extensions. The
// remainder stays the full original name because the date did not come from
// text.
func (e *Extractor) fromMetadata(path string, base string) (Result, bool) {
	if e.reader == nil || !e.isImage(base) {
		return Result{}, false
	}
	t, ok := e.reader.CaptureTime(path)
	if !ok {
		return Result{}, false
	}
	return Result{Date: t.Local().Format(dateLayout), Remainder: base, Source: SourceMetadata}, true
}

// fromModTime is the last resort: the filesystem modification time.
func (e *Extractor) fromModTime(path string, base string) (Result, bool) {
	info, err := os.Stat(path)
	if err != nil {
		e.logger.Debug("stat failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return Result{}, false
	}
	return Result{
		Date:      info.ModTime().Local().Format(dateLayout),
		Remainder: base,
		Source:    SourceModTime,
	}, true
}

// compactDate reads an 8-digit YYYYMMDD head from s.
func (e *Extractor) compactDate(s string) (string, bool) {
	if len(s) < 8 {
		return "", false
	}
	for i := 0; i < 8; i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	year := atoi(s[:4])
	month := atoi(s[4:6])
	day := atoi(s[6:8])
	if !dateparse.ValidDate(year, month, day, e.bounds) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// literalDate reads an exact YYYY-MM-DD head from s.
func (e *Extractor) literalDate(s string) (string, bool) {
	if len(s) < 10 {
		return "", false
	}
	head := s[:10]
	t, err := time.Parse(dateLayout, head)
	if err != nil {
		return "", false
	}
	if !dateparse.ValidDate(t.Year(), int(t.Month()), t.Day(), e.bounds) {
		return "", false
	}
	return head, true
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
