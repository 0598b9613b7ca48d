package extract_test

import (
	"path/filepath"
	"testing"
	"time"

	"photodate/internal/exifdate"
	"photodate/internal/extract"
	"photodate/internal/testsupport"
)

func newExtractor(t *testing.T, reader exifdate.Reader) *extract.Extractor {
	t.Helper()
	return extract.New(nil, reader, nil)
}

func TestExtractKnownPrefixes(t *testing.T) {
	e := newExtractor(t, nil)

	tests := []struct {
		name          string
		base          string
		wantDate      string
		wantRemainder string
		wantSource    extract.Source
	}{
		{"img underscore", "IMG_20230615_final.png", "2023-06-15", "_final.png", extract.SourcePrefix},
		{"img dash", "IMG-20201231-WA0001.jpg", "2020-12-31", "-WA0001.jpg", extract.SourcePrefix},
		{"vid", "VID_20220101_0001.mp4", "2022-01-01", "_0001.mp4", extract.SourcePrefix},
		{"pixel", "PXL_20210102_123456.jpg", "2021-01-02", "_123456.jpg", extract.SourcePrefix},
		{"lowercase token", "img_20230615.jpg", "2023-06-15", ".jpg", extract.SourcePrefix},
		{"signal literal", "signal-2020-10-26-163832.jpg", "2020-10-26", "-163832.jpg", extract.SourcePrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Extract(tt.base, false)
			if res.Date != tt.wantDate || res.Remainder != tt.wantRemainder || res.Source != tt.wantSource {
				t.Errorf("Extract(%q) = %+v, want date %q remainder %q source %q",
					tt.base, res, tt.wantDate, tt.wantRemainder, tt.wantSource)
			}
		})
	}
}

// A prefix token followed by an implausible date falls through to the later
// stages rather than returning early.
func TestExtractPrefixFallsThrough(t *testing.T) {
	e := newExtractor(t, nil)

	res := e.Extract("IMG_20231350_2021-07-04.jpg", false)
	if res.Source != extract.SourcePattern {
		t.Fatalf("expected pattern stage, got %+v", res)
	}
	if res.Date != "2021-07-04" {
		t.Errorf("got date %q, want 2021-07-04", res.Date)
	}
}

func TestExtractLiteralHead(t *testing.T) {
	e := newExtractor(t, nil)

	res := e.Extract("2023-06-15 Beach day.jpg", false)
	if res.Source != extract.SourceLiteral {
		t.Fatalf("expected literal stage, got %+v", res)
	}
	if res.Date != "2023-06-15" {
		t.Errorf("got date %q, want 2023-06-15", res.Date)
	}
	if res.Remainder != " Beach day.jpg" {
		t.Errorf("got remainder %q, want %q", res.Remainder, " Beach day.jpg")
	}
}

func TestExtractPatternStage(t *testing.T) {
	e := newExtractor(t, nil)

	res := e.Extract("2023.06.06-Festyn-64.jpg", false)
	if res.Date != "2023-06-06" {
		t.Errorf("got date %q, want 2023-06-06", res.Date)
	}
	if res.Remainder != "Festyn-64.jpg" {
		t.Errorf("got remainder %q, want %q", res.Remainder, "Festyn-64.jpg")
	}
	if res.Source != extract.SourcePattern {
		t.Errorf("got source %q, want pattern", res.Source)
	}
}

func TestExtractMetadataStage(t *testing.T) {
	captured := time.Date(2022, 3, 14, 9, 26, 53, 0, time.Local)
	reader := exifdate.ReaderFunc(func(path string) (time.Time, bool) {
		return captured, true
	})
	e := newExtractor(t, reader)

	res := e.Extract("holiday.jpg", false)
	if res.Source != extract.SourceMetadata {
		t.Fatalf("expected metadata stage, got %+v", res)
	}
	if res.Date != "2022-03-14" {
		t.Errorf("got date %q, want 2022-03-14", res.Date)
	}
	if res.Remainder != "holiday.jpg" {
		t.Errorf("metadata stage must keep the original name, got %q", res.Remainder)
	}
}

func TestExtractMetadataSkippedForNonImages(t *testing.T) {
	reader := exifdate.ReaderFunc(func(path string) (time.Time, bool) {
		t.Fatalf("reader must not be consulted for %q", path)
		return time.Time{}, false
	})
	e := newExtractor(t, reader)

	res := e.Extract("notes.txt", false)
	if res.Source != extract.SourceNone {
		t.Fatalf("expected no date, got %+v", res)
	}
}

func TestExtractModTimeFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holiday.txt")
	mtime := time.Date(2021, 8, 9, 12, 0, 0, 0, time.Local)
	testsupport.WriteFileModTime(t, path, []byte("x"), mtime)

	e := newExtractor(t, nil)

	res := e.Extract(path, true)
	if res.Source != extract.SourceModTime {
		t.Fatalf("expected mtime stage, got %+v", res)
	}
	if res.Date != "2021-08-09" {
		t.Errorf("got date %q, want 2021-08-09", res.Date)
	}

	res = e.Extract(path, false)
	if res.Source != extract.SourceNone || res.Date != "" {
		t.Fatalf("fallback disabled should yield no date, got %+v", res)
	}
	if res.Remainder != "holiday.txt" {
		t.Errorf("worst case must keep the original name, got %q", res.Remainder)
	}
}

func TestExtractConfiguredYearBounds(t *testing.T) {
	name := "1925-05-05 wedding.jpg"

	res := newExtractor(t, nil).Extract(name, false)
	if res.Date != "" {
		t.Fatalf("default bounds should reject 1925, got %+v", res)
	}

	cfg := testsupport.NewConfig(t, testsupport.WithYearBounds(1900, 2100))
	res = extract.New(cfg, nil, nil).Extract(name, false)
	if res.Date != "1925-05-05" || res.Source != extract.SourceLiteral {
		t.Fatalf("widened bounds should accept 1925, got %+v", res)
	}
}

func TestExtractMissingFileNeverFails(t *testing.T) {
	e := newExtractor(t, exifdate.New(nil))

	res := e.Extract(filepath.Join(t.TempDir(), "gone.jpg"), true)
	if res.Date != "" || res.Source != extract.SourceNone {
		t.Fatalf("expected empty result for missing file, got %+v", res)
	}
}
