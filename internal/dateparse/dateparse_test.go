package dateparse

import "testing"

func TestFindPriorityAndShapes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDate string
		wantSpan string
	}{
		{"dashed ymd", "2023-06-15 beach", "2023-06-15", "2023-06-15"},
		{"dotted ymd", "2023.06.06-Festyn-64.jpg", "2023-06-06", "2023.06.06"},
		{"underscored ymd", "report_2021_07_04_final", "2021-07-04", "2021_07_04"},
		{"compact ymd", "IMG20230615.jpg", "2023-06-15", "20230615"},
		{"single digit month day", "2023-6-5 trip", "2023-06-05", "2023-6-5"},
		{"dmy", "scan 15-06-2023.pdf", "2023-06-15", "15-06-2023"},
		{"dmy dotted", "6.7.1995 party", "1995-07-06", "6.7.1995"},
		{"compact dmy after ymd fails", "31122024.jpg", "2024-12-31", "31122024"},
		{"year month", "2023-06 Trip", "2023-06", "2023-06"},
		{"bare year", "London 2019 trip", "2019", "2019"},
		{"six digit last resort", "festyn 190623", "2019-06-23", "190623"},
		{"embedded in name", "Holiday_2023-06-06_beach.jpg", "2023-06-06", "2023-06-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Find(tt.text)
			if !ok {
				t.Fatalf("Find(%q) found nothing", tt.text)
			}
			if m.Date != tt.wantDate {
				t.Errorf("Find(%q).Date = %q, want %q", tt.text, m.Date, tt.wantDate)
			}
			if got := m.Span(tt.text); got != tt.wantSpan {
				t.Errorf("Find(%q).Span = %q, want %q", tt.text, got, tt.wantSpan)
			}
		})
	}
}

func TestFindRejectsAndContinues(t *testing.T) {
	// Invalid calendar date at the first position must not stop the scan.
	m, ok := Find("x-2024-02-30-y 2024-03-01z")
	if !ok {
		t.Fatal("expected a match after the invalid candidate")
	}
	if m.Date != "2024-03-01" {
		t.Errorf("got %q, want 2024-03-01", m.Date)
	}
}

func TestFindNoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no digits", "vacation photos"},
		{"digit run too long", "ref 2019067 misc"},
		{"year out of bounds", "scan 1776-07-04"},
		{"six digits invalid month", "202306"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m, ok := Find(tt.text); ok {
				t.Errorf("Find(%q) = %q, want no match", tt.text, m.Date)
			}
		})
	}
}

// An invalid full date does not abort the scan; lower-priority families may
// still claim a shorter reading at the same position.
func TestFindFallsToLowerPriorityFamily(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2024-02-30", "2024-02"}, // year-month survives the bad day
		{"2024-13-41", "2024"},    // only the bare year is valid
	}
	for _, tt := range tests {
		m, ok := Find(tt.text)
		if !ok {
			t.Errorf("Find(%q) found nothing, want %q", tt.text, tt.want)
			continue
		}
		if m.Date != tt.want {
			t.Errorf("Find(%q) = %q, want %q", tt.text, m.Date, tt.want)
		}
	}
}

func TestFindBoundedHistorical(t *testing.T) {
	text := "scan 1912-05-01"
	if _, ok := Find(text); ok {
		t.Fatal("strict bounds should reject 1912")
	}
	m, ok := FindBounded(text, Historical)
	if !ok {
		t.Fatal("historical bounds should accept 1912")
	}
	if m.Date != "1912-05-01" {
		t.Errorf("got %q, want 1912-05-01", m.Date)
	}
}

func TestFindLeapYears(t *testing.T) {
	if _, ok := Find("2023-02-29"); ok {
		t.Error("2023-02-29 is not a real date")
	}
	m, ok := Find("2024-02-29")
	if !ok || m.Date != "2024-02-29" {
		t.Errorf("2024-02-29 should match, got %v %v", m, ok)
	}
}

func TestRemainder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"leading separator stripped", "2023.06.06-Festyn-64.jpg", "Festyn-64.jpg"},
		{"double separator collapsed", "Holiday_2023-06-06_beach.jpg", "Holiday beach.jpg"},
		{"date only", "2023-06-15", ""},
		{"trailing date", "beach trip 2023-06-15", "beach trip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Find(tt.text)
			if !ok {
				t.Fatalf("Find(%q) found nothing", tt.text)
			}
			if got := Remainder(tt.text, m); got != tt.want {
				t.Errorf("Remainder(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// No digits may be lost or duplicated: span plus remainder must carry exactly
// the digits of the input.
func TestRemainderPreservesDigits(t *testing.T) {
	inputs := []string{
		"2023.06.06-Festyn-64.jpg",
		"report_2021_07_04_final_v2",
		"IMG20230615_99.jpg",
		"scan 15-06-2023 page3",
	}
	for _, text := range inputs {
		m, ok := Find(text)
		if !ok {
			t.Fatalf("Find(%q) found nothing", text)
		}
		got := digits(m.Span(text)) + digits(Remainder(text, m))
		if sortedDigits(got) != sortedDigits(digits(text)) {
			t.Errorf("digit mismatch for %q: span+remainder digits %q, input digits %q", text, got, digits(text))
		}
	}
}

func digits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func sortedDigits(s string) string {
	var counts [10]int
	for i := 0; i < len(s); i++ {
		counts[s[i]-'0']++
	}
	out := make([]byte, 0, len(s))
	for d := 0; d < 10; d++ {
		for n := 0; n < counts[d]; n++ {
			out = append(out, byte('0'+d))
		}
	}
	return string(out)
}
