package cluster

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

type dated struct {
	key string
	day time.Time
}

// Merge regroups date-keyed file lists so that runs of consecutive calendar
// days share one entry. Within a merged entry the files keep date order, and
// their original relative order within each date. Non-date keys are copied to
// the output as-is.
func Merge(groups map[string][]string) map[string][]string {
	out := make(map[string][]string, len(groups))

	var days []dated
	for key := range groups {
		t, err := time.ParseInLocation(dateLayout, key, time.Local)
		if err != nil {
			out[key] = groups[key]
			continue
		}
		days = append(days, dated{key: key, day: t})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

	for start := 0; start < len(days); {
		end := start
		for end+1 < len(days) && adjacent(days[end].day, days[end+1].day) {
			end++
		}

		var files []string
		for i := start; i <= end; i++ {
			files = append(files, groups[days[i].key]...)
		}

		label := days[start].key
		if end > start {
			label = days[start].key + " - " + days[end].key
		}
		out[label] = files
		start = end + 1
	}
	return out
}

// adjacent reports whether b is exactly one calendar day after a. Calendar
// arithmetic, not 24-hour arithmetic, so DST transitions do not split runs.
func adjacent(a, b time.Time) bool {
	return a.AddDate(0, 0, 1).Equal(b)
}
