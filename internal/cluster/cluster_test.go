package cluster

import (
	"reflect"
	"testing"
)

func TestMergeConsecutiveRun(t *testing.T) {
	in := map[string][]string{
		"2024-01-01": {"a"},
		"2024-01-02": {"b"},
		"2024-01-03": {"c"},
		"2024-01-05": {"d"},
	}
	want := map[string][]string{
		"2024-01-01 - 2024-01-03": {"a", "b", "c"},
		"2024-01-05":              {"d"},
	}
	if got := Merge(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergeIsolatedDatesKeepKeys(t *testing.T) {
	in := map[string][]string{
		"2024-01-01": {"a"},
		"2024-01-03": {"b"},
		"2024-01-07": {"c"},
	}
	got := Merge(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Merge = %v, want input unchanged", got)
	}
}

func TestMergePreservesOrderWithinCluster(t *testing.T) {
	in := map[string][]string{
		"2024-06-11": {"x1", "x2"},
		"2024-06-10": {"w"},
		"2024-06-12": {"y"},
	}
	got := Merge(in)
	want := []string{"w", "x1", "x2", "y"}
	if !reflect.DeepEqual(got["2024-06-10 - 2024-06-12"], want) {
		t.Errorf("cluster files = %v, want %v", got["2024-06-10 - 2024-06-12"], want)
	}
}

func TestMergeNonDateKeysPassThrough(t *testing.T) {
	in := map[string][]string{
		"2024-03-01 - 2024-03-04": {"earlier"},
		"unknown":                 {"u"},
		"2024-03-06":              {"a"},
		"2024-03-07":              {"b"},
	}
	got := Merge(in)
	if !reflect.DeepEqual(got["2024-03-01 - 2024-03-04"], []string{"earlier"}) {
		t.Errorf("range label dropped: %v", got)
	}
	if !reflect.DeepEqual(got["unknown"], []string{"u"}) {
		t.Errorf("non-date key dropped: %v", got)
	}
	if !reflect.DeepEqual(got["2024-03-06 - 2024-03-07"], []string{"a", "b"}) {
		t.Errorf("adjacent dates not merged: %v", got)
	}
}

func TestMergeMonthAndYearBoundaries(t *testing.T) {
	in := map[string][]string{
		"2023-12-31": {"a"},
		"2024-01-01": {"b"},
		"2024-02-28": {"c"},
		"2024-02-29": {"d"},
		"2024-03-01": {"e"},
	}
	got := Merge(in)
	if _, ok := got["2023-12-31 - 2024-01-01"]; !ok {
		t.Errorf("year boundary not merged: %v", got)
	}
	if !reflect.DeepEqual(got["2024-02-28 - 2024-03-01"], []string{"c", "d", "e"}) {
		t.Errorf("leap-day run = %v, want c d e", got["2024-02-28 - 2024-03-01"])
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(map[string][]string{}); len(got) != 0 {
		t.Errorf("Merge(empty) = %v, want empty", got)
	}
}
