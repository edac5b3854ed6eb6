package repository

import (
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// formatSortableTime renders a second-precision UTC timestamp whose
// lexicographic order matches time order, so the attribute can be
// range-compared inside filter expressions.
func formatSortableTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseSortableTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
