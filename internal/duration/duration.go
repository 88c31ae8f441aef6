// Package duration parses the lenient interval strings used for periodic
// sync configuration, such as "15m30s", "1d12h" or "PT2H".
package duration

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var componentPattern = regexp.MustCompile(`(?i)(\d+)([smhd])`)

// Parse sums every "<digits><unit>" component of s, where unit is one of
// s, m, h or d (case-insensitive). An optional leading "PT" is ignored, as is
// any text that is not a component. Parse never fails: a string without
// components yields zero.
func Parse(s string) time.Duration {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.EqualFold(s[:2], "PT") {
		s = s[2:]
	}

	var total time.Duration
	for _, m := range componentPattern.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			// out of range
			continue
		}
		total += time.Duration(n) * unit(m[2])
	}
	return total
}

func unit(u string) time.Duration {
	switch strings.ToLower(u) {
	case "s":
		return time.Second
	case "m":
		return time.Minute
	case "h":
		return time.Hour
	default:
		return day
	}
}

// Format renders d in the grammar accepted by Parse, using the largest units
// first. Zero renders as "0s".
func Format(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	var b strings.Builder
	for _, u := range []struct {
		size time.Duration
		name string
	}{
		{day, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	} {
		if n := d / u.size; n > 0 {
			b.WriteString(strconv.FormatInt(int64(n), 10))
			b.WriteString(u.name)
			d -= n * u.size
		}
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
