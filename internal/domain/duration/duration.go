// Package duration converts between the YouTube API's ISO-8601 duration
// strings and human-readable "Xd Xh Xm Xs" display strings.
package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// isoPattern matches the compact ISO-8601 form the videos endpoint returns,
// e.g. "PT1H2M3S", "PT4M13S", "PT22S". Every component is optional.
var isoPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// Decode converts an ISO-8601 duration string into total seconds.
// Malformed input decodes to 0 rather than failing; a single unreadable
// duration must not abort a whole playlist.
func Decode(raw string) int64 {
	match := isoPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0
	}
	hours := parseComponent(match[1])
	minutes := parseComponent(match[2])
	seconds := parseComponent(match[3])
	return hours*3600 + minutes*60 + seconds
}

func parseComponent(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Format renders a (possibly fractional) number of seconds as "Xd Xh Xm Xs".
// Leading zero units are omitted: hours appear once days do, minutes once
// hours do. Fractional leftover seconds are floored, not rounded.
// Invalid input (NaN, Inf, negative) renders as "0m 0s".
func Format(totalSeconds float64) string {
	if math.IsNaN(totalSeconds) || math.IsInf(totalSeconds, 0) || totalSeconds < 0 {
		return "0m 0s"
	}

	total := int64(math.Floor(totalSeconds))
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, strconv.FormatInt(days, 10)+"d")
	}
	if hours > 0 || days > 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+"h")
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, strconv.FormatInt(minutes, 10)+"m")
	}
	parts = append(parts, strconv.FormatInt(seconds, 10)+"s")

	result := strings.Join(parts, " ")
	if result == "" {
		return "0s"
	}
	return result
}

// FormatAverage renders the mean duration over count items, rounded
// half-up to the nearest second. A zero count renders as "0m 0s".
func FormatAverage(totalSeconds float64, count int) string {
	if count == 0 || math.IsNaN(totalSeconds) || math.IsInf(totalSeconds, 0) {
		return "0m 0s"
	}
	avg := math.Floor(totalSeconds/float64(count) + 0.5)
	return Format(avg)
}

// FormatAtSpeed renders the duration as watched at a playback-speed
// multiplier (e.g. 1.5 for 1.5x).
func FormatAtSpeed(totalSeconds float64, multiplier float64) string {
	if multiplier <= 0 {
		return "0m 0s"
	}
	return Format(totalSeconds / multiplier)
}
