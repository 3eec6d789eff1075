package humanize

import (
	"strconv"
	"strings"
)

// sizeUnits is a fixed units table, larger values are clamped to the last unit.
var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"} //nolint:gochecknoglobals

// FormatSize returns a human-readable representation of a size in bytes, using 1024-based units.
//
// Zero is formatted as "0B". Otherwise the value is scaled down to the largest unit it fills, rounded to two
// decimal places (half to even) and printed in its shortest form: "1.0 KB", "1.5 KB", "1.12 KB", "1023.0 B".
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0B"
	}

	var sign string

	if bytes < 0 {
		sign = "-"
	}

	var (
		abs = absUint64(bytes)
		i   int
		div uint64 = 1
	)

	// integer arithmetic keeps exact powers of 1024 on the right unit
	for i < len(sizeUnits)-1 && abs/div >= 1024 {
		div *= 1024
		i++
	}

	return sign + formatScaled(float64(abs)/float64(div)) + " " + sizeUnits[i]
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1 // works for math.MinInt64 too
	}

	return uint64(v)
}

// formatScaled rounds the value to two decimals and drops trailing zeroes, keeping at least one fractional
// digit (2.50 -> "2.5", 3.00 -> "3.0").
func formatScaled(v float64) string {
	var s = strconv.FormatFloat(v, 'f', 2, 64) //nolint:gomnd

	s = strings.TrimRight(s, "0")

	if strings.HasSuffix(s, ".") {
		s += "0"
	}

	return s
}
