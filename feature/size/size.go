package size

import (
	"math"

	"github.com/dustin/go-humanize"
)

// labels are the 1024-based unit names. int64 byte counts top out inside
// EB; the larger labels stay for the table's completeness.
var labels = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Convert renders a byte count as the most concise unit value rounded to
// two decimal places: 1536 becomes (1.5, "KB"), not (1536, "B"). Counts at
// or below zero come back as (0, "B").
func Convert(n int64) (float64, string) {
	if n <= 0 {
		return 0, "B"
	}
	value := float64(n)
	i := 0
	for value >= 1024 && i < len(labels)-1 {
		value /= 1024
		i++
	}
	return math.Round(value*100) / 100, labels[i]
}

// Human renders a byte count as an IEC display string: 1536 becomes
// "1.5 KiB".
func Human(n uint64) string {
	return humanize.IBytes(n)
}
