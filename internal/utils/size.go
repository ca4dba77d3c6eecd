// Package utils holds small helpers shared by the CLI and the TUI.
package utils

import "github.com/dustin/go-humanize"

var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatSize scales a byte count by powers of 1024 and returns the scaled
// value together with its unit.
func FormatSize(n int64) (float64, string) {
	if n < 0 {
		n = 0
	}
	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return value, sizeUnits[unit]
}

// SizeLabel renders a byte count as a short IEC label such as "1.5 KiB".
func SizeLabel(n int64) string {
	return humanize.IBytes(uint64(max(n, 0)))
}
