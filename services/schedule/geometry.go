package schedule

import "math"

// Board geometry. The day is a fixed vertical axis of 24*HourHeight pixels
// mapping linearly onto [0, MinutesPerDay) minutes, split into MaxColumns lanes.
const (
	HourHeight    = 60 // pixels per hour on the vertical axis
	ColumnWidth   = 160
	MaxColumns    = 4
	SnapMinutes   = 15
	MinutesPerDay = 24 * 60
	DayHeight     = 24 * HourHeight

	// DefaultBlockMinutes is the length of a block created by a grid tap.
	DefaultBlockMinutes = 60
)

// BlockPalette is cycled by current block count when a block is created.
var BlockPalette = []string{"#4F86C6", "#E2856E", "#7FB069", "#B07FB0", "#D9A441", "#5FA8A0"}

// MoverPalette is cycled when a mover joins the roster.
var MoverPalette = []string{"#2D7DD2", "#97CC04", "#EEB902", "#F45D01", "#8332AC"}

// PixelsToMinutes converts a vertical pixel offset to minutes from midnight.
func PixelsToMinutes(p float64) int {
	return int(math.Round(p / DayHeight * MinutesPerDay))
}

// MinutesToPixels converts minutes from midnight to a vertical pixel offset.
func MinutesToPixels(m int) float64 {
	return float64(m) / MinutesPerDay * DayHeight
}

// Snap rounds a minute value to the nearest multiple of SnapMinutes.
func Snap(m int) int {
	return int(math.Round(float64(m)/SnapMinutes)) * SnapMinutes
}

// overlaps reports whether the half-open intervals [aStart,aEnd) and [bStart,bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
