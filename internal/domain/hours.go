package domain

import (
	"math"
	"strconv"
	"time"
)

// RoundHours rounds to two decimals, halves away from zero.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// HoursBetween returns the hours elapsed from checkIn to checkOut, rounded
// to two decimals. A check-out that precedes the check-in (clock skew)
// yields zero.
func HoursBetween(checkIn, checkOut time.Time) float64 {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		return 0
	}
	return RoundHours(d.Hours())
}

// WindowStart returns the first date of a window covering the last n days
// before now. The bound is inclusive, so a 7-day window spans eight dates.
func WindowStart(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(DateLayout)
}

// FormatHours renders an hour count without trailing zeros: 8.5, 4, 7.25.
func FormatHours(h float64) string {
	return strconv.FormatFloat(RoundHours(h), 'f', -1, 64)
}
