package schedule

// Overlaps reports whether two same-day [start, end) intervals intersect.
// Times are "HH:MM" strings, which order lexically, so a plain string
// comparison is a clock comparison. The test is half-open: back-to-back
// shifts (endA == startB) do not overlap, and a zero-width interval
// (start == end) never overlaps anything.
func Overlaps(startA, endA, startB, endB string) bool {
	return startA < endB && endA > startB
}
