package charts

import "strconv"

// LinearScale maps values in [0, Max] onto a vertical pixel band. Bottom is
// the pixel row of 0, Top the row of Max (SVG y grows downward).
type LinearScale struct {
	Max    float64
	Top    float64
	Bottom float64
}

// Headroom above the observed maximum so the tallest element never touches
// the chart's upper edge.
const defaultHeadroom = 0.1

// NewLinearScale builds a scale over the observed maximum plus headroom. The
// domain maximum is forced to at least 1 so an all-zero series still renders
// flat bars instead of dividing by zero.
func NewLinearScale(observedMax, top, bottom float64) LinearScale {
	max := observedMax * (1 + defaultHeadroom)
	if max < 1 {
		max = 1
	}
	return LinearScale{Max: max, Top: top, Bottom: bottom}
}

// Y maps a value to its pixel row.
func (s LinearScale) Y(v float64) float64 {
	return s.Bottom - (v/s.Max)*(s.Bottom-s.Top)
}

// Height maps a value to a bar height in pixels, never negative.
func (s LinearScale) Height(v float64) float64 {
	h := (v / s.Max) * (s.Bottom - s.Top)
	if h < 0 {
		return 0
	}
	return h
}

// Tick ist ein Achsen-Tick mit Pixelposition und fertigem Label.
type Tick struct {
	Value float64
	Y     float64
	Label string
}

// Ticks returns count evenly spaced ticks from 0 to Max inclusive, labelled
// by format. Count below 2 falls back to the two endpoints.
func (s LinearScale) Ticks(count int, format func(float64) string) []Tick {
	if count < 2 {
		count = 2
	}
	ticks := make([]Tick, count)
	for i := 0; i < count; i++ {
		v := s.Max * float64(i) / float64(count-1)
		ticks[i] = Tick{Value: v, Y: s.Y(v), Label: format(v)}
	}
	return ticks
}

// CountLabel formats a count tick as a rounded integer.
func CountLabel(v float64) string {
	return strconv.Itoa(int(v + 0.5))
}
