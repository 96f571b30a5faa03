package charts

import (
	"fmt"
	"strings"
)

// SplineTension is the fixed cardinal-spline tension used for connected
// point series, matching the site's existing line rendering.
const SplineTension = 0.4

// SmoothPath renders a Catmull-Rom-style cardinal spline through the points
// as an SVG path. Fewer than two points degrade gracefully: one point yields
// a bare move, zero points an empty path.
func SmoothPath(points []Point, tension float64) string {
	if len(points) == 0 {
		return ""
	}
	if len(points) < 2 {
		return fmt.Sprintf("M %s %s", coord(points[0].X), coord(points[0].Y))
	}

	var d strings.Builder
	fmt.Fprintf(&d, "M %s %s", coord(points[0].X), coord(points[0].Y))
	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]

		cp1x := p1.X + (p2.X-p0.X)*tension/6
		cp1y := p1.Y + (p2.Y-p0.Y)*tension/6
		cp2x := p2.X - (p3.X-p1.X)*tension/6
		cp2y := p2.Y - (p3.Y-p1.Y)*tension/6

		fmt.Fprintf(&d, " C %s %s, %s %s, %s %s",
			coord(cp1x), coord(cp1y), coord(cp2x), coord(cp2y), coord(p2.X), coord(p2.Y))
	}
	return d.String()
}

// coord trims coordinate output to two decimals.
func coord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
