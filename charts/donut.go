package charts

import (
	"fmt"
	"math"
)

// DonutSlice ist ein Segment inklusive berechneter Bogen-Geometrie.
type DonutSlice struct {
	Label   string
	Value   float64
	Percent float64
	Path    string
	Fill    string
	Opacity float64
}

// DonutChart renders proportional arc segments around a hollow center. The
// center shows the total; slices are laid out clockwise from twelve o'clock
// in input order.
type DonutChart struct {
	Width  float64
	Height float64
	Total  float64
	Title  string

	Slices []DonutSlice

	Hovered *HoverPoint
}

// DonutValue ist ein Eingabewert für ein Segment.
type DonutValue struct {
	Label string
	Value float64
}

// DonutOptions steuern Titel und Hover-Segment.
type DonutOptions struct {
	Title      string
	HoverLabel string
}

// BuildDonutChart computes arc paths for all non-zero values. Zero-valued
// inputs keep a legend entry but draw no segment.
func BuildDonutChart(values []DonutValue, opts DonutOptions) *DonutChart {
	c := &DonutChart{Width: 360, Height: 240, Title: opts.Title}
	for _, v := range values {
		c.Total += v.Value
	}
	if c.Total <= 0 {
		return c
	}

	const (
		cx     = 110.0
		cy     = 120.0
		outerR = 85.0
		innerR = 52.0
	)

	angle := -math.Pi / 2
	for i, v := range values {
		op := 1.0
		if opts.HoverLabel != "" && opts.HoverLabel != v.Label {
			op = DimOpacity
		}
		slice := DonutSlice{
			Label:   v.Label,
			Value:   v.Value,
			Percent: v.Value / c.Total * 100,
			Fill:    Palette[i%len(Palette)],
			Opacity: op,
		}
		if v.Value > 0 {
			sweep := v.Value / c.Total * 2 * math.Pi
			slice.Path = donutArc(cx, cy, outerR, innerR, angle, angle+sweep)
			angle += sweep
		}
		c.Slices = append(c.Slices, slice)

		if opts.HoverLabel == v.Label {
			c.Hovered = &HoverPoint{
				Label: v.Label,
				Value: fmt.Sprintf("%s (%.0f%%)", CountLabel(v.Value), slice.Percent),
			}
		}
	}
	return c
}

// donutArc builds a ring segment path between two angles in radians.
func donutArc(cx, cy, outerR, innerR, from, to float64) string {
	// Full circles need two arcs; back off a hair instead.
	if to-from >= 2*math.Pi {
		to = from + 2*math.Pi - 1e-4
	}
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	ox1, oy1 := cx+outerR*math.Cos(from), cy+outerR*math.Sin(from)
	ox2, oy2 := cx+outerR*math.Cos(to), cy+outerR*math.Sin(to)
	ix1, iy1 := cx+innerR*math.Cos(to), cy+innerR*math.Sin(to)
	ix2, iy2 := cx+innerR*math.Cos(from), cy+innerR*math.Sin(from)
	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s L %s %s A %s %s 0 %d 0 %s %s Z",
		coord(ox1), coord(oy1), coord(outerR), coord(outerR), large, coord(ox2), coord(oy2),
		coord(ix1), coord(iy1), coord(innerR), coord(innerR), large, coord(ix2), coord(iy2))
}

// Render zeichnet das Chart als SVG-Dokument.
func (c *DonutChart) Render() string {
	svg := NewSVG(c.Width, c.Height)
	if c.Title != "" {
		svg.Text(16, 20, "start", ColorAxisText, c.Title, 11)
	}
	for _, s := range c.Slices {
		if s.Path != "" {
			svg.FilledPath(s.Path, s.Fill, s.Opacity)
		}
	}
	svg.Text(110, 124, "middle", ColorAxisText, CountLabel(c.Total), 18)

	// Legende rechts neben dem Ring
	y := 70.0
	for _, s := range c.Slices {
		svg.Rect(220, y-9, 11, 11, 2, s.Fill, s.Opacity)
		svg.Text(237, y, "start", ColorAxisText,
			fmt.Sprintf("%s (%.0f%%)", s.Label, s.Percent), 10)
		y += 20
	}
	return svg.String()
}
