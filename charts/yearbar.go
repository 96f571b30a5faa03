package charts

import (
	"strconv"

	"scholar-site/services"
)

// YearBarChart is a single-series bar chart of counts per year.
type YearBarChart struct {
	Width   float64
	Height  float64
	Padding Padding
	Fill    string

	Bars  []Bar
	Ticks []Tick

	Hovered *HoverPoint
}

// YearBarOptions benennen Serie, Farbe und Hover-Jahr.
type YearBarOptions struct {
	Series    string
	Fill      string
	HoverYear int
}

// BuildYearBarChart lays out one bar per bucket, oldest year first.
func BuildYearBarChart(buckets []services.YearBucket, opts YearBarOptions) *YearBarChart {
	c := &YearBarChart{
		Width:   640,
		Height:  240,
		Padding: Padding{Top: 20, Right: 16, Bottom: 36, Left: 40},
		Fill:    opts.Fill,
	}
	if c.Fill == "" {
		c.Fill = ColorPublications
	}
	if len(buckets) == 0 {
		return c
	}

	top := c.Padding.Top
	bottom := c.Height - c.Padding.Bottom
	chartW := c.Width - c.Padding.Left - c.Padding.Right

	maxValue := 0.0
	for _, b := range buckets {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	scale := NewLinearScale(maxValue, top, bottom)
	c.Ticks = scale.Ticks(5, CountLabel)

	slotW := chartW / float64(len(buckets))
	barW := slotW * 0.6
	for i, b := range buckets {
		op := 1.0
		if opts.HoverYear != 0 && opts.HoverYear != b.Year {
			op = DimOpacity
		}
		c.Bars = append(c.Bars, Bar{
			Year:    b.Year,
			Series:  opts.Series,
			X:       c.Padding.Left + float64(i)*slotW + (slotW-barW)/2,
			Y:       scale.Y(b.Value),
			W:       barW,
			H:       scale.Height(b.Value),
			Value:   b.Value,
			Opacity: op,
		})
		if opts.HoverYear == b.Year {
			c.Hovered = &HoverPoint{
				Label: opts.Series + " in " + strconv.Itoa(b.Year),
				Value: CountLabel(b.Value),
			}
		}
	}
	return c
}

// Render zeichnet das Chart als SVG-Dokument.
func (c *YearBarChart) Render() string {
	svg := NewSVG(c.Width, c.Height)
	for _, t := range c.Ticks {
		svg.Line(c.Padding.Left, t.Y, c.Width-c.Padding.Right, t.Y, ColorGrid, 1)
		svg.Text(c.Padding.Left-8, t.Y+4, "end", ColorAxisText, t.Label, 10)
	}
	for _, b := range c.Bars {
		svg.Rect(b.X, b.Y, b.W, b.H, 3, c.Fill, b.Opacity)
		svg.Text(b.X+b.W/2, c.Height-12, "middle", ColorAxisText, strconv.Itoa(b.Year), 10)
	}
	return svg.String()
}
