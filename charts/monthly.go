package charts

import (
	"fmt"

	"scholar-site/services"
)

// MonthlyBar ist ein gestapelter Monatsbalken (CV unten, Katalog oben).
type MonthlyBar struct {
	Key     string
	Label   string
	X       float64
	CVY     float64
	CVH     float64
	CatY    float64
	CatH    float64
	W       float64
	Total   int
	Opacity float64
}

// MonthlyChart stacks cv and catalog event counts per month over the
// trailing twelve months, oldest first.
type MonthlyChart struct {
	Width   float64
	Height  float64
	Padding Padding

	Bars  []MonthlyBar
	Ticks []Tick

	Hovered *HoverPoint
}

// MonthlyOptions steuern den Hover-Monat.
type MonthlyOptions struct {
	HoverKey string // "2006-01"
}

// BuildMonthlyChart lays out one stacked bar per bucket.
func BuildMonthlyChart(months []services.MonthBucket, opts MonthlyOptions) *MonthlyChart {
	c := &MonthlyChart{
		Width:   340,
		Height:  180,
		Padding: Padding{Top: 16, Right: 8, Bottom: 28, Left: 30},
	}
	if len(months) == 0 {
		return c
	}

	top := c.Padding.Top
	bottom := c.Height - c.Padding.Bottom
	chartW := c.Width - c.Padding.Left - c.Padding.Right

	maxTotal := 0.0
	for _, m := range months {
		if t := float64(m.CV + m.Catalog); t > maxTotal {
			maxTotal = t
		}
	}
	scale := NewLinearScale(maxTotal, top, bottom)
	c.Ticks = scale.Ticks(4, CountLabel)

	slotW := chartW / float64(len(months))
	barW := slotW * 0.55
	for i, m := range months {
		op := 1.0
		if opts.HoverKey != "" && opts.HoverKey != m.Key {
			op = DimOpacity
		}
		cvH := scale.Height(float64(m.CV))
		catH := scale.Height(float64(m.Catalog))
		c.Bars = append(c.Bars, MonthlyBar{
			Key:     m.Key,
			Label:   m.Label,
			X:       c.Padding.Left + float64(i)*slotW + (slotW-barW)/2,
			CVY:     bottom - cvH,
			CVH:     cvH,
			CatY:    bottom - cvH - catH,
			CatH:    catH,
			W:       barW,
			Total:   m.CV + m.Catalog,
			Opacity: op,
		})
		if opts.HoverKey == m.Key {
			c.Hovered = &HoverPoint{
				Label: fmt.Sprintf("Events in %s", m.Key),
				Value: fmt.Sprintf("%d cv, %d catalog", m.CV, m.Catalog),
			}
		}
	}
	return c
}

// Render zeichnet das Chart als SVG-Dokument.
func (c *MonthlyChart) Render() string {
	svg := NewSVG(c.Width, c.Height)
	for _, t := range c.Ticks {
		svg.Line(c.Padding.Left, t.Y, c.Width-c.Padding.Right, t.Y, ColorGrid, 1)
		svg.Text(c.Padding.Left-6, t.Y+3, "end", ColorAxisText, t.Label, 9)
	}
	for _, b := range c.Bars {
		if b.CVH > 0 {
			svg.Rect(b.X, b.CVY, b.W, b.CVH, 2, ColorCVEvents, b.Opacity)
		}
		if b.CatH > 0 {
			svg.Rect(b.X, b.CatY, b.W, b.CatH, 2, ColorCatalog, b.Opacity)
		}
		svg.Text(b.X+b.W/2, c.Height-10, "middle", ColorAxisText, b.Label, 9)
	}
	return svg.String()
}
