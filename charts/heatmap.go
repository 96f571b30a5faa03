package charts

import (
	"fmt"

	"scholar-site/services"
)

// HeatmapCell ist eine Tageszelle im Aktivitätskalender.
type HeatmapCell struct {
	Date    string
	X       float64
	Y       float64
	Fill    string
	Opacity float64
	Total   int
}

// CalendarHeatmap is the GitHub-style 53x7 grid over the trailing year of
// document events. Cell intensity scales with the day total; the hue follows
// whichever document dominates the day.
type CalendarHeatmap struct {
	Width    float64
	Height   float64
	CellSize float64

	Cells []HeatmapCell

	Hovered *HoverPoint
}

// HeatmapOptions steuern Zellgröße und Hover-Tag.
type HeatmapOptions struct {
	CellSize  float64 // 0 = Standard 11px
	HoverDate string  // "2006-01-02"
}

// BuildCalendarHeatmap lays the zero-filled day buckets into week columns.
// The last bucket is today; columns fill top to bottom by weekday.
func BuildCalendarHeatmap(days []services.DayBucket, maxTotal int, opts HeatmapOptions) *CalendarHeatmap {
	cell := opts.CellSize
	if cell <= 0 {
		cell = 11
	}
	const gap = 2.0
	pitch := cell + gap

	c := &CalendarHeatmap{CellSize: cell}
	if len(days) == 0 {
		return c
	}
	if maxTotal < 1 {
		maxTotal = 1
	}

	// Align the first column so that the final bucket lands on today's
	// weekday. Leading slots of the first week stay empty.
	offset := days[0].Weekday
	weeks := (offset + len(days) + 6) / 7
	c.Width = float64(weeks)*pitch + gap
	c.Height = 7*pitch + gap

	for i, d := range days {
		slot := offset + i
		col := slot / 7
		row := slot % 7

		hc := HeatmapCell{
			Date:  d.Date,
			X:     gap + float64(col)*pitch,
			Y:     gap + float64(row)*pitch,
			Total: d.DayTotal,
		}
		switch {
		case d.DayTotal == 0:
			hc.Fill = ColorEmptyCell
			hc.Opacity = 1
		case d.CV >= d.Catalog:
			hc.Fill = ColorCVEvents
			hc.Opacity = float64(d.DayTotal) / float64(maxTotal)
		default:
			hc.Fill = ColorCatalog
			hc.Opacity = float64(d.DayTotal) / float64(maxTotal)
		}
		// Hover dämpft alle Nachbarzellen zusätzlich zur Intensität.
		if opts.HoverDate != "" && opts.HoverDate != d.Date {
			hc.Opacity *= DimOpacity
		}
		c.Cells = append(c.Cells, hc)

		if opts.HoverDate != "" && opts.HoverDate == d.Date {
			c.Hovered = &HoverPoint{
				Label: fmt.Sprintf("Activity on %s", d.Date),
				Value: fmt.Sprintf("%d cv, %d catalog", d.CV, d.Catalog),
			}
		}
	}
	return c
}

// Render zeichnet das Raster als SVG-Dokument.
func (c *CalendarHeatmap) Render() string {
	svg := NewSVG(c.Width, c.Height)
	for _, cell := range c.Cells {
		svg.Rect(cell.X, cell.Y, c.CellSize, c.CellSize, 2, cell.Fill, cell.Opacity)
	}
	return svg.String()
}
