package charts

import (
	"fmt"
	"strconv"

	"scholar-site/services"
)

// Series names of the combined activity chart.
const (
	SeriesPublications = "Publications"
	SeriesTalks        = "Talks"
	SeriesFunding      = "Funding"
)

// Bar ist ein einzelner Balken inklusive Hover-Zustand.
type Bar struct {
	Year    int
	Series  string
	X       float64
	Y       float64
	W       float64
	H       float64
	Value   float64
	Opacity float64
}

// Dot ist ein Punkt der Förderlinie.
type Dot struct {
	Year    int
	X       float64
	Y       float64
	R       float64
	Value   float64
	Opacity float64
}

// ActivityChart combines per-year grouped bars (publications, talks, counted
// on the left axis) with a smoothed funding line on the right axis.
type ActivityChart struct {
	Width    float64
	Height   float64
	Padding  Padding
	Currency services.Currency

	Years      []int
	LabelEvery int

	Bars        []Bar
	LinePath    string
	LineOpacity float64
	Dots        []Dot

	LeftTicks  []Tick
	RightTicks []Tick

	Hovered *HoverPoint
}

// ActivityOptions steuern Variante, Währung und Hover-Zustand.
type ActivityOptions struct {
	Mini        bool
	Currency    services.Currency
	HoverYear   int    // 0 = kein Hover
	HoverSeries string // leer = ganze Jahresgruppe
}

// BuildActivityChart lays out the chart from three year-aligned series. The
// three slices must cover the same year range (zero-filled by the
// aggregator); funding values arrive already converted to opts.Currency.
func BuildActivityChart(pubs, talks, funding []services.YearBucket, opts ActivityOptions) *ActivityChart {
	c := &ActivityChart{
		Width:    920,
		Height:   320,
		Padding:  Padding{Top: 40, Right: 56, Bottom: 44, Left: 52},
		Currency: opts.Currency,
	}
	if opts.Mini {
		c.Width, c.Height = 340, 220
	}

	years := make([]int, len(pubs))
	for i, b := range pubs {
		years[i] = b.Year
	}
	c.Years = years
	if len(years) == 0 {
		return c
	}

	c.LabelEvery = 1
	if opts.Mini {
		c.LabelEvery = (len(years) + 5) / 6
	}

	chartW := c.Width - c.Padding.Left - c.Padding.Right
	top := c.Padding.Top
	bottom := c.Height - c.Padding.Bottom

	maxCount := 0.0
	for i := range years {
		if pubs[i].Value > maxCount {
			maxCount = pubs[i].Value
		}
		if talks[i].Value > maxCount {
			maxCount = talks[i].Value
		}
	}
	maxFunding := 0.0
	for _, b := range funding {
		if b.Value > maxFunding {
			maxFunding = b.Value
		}
	}

	left := NewLinearScale(maxCount, top, bottom)
	right := NewLinearScale(maxFunding, top, bottom)
	c.LeftTicks = left.Ticks(6, CountLabel)
	c.RightTicks = right.Ticks(6, func(v float64) string {
		return services.AbbreviateMoney(v, opts.Currency)
	})

	groupW := chartW / float64(len(years))
	barW := (groupW-10)/2 - 6
	if barW < 6 {
		barW = 6
	}

	barOpacity := func(year int) float64 {
		if opts.HoverYear == 0 || opts.HoverYear == year {
			return 1
		}
		return DimOpacity
	}

	linePoints := make([]Point, len(years))
	for i, year := range years {
		gx := c.Padding.Left + float64(i)*groupW + 5
		op := barOpacity(year)

		c.Bars = append(c.Bars, Bar{
			Year: year, Series: SeriesPublications,
			X: gx, Y: left.Y(pubs[i].Value), W: barW, H: left.Height(pubs[i].Value),
			Value: pubs[i].Value, Opacity: op,
		})
		c.Bars = append(c.Bars, Bar{
			Year: year, Series: SeriesTalks,
			X: gx + barW + 6, Y: left.Y(talks[i].Value), W: barW, H: left.Height(talks[i].Value),
			Value: talks[i].Value, Opacity: op,
		})

		px := c.Padding.Left + float64(i)*groupW + groupW/2
		py := right.Y(funding[i].Value)
		linePoints[i] = Point{X: px, Y: py}

		r := 4.0
		if opts.HoverYear == year {
			r = 6
		}
		c.Dots = append(c.Dots, Dot{
			Year: year, X: px, Y: py, R: r,
			Value: funding[i].Value, Opacity: barOpacity(year),
		})
	}

	c.LinePath = SmoothPath(linePoints, SplineTension)
	c.LineOpacity = 1
	if opts.HoverYear != 0 {
		c.LineOpacity = DimOpacity
	}

	c.Hovered = activityHover(pubs, talks, funding, opts)
	return c
}

// activityHover resolves the readout for the hovered element. Without a
// series the year group reports its publication count.
func activityHover(pubs, talks, funding []services.YearBucket, opts ActivityOptions) *HoverPoint {
	if opts.HoverYear == 0 {
		return nil
	}
	for i, b := range pubs {
		if b.Year != opts.HoverYear {
			continue
		}
		series := opts.HoverSeries
		if series == "" {
			series = SeriesPublications
		}
		var value string
		switch series {
		case SeriesTalks:
			value = strconv.Itoa(int(talks[i].Value))
		case SeriesFunding:
			value = services.AbbreviateMoney(funding[i].Value, opts.Currency)
		default:
			series = SeriesPublications
			value = strconv.Itoa(int(b.Value))
		}
		return &HoverPoint{
			Label: fmt.Sprintf("%s in %d", series, opts.HoverYear),
			Value: value,
		}
	}
	return nil
}

// Render zeichnet das Chart als SVG-Dokument.
func (c *ActivityChart) Render() string {
	svg := NewSVG(c.Width, c.Height)
	if len(c.Years) == 0 {
		return svg.String()
	}

	// Legende
	legendY := c.Padding.Top - 15
	svg.Rect(c.Padding.Left, legendY-8, 12, 12, 2.5, ColorPublications, 1)
	svg.Text(c.Padding.Left+18, legendY+2, "start", ColorAxisText, SeriesPublications, 10)
	svg.Rect(c.Padding.Left+90, legendY-8, 12, 12, 2.5, ColorTalks, 1)
	svg.Text(c.Padding.Left+108, legendY+2, "start", ColorAxisText, SeriesTalks, 10)
	svg.Line(c.Padding.Left+150, legendY-2, c.Padding.Left+168, legendY-2, ColorFunding, 2.5)
	svg.Text(c.Padding.Left+174, legendY+2, "start", ColorAxisText,
		fmt.Sprintf("%s (%s)", SeriesFunding, c.Currency), 10)

	// Gitter und Achsen
	for _, t := range c.LeftTicks {
		svg.Line(c.Padding.Left, t.Y, c.Width-c.Padding.Right, t.Y, ColorGrid, 1)
		svg.Text(c.Padding.Left-8, t.Y+4, "end", ColorAxisText, t.Label, 10)
	}
	for _, t := range c.RightTicks {
		svg.Text(c.Width-c.Padding.Right+6, t.Y+4, "start", ColorAxisText, t.Label, 10)
	}
	svg.Line(c.Width-c.Padding.Right, c.Padding.Top, c.Width-c.Padding.Right, c.Height-c.Padding.Bottom, ColorGrid, 1)

	groupW := (c.Width - c.Padding.Left - c.Padding.Right) / float64(len(c.Years))
	for i, year := range c.Years {
		if i%c.LabelEvery != 0 {
			continue
		}
		x := c.Padding.Left + float64(i)*groupW + groupW/2
		svg.Text(x, c.Height-10, "middle", ColorAxisText, strconv.Itoa(year), 10)
	}

	// Balken
	for _, b := range c.Bars {
		fill := ColorPublications
		if b.Series == SeriesTalks {
			fill = ColorTalks
		}
		svg.Rect(b.X, b.Y, b.W, b.H, 3, fill, b.Opacity)
	}

	// Förderlinie und Punkte
	if c.LinePath != "" {
		svg.Path(c.LinePath, ColorFunding, 2.5, c.LineOpacity)
	}
	for _, d := range c.Dots {
		svg.Circle(d.X, d.Y, d.R, ColorFunding, d.Opacity)
	}

	return svg.String()
}
