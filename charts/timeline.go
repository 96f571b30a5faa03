package charts

import "strconv"

// TimelineItem ist ein Förderzeitraum mit vorformatiertem Betrag.
type TimelineItem struct {
	Title  string
	Start  float64 // Jahr als Bruchzahl, z.B. 2022.5 für Juli 2022
	End    float64
	Amount string
	Type   string
}

// TimelineBar ist die gelayoutete Zeile eines Zeitraums.
type TimelineBar struct {
	Item    TimelineItem
	X       float64
	Y       float64
	W       float64
	H       float64
	Fill    string
	Opacity float64
}

// FundingTimeline is a Gantt-style view of funding periods. The horizontal
// axis spans from the earliest start year to one past the latest end year so
// short periods stay visible.
type FundingTimeline struct {
	Width   float64
	Height  float64
	Padding Padding

	FromYear int
	ToYear   int

	Bars  []TimelineBar
	Years []int

	Hovered *HoverPoint
}

// TimelineOptions steuern die hervorgehobene Zeile.
type TimelineOptions struct {
	HoverIndex int // -1 = kein Hover
}

const timelineMinBarWidth = 2.0

// BuildFundingTimeline lays the items onto rows in input order.
func BuildFundingTimeline(items []TimelineItem, opts TimelineOptions) *FundingTimeline {
	const rowH = 26.0
	c := &FundingTimeline{
		Width:   760,
		Padding: Padding{Top: 18, Right: 20, Bottom: 30, Left: 20},
	}
	c.Height = c.Padding.Top + float64(len(items))*rowH + c.Padding.Bottom
	if len(items) == 0 {
		return c
	}

	fromYear := int(items[0].Start)
	toYear := int(items[0].End)
	for _, it := range items {
		if int(it.Start) < fromYear {
			fromYear = int(it.Start)
		}
		if int(it.End) > toYear {
			toYear = int(it.End)
		}
	}
	toYear++
	c.FromYear, c.ToYear = fromYear, toYear
	for y := fromYear; y <= toYear; y++ {
		c.Years = append(c.Years, y)
	}

	chartW := c.Width - c.Padding.Left - c.Padding.Right
	span := float64(toYear - fromYear)
	timeToX := func(t float64) float64 {
		return c.Padding.Left + (t-float64(fromYear))/span*chartW
	}

	for i, it := range items {
		op := 1.0
		if opts.HoverIndex >= 0 && opts.HoverIndex != i {
			op = DimOpacity
		}
		x := timeToX(it.Start)
		w := timeToX(it.End) - x
		if w < timelineMinBarWidth {
			w = timelineMinBarWidth
		}
		fill := ColorGrants
		if it.Type == "Contract" {
			fill = ColorFunding
		}
		c.Bars = append(c.Bars, TimelineBar{
			Item:    it,
			X:       x,
			Y:       c.Padding.Top + float64(i)*rowH + 5,
			W:       w,
			H:       rowH - 10,
			Fill:    fill,
			Opacity: op,
		})
		if opts.HoverIndex == i {
			c.Hovered = &HoverPoint{Label: it.Title, Value: it.Amount}
		}
	}
	return c
}

// Render zeichnet die Zeitleiste als SVG-Dokument.
func (c *FundingTimeline) Render() string {
	svg := NewSVG(c.Width, c.Height)
	chartW := c.Width - c.Padding.Left - c.Padding.Right
	if len(c.Years) > 1 {
		span := float64(len(c.Years) - 1)
		for i, y := range c.Years {
			x := c.Padding.Left + float64(i)/span*chartW
			svg.Line(x, c.Padding.Top, x, c.Height-c.Padding.Bottom, ColorGrid, 1)
			svg.Text(x, c.Height-10, "middle", ColorAxisText, strconv.Itoa(y), 10)
		}
	}
	for _, b := range c.Bars {
		svg.Rect(b.X, b.Y, b.W, b.H, 4, b.Fill, b.Opacity)
		svg.Text(b.X+4, b.Y+b.H-4, "start", "#ffffff", b.Item.Title, 9)
	}
	return svg.String()
}
