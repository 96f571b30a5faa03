package charts

import (
	"fmt"
	"strings"
)

// SVG is a minimal element writer for the chart renderers. The handful of
// rect/line/circle/path/text shapes the charts need does not justify a DOM
// library.
type SVG struct {
	b strings.Builder
}

// NewSVG opens a document with the given viewBox size.
func NewSVG(width, height float64) *SVG {
	s := &SVG{}
	fmt.Fprintf(&s.b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`,
		coord(width), coord(height), coord(width), coord(height))
	return s
}

// Rect schreibt ein Rechteck; opacity 1 wird weggelassen.
func (s *SVG) Rect(x, y, w, h, rx float64, fill string, opacity float64) {
	fmt.Fprintf(&s.b, `<rect x="%s" y="%s" width="%s" height="%s"`,
		coord(x), coord(y), coord(w), coord(h))
	if rx > 0 {
		fmt.Fprintf(&s.b, ` rx="%s"`, coord(rx))
	}
	fmt.Fprintf(&s.b, ` fill="%s"`, fill)
	s.opacity(opacity)
	s.b.WriteString("/>")
}

// Line schreibt eine Linie.
func (s *SVG) Line(x1, y1, x2, y2 float64, stroke string, width float64) {
	fmt.Fprintf(&s.b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
		coord(x1), coord(y1), coord(x2), coord(y2), stroke, coord(width))
}

// Circle schreibt einen Kreis.
func (s *SVG) Circle(cx, cy, r float64, fill string, opacity float64) {
	fmt.Fprintf(&s.b, `<circle cx="%s" cy="%s" r="%s" fill="%s"`,
		coord(cx), coord(cy), coord(r), fill)
	s.opacity(opacity)
	s.b.WriteString("/>")
}

// Path schreibt einen offenen Pfad (fill none).
func (s *SVG) Path(d, stroke string, width, opacity float64) {
	fmt.Fprintf(&s.b,
		`<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"`,
		d, stroke, coord(width))
	s.opacity(opacity)
	s.b.WriteString("/>")
}

// FilledPath schreibt einen gefüllten Pfad (Donut-Segmente).
func (s *SVG) FilledPath(d, fill string, opacity float64) {
	fmt.Fprintf(&s.b, `<path d="%s" fill="%s"`, d, fill)
	s.opacity(opacity)
	s.b.WriteString("/>")
}

// Text schreibt beschriftenden Text; anchor ist start/middle/end.
func (s *SVG) Text(x, y float64, anchor, fill, content string, size float64) {
	fmt.Fprintf(&s.b,
		`<text x="%s" y="%s" text-anchor="%s" fill="%s" font-size="%s" font-family="sans-serif">%s</text>`,
		coord(x), coord(y), anchor, fill, coord(size), escapeText(content))
}

func (s *SVG) opacity(o float64) {
	if o > 0 && o < 1 {
		fmt.Fprintf(&s.b, ` opacity="%s"`, coord(o))
	}
}

// String schließt das Dokument ab.
func (s *SVG) String() string {
	return s.b.String() + "</svg>"
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(t string) string {
	return textEscaper.Replace(t)
}
