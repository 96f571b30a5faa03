// Package charts builds SVG chart geometry from aggregated series. Charts
// are plain values recomputed on every request; hover state is an input, not
// retained state. Every chart honors the same interaction contract: the
// hovered element reports a label/value readout and all sibling elements are
// dimmed.
package charts

// HoverPoint is reported back to the caller for the hovered element, e.g. to
// feed a text readout next to the chart.
type HoverPoint struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DimOpacity is applied to every non-hovered sibling while an element is
// hovered. Full opacity is 1.0.
const DimOpacity = 0.25

// Point ist eine Pixel-Koordinate.
type Point struct {
	X float64
	Y float64
}

// Padding sind die Innenabstände einer Zeichenfläche.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Palette der Serienfarben, in Zuweisungs-Reihenfolge.
var Palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Feste Serienfarben der Aktivitäts-Charts (wie im bestehenden Design).
const (
	ColorPublications = "#2563eb" // blue
	ColorTalks        = "#f43f5e" // rose
	ColorFunding      = "#7c3aed" // violet
	ColorGrants       = "#10b981" // emerald, Zuschüsse in der Förderzeitleiste
	ColorGrid         = "#e5e7eb"
	ColorAxisText     = "#6b7280"
	ColorCVEvents     = "hsl(210, 80%, 60%)"
	ColorCatalog      = "hsl(140, 60%, 55%)"
	ColorEmptyCell    = "hsl(210, 30%, 95%)"
)
