package models

import "strings"

// PubStatus ist der abgeleitete Review-Status einer Publikation.
type PubStatus string

const (
	StatusPublished     PubStatus = "Published"
	StatusUnderReview   PubStatus = "Under review"
	StatusSubmitted     PubStatus = "Submitted"
	StatusInPreparation PubStatus = "In preparation"
	StatusPreprint      PubStatus = "Preprint"
)

// AllStatuses listet die Status in Anzeige-Reihenfolge.
var AllStatuses = []PubStatus{
	StatusPublished, StatusUnderReview, StatusSubmitted, StatusInPreparation, StatusPreprint,
}

// Publication repräsentiert einen Eintrag der Publikationsliste.
type Publication struct {
	Title   string `json:"title"`
	Authors string `json:"authors"` // Semikolon- oder Komma-getrennte Liste
	Venue   string `json:"venue"`
	Year    int    `json:"year"`

	DOI   string `json:"doi,omitempty"`   // "10.xxxx/..." oder volle URL
	Arxiv string `json:"arxiv,omitempty"` // volle URL
	URL   string `json:"url,omitempty"`   // Fallback-Link

	Featured bool     `json:"featured,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	// Expliziter Status überschreibt die Venue-Heuristik (siehe DetectStatus).
	ExplicitStatus PubStatus `json:"status,omitempty"`
}

// DetectStatus leitet den Review-Status aus dem Venue-Freitext ab.
// Keyword matching is a heuristic; a venue legitimately containing
// "submitted" would be misclassified, hence the explicit field above.
func DetectStatus(venue string) PubStatus {
	v := strings.ToLower(venue)
	switch {
	case strings.Contains(v, "under review"):
		return StatusUnderReview
	case strings.Contains(v, "submitted"):
		return StatusSubmitted
	case strings.Contains(v, "preparation"):
		return StatusInPreparation
	case strings.Contains(v, "preprint"), strings.Contains(v, "arxiv"):
		return StatusPreprint
	default:
		return StatusPublished
	}
}

// Status gibt den expliziten Status zurück, sonst die Venue-Ableitung.
func (p Publication) Status() PubStatus {
	if p.ExplicitStatus != "" {
		return p.ExplicitStatus
	}
	return DetectStatus(p.Venue)
}

// DOIURL normalisiert eine nackte DOI zu einer auflösbaren URL.
func (p Publication) DOIURL() string {
	d := strings.TrimSpace(p.DOI)
	if d == "" {
		return ""
	}
	if strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://") {
		return d
	}
	return "https://doi.org/" + d
}

// VenueName ist der Venue-Name ohne Klammerzusätze, z.B. "(IF 4.2)".
func (p Publication) VenueName() string {
	name, _, _ := strings.Cut(p.Venue, "(")
	return strings.TrimSpace(name)
}

// Haystack liefert alle textsuchbaren Felder für den Filter.
func (p Publication) Haystack() []string {
	fields := []string{p.Title, p.Authors, p.Venue}
	return append(fields, p.Tags...)
}

// HasAnyTag prüft auf nicht-leeren Schnitt mit der übergebenen Tag-Menge
// (case-insensitive).
func (p Publication) HasAnyTag(tags map[string]bool) bool {
	for _, t := range p.Tags {
		if tags[strings.ToLower(t)] {
			return true
		}
	}
	return false
}
