package models

// ResearchArea repräsentiert eine der Forschungsbereich-Seiten.
// Die Tags bilden die weiche Verknüpfung zu Publikationen (RelatedPubs).
type ResearchArea struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Href     string   `json:"href"`
	Tags     []string `json:"tags,omitempty"`
}

// Haystack liefert alle textsuchbaren Felder für den Filter.
func (r ResearchArea) Haystack() []string {
	return append([]string{r.Title, r.Subtitle}, r.Tags...)
}
