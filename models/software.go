package models

// PyPIStatus beschreibt die Verfügbarkeit eines Pakets auf PyPI.
type PyPIStatus string

const (
	PyPIAvailable    PyPIStatus = "available"
	PyPIInProgress   PyPIStatus = "in-progress"
	PyPINotAvailable PyPIStatus = "not-available"
)

// DocsStatus beschreibt den Stand der Dokumentation.
type DocsStatus string

const (
	DocsComplete      DocsStatus = "complete"
	DocsInDevelopment DocsStatus = "in-development"
)

// Link ist ein beschriftetes Linkpaar (Reihenfolge bleibt erhalten).
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Software repräsentiert ein Software-Projekt des Portfolios.
type Software struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	License     string     `json:"license,omitempty"`
	PyPIStatus  PyPIStatus `json:"pypi_status,omitempty"`
	DocsStatus  DocsStatus `json:"docs_status,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Links       []Link     `json:"links"`
}

// Haystack liefert alle textsuchbaren Felder für den Filter.
func (s Software) Haystack() []string {
	fields := []string{
		s.Name, s.Description, s.License,
		string(s.PyPIStatus), string(s.DocsStatus),
	}
	fields = append(fields, s.Tags...)
	for _, l := range s.Links {
		fields = append(fields, l.Label)
	}
	return fields
}
