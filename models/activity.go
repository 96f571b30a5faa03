package models

import "time"

// EventKind unterscheidet Ansichten von Downloads.
type EventKind string

const (
	EventView     EventKind = "view"
	EventDownload EventKind = "download"
)

// DocKey identifiziert ein verfolgtes Dokument.
type DocKey string

const (
	DocCV      DocKey = "cv"
	DocCatalog DocKey = "catalog"
)

// DocKeys listet alle verfolgten Dokumente.
var DocKeys = []DocKey{DocCV, DocCatalog}

// Event ist ein einzelner Zähler-Eintrag (append-only, nur lokal).
type Event struct {
	TS   int64     `json:"ts"` // Unix-Millisekunden
	Kind EventKind `json:"type"`
	Doc  DocKey    `json:"doc,omitempty"` // beim Lesen ergänzt, nicht persistiert
}

// Time gibt den Zeitstempel als time.Time zurück.
func (e Event) Time() time.Time {
	return time.UnixMilli(e.TS)
}

// ValidEventKind prüft einen Pfadparameter gegen die Enumeration.
func ValidEventKind(s string) (EventKind, bool) {
	switch EventKind(s) {
	case EventView, EventDownload:
		return EventKind(s), true
	}
	return "", false
}

// ValidDocKey prüft einen Pfadparameter gegen die verfolgten Dokumente.
func ValidDocKey(s string) (DocKey, bool) {
	switch DocKey(s) {
	case DocCV, DocCatalog:
		return DocKey(s), true
	}
	return "", false
}
