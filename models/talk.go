package models

import "strconv"

// TalkType kategorisiert einen Vortrag.
type TalkType string

const (
	TalkConference TalkType = "conference"
	TalkWorkshop   TalkType = "workshop"
	TalkSeminar    TalkType = "seminar"
	TalkWebinar    TalkType = "webinar"
)

// TalkTypes listet die gültigen Kategorien für den Typ-Filter.
var TalkTypes = []TalkType{TalkConference, TalkWorkshop, TalkSeminar, TalkWebinar}

// Talk repräsentiert einen Vortrag, ein Seminar oder eine Session.
type Talk struct {
	Event string `json:"event"`
	Role  string `json:"role"`
	Title string `json:"title,omitempty"`

	Start string `json:"start"`         // YYYY-MM-DD oder YYYY
	End   string `json:"end,omitempty"` // optional

	Location string   `json:"location,omitempty"`
	Type     TalkType `json:"type,omitempty"`
	Notes    string   `json:"notes,omitempty"`

	// Explizites Jahr überschreibt die Ableitung aus Start.
	ExplicitYear int `json:"year,omitempty"`
}

// Year leitet das Jahr aus dem Startdatum ab; das explizite Feld gewinnt.
// Returns (0, false) when neither is usable.
func (t Talk) Year() (int, bool) {
	if t.ExplicitYear != 0 {
		return t.ExplicitYear, true
	}
	if len(t.Start) >= 4 {
		if y, err := strconv.Atoi(t.Start[:4]); err == nil && y >= 1000 {
			return y, true
		}
	}
	return 0, false
}

// SortKey macht das Startdatum lexikographisch sortierbar ("2024-05-01" -> "20240501").
func (t Talk) SortKey() string {
	key := make([]byte, 0, len(t.Start))
	for i := 0; i < len(t.Start); i++ {
		if t.Start[i] != '-' {
			key = append(key, t.Start[i])
		}
	}
	return string(key)
}

// DateRange formatiert den Zeitraum für die Anzeige.
func (t Talk) DateRange() string {
	switch {
	case t.Start == "" && t.End == "":
		return "—"
	case t.End == "":
		return t.Start
	case t.Start == "":
		return t.End
	default:
		return t.Start + " → " + t.End
	}
}

// Haystack liefert alle textsuchbaren Felder für den Filter.
func (t Talk) Haystack() []string {
	year := ""
	if y, ok := t.Year(); ok {
		year = strconv.Itoa(y)
	}
	return []string{t.Event, t.Role, t.Title, t.Location, string(t.Type), year, t.Notes}
}
