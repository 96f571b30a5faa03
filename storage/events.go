package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"scholar-site/models"
)

// EventStore persistiert die View/Download-Zähler als eine JSON-Datei pro
// Dokument ("metrics/cv.json", "metrics/catalog.json").
// Semantik: vollständig lesen, anhängen, vollständig neu schreiben; der
// letzte Schreiber gewinnt. Es gibt keine Lösch-Operation.
type EventStore struct {
	Dir    string
	Logger *zap.Logger
}

// NewEventStore erstellt den Store und legt das Verzeichnis an. Schlägt das
// Anlegen fehl, arbeiten Read als leer und Append als No-op weiter.
func NewEventStore(dir string, logger *zap.Logger) *EventStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("Metrics dir unavailable, counters will not persist",
			zap.String("dir", dir), zap.Error(err))
	}
	return &EventStore{Dir: dir, Logger: logger}
}

func (s *EventStore) path(doc models.DocKey) string {
	return filepath.Join(s.Dir, string(doc)+".json")
}

// Read liefert alle Events eines Dokuments, mit Doc-Key angereichert.
// Fehlende Datei oder kaputtes JSON ergeben eine leere Liste, nie einen
// Fehler: der Zähler beginnt dann wieder bei null.
func (s *EventStore) Read(doc models.DocKey) []models.Event {
	raw, err := os.ReadFile(s.path(doc))
	if err != nil {
		return nil
	}
	var events []models.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		s.Logger.Warn("Event file malformed, resetting to empty",
			zap.String("doc", string(doc)), zap.Error(err))
		return nil
	}
	for i := range events {
		events[i].Doc = doc
	}
	return events
}

// All liest beide Dokument-Listen und führt sie zusammen.
func (s *EventStore) All() []models.Event {
	var all []models.Event
	for _, doc := range models.DocKeys {
		all = append(all, s.Read(doc)...)
	}
	return all
}

// Append hängt ein Event an und schreibt die Liste komplett zurück. Ein
// Schreibfehler wird geloggt und verschluckt: der Zähler zählt dann eben
// nicht hoch, die Seite rendert trotzdem.
func (s *EventStore) Append(doc models.DocKey, kind models.EventKind, now time.Time) {
	events := s.Read(doc)
	// Doc-Key wird nicht persistiert, er steckt im Dateinamen.
	persisted := make([]models.Event, 0, len(events)+1)
	for _, ev := range events {
		ev.Doc = ""
		persisted = append(persisted, ev)
	}
	persisted = append(persisted, models.Event{TS: now.UnixMilli(), Kind: kind})

	raw, err := json.Marshal(persisted)
	if err != nil {
		s.Logger.Warn("Event marshal failed", zap.String("doc", string(doc)), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(doc), raw, 0o644); err != nil {
		s.Logger.Warn("Event write failed, counter not incremented",
			zap.String("doc", string(doc)), zap.Error(err))
	}
}
