package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"scholar-site/models"
)

// Fixtures hält die beim Start einmalig geladenen Sammlungen. Die Slices
// werden nach dem Laden nie mutiert; alle Konsumenten arbeiten auf einer
// Read-only-Sicht.
type Fixtures struct {
	Publications  []models.Publication
	Talks         []models.Talk
	Funding       []models.Funding
	Software      []models.Software
	ResearchAreas []models.ResearchArea
}

// LoadFixtures liest alle JSON-Fixtures aus dem Datenverzeichnis. Eine
// fehlende oder unlesbare Datei ergibt eine leere Sammlung plus Warnung,
// nie einen Fehler: die Seite rendert dann einen leeren Zustand.
func LoadFixtures(dir string, logger *zap.Logger) *Fixtures {
	fx := &Fixtures{}
	loadCollection(dir, "publications.json", &fx.Publications, logger)
	loadCollection(dir, "talks.json", &fx.Talks, logger)
	loadCollection(dir, "funding.json", &fx.Funding, logger)
	loadCollection(dir, "software.json", &fx.Software, logger)
	loadCollection(dir, "research_areas.json", &fx.ResearchAreas, logger)

	logger.Info("Fixtures loaded",
		zap.Int("publications", len(fx.Publications)),
		zap.Int("talks", len(fx.Talks)),
		zap.Int("funding", len(fx.Funding)),
		zap.Int("software", len(fx.Software)),
		zap.Int("research_areas", len(fx.ResearchAreas)))
	return fx
}

func loadCollection[T any](dir, name string, into *[]T, logger *zap.Logger) {
	path := filepath.Join(dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Fixture file unavailable, using empty collection",
			zap.String("file", path), zap.Error(err))
		return
	}
	if err := json.Unmarshal(raw, into); err != nil {
		logger.Warn("Fixture file malformed, using empty collection",
			zap.String("file", path), zap.Error(err))
		*into = nil
	}
}
