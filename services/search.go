package services

import (
	"go.uber.org/zap"

	"scholar-site/models"
	"scholar-site/storage"
)

// SearchResults gruppiert Treffer über alle vier Sammlungen. Es gibt kein
// Ranking, nur die Gruppierung je Kategorie in Fixture-Reihenfolge.
type SearchResults struct {
	Query        string                `json:"query"`
	Total        int                   `json:"total"`
	Research     []models.ResearchArea `json:"research"`
	Publications []models.Publication  `json:"publications"`
	Software     []models.Software     `json:"software"`
	Talks        []models.Talk         `json:"talks"`
}

// SearchService beantwortet die globale Volltextsuche (?q=).
type SearchService struct {
	Fixtures *storage.Fixtures
	Logger   *zap.Logger
}

// NewSearchService erstellt den Suchdienst über den geladenen Fixtures.
func NewSearchService(fx *storage.Fixtures, logger *zap.Logger) *SearchService {
	return &SearchService{Fixtures: fx, Logger: logger}
}

// Search matches the query against every collection simultaneously. An empty
// query returns an empty result set: the page prompts for a term instead of
// dumping everything.
func (s *SearchService) Search(query string) SearchResults {
	res := SearchResults{Query: query}
	if query == "" {
		return res
	}

	res.Research = Filter(s.Fixtures.ResearchAreas, query, models.ResearchArea.Haystack)
	res.Publications = Filter(s.Fixtures.Publications, query, models.Publication.Haystack)
	res.Software = Filter(s.Fixtures.Software, query, models.Software.Haystack)
	res.Talks = Filter(s.Fixtures.Talks, query, models.Talk.Haystack)
	res.Total = len(res.Research) + len(res.Publications) + len(res.Software) + len(res.Talks)

	s.Logger.Debug("Search executed",
		zap.String("query", query),
		zap.Int("total", res.Total))
	return res
}
