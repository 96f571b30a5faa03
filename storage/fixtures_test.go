package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadFixtures_MissingDirIsEmpty(t *testing.T) {
	fx := LoadFixtures(filepath.Join(t.TempDir(), "nope"), zap.NewNop())

	assert.Empty(t, fx.Publications)
	assert.Empty(t, fx.Talks)
	assert.Empty(t, fx.Funding)
	assert.Empty(t, fx.Software)
	assert.Empty(t, fx.ResearchAreas)
}

func TestLoadFixtures_ReadsCollections(t *testing.T) {
	dir := t.TempDir()
	pubs := `[
		{"title": "A", "authors": "Zhang, Wei", "venue": "Journal of Hydrology", "year": 2024},
		{"title": "B", "authors": "Liu, Mei", "venue": "Submitted to WRR", "year": 2025, "tags": ["forecasting"]}
	]`
	funding := `[
		{"title": "G", "period_start": "2024-01", "period_end": "2027-12", "type": "Grant", "amount_cny": 520000},
		{"title": "U", "period_start": "2022-01", "period_end": "2023-12", "type": "Grant"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "publications.json"), []byte(pubs), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "funding.json"), []byte(funding), 0o644))

	fx := LoadFixtures(dir, zap.NewNop())

	require.Len(t, fx.Publications, 2)
	assert.Equal(t, "A", fx.Publications[0].Title)
	assert.Equal(t, []string{"forecasting"}, fx.Publications[1].Tags)

	require.Len(t, fx.Funding, 2)
	require.NotNil(t, fx.Funding[0].AmountCNY)
	assert.Equal(t, 520000.0, *fx.Funding[0].AmountCNY)
	assert.Nil(t, fx.Funding[1].AmountCNY, "missing amount must stay nil, not zero")

	// fehlende Dateien bleiben leere Sammlungen
	assert.Empty(t, fx.Talks)
}

func TestLoadFixtures_MalformedFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "talks.json"), []byte("[{"), 0o644))

	fx := LoadFixtures(dir, zap.NewNop())
	assert.Empty(t, fx.Talks)
}
