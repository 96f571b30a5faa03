package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scholar-site/models"
)

func TestEventStore_AppendAndRead(t *testing.T) {
	store := NewEventStore(t.TempDir(), zap.NewNop())
	now := time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC)

	store.Append(models.DocCV, models.EventView, now)
	store.Append(models.DocCV, models.EventDownload, now.Add(time.Minute))
	store.Append(models.DocCatalog, models.EventView, now)

	cv := store.Read(models.DocCV)
	require.Len(t, cv, 2)
	assert.Equal(t, models.EventView, cv[0].Kind)
	assert.Equal(t, models.EventDownload, cv[1].Kind)
	assert.Equal(t, now.UnixMilli(), cv[0].TS)
	// Doc-Key wird beim Lesen ergänzt
	assert.Equal(t, models.DocCV, cv[0].Doc)

	all := store.All()
	assert.Len(t, all, 3)
}

func TestEventStore_MissingFileIsEmpty(t *testing.T) {
	store := NewEventStore(t.TempDir(), zap.NewNop())
	assert.Empty(t, store.Read(models.DocCV))
	assert.Empty(t, store.All())
}

func TestEventStore_MalformedFileResetsToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.json"), []byte("{not json"), 0o644))

	store := NewEventStore(dir, zap.NewNop())
	assert.Empty(t, store.Read(models.DocCV))

	// der nächste Append beginnt sauber bei einem Event
	store.Append(models.DocCV, models.EventView, time.Now())
	assert.Len(t, store.Read(models.DocCV), 1)
}

func TestEventStore_DocKeyNotPersisted(t *testing.T) {
	dir := t.TempDir()
	store := NewEventStore(dir, zap.NewNop())
	store.Append(models.DocCatalog, models.EventView, time.Now())

	raw, err := os.ReadFile(filepath.Join(dir, "catalog.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"doc"`)
}
