package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"scholar-site/services"
	"scholar-site/storage"
)

type ExportConfig struct {
	DataDir    string `envconfig:"DATA_DIR" default:"data"`
	MetricsDir string `envconfig:"METRICS_DIR" default:"metrics"`
	ExportDir  string `envconfig:"EXPORT_DIR" default:"export"`
}

func main() {
	log.Println("Starte Export-Prozess...")

	var cfg ExportConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		log.Fatalf("Fehler beim Laden der Konfiguration: %v", err)
	}

	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		log.Fatalf("Fehler beim Anlegen des Export-Verzeichnisses: %v", err)
	}

	fixtures := storage.LoadFixtures(cfg.DataDir, logging)
	events := storage.NewEventStore(cfg.MetricsDir, logging)

	// 1. BibTeX-Export der gesamten Publikationsliste
	sorted := services.SortPublications(fixtures.Publications, services.SortYearDesc)
	bibPath := filepath.Join(cfg.ExportDir, "publications.bib")
	if err := os.WriteFile(bibPath, []byte(services.GenerateBibtex(sorted)), 0o644); err != nil {
		log.Fatalf("Fehler beim Schreiben der BibTeX-Datei: %v", err)
	}
	log.Printf("BibTeX-Export geschrieben: %s (%d Einträge)", bibPath, len(sorted))

	// 2. Zähler-Snapshot für die Dokument-Metriken
	totals := services.SummarizeActivity(events.All())
	snapshot := filepath.Join(cfg.ExportDir,
		fmt.Sprintf("metrics-%s.txt", time.Now().UTC().Format("2006-01-02")))
	f, err := os.Create(snapshot)
	if err != nil {
		log.Fatalf("Fehler beim Anlegen des Metrik-Snapshots: %v", err)
	}
	defer f.Close()
	for doc, t := range totals {
		fmt.Fprintf(f, "%s views=%d downloads=%d\n", doc, t.Views, t.Downloads)
	}
	log.Printf("Metrik-Snapshot geschrieben: %s", snapshot)

	log.Println("Export-Prozess erfolgreich abgeschlossen.")
}
