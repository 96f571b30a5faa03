package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"4343"`

	// Name des Seiteninhabers, für die Erstautor-Statistik
	OwnerName string `envconfig:"OWNER_NAME" default:"Zhang, Wei"`

	// Verzeichnis mit den JSON-Fixtures (publications.json, talks.json, ...)
	DataDir string `envconfig:"DATA_DIR" default:"data"`
	// Verzeichnis für die lokalen Aktivitäts-Zähler (eine Datei pro Dokument)
	MetricsDir string `envconfig:"METRICS_DIR" default:"metrics"`
	// Statische Assets (cv.pdf, projects-catalog.pdf, Logos)
	StaticDir string `envconfig:"STATIC_DIR" default:"static"`

	// Wechselkurs-Service (CNY -> USD)
	RateBaseURL  string  `envconfig:"RATE_BASE_URL" default:"https://api.frankfurter.app"`
	FallbackRate float64 `envconfig:"FALLBACK_RATE" default:"0.14"`
	// Cron-Zeitplan für die Kursaktualisierung
	RateRefreshSchedule string `envconfig:"RATE_REFRESH_SCHEDULE" default:"0 6 * * *"`

	// Drittanbieter-Endpoint für Kontaktformular-Submissions
	ContactFormURL string `envconfig:"CONTACT_FORM_URL"`

	PublicationPageSize int `envconfig:"PUBLICATION_PAGE_SIZE" default:"10"`
	TalkPageSize        int `envconfig:"TALK_PAGE_SIZE" default:"8"`
	RelatedPubsMax      int `envconfig:"RELATED_PUBS_MAX" default:"5"`

	// Erstes Jahr der Aktivitäts-Charts
	ActivityStartYear int `envconfig:"ACTIVITY_START_YEAR" default:"2020"`
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
