package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"scholar-site/config"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Response repräsentiert die JSON-Antwort der Frankfurter-API.
type Response struct {
	Rates struct {
		USD float64 `json:"USD"`
	} `json:"rates"`
}

// Fetcher kapselt die Kursabfrage bei frankfurter.app.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen Frankfurter-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// Name gibt den Provider-Namen zurück.
func (f *Fetcher) Name() string { return "frankfurter" }

// USDPerCNY holt den aktuellen CNY->USD-Kurs. Jede Abweichung vom erwarteten
// Format ist ein Fehler; der Aufrufer behält dann seinen bisherigen Kurs.
func (f *Fetcher) USDPerCNY(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/latest?from=CNY&to=USD", f.Config.RateBaseURL)
	log := f.Logger.With(zap.String("url", url))
	log.Debug("Fetching exchange rate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate request failed with status: %d", resp.StatusCode)
	}

	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return 0, err
	}
	if r.Rates.USD <= 0 {
		return 0, fmt.Errorf("rate response missing rates.USD")
	}

	return r.Rates.USD, nil
}
