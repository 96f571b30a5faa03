package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"scholar-site/providers"
)

// Currency ist eine der beiden Anzeigewährungen.
type Currency string

const (
	CurrencyCNY Currency = "CNY"
	CurrencyUSD Currency = "USD"
)

// Undisclosed markiert einen nicht offengelegten Betrag in der Anzeige.
// Zero and undisclosed are distinct and must never be conflated.
const Undisclosed = "—"

// ParseCurrency liest einen Query-Parameter; alles außer "CNY" zeigt USD.
func ParseCurrency(s string) Currency {
	if strings.EqualFold(s, string(CurrencyCNY)) {
		return CurrencyCNY
	}
	return CurrencyUSD
}

// RateCache hält den Sitzungs-Wechselkurs. Er startet mit dem Fallback und
// wird asynchron aktualisiert; Rendering wartet nie auf das Netz.
type RateCache struct {
	mu     sync.RWMutex
	rate   float64
	source providers.RateSource
	logger *zap.Logger
}

// NewRateCache erstellt den Cache mit dem statischen Fallback-Kurs.
func NewRateCache(fallback float64, source providers.RateSource, logger *zap.Logger) *RateCache {
	return &RateCache{rate: fallback, source: source, logger: logger}
}

// Rate gibt den aktuell nutzbaren Kurs zurück (nie blockierend, nie 0).
func (rc *RateCache) Rate() float64 {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.rate
}

// Refresh fragt die Quelle ab und übernimmt den Kurs bei Erfolg. Fehler
// werden geloggt und der bisherige Kurs bleibt in Kraft.
func (rc *RateCache) Refresh(ctx context.Context) {
	if rc.source == nil {
		return
	}
	rate, err := rc.source.USDPerCNY(ctx)
	if err != nil {
		rc.logger.Warn("Exchange rate fetch failed, keeping current rate",
			zap.String("source", rc.source.Name()),
			zap.Float64("rate", rc.Rate()),
			zap.Error(err))
		return
	}
	rc.mu.Lock()
	rc.rate = rate
	rc.mu.Unlock()
	rc.logger.Info("Exchange rate updated",
		zap.String("source", rc.source.Name()),
		zap.Float64("usd_per_cny", rate))
}

// ConvertFromCNY rechnet einen CNY-Betrag in die Zielwährung um.
// Conversion to the source currency is the identity for any rate.
func ConvertFromCNY(amountCNY float64, to Currency, usdPerCNY float64) float64 {
	if to == CurrencyCNY {
		return amountCNY
	}
	return amountCNY * usdPerCNY
}

// Convert wendet den gecachten Kurs an.
func (rc *RateCache) Convert(amountCNY float64, to Currency) float64 {
	return ConvertFromCNY(amountCNY, to, rc.Rate())
}

func currencySymbol(cur Currency) string {
	if cur == CurrencyCNY {
		return "¥"
	}
	return "$"
}

// FormatMoney formats an amount with currency symbol, comma grouping and zero
// fraction digits. A nil amount renders as the undisclosed marker, never as
// zero or an empty string.
func FormatMoney(amount *float64, cur Currency) string {
	if amount == nil {
		return Undisclosed
	}
	v := math.Round(*amount)
	negative := v < 0
	if negative {
		v = -v
	}

	intStr := fmt.Sprintf("%.0f", v)
	if len(intStr) > 3 {
		var parts []string
		for len(intStr) > 3 {
			parts = append([]string{intStr[len(intStr)-3:]}, parts...)
			intStr = intStr[:len(intStr)-3]
		}
		parts = append([]string{intStr}, parts...)
		intStr = strings.Join(parts, ",")
	}

	out := currencySymbol(cur) + intStr
	if negative {
		out = "-" + out
	}
	return out
}

// AbbreviateMoney shortens large amounts for axis ticks and tooltips:
// ≥1M -> "$1.2M", ≥1K -> "$12K", otherwise the rounded value.
func AbbreviateMoney(n float64, cur Currency) string {
	prefix := currencySymbol(cur)
	abs := math.Abs(n)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%s%.1fM", prefix, n/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.0fK", prefix, n/1e3)
	default:
		return fmt.Sprintf("%s%.0f", prefix, n)
	}
}
