package providers

import "context"

// RateSource ist das Interface, das jeder Wechselkurs-Provider implementieren
// muss. Aktuell gibt es nur Frankfurter; der Fallback-Kurs lebt im RateCache,
// nicht hier.
type RateSource interface {
	// USDPerCNY holt den aktuellen Kurs für 1 CNY in USD.
	USDPerCNY(ctx context.Context) (float64, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "frankfurter").
	Name() string
}
