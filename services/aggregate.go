package services

import (
	"strings"
	"time"

	"scholar-site/models"
)

// YearBucket ist ein Jahres-Zähler bzw. eine Jahres-Summe.
type YearBucket struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// CountByYear counts items per year over the full inclusive range
// [from, to]. Every year in the range is present in the result, zero-filled,
// so charts show empty bars instead of omitting the bucket. Items whose year
// cannot be derived are skipped.
func CountByYear[T any](items []T, year func(T) (int, bool), from, to int) []YearBucket {
	return foldByYear(items, year, func(T) float64 { return 1 }, from, to)
}

// SumByYear sums valueFn per year over the full inclusive range, zero-filled.
func SumByYear[T any](items []T, year func(T) (int, bool), valueFn func(T) float64, from, to int) []YearBucket {
	return foldByYear(items, year, valueFn, from, to)
}

func foldByYear[T any](items []T, year func(T) (int, bool), valueFn func(T) float64, from, to int) []YearBucket {
	if to < from {
		return nil
	}
	buckets := make([]YearBucket, to-from+1)
	for i := range buckets {
		buckets[i].Year = from + i
	}
	for _, it := range items {
		y, ok := year(it)
		if !ok || y < from || y > to {
			continue
		}
		buckets[y-from].Value += valueFn(it)
	}
	return buckets
}

// FundingTotals fasst eine (ggf. gefilterte) Förderliste zusammen.
// Nil-Beträge zählen als 0 und lösen nie einen Fehler aus.
type FundingTotals struct {
	TotalCNY     float64 `json:"total_cny"`
	GrantsCNY    float64 `json:"grants_cny"`
	ContractsCNY float64 `json:"contracts_cny"`

	TotalCount    int `json:"total_count"`
	GrantCount    int `json:"grant_count"`
	ContractCount int `json:"contract_count"`
}

// SummarizeFunding berechnet Gesamtsumme und Grant/Contract-Teilsummen.
func SummarizeFunding(items []models.Funding) FundingTotals {
	var t FundingTotals
	for _, f := range items {
		amount := f.Amount()
		t.TotalCNY += amount
		t.TotalCount++
		switch f.Type {
		case models.FundingGrant:
			t.GrantsCNY += amount
			t.GrantCount++
		case models.FundingContract:
			t.ContractsCNY += amount
			t.ContractCount++
		}
	}
	return t
}

// PublicationStats sind die Dashboard-Kennzahlen der Publikationsseite.
type PublicationStats struct {
	Total         int `json:"total"`
	FirstAuthor   int `json:"first_author"`
	UniqueVenues  int `json:"unique_venues"`
	FeaturedCount int `json:"featured"`
}

// SummarizePublications derives the dashboard stats. firstAuthorPrefix is the
// lowercase surname the author list must start with to count as first-author.
func SummarizePublications(pubs []models.Publication, firstAuthorPrefix string) PublicationStats {
	stats := PublicationStats{Total: len(pubs)}
	venues := make(map[string]bool)
	for _, p := range pubs {
		venues[p.VenueName()] = true
		if firstAuthorPrefix != "" && strings.HasPrefix(strings.ToLower(p.Authors), strings.ToLower(firstAuthorPrefix)) {
			stats.FirstAuthor++
		}
		if p.Featured {
			stats.FeaturedCount++
		}
	}
	stats.UniqueVenues = len(venues)
	return stats
}

// StatusBucket ist ein Zähler je Review-Status, in der Reihenfolge von
// models.AllStatuses (leere Buckets eingeschlossen).
type StatusBucket struct {
	Status models.PubStatus `json:"status"`
	Count  int              `json:"count"`
}

// CountByStatus zählt Publikationen je Status.
func CountByStatus(pubs []models.Publication) []StatusBucket {
	counts := make(map[models.PubStatus]int)
	for _, p := range pubs {
		counts[p.Status()]++
	}
	buckets := make([]StatusBucket, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		buckets = append(buckets, StatusBucket{Status: s, Count: counts[s]})
	}
	return buckets
}

// DayBucket ist ein Kalendertag des 365-Tage-Fensters.
type DayBucket struct {
	Date     string `json:"date"` // YYYY-MM-DD, lokale Zeit
	CV       int    `json:"cv"`
	Catalog  int    `json:"catalog"`
	Weekday  int    `json:"weekday"` // 0 = Sonntag
	DayTotal int    `json:"total"`
}

// CalendarWindowDays is the length of the trailing activity window.
const CalendarWindowDays = 365

// CalendarActivity builds the fixed trailing 365-day window ending on now's
// calendar day (local time), accumulates per-day per-document counts, and
// tracks the running maximum day total for color-intensity scaling. The
// result always has exactly CalendarWindowDays entries, zero-filled; maxTotal
// is at least 1 so opacity math never divides by zero.
func CalendarActivity(events []models.Event, now time.Time) (days []DayBucket, maxTotal int) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -(CalendarWindowDays - 1))

	days = make([]DayBucket, CalendarWindowDays)
	index := make(map[string]int, CalendarWindowDays)
	for i := range days {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		days[i] = DayBucket{Date: key, Weekday: int(d.Weekday())}
		index[key] = i
	}

	maxTotal = 0
	for _, ev := range events {
		key := ev.Time().In(now.Location()).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		switch ev.Doc {
		case models.DocCV:
			days[i].CV++
		case models.DocCatalog:
			days[i].Catalog++
		}
		days[i].DayTotal = days[i].CV + days[i].Catalog
		if days[i].DayTotal > maxTotal {
			maxTotal = days[i].DayTotal
		}
	}
	if maxTotal < 1 {
		maxTotal = 1
	}
	return days, maxTotal
}

// MonthBucket ist ein Monat des 12-Monats-Fensters.
type MonthBucket struct {
	Key     string `json:"key"`   // YYYY-MM
	Label   string `json:"label"` // Monats-Initiale wie im Original-Chart
	CV      int    `json:"cv"`
	Catalog int    `json:"catalog"`
}

var monthInitials = [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}

// MonthlyActivity buckets events into the trailing 12 calendar months ending
// with now's month, oldest first, zero-filled.
func MonthlyActivity(events []models.Event, now time.Time) []MonthBucket {
	months := make([]MonthBucket, 12)
	index := make(map[string]int, 12)
	for i := 0; i < 12; i++ {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, i-11, 0)
		key := d.Format("2006-01")
		months[i] = MonthBucket{Key: key, Label: monthInitials[int(d.Month())-1]}
		index[key] = i
	}

	for _, ev := range events {
		key := ev.Time().In(now.Location()).Format("2006-01")
		i, ok := index[key]
		if !ok {
			continue
		}
		switch ev.Doc {
		case models.DocCV:
			months[i].CV++
		case models.DocCatalog:
			months[i].Catalog++
		}
	}
	return months
}

// ActivityTotals zählt Views/Downloads pro Dokument.
type ActivityTotals struct {
	Views     int `json:"views"`
	Downloads int `json:"downloads"`
}

// SummarizeActivity berechnet die Zähler-Kacheln der CV-Seite.
func SummarizeActivity(events []models.Event) map[models.DocKey]ActivityTotals {
	totals := make(map[models.DocKey]ActivityTotals, len(models.DocKeys))
	for _, doc := range models.DocKeys {
		totals[doc] = ActivityTotals{}
	}
	for _, ev := range events {
		t := totals[ev.Doc]
		switch ev.Kind {
		case models.EventView:
			t.Views++
		case models.EventDownload:
			t.Downloads++
		}
		totals[ev.Doc] = t
	}
	return totals
}
