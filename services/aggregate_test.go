package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-site/models"
)

func TestSummarizeFunding_NilAmountCountsAsZero(t *testing.T) {
	a, c := 100.0, 300.0
	items := []models.Funding{
		{Title: "A", Type: models.FundingGrant, AmountCNY: &a},
		{Title: "B", Type: models.FundingGrant, AmountCNY: nil},
		{Title: "C", Type: models.FundingContract, AmountCNY: &c},
	}

	totals := SummarizeFunding(items)
	assert.Equal(t, 400.0, totals.TotalCNY)
	assert.Equal(t, 100.0, totals.GrantsCNY)
	assert.Equal(t, 300.0, totals.ContractsCNY)
	assert.Equal(t, 2, totals.GrantCount)
	assert.Equal(t, 1, totals.ContractCount)
}

func TestCountByYear_ZeroFillsRange(t *testing.T) {
	pubs := []models.Publication{
		{Title: "A", Year: 2021},
		{Title: "B", Year: 2021},
		{Title: "C", Year: 2023},
	}
	buckets := CountByYear(pubs, func(p models.Publication) (int, bool) {
		return p.Year, p.Year != 0
	}, 2020, 2024)

	require.Len(t, buckets, 5)
	assert.Equal(t, YearBucket{Year: 2020, Value: 0}, buckets[0])
	assert.Equal(t, YearBucket{Year: 2021, Value: 2}, buckets[1])
	assert.Equal(t, YearBucket{Year: 2022, Value: 0}, buckets[2])
	assert.Equal(t, YearBucket{Year: 2023, Value: 1}, buckets[3])
	assert.Equal(t, YearBucket{Year: 2024, Value: 0}, buckets[4])
}

func TestCountByStatus_IncludesEmptyBuckets(t *testing.T) {
	pubs := []models.Publication{
		{Venue: "Journal of Hydrology", Year: 2024},
		{Venue: "Submitted to WRR", Year: 2025},
	}
	buckets := CountByStatus(pubs)

	require.Len(t, buckets, len(models.AllStatuses))
	assert.Equal(t, models.StatusPublished, buckets[0].Status)
	assert.Equal(t, 1, buckets[0].Count)
	for _, b := range buckets {
		if b.Status == models.StatusSubmitted {
			assert.Equal(t, 1, b.Count)
		}
	}
}

func TestCalendarActivity_AlwaysFullWindow(t *testing.T) {
	now := time.Date(2025, 8, 29, 14, 0, 0, 0, time.UTC)

	days, maxTotal := CalendarActivity(nil, now)
	require.Len(t, days, CalendarWindowDays)
	assert.Equal(t, 1, maxTotal, "max must stay positive for opacity math")
	assert.Equal(t, "2025-08-29", days[len(days)-1].Date)
	for _, d := range days {
		assert.Zero(t, d.DayTotal)
	}
}

func TestCalendarActivity_CountsPerDocAndTracksMax(t *testing.T) {
	now := time.Date(2025, 8, 29, 14, 0, 0, 0, time.UTC)
	day := time.Date(2025, 8, 28, 9, 0, 0, 0, time.UTC)

	events := []models.Event{
		{TS: day.UnixMilli(), Kind: models.EventView, Doc: models.DocCV},
		{TS: day.UnixMilli(), Kind: models.EventDownload, Doc: models.DocCV},
		{TS: day.UnixMilli(), Kind: models.EventView, Doc: models.DocCatalog},
		// außerhalb des Fensters, wird ignoriert
		{TS: now.AddDate(-2, 0, 0).UnixMilli(), Kind: models.EventView, Doc: models.DocCV},
	}

	days, maxTotal := CalendarActivity(events, now)
	assert.Equal(t, 3, maxTotal)

	target := days[len(days)-2]
	assert.Equal(t, "2025-08-28", target.Date)
	assert.Equal(t, 2, target.CV)
	assert.Equal(t, 1, target.Catalog)
}

func TestMonthlyActivity_TrailingTwelveMonths(t *testing.T) {
	now := time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		{TS: time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC).UnixMilli(), Kind: models.EventView, Doc: models.DocCV},
		{TS: time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC).UnixMilli(), Kind: models.EventView, Doc: models.DocCatalog},
		// ein Jahr zu alt
		{TS: time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC).UnixMilli(), Kind: models.EventView, Doc: models.DocCV},
	}

	months := MonthlyActivity(events, now)
	require.Len(t, months, 12)
	assert.Equal(t, "2024-09", months[0].Key)
	assert.Equal(t, "2025-08", months[11].Key)
	assert.Equal(t, 1, months[0].Catalog)
	assert.Equal(t, 1, months[11].CV)

	total := 0
	for _, m := range months {
		total += m.CV + m.Catalog
	}
	assert.Equal(t, 2, total)
}

func TestSummarizePublications(t *testing.T) {
	pubs := []models.Publication{
		{Title: "A", Authors: "Zhang, Wei; Liu, Mei", Venue: "Journal of Hydrology (Vol. 1)", Year: 2024, Featured: true},
		{Title: "B", Authors: "Liu, Mei; Zhang, Wei", Venue: "Journal of Hydrology (Vol. 2)", Year: 2023},
		{Title: "C", Authors: "zhang, wei", Venue: "Remote Sensing of Environment", Year: 2022},
	}

	stats := SummarizePublications(pubs, "Zhang, Wei")
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.FirstAuthor)
	assert.Equal(t, 2, stats.UniqueVenues, "volume suffix must not split the venue")
	assert.Equal(t, 1, stats.FeaturedCount)
}

func TestSummarizeActivity(t *testing.T) {
	events := []models.Event{
		{Kind: models.EventView, Doc: models.DocCV},
		{Kind: models.EventView, Doc: models.DocCV},
		{Kind: models.EventDownload, Doc: models.DocCatalog},
	}
	totals := SummarizeActivity(events)
	assert.Equal(t, 2, totals[models.DocCV].Views)
	assert.Equal(t, 0, totals[models.DocCV].Downloads)
	assert.Equal(t, 1, totals[models.DocCatalog].Downloads)
}
