package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-site/models"
)

func samplePublications() []models.Publication {
	return []models.Publication{
		{
			Title:   "XTFT: A Next-Generation Temporal Fusion Transformer for Uncertainty-Rich Time Series Forecasting",
			Authors: "Zhang, Wei; Liu, Mei",
			Venue:   "Under review (IEEE TNNLS)",
			Year:    2025,
			Tags:    []string{"forecasting", "uncertainty"},
		},
		{
			Title:    "Physics-Informed Neural Networks for Subsidence Prediction",
			Authors:  "Zhang, Wei; Chen, Hua",
			Venue:    "Journal of Hydrology",
			Year:     2024,
			Featured: true,
			Tags:     []string{"subsidence", "pinn"},
		},
		{
			Title:   "Quantile Ensembles for Drawdown Prediction",
			Authors: "Nguyen, Thao; Zhang, Wei",
			Venue:   "Journal of Hydrology: Regional Studies",
			Year:    2023,
			Tags:    []string{"forecasting", "uncertainty"},
		},
		{
			Title:   "A Review of Machine Learning in Subsidence Studies",
			Authors: "Chen, Hua",
			Venue:   "Earth-Science Reviews",
			Year:    2020,
			Tags:    []string{"subsidence", "review"},
		},
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("", "anything"))
	assert.True(t, Matches("   ", "anything"))
	assert.True(t, Matches("hydro", "Journal of Hydrology", "2024"))
	assert.True(t, Matches("HYDRO", "journal of hydrology"))
	assert.False(t, Matches("geophysics", "Journal of Hydrology"))
}

func TestFilter_CombinedQueryYearTag(t *testing.T) {
	pubs := samplePublications()

	got := Filter(pubs, "transformer", models.Publication.Haystack,
		func(p models.Publication) bool { return p.Year == 2025 },
		func(p models.Publication) bool { return p.HasAnyTag(TagSet([]string{"uncertainty"})) },
	)

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Title, "XTFT")
}

func TestFilter_Idempotent(t *testing.T) {
	pubs := samplePublications()
	pred := func(p models.Publication) bool { return p.HasAnyTag(TagSet([]string{"forecasting"})) }

	once := Filter(pubs, "prediction", models.Publication.Haystack, pred)
	twice := Filter(once, "prediction", models.Publication.Haystack, pred)

	assert.Equal(t, once, twice)
}

func TestFilter_PreservesOrder(t *testing.T) {
	pubs := samplePublications()
	got := Filter(pubs, "zhang", models.Publication.Haystack)

	require.Len(t, got, 3)
	assert.Equal(t, 2025, got[0].Year)
	assert.Equal(t, 2024, got[1].Year)
	assert.Equal(t, 2023, got[2].Year)
}

func TestSortPublications(t *testing.T) {
	pubs := samplePublications()

	desc := SortPublications(pubs, SortYearDesc)
	assert.Equal(t, 2025, desc[0].Year)
	assert.Equal(t, 2020, desc[len(desc)-1].Year)

	asc := SortPublications(pubs, SortYearAsc)
	assert.Equal(t, 2020, asc[0].Year)

	// input stays untouched
	assert.Equal(t, 2025, pubs[0].Year)
}

func TestRelatedPublications(t *testing.T) {
	pubs := samplePublications()

	got := RelatedPublications(pubs, "", []string{"subsidence"}, 5)
	require.Len(t, got, 2)
	// featured entry wins over the newer year ordering within the rest
	assert.True(t, got[0].Featured)
	assert.Equal(t, 2020, got[1].Year)
}

func TestRelatedPublications_CapsAtMax(t *testing.T) {
	pubs := samplePublications()
	got := RelatedPublications(pubs, "", []string{"forecasting", "subsidence", "review"}, 2)
	assert.Len(t, got, 2)
}

func TestPublicationYears(t *testing.T) {
	years := PublicationYears(samplePublications())
	assert.Equal(t, []int{2025, 2024, 2023, 2020}, years)
}

func TestSortTalks(t *testing.T) {
	talks := []models.Talk{
		{Event: "Old Meeting", Start: "2021"},
		{Event: "New Conference", Start: "2025-04-27"},
		{Event: "Mid Workshop", Start: "2023-11-08"},
	}
	sorted := SortTalks(talks)
	assert.Equal(t, "New Conference", sorted[0].Event)
	assert.Equal(t, "Old Meeting", sorted[2].Event)
}
