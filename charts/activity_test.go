package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-site/services"
)

func activitySeries() (pubs, talks, funding []services.YearBucket) {
	pubs = []services.YearBucket{
		{Year: 2021, Value: 2}, {Year: 2022, Value: 1},
		{Year: 2023, Value: 4}, {Year: 2024, Value: 3},
	}
	talks = []services.YearBucket{
		{Year: 2021, Value: 1}, {Year: 2022, Value: 0},
		{Year: 2023, Value: 2}, {Year: 2024, Value: 2},
	}
	funding = []services.YearBucket{
		{Year: 2021, Value: 180000}, {Year: 2022, Value: 0},
		{Year: 2023, Value: 300000}, {Year: 2024, Value: 520000},
	}
	return pubs, talks, funding
}

func TestBuildActivityChart_HoverDimsSiblings(t *testing.T) {
	pubs, talks, funding := activitySeries()

	chart := BuildActivityChart(pubs, talks, funding, ActivityOptions{
		Currency:  services.CurrencyUSD,
		HoverYear: 2023,
	})

	require.NotEmpty(t, chart.Bars)
	for _, b := range chart.Bars {
		if b.Year == 2023 {
			assert.Equal(t, 1.0, b.Opacity)
		} else {
			assert.Less(t, b.Opacity, 1.0)
			assert.Equal(t, DimOpacity, b.Opacity)
		}
	}
	for _, d := range chart.Dots {
		if d.Year != 2023 {
			assert.Equal(t, DimOpacity, d.Opacity)
		}
	}
}

func TestBuildActivityChart_HoverReadout(t *testing.T) {
	pubs, talks, funding := activitySeries()

	chart := BuildActivityChart(pubs, talks, funding, ActivityOptions{
		Currency:  services.CurrencyUSD,
		HoverYear: 2023,
	})

	require.NotNil(t, chart.Hovered)
	assert.Equal(t, "Publications in 2023", chart.Hovered.Label)
	assert.Equal(t, "4", chart.Hovered.Value)
}

func TestBuildActivityChart_HoverSeriesSelectsValue(t *testing.T) {
	pubs, talks, funding := activitySeries()

	chart := BuildActivityChart(pubs, talks, funding, ActivityOptions{
		Currency:    services.CurrencyUSD,
		HoverYear:   2024,
		HoverSeries: SeriesFunding,
	})
	require.NotNil(t, chart.Hovered)
	assert.Equal(t, "Funding in 2024", chart.Hovered.Label)
	assert.Equal(t, "$520K", chart.Hovered.Value)

	chart = BuildActivityChart(pubs, talks, funding, ActivityOptions{
		HoverYear:   2024,
		HoverSeries: SeriesTalks,
	})
	require.NotNil(t, chart.Hovered)
	assert.Equal(t, "Talks in 2024", chart.Hovered.Label)
	assert.Equal(t, "2", chart.Hovered.Value)
}

func TestBuildActivityChart_NoHoverFullOpacity(t *testing.T) {
	pubs, talks, funding := activitySeries()

	chart := BuildActivityChart(pubs, talks, funding, ActivityOptions{Currency: services.CurrencyCNY})
	assert.Nil(t, chart.Hovered)
	assert.Equal(t, 1.0, chart.LineOpacity)
	for _, b := range chart.Bars {
		assert.Equal(t, 1.0, b.Opacity)
	}
}

func TestBuildActivityChart_EmptySeries(t *testing.T) {
	chart := BuildActivityChart(nil, nil, nil, ActivityOptions{})
	assert.Empty(t, chart.Bars)
	assert.Empty(t, chart.LinePath)

	out := chart.Render()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
}

func TestBuildActivityChart_RenderContainsAllYears(t *testing.T) {
	pubs, talks, funding := activitySeries()
	chart := BuildActivityChart(pubs, talks, funding, ActivityOptions{Currency: services.CurrencyUSD})

	out := chart.Render()
	for _, y := range []string{"2021", "2022", "2023", "2024"} {
		assert.Contains(t, out, ">"+y+"</text>")
	}
	assert.Contains(t, out, "<path")
}
