package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDonutChart(t *testing.T) {
	chart := BuildDonutChart([]DonutValue{
		{Label: "Grant", Value: 3},
		{Label: "Contract", Value: 1},
	}, DonutOptions{Title: "Funding by type"})

	assert.Equal(t, 4.0, chart.Total)
	require.Len(t, chart.Slices, 2)
	assert.InDelta(t, 75.0, chart.Slices[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, chart.Slices[1].Percent, 1e-9)
	assert.NotEmpty(t, chart.Slices[0].Path)
	assert.NotEqual(t, chart.Slices[0].Fill, chart.Slices[1].Fill)
}

func TestBuildDonutChart_ZeroValueKeepsLegendEntry(t *testing.T) {
	chart := BuildDonutChart([]DonutValue{
		{Label: "Published", Value: 5},
		{Label: "Preprint", Value: 0},
	}, DonutOptions{})

	require.Len(t, chart.Slices, 2)
	assert.Empty(t, chart.Slices[1].Path, "zero slice draws nothing")
	assert.Contains(t, chart.Render(), "Preprint (0%)")
}

func TestBuildDonutChart_AllZero(t *testing.T) {
	chart := BuildDonutChart([]DonutValue{{Label: "A", Value: 0}}, DonutOptions{})
	assert.Empty(t, chart.Slices)
	assert.True(t, strings.HasPrefix(chart.Render(), "<svg"))
}

func TestBuildDonutChart_Hover(t *testing.T) {
	chart := BuildDonutChart([]DonutValue{
		{Label: "Grant", Value: 3},
		{Label: "Contract", Value: 1},
	}, DonutOptions{HoverLabel: "Contract"})

	assert.Equal(t, DimOpacity, chart.Slices[0].Opacity)
	assert.Equal(t, 1.0, chart.Slices[1].Opacity)
	require.NotNil(t, chart.Hovered)
	assert.Equal(t, "Contract", chart.Hovered.Label)
	assert.Equal(t, "1 (25%)", chart.Hovered.Value)
}

func TestBuildFundingTimeline(t *testing.T) {
	items := []TimelineItem{
		{Title: "Grant A", Start: 2022.0, End: 2024.5, Amount: "¥520,000", Type: "Grant"},
		{Title: "Contract B", Start: 2023.25, End: 2023.5, Amount: "¥180,000", Type: "Contract"},
	}
	chart := BuildFundingTimeline(items, TimelineOptions{HoverIndex: -1})

	assert.Equal(t, 2022, chart.FromYear)
	// ein Jahr Puffer hinter dem letzten Förderende
	assert.Equal(t, 2025, chart.ToYear)
	require.Len(t, chart.Bars, 2)
	assert.Less(t, chart.Bars[0].X, chart.Bars[1].X)
	assert.Equal(t, ColorGrants, chart.Bars[0].Fill)
	assert.Equal(t, ColorFunding, chart.Bars[1].Fill)
	for _, b := range chart.Bars {
		assert.GreaterOrEqual(t, b.W, timelineMinBarWidth)
		assert.Equal(t, 1.0, b.Opacity)
	}
}

func TestBuildFundingTimeline_HoverReportsAmount(t *testing.T) {
	items := []TimelineItem{
		{Title: "Grant A", Start: 2022, End: 2024, Amount: "¥520,000", Type: "Grant"},
		{Title: "Undisclosed C", Start: 2022, End: 2023, Amount: "—", Type: "Grant"},
	}
	chart := BuildFundingTimeline(items, TimelineOptions{HoverIndex: 1})

	assert.Equal(t, DimOpacity, chart.Bars[0].Opacity)
	require.NotNil(t, chart.Hovered)
	assert.Equal(t, "Undisclosed C", chart.Hovered.Label)
	assert.Equal(t, "—", chart.Hovered.Value)
}
