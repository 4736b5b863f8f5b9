package district

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrosense/entities"
	"agrosense/pkg/apperr"
)

func rec(state, dist, season, crop string, y float64) entities.YieldRecord {
	return entities.YieldRecord{State: state, District: dist, Season: season, Crop: crop, AreaHa: 1, YieldQPerHa: &y}
}

func fixture() *Table {
	return NewTable([]entities.YieldRecord{
		rec("Punjab", "Ludhiana", "Kharif", "rice", 40),
		rec("Punjab", "Ludhiana", "Kharif", "rice", 50),
		rec("Punjab", "Ludhiana", "Rabi", "wheat", 48),
		rec("Punjab", "Ludhiana", "Rabi", "potato", 220),
		rec("Punjab", "Ludhiana", "Kharif", "maize", 30),
		rec("Punjab", "Ludhiana", "Kharif", "cotton", 30),
		rec("Punjab", "Amritsar", "Rabi", "wheat", 44),
		rec("Bihar", "Patna", "Kharif", "rice", 28),
	})
}

func TestStatesAndDistricts(t *testing.T) {
	t.Parallel()
	tb := fixture()
	assert.Equal(t, []string{"Bihar", "Punjab"}, tb.States())
	assert.Equal(t, []string{"Amritsar", "Ludhiana"}, tb.Districts("Punjab"))
	assert.Empty(t, tb.Districts("Kerala"))
}

func TestCrops_TitleCasedSorted(t *testing.T) {
	t.Parallel()
	crops, err := fixture().Crops("Punjab", "Ludhiana")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cotton", "Maize", "Potato", "Rice", "Wheat"}, crops)

	_, err = fixture().Crops("Punjab", "Nowhere")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestRankCrops_DescendingAndTruncated(t *testing.T) {
	t.Parallel()
	ranked, err := fixture().RankCrops("Punjab", "Ludhiana", "", 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, CropYield{Crop: "potato", AvgYield: 220}, ranked[0])
	assert.Equal(t, CropYield{Crop: "wheat", AvgYield: 48}, ranked[1])
	assert.Equal(t, CropYield{Crop: "rice", AvgYield: 45}, ranked[2])
}

func TestRankCrops_Ties(t *testing.T) {
	t.Parallel()
	ranked, err := fixture().RankCrops("Punjab", "Ludhiana", "", 10)
	require.NoError(t, err)
	require.Len(t, ranked, 5)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].AvgYield, ranked[i].AvgYield)
	}
	assert.Equal(t, "cotton", ranked[3].Crop)
	assert.Equal(t, "maize", ranked[4].Crop)
}

func TestRankCrops_Season(t *testing.T) {
	t.Parallel()
	ranked, err := fixture().RankCrops("Punjab", "Ludhiana", "Kharif", 5)
	require.NoError(t, err)
	assert.Equal(t, "rice", ranked[0].Crop)
	assert.Len(t, ranked, 3)

	// a season with no rows is ignored rather than emptying the result
	ranked, err = fixture().RankCrops("Punjab", "Ludhiana", "Zaid", 5)
	require.NoError(t, err)
	assert.Len(t, ranked, 5)
}

func TestRankCrops_NotFound(t *testing.T) {
	t.Parallel()
	_, err := fixture().RankCrops("Kerala", "Kochi", "", 5)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.EqualError(t, err, "No records for Kochi, Kerala")
}

func TestMeanYield(t *testing.T) {
	t.Parallel()
	tb := fixture()

	y, err := tb.MeanYield("Punjab", "Ludhiana", "rice", "")
	require.NoError(t, err)
	assert.InDelta(t, 45.0, y, 1e-9)

	y, err = tb.MeanYield("Punjab", "Ludhiana", "rice", "Rabi")
	require.NoError(t, err)
	assert.InDelta(t, 45.0, y, 1e-9)

	_, err = tb.MeanYield("Punjab", "Ludhiana", "tea", "")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestRound2(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 45.33, Round2(45.333333))
	assert.Equal(t, 12.0, Round2(12))
}
