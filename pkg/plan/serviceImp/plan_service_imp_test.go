package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agrosense/pkg/agronomy"
	"agrosense/pkg/apperr"
	"agrosense/pkg/plan/types"
	"agrosense/pkg/rotation"
)

func newSvc() *PlanSvc {
	return NewPlanService(rotation.NewResolver(rotation.DefaultTables()), agronomy.DefaultTables(),
		DefaultTemplates(), zap.NewNop()).(*PlanSvc)
}

func TestBuild_AlwaysTwelveOrderedWeeks(t *testing.T) {
	t.Parallel()
	tpl := DefaultTemplates()
	for _, crop := range []string{"rice", "wheat", "potato", "quinoa", "", "  MAIZE "} {
		plan := tpl.Build(crop)
		require.Len(t, plan, 12, crop)
		for i, wt := range plan {
			assert.Equal(t, i+1, wt.Week, crop)
			assert.NotEmpty(t, wt.Task, crop)
		}
	}
}

func TestBuild_UnknownCropIsBaseline(t *testing.T) {
	t.Parallel()
	tpl := DefaultTemplates()
	plan := tpl.Build("quinoa")
	for i, wt := range plan {
		assert.Equal(t, tpl.Baseline[i], wt.Task)
	}
}

func TestBuild_OverridesOnlyListedWeeks(t *testing.T) {
	t.Parallel()
	tpl := DefaultTemplates()
	plan := tpl.Build("rice")

	assert.Equal(t, "Puddling, nursery prep/transplanting setup", plan[0].Task)
	assert.Equal(t, tpl.Baseline[1], plan[1].Task)
	assert.Equal(t, "Maintain water depth 2–5 cm", plan[2].Task)
	assert.Equal(t, "Drain water before harvest; field drying", plan[10].Task)
	assert.Equal(t, tpl.Baseline[11], plan[11].Task)
}

func TestBuild_IgnoresOutOfRangeWeeks(t *testing.T) {
	t.Parallel()
	tpl := DefaultTemplates()
	tpl.Overrides = map[string]map[int]string{"teff": {0: "x", 13: "y", 2: "Sow teff"}}
	plan := tpl.Build("teff")
	require.Len(t, plan, 12)
	assert.Equal(t, "Sow teff", plan[1].Task)
	assert.Equal(t, tpl.Baseline[0], plan[0].Task)
}

func TestCyclePlan_StateOverride(t *testing.T) {
	t.Parallel()
	p, err := newSvc().CyclePlan(types.CycleRequest{CurrentCrop: "Rice", Region: "punjab"})
	require.NoError(t, err)

	assert.Equal(t, "rice", p.CurrentCrop)
	assert.Equal(t, "wheat", p.NextCrop)
	assert.Equal(t, "Punjab", p.Region)
	assert.Equal(t, []string{"pulses", "potato"}, p.Alternatives)
	assert.Equal(t, "Loam/alluvial", p.Guide.Soil)
	assert.Equal(t, types.YieldCompare{Current: 35, Next: 45, Unit: "quintal/ha"}, p.YieldCompare)
	assert.Equal(t, agronomy.NPK{N: 40, P: 30, K: 30}, p.NPKBalance)
	assert.Equal(t, []string{"Rabi"}, p.Season.Preferred)
	assert.Len(t, p.Plan12W, 12)
	assert.Equal(t, "Seed drill sowing at proper depth", p.Plan12W[1].Task)
	assert.Equal(t,
		"Rotating from Rice to Wheat improves soil health and breaks pest/disease cycles. "+
			"Adopt the recommended nutrient & water schedule. Recommended seasons: Rabi.",
		p.Rationale)
}

func TestCyclePlan_DefaultRotation(t *testing.T) {
	t.Parallel()
	p, err := newSvc().CyclePlan(types.CycleRequest{CurrentCrop: "chickpea", Region: "Nowhere"})
	require.NoError(t, err)
	assert.Equal(t, "maize", p.NextCrop)
	assert.Equal(t, "Side-dress N at knee-high stage", p.Plan12W[4].Task)
}

func TestCyclePlan_UnknownCropUsesFallbacks(t *testing.T) {
	t.Parallel()
	p, err := newSvc().CyclePlan(types.CycleRequest{CurrentCrop: "quinoa"})
	require.NoError(t, err)
	assert.Equal(t, "pulses", p.NextCrop)
	assert.Empty(t, p.Alternatives)
	assert.Equal(t, 15, p.YieldCompare.Current)
	assert.Contains(t, p.Rationale, "Recommended seasons: Kharif, Rabi, Zaid.")
}

func TestCyclePlan_RequiresCurrentCrop(t *testing.T) {
	t.Parallel()
	_, err := newSvc().CyclePlan(types.CycleRequest{CurrentCrop: "   ", Region: "Punjab"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestCapitalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Wheat", capitalize("wheat"))
	assert.Equal(t, "Mungbean", capitalize("mUNGBEAN"))
	assert.Equal(t, "", capitalize(""))
}
