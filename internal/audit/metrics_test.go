package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/internal/entity"
)

func hvacChiller() *entity.Equipment {
	return &entity.Equipment{
		Name:           "Main chiller",
		Category:       "HVAC",
		SubType:        "Chiller",
		RatedPower:     5,
		Efficiency:     0.70,
		OperatingHours: 8,
		OperatingDays:  5,
		LoadFactor:     constants.LoadMedium,
		Age:            12,
	}
}

func TestAnnualEnergy(t *testing.T) {
	// 5 kW x 0.66 x 8 h x 5 d x 52 wk
	assert.InDelta(t, 6864.0, AnnualEnergy(hvacChiller()), 0.001)
}

func TestAnnualEnergyUnknownLoadFactor(t *testing.T) {
	e := hvacChiller()
	e.LoadFactor = ""
	// unknown band falls back to 0.5
	assert.InDelta(t, 5200.0, AnnualEnergy(e), 0.001)
}

func TestSavingsPotentialBelowBaseline(t *testing.T) {
	e := hvacChiller()
	// chiller baseline 0.90, eff 0.70
	want := 6864.0 * (1 - 0.70/0.90)
	assert.InDelta(t, want, SavingsPotential(e), 0.01)
}

func TestSavingsPotentialNeverNegative(t *testing.T) {
	e := hvacChiller()
	e.Efficiency = 0.95
	assert.Zero(t, SavingsPotential(e))

	e.Efficiency = 0.90
	assert.Zero(t, SavingsPotential(e))

	e.Efficiency = 0
	assert.Zero(t, SavingsPotential(e))
}

func TestEfficiencyGap(t *testing.T) {
	e := hvacChiller()
	assert.InDelta(t, 0.20, EfficiencyGap(e), 0.001)

	e.Efficiency = 0.95
	assert.Zero(t, EfficiencyGap(e))
}

func TestBaselineFallbackChain(t *testing.T) {
	// exact sub-type
	assert.Equal(t, 0.90, constants.BaselineEfficiency("HVAC", "Chiller"))
	// unknown sub-type -> category default
	assert.Equal(t, 0.80, constants.BaselineEfficiency("HVAC", "Split AC"))
	// unknown category -> global default
	assert.Equal(t, 0.75, constants.BaselineEfficiency("Pumps", "Centrifugal"))
}

func TestEquipmentRecommendationsRules(t *testing.T) {
	e := &entity.Equipment{
		Category:      "HVAC",
		SubType:       "Boiler",
		Efficiency:    0.60,
		Age:           18,
		Condition:     "Needs Maintenance",
		ControlSystem: "Manual",
		EnergyMetered: false,
	}
	recs := EquipmentRecommendations(e)
	assert.Len(t, recs, 5)

	healthy := &entity.Equipment{
		Category:      "Lighting",
		SubType:       "LED",
		Efficiency:    0.96,
		Age:           2,
		Condition:     "Good",
		ControlSystem: "Automated",
		EnergyMetered: true,
	}
	assert.Empty(t, EquipmentRecommendations(healthy))
}

func TestRollup(t *testing.T) {
	items := []*entity.EnrichedEquipment{
		{
			Equipment:        entity.Equipment{Category: "HVAC", Age: 10},
			AnnualEnergy:     6864,
			SavingsPotential: 1525.33,
		},
		{
			Equipment:        entity.Equipment{Category: "HVAC", Age: 4},
			AnnualEnergy:     1000,
			SavingsPotential: 0,
		},
		{
			Equipment:        entity.Equipment{Category: "Lighting", Age: 1},
			AnnualEnergy:     500,
			SavingsPotential: 100,
		},
	}
	m := Rollup(items)

	assert.InDelta(t, 8364.0, m.TotalAnnualEnergy, 0.001)
	assert.InDelta(t, 1625.33, m.TotalSavingsPotential, 0.001)
	assert.InDelta(t, 5.0, m.AverageEquipmentAge, 0.001)
	assert.Equal(t, 2, m.EquipmentByCategory["HVAC"])
	assert.Equal(t, 1, m.EquipmentByCategory["Lighting"])
}

func TestRollupEmpty(t *testing.T) {
	m := Rollup(nil)
	assert.Zero(t, m.TotalAnnualEnergy)
	assert.Zero(t, m.AverageEquipmentAge)
	assert.Empty(t, m.EquipmentByCategory)
}

func TestSurveySavingsEstimateAdditive(t *testing.T) {
	e := &entity.Equipment{
		Category:       "Pumps",
		RatedPower:     2,
		Efficiency:     0.50,
		OperatingHours: 10,
		OperatingDays:  5,
		LoadFactor:     constants.LoadHigh,
		Age:            16,
		Condition:      "Needs Maintenance",
		ControlSystem:  "Manual",
		EnergyMetered:  false,
	}
	// fractions: 0.25 + 0.15 + 0.12 + 0.20 + 0.05 = 0.77
	// annual: 2 x 0.9 x 10 x 5 x 52 = 4680
	assert.InDelta(t, 4680.0*0.77, SurveySavingsEstimate(e), 0.01)
}

func TestSurveySavingsEstimateBandsAreExclusive(t *testing.T) {
	base := &entity.Equipment{
		Category:       "Pumps",
		RatedPower:     1,
		OperatingHours: 10,
		OperatingDays:  5,
		LoadFactor:     constants.LoadMedium,
		EnergyMetered:  true,
	}
	annual := 1 * 0.6 * 10 * 5 * 52.0

	aged := *base
	aged.Age = 11
	assert.InDelta(t, annual*0.15, SurveySavingsEstimate(&aged), 0.01)

	aged.Age = 6
	assert.InDelta(t, annual*0.08, SurveySavingsEstimate(&aged), 0.01)

	thermostat := *base
	thermostat.ControlSystem = "Thermostat"
	assert.InDelta(t, annual*0.05, SurveySavingsEstimate(&thermostat), 0.01)
}

func TestSurveySavingsEstimateEfficiencyThresholds(t *testing.T) {
	e := &entity.Equipment{
		Category:       "Lighting",
		RatedPower:     1,
		OperatingHours: 10,
		OperatingDays:  5,
		LoadFactor:     constants.LoadMedium,
		EnergyMetered:  true,
	}
	annual := 1 * 0.6 * 10 * 5 * 52.0

	e.Efficiency = 0.70 // below lighting fair 0.75
	assert.InDelta(t, annual*0.20, SurveySavingsEstimate(e), 0.01)

	e.Efficiency = 0.85 // between fair and good 0.90
	assert.InDelta(t, annual*0.10, SurveySavingsEstimate(e), 0.01)

	e.Efficiency = 0.95 // above good
	assert.Zero(t, SurveySavingsEstimate(e))
}

func TestEnrichRoundsMetrics(t *testing.T) {
	en := Enrich(hvacChiller())
	assert.Equal(t, 6864.0, en.AnnualEnergy)
	assert.InDelta(t, 1525.33, en.SavingsPotential, 0.001)
	assert.InDelta(t, 0.2, en.EfficiencyGap, 0.001)
}
