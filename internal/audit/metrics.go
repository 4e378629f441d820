// Package audit runs the two assessment levels: the initial document-driven
// intake and the detailed equipment audit. This file holds the pure energy
// math shared by both.
package audit

import (
	"math"
	"strings"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/internal/entity"
)

// AnnualEnergy estimates yearly consumption in kWh from the declared rating
// and operating schedule.
func AnnualEnergy(e *entity.Equipment) float64 {
	return e.RatedPower *
		constants.DetailedMultiplier(e.LoadFactor) *
		e.OperatingHours *
		e.OperatingDays * 52
}

// SavingsPotential is the energy recoverable by bringing the unit up to its
// baseline efficiency. Units already at or above baseline save nothing; the
// result is never negative.
func SavingsPotential(e *entity.Equipment) float64 {
	baseline := constants.BaselineEfficiency(e.Category, e.SubType)
	if e.Efficiency <= 0 || e.Efficiency >= baseline {
		return 0
	}
	return AnnualEnergy(e) * (1 - e.Efficiency/baseline)
}

// EfficiencyGap is the shortfall against baseline, zero when at or above it.
func EfficiencyGap(e *entity.Equipment) float64 {
	baseline := constants.BaselineEfficiency(e.Category, e.SubType)
	if e.Efficiency <= 0 || e.Efficiency >= baseline {
		return 0
	}
	return baseline - e.Efficiency
}

// EquipmentRecommendations produces the rule-based per-unit suggestions that
// accompany the LLM analysis.
func EquipmentRecommendations(e *entity.Equipment) []string {
	var recs []string
	baseline := constants.BaselineEfficiency(e.Category, e.SubType)

	if e.Age > 15 {
		recs = append(recs, "Unit is beyond typical service life; evaluate replacement with a high-efficiency model")
	} else if e.Age > 10 {
		recs = append(recs, "Unit is aging; budget for replacement within the next planning cycle")
	}
	if e.Efficiency > 0 && e.Efficiency < baseline {
		recs = append(recs, "Operating efficiency is below baseline for this equipment class; schedule a tune-up or retrofit")
	}
	if strings.EqualFold(e.Condition, "Needs Maintenance") {
		recs = append(recs, "Reported condition requires maintenance; service before the next audit cycle")
	}
	if strings.EqualFold(e.ControlSystem, "Manual") {
		recs = append(recs, "Manual operation wastes off-hours energy; install automated controls or scheduling")
	}
	if !e.EnergyMetered {
		recs = append(recs, "No sub-metering in place; add metering to verify savings after upgrades")
	}
	return recs
}

// Enrich attaches the derived metrics to one surveyed unit.
func Enrich(e *entity.Equipment) *entity.EnrichedEquipment {
	return &entity.EnrichedEquipment{
		Equipment:        *e,
		AnnualEnergy:     round2(AnnualEnergy(e)),
		SavingsPotential: round2(SavingsPotential(e)),
		EfficiencyGap:    round2(EfficiencyGap(e)),
		Recommendations:  EquipmentRecommendations(e),
	}
}

// BuildingMetrics is the rollup over all surveyed equipment.
type BuildingMetrics struct {
	TotalAnnualEnergy     float64        `json:"totalAnnualEnergy"`
	TotalSavingsPotential float64        `json:"totalSavingsPotential"`
	AverageEquipmentAge   float64        `json:"averageEquipmentAge"`
	EquipmentByCategory   map[string]int `json:"equipmentByCategory"`
}

// Rollup aggregates the enriched equipment list.
func Rollup(items []*entity.EnrichedEquipment) BuildingMetrics {
	m := BuildingMetrics{EquipmentByCategory: map[string]int{}}
	if len(items) == 0 {
		return m
	}
	var ageSum float64
	for _, it := range items {
		m.TotalAnnualEnergy += it.AnnualEnergy
		m.TotalSavingsPotential += it.SavingsPotential
		ageSum += float64(it.Age)
		m.EquipmentByCategory[it.Category]++
	}
	m.TotalAnnualEnergy = round2(m.TotalAnnualEnergy)
	m.TotalSavingsPotential = round2(m.TotalSavingsPotential)
	m.AverageEquipmentAge = round2(ageSum / float64(len(items)))
	return m
}

// SurveySavingsEstimate is the quick additive-fraction estimate used during
// the equipment survey step, before the full detailed analysis runs.
func SurveySavingsEstimate(e *entity.Equipment) float64 {
	var frac float64
	switch {
	case e.Age > 15:
		frac += 0.25
	case e.Age > 10:
		frac += 0.15
	case e.Age > 5:
		frac += 0.08
	}
	if strings.EqualFold(e.Condition, "Needs Maintenance") {
		frac += 0.15
	}
	switch {
	case strings.EqualFold(e.ControlSystem, "Manual"):
		frac += 0.12
	case strings.EqualFold(e.ControlSystem, "Thermostat"):
		frac += 0.05
	}
	if e.Efficiency > 0 {
		t := constants.ThresholdsFor(e.Category)
		switch {
		case e.Efficiency < t.Fair:
			frac += 0.20
		case e.Efficiency < t.Good:
			frac += 0.10
		}
	}
	if !e.EnergyMetered {
		frac += 0.05
	}

	annual := e.RatedPower *
		constants.SurveyMultiplier(e.LoadFactor) *
		e.OperatingHours *
		e.OperatingDays * 52
	return round2(annual * frac)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
