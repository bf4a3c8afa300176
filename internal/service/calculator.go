package service

import (
	"math"
	"time"

	"fitbot/internal/model"
	"fitbot/internal/normalize"
)

// Activity level multipliers for TDEE calculation
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
}

// Target speed rates in kg per week
var targetSpeedRates = map[string]float64{
	"slow":   0.25,
	"normal": 0.5,
	"fast":   0.75,
}

// CalculateMetabolicProfile derives daily calorie and macro targets from
// a completed profile using Mifflin-St Jeor BMR, the activity multiplier
// table and a goal-based calorie adjustment. Out-of-range inputs are
// clamped to physiological bounds rather than failing.
func CalculateMetabolicProfile(p model.Profile) *model.MetabolicProfile {
	gender, _ := p.String("gender")
	dob, _ := p.String("date_of_birth")
	weight, _ := p.Number("current_weight")
	weightUnit, _ := p.String("current_weight_unit")
	height, _ := p.Number("current_height")
	heightUnit, _ := p.String("current_height_unit")
	targetWeight, _ := p.Number("target_weight")
	targetWeightUnit, _ := p.String("target_weight_unit")
	goal, _ := p.String("goal")
	speed, _ := p.String("target_speed")
	activity, _ := p.String("activity_level")

	weightKg := clamp(normalize.ToKg(weight, weightUnit), 30, 300, 70)
	heightCm := clamp(normalize.ToCm(height, heightUnit), 100, 250, 170)
	targetKg := normalize.ToKg(targetWeight, targetWeightUnit)
	age := float64(clampInt(ageFromDOB(dob), 10, 100, 25))

	// BMR (Mifflin-St Jeor)
	bmr := 10*weightKg + 6.25*heightCm - 5*age - 161
	if gender == "male" {
		bmr = 10*weightKg + 6.25*heightCm - 5*age + 5
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = 1.375
	}
	tdee := bmr * multiplier

	dailyCal := tdee
	switch goal {
	case "lose_weight":
		dailyCal = tdee - 400
	case "gain_weight":
		dailyCal = tdee + 350
	}
	if dailyCal < 1200 {
		dailyCal = 1200
	}

	protein := round1(weightKg * 1.8)
	fats := round1(dailyCal * 0.25 / 9)
	carbs := round1((dailyCal - protein*4 - fats*9) / 4)
	if carbs < 50 {
		carbs = 50
	}

	rate, ok := targetSpeedRates[speed]
	if !ok {
		rate = 0.5
	}
	diff := math.Abs(weightKg - targetKg)
	days := 0
	if goal != "maintain" && diff >= 0.5 {
		days = int(math.Ceil(round1(diff/rate) * 7))
	}

	return &model.MetabolicProfile{
		DailyCalorieTarget:  round1(dailyCal),
		ProteinG:            protein,
		CarbsG:              carbs,
		FatsG:               fats,
		TDEE:                round1(tdee),
		BMR:                 round1(bmr),
		EstimatedDaysToGoal: days,
	}
}

// ageFromDOB computes age in whole years from a canonical YYYY-MM-DD
// date. Returns 0 on malformed input; the caller clamps.
func ageFromDOB(dob string) int {
	t, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		age--
	}
	return age
}

func clamp(v, lo, hi, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi, fallback int) int {
	if v <= 0 {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
