package model

// OnboardingRecord is the flattened, DB-ready shape of a completed
// profile. Missing values fall back to the documented defaults.
type OnboardingRecord struct {
	Gender              string  `json:"gender" db:"gender"`
	DateOfBirth         string  `json:"date_of_birth" db:"date_of_birth"`
	CurrentHeight       float64 `json:"current_height" db:"current_height"`
	CurrentHeightUnit   string  `json:"current_height_unit" db:"current_height_unit"`
	TargetHeight        float64 `json:"target_height" db:"target_height"`
	TargetHeightUnit    string  `json:"target_height_unit" db:"target_height_unit"`
	CurrentWeight       float64 `json:"current_weight" db:"current_weight"`
	CurrentWeightUnit   string  `json:"current_weight_unit" db:"current_weight_unit"`
	TargetWeight        float64 `json:"target_weight" db:"target_weight"`
	TargetWeightUnit    string  `json:"target_weight_unit" db:"target_weight_unit"`
	Goal                string  `json:"goal" db:"goal"`
	TargetTimelineValue float64 `json:"target_timeline_value" db:"target_timeline_value"`
	TargetTimelineUnit  string  `json:"target_timeline_unit" db:"target_timeline_unit"`
	TargetSpeed         string  `json:"target_speed" db:"target_speed"`
	ActivityLevel       string  `json:"activity_level" db:"activity_level"`
}

// MetabolicProfile holds the calculated daily targets.
type MetabolicProfile struct {
	DailyCalorieTarget  float64 `json:"daily_calorie_target"`
	ProteinG            float64 `json:"protein_g"`
	CarbsG              float64 `json:"carbs_g"`
	FatsG               float64 `json:"fats_g"`
	TDEE                float64 `json:"tdee"`
	BMR                 float64 `json:"bmr"`
	EstimatedDaysToGoal int     `json:"estimated_days_to_goal"`
}

// ProfileRecord is the full DB-format output: the onboarding record plus
// the calculated metabolic profile.
type ProfileRecord struct {
	Onboarding       OnboardingRecord  `json:"onboarding"`
	MetabolicProfile *MetabolicProfile `json:"metabolic_profile,omitempty"`
}

// NewProfileRecord flattens a profile into the DB-format record.
func NewProfileRecord(p Profile, mp *MetabolicProfile) *ProfileRecord {
	str := func(name, fallback string) string {
		if s, ok := p.String(name); ok {
			return s
		}
		return fallback
	}
	num := func(name string) float64 {
		f, _ := p.Number(name)
		return f
	}

	return &ProfileRecord{
		Onboarding: OnboardingRecord{
			Gender:              str("gender", ""),
			DateOfBirth:         str("date_of_birth", ""),
			CurrentHeight:       num("current_height"),
			CurrentHeightUnit:   str("current_height_unit", "cm"),
			TargetHeight:        num("target_height"),
			TargetHeightUnit:    str("target_height_unit", "cm"),
			CurrentWeight:       num("current_weight"),
			CurrentWeightUnit:   str("current_weight_unit", "kg"),
			TargetWeight:        num("target_weight"),
			TargetWeightUnit:    str("target_weight_unit", "kg"),
			Goal:                str("goal", "maintain"),
			TargetTimelineValue: num("target_timeline_value"),
			TargetTimelineUnit:  str("target_timeline_unit", "weeks"),
			TargetSpeed:         str("target_speed", "normal"),
			ActivityLevel:       str("activity_level", "moderate"),
		},
		MetabolicProfile: mp,
	}
}
