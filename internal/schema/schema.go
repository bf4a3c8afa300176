// Package schema defines the fixed onboarding field vocabulary: every
// collectible field, its value kind, unit companion, allowed values and
// the question used to prompt for it.
package schema

import "fmt"

// Kind is the value kind of a field.
type Kind int

const (
	KindNumber Kind = iota
	KindEnum
	KindDate
	KindString
)

// ErrUnknownField indicates code queried a field name outside the fixed
// vocabulary. This is a programming error, not a runtime condition.
var ErrUnknownField = fmt.Errorf("unknown onboarding field")

// FieldSpec is the static descriptor of one collectible field. For
// number fields with a unit companion, UnitField names the paired unit
// field and AllowedUnits its canonical tokens; DefaultUnit is used when
// neither the utterance nor the record supplies a unit.
type FieldSpec struct {
	Name          string
	Kind          Kind
	UnitField     string
	AllowedUnits  []string
	DefaultUnit   string
	AllowedValues []string
	Prompt        string
}

// HasUnit reports whether the field carries a companion unit field.
func (s FieldSpec) HasUnit() bool { return s.UnitField != "" }

// AllowsUnit reports whether unit is one of the field's canonical unit
// tokens.
func (s FieldSpec) AllowsUnit(unit string) bool {
	for _, u := range s.AllowedUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// AllowsValue reports whether v is one of the field's canonical enum
// tokens.
func (s FieldSpec) AllowsValue(v string) bool {
	for _, av := range s.AllowedValues {
		if av == v {
			return true
		}
	}
	return false
}

// fields is the registry, in question-priority order. The order decides
// which missing field is asked about next.
var fields = []FieldSpec{
	{
		Name:          "gender",
		Kind:          KindEnum,
		AllowedValues: []string{"male", "female", "others"},
		Prompt:        "What's your gender? (male, female, or others)",
	},
	{
		Name:   "date_of_birth",
		Kind:   KindDate,
		Prompt: "What's your date of birth? (for example, 1990-05-15)",
	},
	{
		Name:         "current_height",
		Kind:         KindNumber,
		UnitField:    "current_height_unit",
		AllowedUnits: []string{"cm", "inch"},
		DefaultUnit:  "cm",
		Prompt:       "What's your current height? (for example, 175 cm or 5 foot 9 inch)",
	},
	{
		Name:         "target_height",
		Kind:         KindNumber,
		UnitField:    "target_height_unit",
		AllowedUnits: []string{"cm", "inch"},
		DefaultUnit:  "cm",
		Prompt:       "What height are you aiming for?",
	},
	{
		Name:         "current_weight",
		Kind:         KindNumber,
		UnitField:    "current_weight_unit",
		AllowedUnits: []string{"kg", "lbs"},
		DefaultUnit:  "kg",
		Prompt:       "What's your current weight? (for example, 80 kg or 170 lbs)",
	},
	{
		Name:         "target_weight",
		Kind:         KindNumber,
		UnitField:    "target_weight_unit",
		AllowedUnits: []string{"kg", "lbs"},
		DefaultUnit:  "kg",
		Prompt:       "What weight are you aiming for?",
	},
	{
		Name:          "goal",
		Kind:          KindEnum,
		AllowedValues: []string{"lose_weight", "maintain", "gain_weight"},
		Prompt:        "What's your fitness goal? (lose weight, maintain, or gain weight)",
	},
	{
		Name:         "target_timeline_value",
		Kind:         KindNumber,
		UnitField:    "target_timeline_unit",
		AllowedUnits: []string{"days", "weeks", "months", "years"},
		DefaultUnit:  "weeks",
		Prompt:       "Over what timeline do you want to reach your goal? (for example, 3 months)",
	},
	{
		Name:          "target_speed",
		Kind:          KindEnum,
		AllowedValues: []string{"slow", "normal", "fast"},
		Prompt:        "How fast do you want to progress? (slow, normal, or fast)",
	},
	{
		Name:          "activity_level",
		Kind:          KindEnum,
		AllowedValues: []string{"sedentary", "light", "moderate", "active"},
		Prompt:        "How active are you day to day? (sedentary, light, moderate, or active)",
	},
}

// Fields returns every FieldSpec in question-priority order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fields))
	copy(out, fields)
	return out
}

// Get looks up a FieldSpec by name. Fails with ErrUnknownField for names
// outside the registry.
func Get(name string) (FieldSpec, error) {
	for _, f := range fields {
		if f.Name == name {
			return f, nil
		}
	}
	return FieldSpec{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
