package normalize

import (
	"math"
	"testing"

	"fitbot/internal/schema"
)

func mustSpec(t *testing.T, name string) schema.FieldSpec {
	t.Helper()
	spec, err := schema.Get(name)
	if err != nil {
		t.Fatalf("schema.Get(%s) error = %v", name, err)
	}
	return spec
}

func TestEnum(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		raw    any
		want   string
		wantOK bool
	}{
		{"canonical token", "gender", "male", "male", true},
		{"case folding", "gender", "Female", "female", true},
		{"single letter synonym", "gender", "M", "male", true},
		{"phrase synonym", "gender", "prefer not to say", "others", true},
		{"sentence containment", "gender", "I am a woman", "female", true},
		{"unmatched rejected", "gender", "whatever", "", false},
		{"non-string rejected", "gender", 42, "", false},
		{"goal with space", "goal", "lose weight", "lose_weight", true},
		{"goal sentence", "goal", "I want to maintain my weight", "maintain", true},
		{"goal synonym", "goal", "bulk", "gain_weight", true},
		{"activity very active", "activity_level", "very active", "active", true},
		{"activity lightly active", "activity_level", "lightly active", "light", true},
		{"speed phrase", "target_speed", "normal pace", "normal", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Enum(mustSpec(t, tt.field), tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Enum(%v) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Enum(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		raw      any
		want     float64
		wantUnit string
		wantOK   bool
	}{
		{"plain float", "current_weight", float64(90), 90, "", true},
		{"plain int", "current_weight", 80, 80, "", true},
		{"numeric string", "current_height", "175", 175, "", true},
		{"value with unit", "current_weight", "90 kg", 90, "kg", true},
		{"value glued to unit", "current_weight", "80kg", 80, "kg", true},
		{"pounds synonym", "current_weight", "170 pounds", 170, "lbs", true},
		{"compound feet inches", "current_height", "5 foot 9 inch", 69, "inch", true},
		{"compound apostrophe", "current_height", `5'9"`, 69, "inch", true},
		{"feet only", "current_height", "6 feet", 72, "inch", true},
		{"timeline with unit", "target_timeline_value", "20 months", 20, "months", true},
		{"no number", "current_weight", "heavy", 0, "", false},
		{"unsupported type", "current_weight", true, 0, "", false},
		{"negative with unit", "current_weight", "-90 kg", 0, "", false},
		{"negative float", "current_height", float64(-170), 0, "", false},
		{"zero rejected", "current_weight", float64(0), 0, "", false},
		{"zero timeline", "target_timeline_value", "0 weeks", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unit, ok := Number(mustSpec(t, tt.field), tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Number(%v) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want || unit != tt.wantUnit {
				t.Errorf("Number(%v) = (%v, %q), want (%v, %q)", tt.raw, got, unit, tt.want, tt.wantUnit)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		raw    any
		want   string
		wantOK bool
	}{
		{"inches to inch", "current_height", "inches", "inch", true},
		{"in to inch", "current_height", "in", "inch", true},
		{"pound to lbs", "current_weight", "pound", "lbs", true},
		{"lb to lbs", "target_weight", "lb", "lbs", true},
		{"mo to months", "target_timeline_value", "mo", "months", true},
		{"wrong dimension", "current_weight", "cm", "", false},
		{"garbage", "current_height", "bananas", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Unit(mustSpec(t, tt.field), tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Unit(%v) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Unit(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   string
		wantOK bool
	}{
		{"iso", "2000-07-20", "2000-07-20", true},
		{"day month year", "20 july 2000", "2000-07-20", true},
		{"month day year", "July 20, 2000", "2000-07-20", true},
		{"ambiguous rejected", "03/02/2001", "", false},
		{"garbage rejected", "sometime in the 90s maybe", "", false},
		{"empty rejected", "", "", false},
		{"non-string rejected", 20000720, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Date(%v) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Date(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	if v, ok := Convert(2.54, "cm", "inch"); !ok || math.Abs(v-1) > 1e-9 {
		t.Errorf("Convert(2.54, cm, inch) = (%v, %v), want (1, true)", v, ok)
	}
	if v, ok := Convert(1, "inch", "cm"); !ok || math.Abs(v-2.54) > 1e-9 {
		t.Errorf("Convert(1, inch, cm) = (%v, %v), want (2.54, true)", v, ok)
	}
	if v, ok := Convert(90, "kg", "lbs"); !ok || math.Abs(v-198.416) > 0.01 {
		t.Errorf("Convert(90, kg, lbs) = (%v, %v), want about 198.4", v, ok)
	}
	if v, ok := Convert(14, "days", "weeks"); !ok || math.Abs(v-2) > 1e-9 {
		t.Errorf("Convert(14, days, weeks) = (%v, %v), want (2, true)", v, ok)
	}
	if _, ok := Convert(3, "months", "weeks"); ok {
		t.Error("Convert(months, weeks) should have no explicit conversion")
	}
	if v, ok := Convert(5, "kg", "kg"); !ok || v != 5 {
		t.Errorf("Convert same unit = (%v, %v), want (5, true)", v, ok)
	}
}
