package schema

import (
	"errors"
	"testing"
)

func TestFieldsOrder(t *testing.T) {
	want := []string{
		"gender", "date_of_birth",
		"current_height", "target_height",
		"current_weight", "target_weight",
		"goal", "target_timeline_value",
		"target_speed", "activity_level",
	}

	got := Fields()
	if len(got) != len(want) {
		t.Fatalf("Fields() returned %d specs, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Fields()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestGet(t *testing.T) {
	spec, err := Get("current_weight")
	if err != nil {
		t.Fatalf("Get(current_weight) error = %v", err)
	}
	if spec.UnitField != "current_weight_unit" {
		t.Errorf("UnitField = %q, want current_weight_unit", spec.UnitField)
	}
	if !spec.AllowsUnit("kg") || !spec.AllowsUnit("lbs") {
		t.Errorf("current_weight should allow kg and lbs, got %v", spec.AllowedUnits)
	}
	if spec.AllowsUnit("cm") {
		t.Error("current_weight should not allow cm")
	}
}

func TestGetUnknownField(t *testing.T) {
	_, err := Get("favourite_color")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("Get(favourite_color) error = %v, want ErrUnknownField", err)
	}
}

func TestEnumSpecs(t *testing.T) {
	tests := []struct {
		field  string
		values []string
	}{
		{"gender", []string{"male", "female", "others"}},
		{"goal", []string{"lose_weight", "maintain", "gain_weight"}},
		{"target_speed", []string{"slow", "normal", "fast"}},
		{"activity_level", []string{"sedentary", "light", "moderate", "active"}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			spec, err := Get(tt.field)
			if err != nil {
				t.Fatalf("Get(%s) error = %v", tt.field, err)
			}
			if spec.Kind != KindEnum {
				t.Fatalf("Get(%s).Kind = %v, want KindEnum", tt.field, spec.Kind)
			}
			for _, v := range tt.values {
				if !spec.AllowsValue(v) {
					t.Errorf("%s should allow %q", tt.field, v)
				}
			}
		})
	}
}
