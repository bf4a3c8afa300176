package service

import (
	"fitbot/internal/model"
	"fitbot/internal/normalize"
	"fitbot/internal/schema"
)

// Check walks the registry in question-priority order and returns the
// first field whose value is absent or not canonical, or complete=true
// when every required field (including paired units) holds a canonical
// value. Deterministic and order-stable, so the next question is
// reproducible for a given state.
func Check(state model.Profile) (missing schema.FieldSpec, complete bool) {
	for _, spec := range schema.Fields() {
		if !fieldSatisfied(state, spec) {
			return spec, false
		}
	}
	return schema.FieldSpec{}, true
}

func fieldSatisfied(state model.Profile, spec schema.FieldSpec) bool {
	switch spec.Kind {
	case schema.KindEnum:
		v, ok := state.String(spec.Name)
		return ok && spec.AllowsValue(v)
	case schema.KindDate:
		v, ok := state.String(spec.Name)
		return ok && normalize.IsCanonicalDate(v)
	case schema.KindNumber:
		if _, ok := state.Number(spec.Name); !ok {
			return false
		}
		if !spec.HasUnit() {
			return true
		}
		u, ok := state.String(spec.UnitField)
		return ok && spec.AllowsUnit(u)
	case schema.KindString:
		v, ok := state.String(spec.Name)
		return ok && v != ""
	}
	return false
}

// CollectedFields lists the registry fields currently satisfied, in
// registry order. Used for progress display.
func CollectedFields(state model.Profile) []string {
	var out []string
	for _, spec := range schema.Fields() {
		if fieldSatisfied(state, spec) {
			out = append(out, spec.Name)
		}
	}
	return out
}
