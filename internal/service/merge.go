package service

import (
	"strings"

	"fitbot/internal/model"
	"fitbot/internal/normalize"
	"fitbot/internal/schema"
)

// Merge combines a prior collected state with a freshly extracted
// candidate set. Later information supersedes earlier, but only after it
// normalizes: a rejected value is no information at all and the prior
// value stays. Unknown extraction keys are ignored. The returned state
// is a new value; the prior state is never mutated.
func Merge(prior model.Profile, extracted model.Extraction) model.Profile {
	next := prior.Clone()
	if len(extracted) == 0 {
		return next
	}

	for _, spec := range schema.Fields() {
		switch spec.Kind {
		case schema.KindEnum:
			if raw, ok := extracted[spec.Name]; ok {
				if v, ok := normalize.Enum(spec, raw); ok {
					next[spec.Name] = v
				}
			}
		case schema.KindDate:
			if raw, ok := extracted[spec.Name]; ok {
				if v, ok := normalize.Date(raw); ok {
					next[spec.Name] = v
				}
			}
		case schema.KindNumber:
			mergePair(next, spec, extracted)
		case schema.KindString:
			if raw, ok := extracted[spec.Name]; ok {
				if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
					next[spec.Name] = strings.TrimSpace(s)
				}
			}
		}
	}
	return next
}

// mergePair updates a magnitude/unit pair atomically. The pair is
// written together or not at all, so the state never holds a magnitude
// under a unit that was never confirmed.
func mergePair(next model.Profile, spec schema.FieldSpec, extracted model.Extraction) {
	value, inlineUnit, haveValue := 0.0, "", false
	if raw, ok := extracted[spec.Name]; ok {
		value, inlineUnit, haveValue = normalize.Number(spec, raw)
	}

	extractedUnit, haveUnit := "", false
	if raw, ok := extracted[spec.UnitField]; ok {
		extractedUnit, haveUnit = normalize.Unit(spec, raw)
	}

	priorValue, havePriorValue := next.Number(spec.Name)
	priorUnit, havePriorUnit := next.String(spec.UnitField)

	switch {
	case haveValue:
		// New magnitude. Unit preference: explicitly extracted, then one
		// stated inside the value itself, then the unit on record, then
		// the documented default.
		unit := spec.DefaultUnit
		switch {
		case haveUnit:
			unit = extractedUnit
		case inlineUnit != "":
			unit = inlineUnit
		case havePriorUnit:
			unit = priorUnit
		}
		next[spec.Name] = value
		next[spec.UnitField] = unit

	case haveUnit && havePriorValue && havePriorUnit:
		// Unit alone: re-interpret the stored magnitude under the new
		// unit only when an explicit conversion exists; otherwise leave
		// the pair untouched rather than silently corrupting it.
		if converted, ok := normalize.Convert(priorValue, priorUnit, extractedUnit); ok {
			next[spec.Name] = converted
			next[spec.UnitField] = extractedUnit
		}
	}
}
