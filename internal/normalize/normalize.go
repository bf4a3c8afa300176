// Package normalize coerces raw extracted values into the canonical
// representation the schema dictates. Every function rejects by
// returning ok=false rather than an error: a rejected value simply
// means no information was gained for that field this turn.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"fitbot/internal/schema"
)

var (
	numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	// Imperial compound height: 5'9", 5 ft 9, 5 foot 9 inch, 6 feet.
	feetInchesRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:'|ft\b|foot\b|feet\b)\s*(?:(\d+(?:\.\d+)?)\s*(?:"|in\b|inch\b|inches\b)?)?`)
)

// Enum canonicalizes a raw enum candidate. Unmatched input is rejected.
func Enum(spec schema.FieldSpec, raw any) (string, bool) {
	s, ok := rawString(raw)
	if !ok {
		return "", false
	}
	return matchEnum(spec.Name, spec.AllowedValues, s)
}

// Unit canonicalizes a raw unit token for a paired field. Tokens that
// resolve to a unit outside the field's allowed set are rejected.
func Unit(spec schema.FieldSpec, raw any) (string, bool) {
	s, ok := rawString(raw)
	if !ok {
		return "", false
	}
	u, ok := CanonicalUnit(s)
	if !ok || !spec.AllowsUnit(u) {
		return "", false
	}
	return u, true
}

// Number parses a raw numeric candidate. The returned unit is the token
// stated inside the value itself ("90 kg", "5 foot 9 inch") or empty
// when the value is a bare number; it is the merger's job to pick the
// effective unit in that case. Compound imperial heights convert to a
// single inch value (1 foot = 12 inch). Every numeric field here is a
// physical magnitude, so non-positive values are rejected.
func Number(spec schema.FieldSpec, raw any) (float64, string, bool) {
	switch v := raw.(type) {
	case float64:
		return positive(v)
	case int:
		return positive(float64(v))
	case int64:
		return positive(float64(v))
	case string:
		return numberFromString(spec, v)
	default:
		return 0, "", false
	}
}

func positive(v float64) (float64, string, bool) {
	if v <= 0 {
		return 0, "", false
	}
	return v, "", true
}

func numberFromString(spec schema.FieldSpec, s string) (float64, string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", false
	}

	// Compound imperial height is only meaningful for fields that allow
	// inches.
	if spec.AllowsUnit("inch") {
		if m := feetInchesRe.FindStringSubmatch(s); m != nil {
			feet, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, "", false
			}
			inches := feet * 12
			if m[2] != "" {
				extra, err := strconv.ParseFloat(m[2], 64)
				if err != nil {
					return 0, "", false
				}
				inches = feet*12 + extra
			}
			if inches <= 0 {
				return 0, "", false
			}
			return inches, "inch", true
		}
	}

	loc := numberRe.FindStringIndex(s)
	if loc == nil {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
	if err != nil || value <= 0 {
		return 0, "", false
	}

	// Look for a unit token in the surrounding text.
	rest := strings.TrimSpace(s[loc[1]:])
	for _, word := range strings.FieldsFunc(rest, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.'
	}) {
		if u, ok := CanonicalUnit(word); ok && spec.AllowsUnit(u) {
			return value, u, true
		}
	}
	return value, "", true
}

// Date normalizes varied natural date phrasing to YYYY-MM-DD. Strict
// parsing: ambiguous or unparseable dates are rejected rather than
// guessed.
func Date(raw any) (string, bool) {
	s, ok := rawString(raw)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	t, err := dateparse.ParseStrict(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// IsCanonicalDate reports whether s is a real date in the stored
// YYYY-MM-DD form. State can arrive from outside the merger (a loaded
// profile, a caller-built map), so satisfied dates are re-checked
// rather than trusted.
func IsCanonicalDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func rawString(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	return s, true
}
