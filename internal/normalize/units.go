package normalize

import "strings"

// Canonical unit tokens and synonym tables. The stored representation
// always uses the canonical token; everything a user might type maps
// onto one of these.
var unitSynonyms = map[string]string{
	"cm":          "cm",
	"cms":         "cm",
	"centimeter":  "cm",
	"centimeters": "cm",
	"centimetre":  "cm",
	"centimetres": "cm",
	"in":          "inch",
	"inch":        "inch",
	"inches":      "inch",
	"\"":          "inch",
	"kg":          "kg",
	"kgs":         "kg",
	"kilo":        "kg",
	"kilos":       "kg",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"lb":          "lbs",
	"lbs":         "lbs",
	"pound":       "lbs",
	"pounds":      "lbs",
	"day":         "days",
	"days":        "days",
	"week":        "weeks",
	"weeks":       "weeks",
	"wk":          "weeks",
	"wks":         "weeks",
	"month":       "months",
	"months":      "months",
	"mo":          "months",
	"mos":         "months",
	"year":        "years",
	"years":       "years",
	"yr":          "years",
	"yrs":         "years",
}

// conversions holds the explicit unit conversion table. A pair absent
// here (months to weeks, for instance) has no exact conversion, and the
// merger leaves such pairs untouched.
var conversions = map[string]map[string]float64{
	"cm":    {"inch": 1 / 2.54},
	"inch":  {"cm": 2.54},
	"kg":    {"lbs": 1 / 0.453592},
	"lbs":   {"kg": 0.453592},
	"days":  {"weeks": 1.0 / 7},
	"weeks": {"days": 7},
}

// CanonicalUnit maps a raw unit token to its canonical form.
func CanonicalUnit(raw string) (string, bool) {
	u, ok := unitSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return u, ok
}

// Convert re-expresses value from one canonical unit in another. The
// second return is false when no explicit conversion exists.
func Convert(value float64, from, to string) (float64, bool) {
	if from == to {
		return value, true
	}
	factors, ok := conversions[from]
	if !ok {
		return 0, false
	}
	f, ok := factors[to]
	if !ok {
		return 0, false
	}
	return value * f, true
}

// ToKg converts a weight to kilograms.
func ToKg(weight float64, unit string) float64 {
	if unit == "lbs" {
		return weight * 0.453592
	}
	return weight
}

// ToCm converts a height to centimeters.
func ToCm(height float64, unit string) float64 {
	if unit == "inch" {
		return height * 2.54
	}
	return height
}
