package normalize

import "strings"

// Per-field enum synonym tables. Keys are lowercased, space-collapsed
// phrases; values are canonical tokens. A raw value that matches neither
// a canonical token nor a synonym is rejected outright, never stored as
// free text.
var enumSynonyms = map[string]map[string]string{
	"gender": {
		"m":                 "male",
		"man":               "male",
		"f":                 "female",
		"woman":             "female",
		"other":             "others",
		"non-binary":        "others",
		"nonbinary":         "others",
		"prefer not to say": "others",
	},
	"goal": {
		"lose":            "lose_weight",
		"lose weight":     "lose_weight",
		"lose_weight":     "lose_weight",
		"cut":             "lose_weight",
		"slim down":       "lose_weight",
		"gain":            "gain_weight",
		"gain weight":     "gain_weight",
		"gain_weight":     "gain_weight",
		"bulk":            "gain_weight",
		"build muscle":    "gain_weight",
		"maintain":        "maintain",
		"maintain weight": "maintain",
		"stay the same":   "maintain",
	},
	"target_speed": {
		"slow":        "slow",
		"slowly":      "slow",
		"gradual":     "slow",
		"normal":      "normal",
		"normal pace": "normal",
		"steady":      "normal",
		"average":     "normal",
		"fast":        "fast",
		"quick":       "fast",
		"quickly":     "fast",
		"aggressive":  "fast",
	},
	"activity_level": {
		"sedentary":         "sedentary",
		"inactive":          "sedentary",
		"desk job":          "sedentary",
		"light":             "light",
		"lightly active":    "light",
		"light exercise":    "light",
		"moderate":          "moderate",
		"moderately active": "moderate",
		"active":            "active",
		"very active":       "active",
		"highly active":     "active",
	},
}

// matchEnum resolves a raw phrase against a field's canonical tokens and
// synonyms: exact token first, then synonym table, then a containment
// pass over both so phrases like "I want to lose weight" still resolve.
func matchEnum(field string, allowed []string, raw string) (string, bool) {
	phrase := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	if phrase == "" {
		return "", false
	}

	for _, tok := range allowed {
		if phrase == tok || strings.ReplaceAll(phrase, " ", "_") == tok {
			return tok, true
		}
	}

	syns := enumSynonyms[field]
	if canonical, ok := syns[phrase]; ok {
		return canonical, true
	}

	// Containment pass: longest synonym wins so "very active" is not
	// shadowed by "active".
	best := ""
	bestLen := 0
	for syn, canonical := range syns {
		if strings.Contains(phrase, syn) && len(syn) > bestLen {
			best, bestLen = canonical, len(syn)
		}
	}
	for _, tok := range allowed {
		plain := strings.ReplaceAll(tok, "_", " ")
		if strings.Contains(phrase, plain) && len(plain) > bestLen {
			best, bestLen = tok, len(plain)
		}
	}
	if best != "" {
		return best, true
	}
	return "", false
}
