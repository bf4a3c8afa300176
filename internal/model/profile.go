package model

// Profile is the collected onboarding state: a mapping from field name to
// its canonical value (float64 for numbers, string for enums, units and
// dates). Values are written only by the merger, which guarantees every
// stored value is already normalized.
type Profile map[string]any

// Clone returns an independent copy so a merge never mutates the caller's
// prior state.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Has reports whether a field holds a value.
func (p Profile) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Number returns a numeric field value.
func (p Profile) Number(name string) (float64, bool) {
	v, ok := p[name]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// String returns a string field value.
func (p Profile) String(name string) (string, bool) {
	v, ok := p[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Extraction is the raw candidate-field mapping produced by the LLM
// extraction call. Untrusted: keys may be unknown, values malformed.
type Extraction map[string]any
