package league

import "golang.org/x/exp/constraints"

// coerce maps a raw document field onto a closed set of string-typed values.
// Anything that is not a string, or is a string outside the set, becomes the
// fallback. Unrecognized values are coerced, never rejected.
func coerce[T ~string](raw any, valid []T, fallback T) T {
	s, ok := raw.(string)
	if !ok {
		return fallback
	}
	for _, v := range valid {
		if string(v) == s {
			return v
		}
	}
	return fallback
}

// stringOr returns the raw field as a string, or fallback when the field is
// absent or not a string.
func stringOr(raw map[string]any, key, fallback string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return fallback
}

// nonNegative clamps negative counters from hand-edited documents to zero.
func nonNegative[T constraints.Signed](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

// intOr converts the numeric types the datastore hands back (int64 from
// Firestore, float64 from JSON seeds) to a non-negative int.
func intOr(raw map[string]any, key string, fallback int) int {
	switch v := raw[key].(type) {
	case int64:
		return nonNegative(int(v))
	case int:
		return nonNegative(v)
	case float64:
		return nonNegative(int(v))
	}
	return fallback
}

// optInt is like intOr but preserves absence.
func optInt(raw map[string]any, key string) *int {
	if _, ok := raw[key]; !ok {
		return nil
	}
	switch raw[key].(type) {
	case int64, int, float64:
		n := intOr(raw, key, 0)
		return &n
	}
	return nil
}
