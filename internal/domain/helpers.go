package domain

// falsy reports whether a decoded JSON value counts as absent for the
// presence checks: null/missing, empty string, false or numeric zero.
func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0
	case int:
		return x == 0
	}
	return false
}

// allStrings asserts every value to string, in order. ok is false as soon
// as one of them is not a string.
func allStrings(values ...any) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
