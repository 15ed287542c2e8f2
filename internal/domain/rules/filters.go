package rules

const (
	MinAdultAge  = 18
	MaxFilterAge = 99
)

// NormalizeAgeRange fills non-positive bounds with defaults and swaps
// an inverted range instead of failing.
func NormalizeAgeRange(ageMin, ageMax, defaultMin, defaultMax int) (int, int) {
	if ageMin <= 0 {
		ageMin = defaultMin
	}
	if ageMax <= 0 {
		ageMax = defaultMax
	}
	if ageMin > ageMax {
		ageMin, ageMax = ageMax, ageMin
	}
	return ageMin, ageMax
}

// ClampThreshold normalizes a numeric filter bound. Anything negative
// means malformed input and collapses to zero, which disables the
// predicate.
func ClampThreshold(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
