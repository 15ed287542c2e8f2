package validate

import "strings"

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Digits reports whether value consists only of ASCII digits and is
// non-empty.
func Digits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
