package field

import "strings"

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// keepRunes drops every rune of s for which keep is false.
func keepRunes(s string, keep func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return -1
	}, s)
}
