/*
File    : golox/lexer/lexer_utils.go
*/
package lexer

import "strconv"

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isAlphaNumeric reports whether b is an ASCII letter or digit.
func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// parseFloat parses a number lexeme as an IEEE 754 double. The lexer only
// feeds it digit runs with at most one interior '.', which always parse.
func parseFloat(lexeme string) float64 {
	value, _ := strconv.ParseFloat(lexeme, 64)
	return value
}
