/*
File   : mica/lexer/lexer_utils.go
Author : The Mica Authors
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAlphanumeric reports whether c is an ASCII letter or digit.
func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isInlineSpace reports whether c is whitespace that does not terminate a
// logical line. A lone '\r' outside a "\r\n" pair counts as inline space.
func isInlineSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}
