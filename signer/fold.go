package signer

import "strings"

// isHeaderSpace reports whether c is horizontal whitespace in a header
// value.
func isHeaderSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// foldHeaderValue trims leading and trailing horizontal whitespace and
// collapses every internal whitespace run to a single space.
// Reference: AWS SDK v4 signer internal/v4/util.go StripExcessSpaces
func foldHeaderValue(str string) string {
	var j, k int

	// Trim trailing whitespace
	for j = len(str) - 1; j >= 0 && isHeaderSpace(str[j]); j-- {
	}

	// Trim leading whitespace
	for k = 0; k < j && isHeaderSpace(str[k]); k++ {
	}
	str = str[k : j+1]

	if !strings.ContainsAny(str, " \t") {
		return str
	}

	buf := make([]byte, 0, len(str))
	spaces := 0
	for i := 0; i < len(str); i++ {
		if isHeaderSpace(str[i]) {
			if spaces == 0 {
				buf = append(buf, ' ')
			}
			spaces++
		} else {
			spaces = 0
			buf = append(buf, str[i])
		}
	}

	return string(buf)
}

// validHeaderValue reports whether every byte of v is in the range SigV4 is
// defined for: horizontal tab or printable ASCII. SigV4 is not defined for
// binary header values.
func validHeaderValue(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\t' && (c < 0x20 || c > 0x7E) {
			return false
		}
	}
	return true
}
