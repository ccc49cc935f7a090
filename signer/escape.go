package signer

import "strings"

// noEscape marks the bytes that are not percent-encoded in canonical paths
// and query strings: the RFC 3986 unreserved set. Everything else is encoded
// as uppercase %XX, including '%' itself — canonical form treats input as
// literal bytes, never as pre-encoded text.
// Reference: AWS SDK v4 signer internal/v4/util.go and smithy httpbinding.
var noEscape [256]bool

func init() {
	for i := 0; i < len(noEscape); i++ {
		noEscape[i] = (i >= 'A' && i <= 'Z') ||
			(i >= 'a' && i <= 'z') ||
			(i >= '0' && i <= '9') ||
			i == '-' || i == '_' || i == '.' || i == '~'
	}
}

const upperhex = "0123456789ABCDEF"

// escapeTo writes s percent-encoded to buf.
func escapeTo(buf *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if noEscape[c] {
			buf.WriteByte(c)
			continue
		}
		buf.WriteByte('%')
		buf.WriteByte(upperhex[c>>4])
		buf.WriteByte(upperhex[c&0xF])
	}
}

// escape returns s percent-encoded.
func escape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	escapeTo(&buf, s)
	return buf.String()
}

// isLowerHex64 reports whether s is exactly 64 lowercase hex digits, the
// shape of a hex encoded SHA256 digest.
func isLowerHex64(s string) bool {
	if len(s) != 64 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
