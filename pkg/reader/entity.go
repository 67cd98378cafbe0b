package reader

import (
	"bytes"
	"strings"
)

// decodeEntities resolves XML entity references in src and returns the
// decoded text. It is deliberately permissive:
//
//   - the five predefined entities and numeric character references
//     (decimal, hex) are resolved
//   - an unknown &name; is copied through unchanged, delimiters included
//   - an '&' with no following ';' is copied through literally
//
// Malformed references are never an error; whatever cannot be decoded
// passes through as written.
func decodeEntities(src []byte) string {
	// Fast path: no references at all.
	if bytes.IndexByte(src, '&') < 0 {
		return string(src)
	}

	var b strings.Builder
	b.Grow(len(src)) // decoded output is never longer than the source

	for len(src) > 0 {
		amp := bytes.IndexByte(src, '&')
		if amp < 0 {
			b.Write(src)
			break
		}
		b.Write(src[:amp])
		src = src[amp:]

		// The reference must close before the next '&' or end of input;
		// otherwise this '&' is literal text.
		semi := bytes.IndexByte(src[1:], ';')
		if semi < 0 {
			b.WriteByte('&')
			src = src[1:]
			continue
		}
		semi++
		if next := bytes.IndexByte(src[1:semi], '&'); next >= 0 {
			b.WriteByte('&')
			src = src[1:]
			continue
		}

		name := src[1:semi]
		switch {
		case bytes.Equal(name, []byte("amp")):
			b.WriteByte('&')
		case bytes.Equal(name, []byte("lt")):
			b.WriteByte('<')
		case bytes.Equal(name, []byte("gt")):
			b.WriteByte('>')
		case bytes.Equal(name, []byte("quot")):
			b.WriteByte('"')
		case bytes.Equal(name, []byte("apos")):
			b.WriteByte('\'')
		case len(name) > 1 && name[0] == '#':
			b.WriteRune(parseCharRef(name[1:]))
		default:
			// Unknown entity, copy through with its delimiters.
			b.Write(src[:semi+1])
		}
		src = src[semi+1:]
	}

	return b.String()
}

// parseCharRef parses the digits of a numeric character reference, the
// part between "&#" and ";". A leading 'x' or 'X' selects hex. Stray
// bytes are ignored rather than rejected.
func parseCharRef(digits []byte) rune {
	var cp uint32
	if digits[0] == 'x' || digits[0] == 'X' {
		for _, c := range digits[1:] {
			cp <<= 4
			switch {
			case c >= '0' && c <= '9':
				cp += uint32(c - '0')
			case c >= 'a' && c <= 'f':
				cp += uint32(c-'a') + 10
			case c >= 'A' && c <= 'F':
				cp += uint32(c-'A') + 10
			}
		}
	} else {
		for _, c := range digits {
			if c >= '0' && c <= '9' {
				cp = cp*10 + uint32(c-'0')
			}
		}
	}
	return rune(cp)
}
