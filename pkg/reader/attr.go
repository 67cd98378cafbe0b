package reader

import "bytes"

// maxAttrs caps the attributes retained per start tag. Tags with more are
// still scanned so the cursor lands past the closing '>', but the excess
// entries are not kept. This is a documented limitation, not an error.
const maxAttrs = 32

// attrEntry is one retained name/value pair, stored as byte ranges into
// the document buffer. Values are decoded lazily on lookup.
type attrEntry struct {
	name      span
	value     span
	hasEntity bool
}

// parseAttrs scans the remainder of a start tag, positioned just past the
// element name. It fills the attribute list, detects a '/>' terminator,
// and leaves the cursor past the closing '>'.
//
// Malformed attributes (missing '=', missing opening quote) are skipped
// without raising. Namespace declarations (xmlns, xmlns:*) are filtered
// out entirely. Quoted values run to the matching quote with no escape
// handling; that minimal treatment is intentional.
func (r *Reader) parseAttrs() {
	r.attrCount = 0
	r.selfClosing = false

	for r.pos < len(r.data) {
		r.skipSpaces()
		if r.pos >= len(r.data) {
			return
		}

		c := r.data[r.pos]
		if c == '>' {
			r.pos++
			return
		}
		if c == '/' {
			r.selfClosing = true
			r.pos++
			if r.pos < len(r.data) && r.data[r.pos] == '>' {
				r.pos++
			}
			return
		}

		// Attribute name.
		nameStart := r.pos
		for r.pos < len(r.data) {
			c = r.data[r.pos]
			if c == '=' || c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>' || c == '/' {
				break
			}
			r.pos++
		}
		nameEnd := r.pos

		r.skipSpaces()
		if r.pos >= len(r.data) || r.data[r.pos] != '=' {
			continue // malformed, skip
		}
		r.pos++
		r.skipSpaces()
		if r.pos >= len(r.data) {
			return
		}

		quote := r.data[r.pos]
		if quote != '"' && quote != '\'' {
			continue // unquoted value, skip
		}
		r.pos++

		valStart := r.pos
		rel := bytes.IndexByte(r.data[r.pos:], quote)
		if rel < 0 {
			// Unmatched quote runs to end-of-buffer.
			r.pos = len(r.data)
			return
		}
		valEnd := r.pos + rel
		r.pos = valEnd + 1

		if isNamespaceDecl(r.data[nameStart:nameEnd]) {
			continue
		}

		if r.attrCount < maxAttrs {
			a := &r.attrs[r.attrCount]
			r.attrCount++
			a.name = span{nameStart, nameEnd}
			a.value = span{valStart, valEnd}
			a.hasEntity = bytes.IndexByte(r.data[valStart:valEnd], '&') >= 0
		}
	}
}

// isNamespaceDecl reports whether name is "xmlns" or has an "xmlns:"
// prefix. Such attributes are never stored or visible to lookups.
func isNamespaceDecl(name []byte) bool {
	if len(name) < 5 || !bytes.Equal(name[:5], []byte("xmlns")) {
		return false
	}
	return len(name) == 5 || name[5] == ':'
}
