package reader

import "bytes"

// The scanner is a synchronous run-to-completion state machine. Each call
// to advance re-enters the skip loop until a reportable node is found or
// the buffer is exhausted. Comments, processing instructions, CDATA
// sections, and DOCTYPE declarations are consumed and discarded inside
// the loop; they never surface as nodes.

// advance scans to the next reportable node. It returns false once the
// buffer is exhausted; after that every further call returns false.
func (r *Reader) advance() bool {
	// Invalidate the previous node.
	r.kind = KindNone
	r.selfClosing = false
	r.name = span{}
	r.text = span{}
	r.textHasEntity = false
	r.decoded = ""
	r.hasDecoded = false
	r.attrCount = 0

	for {
		if r.pos >= len(r.data) {
			return false
		}

		if r.data[r.pos] != '<' {
			if r.scanText() {
				return true
			}
			continue // blank-only run, retry
		}

		r.pos++ // past '<'
		if r.pos >= len(r.data) {
			// A lone '<' at end-of-buffer is end-of-input.
			return false
		}

		rest := r.data[r.pos:]
		switch {
		case rest[0] == '/':
			r.pos++
			return r.scanEndTag()
		case rest[0] == '?':
			r.pos++
			r.skipUntil([]byte("?>"))
		case bytes.HasPrefix(rest, []byte("!--")):
			r.pos += 3
			r.skipUntil([]byte("-->"))
		case bytes.HasPrefix(rest, []byte("![CDATA[")):
			// CDATA contents are dropped, not surfaced as text.
			r.pos += 8
			r.skipUntil([]byte("]]>"))
		case bytes.HasPrefix(rest, []byte("!DOCTYPE")):
			r.pos += 8
			r.skipDoctype()
		default:
			return r.scanStartTag()
		}
	}
}

// scanText consumes a text run up to the next '<' or end-of-buffer.
// Whitespace-only runs are discarded and scanText returns false so the
// caller retries.
func (r *Reader) scanText() bool {
	start := r.pos
	end := len(r.data)
	if rel := bytes.IndexByte(r.data[r.pos:], '<'); rel >= 0 {
		end = r.pos + rel
	}
	r.pos = end

	raw := r.data[start:end]
	if isBlank(raw) {
		return false
	}

	r.kind = KindText
	r.reportDepth = r.depth
	r.text = span{start, end}
	r.textHasEntity = bytes.IndexByte(raw, '&') >= 0
	return true
}

// scanEndTag consumes an end tag, positioned just past "</". The reported
// depth is the depth of the element being closed, so the counter is
// decremented first.
func (r *Reader) scanEndTag() bool {
	nameStart := r.pos
	rel := bytes.IndexByte(r.data[r.pos:], '>')
	if rel < 0 {
		// Unterminated end tag absorbs the rest of the buffer.
		r.pos = len(r.data)
		return false
	}
	gt := r.pos + rel
	r.pos = gt + 1

	r.name = r.localName(span{nameStart, gt})
	r.kind = KindEndElement
	if r.depth > 0 {
		r.depth--
	}
	r.reportDepth = r.depth
	return true
}

// scanStartTag consumes a start tag, positioned at the first name byte.
// After attribute parsing, a not-yet-self-closing element gets one bounded
// lookahead: if the very next markup is its own end tag, the pair is
// collapsed into a single self-closing element and no end-element event
// is ever emitted for it.
func (r *Reader) scanStartTag() bool {
	nameStart := r.pos
	for r.pos < len(r.data) {
		c := r.data[r.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>' || c == '/' {
			break
		}
		r.pos++
	}

	name := r.localName(span{nameStart, r.pos})
	r.name = name
	r.kind = KindElement

	r.parseAttrs()

	if !r.selfClosing {
		r.collapseEmpty(name)
	}

	// Snapshot before mutation: the element reports the depth it opens at.
	r.reportDepth = r.depth
	if !r.selfClosing {
		r.depth++
	}
	return true
}

// collapseEmpty peeks past a just-parsed start tag. If the immediately
// following bytes are exactly the matching end tag, it is consumed and the
// element is marked self-closing; otherwise the cursor is restored. This
// is the scanner's only non-monotonic cursor movement.
func (r *Reader) collapseEmpty(name span) {
	saved := r.pos
	if r.pos+1 >= len(r.data) || r.data[r.pos] != '<' || r.data[r.pos+1] != '/' {
		return
	}

	peek := r.pos + 2
	rel := bytes.IndexByte(r.data[peek:], '>')
	if rel < 0 {
		return
	}
	gt := peek + rel

	closeName := r.localName(span{peek, gt})
	if closeName.len() == name.len() &&
		bytes.Equal(r.data[closeName.start:closeName.end], r.data[name.start:name.end]) {
		r.selfClosing = true
		r.pos = gt + 1
		return
	}
	r.pos = saved
}

// localName strips a leading "prefix:" segment and trailing whitespace
// from a raw name span. Only the lexical prefix is removed; no URI
// resolution happens anywhere in this package.
func (r *Reader) localName(s span) span {
	raw := r.data[s.start:s.end]
	if colon := bytes.IndexByte(raw, ':'); colon >= 0 {
		s.start += colon + 1
	}
	for s.end > s.start && r.data[s.end-1] <= ' ' {
		s.end--
	}
	return s
}

// skipUntil consumes bytes through the next occurrence of marker. With no
// occurrence the rest of the buffer is absorbed; truncated trailing markup
// ends parsing without error.
func (r *Reader) skipUntil(marker []byte) {
	rel := bytes.Index(r.data[r.pos:], marker)
	if rel < 0 {
		r.pos = len(r.data)
		return
	}
	r.pos += rel + len(marker)
}

// skipDoctype consumes a DOCTYPE declaration, tracking '['/']' nesting so
// a '>' inside an internal subset does not end the declaration early.
func (r *Reader) skipDoctype() {
	brackets := 0
	for r.pos < len(r.data) {
		switch c := r.data[r.pos]; c {
		case '[':
			brackets++
		case ']':
			brackets--
		case '>':
			if brackets == 0 {
				r.pos++
				return
			}
		}
		r.pos++
	}
}

// skipSpaces advances the cursor past XML whitespace.
func (r *Reader) skipSpaces() {
	for r.pos < len(r.data) {
		c := r.data[r.pos]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return
		}
		r.pos++
	}
}

// isBlank reports whether b is entirely XML whitespace.
func isBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}
