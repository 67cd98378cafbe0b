// Package reader implements a single-pass, pull-style XML tokenizer.
//
// A Reader converts raw document bytes into a sequence of node events
// (element-open, text, element-close) using zero-copy views into a buffer
// it owns for the document lifetime: a read-only memory mapping for file
// input, or a heap buffer for stream input. Entity references are decoded
// on demand and element/attribute names are canonicalized through a
// bounded interning table, so the fast path allocates nothing per node.
//
// The reader is deliberately permissive rather than validating: malformed
// trailing markup is absorbed, unknown entities pass through literally,
// and capacity limits degrade silently. It does not resolve namespace
// URIs (only the lexical prefix is stripped), does not surface CDATA
// contents, and emits all text as UTF-8 regardless of any declared
// encoding.
//
// A single Reader must not be driven from multiple goroutines; independent
// Readers are fully concurrency-safe.
package reader

import (
	"io"
	"iter"
)

// Reader is a pull-style XML tokenizer over an exclusively owned,
// immutable byte buffer. Read advances it one node at a time; the
// accessor methods expose the current node and are invalidated by the
// next Read. Interned names remain valid for the Reader's lifetime.
type Reader struct {
	buf  buffer
	data []byte
	pos  int

	// depth is incremented after a non-self-closing start tag and
	// decremented before an end tag is reported. reportDepth is the
	// snapshot taken for the current node before either mutation.
	depth       int
	reportDepth int

	kind        Kind
	selfClosing bool
	name        span

	text          span
	textHasEntity bool
	decoded       string
	hasDecoded    bool

	attrs     [maxAttrs]attrEntry
	attrCount int

	names internTable

	node Node
}

// Open maps the file at path read-only and returns a Reader over it.
// A zero-length file yields a Reader that immediately reports no nodes.
// Open, stat, and map failures are returned with the path attached.
func Open(path string) (*Reader, error) {
	buf, err := openMapped(path)
	if err != nil {
		return nil, err
	}
	return newReader(buf), nil
}

// New drains src into a heap buffer and returns a Reader over the
// contents. src is read in fixed 1 MiB chunks until end-of-input.
func New(src io.Reader) (*Reader, error) {
	buf, err := readStream(src)
	if err != nil {
		return nil, err
	}
	return newReader(buf), nil
}

// FromBytes returns a Reader over caller-owned bytes without copying.
// The caller must not mutate data while the Reader is in use.
func FromBytes(data []byte) *Reader {
	return newReader(&heapBuffer{data: data})
}

func newReader(buf buffer) *Reader {
	r := &Reader{
		buf:  buf,
		data: buf.bytes(),
	}
	r.node.r = r
	return r
}

// Read advances to the next node. It returns false once input is
// exhausted; every later call also returns false. After a false return
// the accessor methods read as absent.
func (r *Reader) Read() bool {
	return r.advance()
}

// Close releases the underlying buffer. It is idempotent; reading after
// Close behaves as end-of-input rather than erroring.
func (r *Reader) Close() error {
	r.data = nil
	if r.buf == nil {
		return nil
	}
	buf := r.buf
	r.buf = nil
	return buf.release()
}

// Current returns the view over the current node. The same view is
// reused across Read calls.
func (r *Reader) Current() *Node {
	return &r.node
}

// All returns a lazy, forward-only sequence of node views driven by Read.
// The yielded view is only valid during its iteration step. The sequence
// is not restartable; re-iteration requires a new Reader over the same
// bytes.
func (r *Reader) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for r.Read() {
			if !yield(&r.node) {
				return
			}
		}
	}
}

// Each calls fn for every remaining node. Iteration stops early when fn
// returns false.
func (r *Reader) Each(fn func(*Node) bool) {
	for r.Read() {
		if !fn(&r.node) {
			return
		}
	}
}

// Kind returns the kind of the current node, or KindNone before the
// first Read and after end-of-input.
func (r *Reader) Kind() Kind {
	return r.kind
}

// Name returns the interned local name of the current element or
// end-element, or "" for other kinds. Interned names stay valid for the
// Reader's full lifetime.
func (r *Reader) Name() string {
	if r.kind != KindElement && r.kind != KindEndElement {
		return ""
	}
	return r.names.intern(r.data[r.name.start:r.name.end])
}

// Depth returns the reported nesting depth of the current node. Start
// and end events report the depth of the element they open or close, not
// of its children. The root element is at depth 0.
func (r *Reader) Depth() int {
	if r.kind == KindNone {
		return 0
	}
	return r.reportDepth
}

// Value returns the entity-decoded text of a text node, or "" for other
// kinds. Decoding runs at most once per node; the result is cached until
// the next Read.
func (r *Reader) Value() string {
	if r.kind != KindText || r.text.len() == 0 {
		return ""
	}
	if !r.hasDecoded {
		r.decoded = decodeEntities(r.data[r.text.start:r.text.end])
		r.hasDecoded = true
	}
	return r.decoded
}

// Attr looks up an attribute of the current element by exact name with a
// linear scan. Absent attributes report ok=false, never an error. Values
// containing entity references are decoded on lookup.
func (r *Reader) Attr(name string) (value string, ok bool) {
	for i := 0; i < r.attrCount; i++ {
		a := &r.attrs[i]
		if string(r.data[a.name.start:a.name.end]) != name {
			continue
		}
		raw := r.data[a.value.start:a.value.end]
		if a.hasEntity {
			return decodeEntities(raw), true
		}
		return string(raw), true
	}
	return "", false
}

// AttrCount returns the number of attributes retained for the current
// element: namespace declarations are filtered out and at most 32 entries
// are kept.
func (r *Reader) AttrCount() int {
	return r.attrCount
}

// SelfClosing reports whether the current element is childless, whether
// written <x/> or as an immediately collapsed <x></x> pair. No
// end-element event is emitted for either form.
func (r *Reader) SelfClosing() bool {
	return r.selfClosing
}
