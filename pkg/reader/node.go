package reader

// Kind identifies the type of the node the reader is positioned on.
//
// The numeric values match the libxml2/Nokogiri pull-reader constants so
// that consumers porting from those readers can keep their comparisons.
type Kind int

const (
	// KindNone means the reader has not produced a node yet, or input
	// is exhausted.
	KindNone Kind = 0

	// KindElement is an element open event (<a> or <a/>).
	KindElement Kind = 1

	// KindText is a non-blank text run between markup.
	KindText Kind = 3

	// KindEndElement is an element close event (</a>).
	KindEndElement Kind = 15
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindEndElement:
		return "end-element"
	default:
		return "unknown"
	}
}

// span is a half-open [start, end) byte range into the reader's buffer.
type span struct {
	start int
	end   int
}

func (s span) len() int { return s.end - s.start }

// Node is a read-only view over the reader's current position. All
// accessors reflect the node produced by the most recent Read call and are
// invalidated by the next one; only names (which are interned) remain valid
// for the reader's full lifetime.
type Node struct {
	r *Reader
}

// Kind returns the kind of the current node.
func (n *Node) Kind() Kind { return n.r.Kind() }

// Name returns the local name of the current element or end-element,
// or "" for other kinds.
func (n *Node) Name() string { return n.r.Name() }

// Depth returns the nesting depth of the current node. The document
// root element is at depth 0.
func (n *Node) Depth() int { return n.r.Depth() }

// Value returns the decoded text content of a text node, or "" for
// other kinds.
func (n *Node) Value() string { return n.r.Value() }

// Attr looks up an attribute of the current element by exact name.
func (n *Node) Attr(name string) (string, bool) { return n.r.Attr(name) }

// AttrCount returns the number of attributes retained for the current
// element.
func (n *Node) AttrCount() int { return n.r.AttrCount() }

// SelfClosing reports whether the current element is childless, whether
// written <x/> or as an immediately collapsed <x></x> pair.
func (n *Node) SelfClosing() bool { return n.r.SelfClosing() }
