package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/fastxml/pkg/reader"
)

// nodeIndent is the per-depth indentation for styled node lines.
const nodeIndent = "  "

// FormatNode renders one node event as a styled, depth-indented line.
func (s *Styles) FormatNode(n *reader.Node) string {
	indent := strings.Repeat(nodeIndent, n.Depth())
	depth := s.Depth.Render(fmt.Sprintf("d%d", n.Depth()))

	switch n.Kind() {
	case reader.KindElement:
		line := s.Element.Render("<") + s.Name.Render(n.Name())
		if n.SelfClosing() {
			line += s.Element.Render("/>")
		} else {
			line += s.Element.Render(">")
		}
		return indent + line + " " + depth
	case reader.KindEndElement:
		return indent + s.EndElement.Render("</"+n.Name()+">") + " " + depth
	case reader.KindText:
		return indent + s.Text.Render(fmt.Sprintf("%q", n.Value())) + " " + depth
	default:
		return indent + s.Dim.Render(n.Kind().String()) + " " + depth
	}
}

// FormatFileHeader renders the path banner printed before a file's
// node stream.
func (s *Styles) FormatFileHeader(path string) string {
	return s.FilePath.Render(path)
}
