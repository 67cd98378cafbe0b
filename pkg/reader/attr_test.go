package reader

import (
	"fmt"
	"strings"
	"testing"
)

// readFirstElement advances r to its first element node.
func readFirstElement(t *testing.T, r *Reader) {
	t.Helper()
	for r.Read() {
		if r.Kind() == KindElement {
			return
		}
	}
	t.Fatal("no element node in document")
}

func TestAttr_Lookup(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		attr  string
		want  string
		found bool
	}{
		{"double quotes", `<a id="1"/>`, "id", "1", true},
		{"single quotes", `<a id='1'/>`, "id", "1", true},
		{"spaces around equals", `<a id = "1"/>`, "id", "1", true},
		{"several attributes", `<a x="1" y="2" z="3"/>`, "y", "2", true},
		{"absent attribute", `<a x="1"/>`, "y", "", false},
		{"empty value", `<a x=""/>`, "x", "", true},
		{"entity in value", `<a x="a &amp; b"/>`, "x", "a & b", true},
		{"numeric entity in value", `<a x="&#65;&#x42;"/>`, "x", "AB", true},
		{"prefixed attribute kept verbatim", `<a ns:x="1"/>`, "ns:x", "1", true},
		{"quote of other kind inside value", `<a x="it's"/>`, "x", "it's", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromBytes([]byte(tt.doc))
			readFirstElement(t, r)

			got, ok := r.Attr(tt.attr)
			if ok != tt.found {
				t.Fatalf("Attr(%q) found = %v, want %v", tt.attr, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("Attr(%q) = %q, want %q", tt.attr, got, tt.want)
			}
		})
	}
}

func TestAttr_NamespaceDeclarationsFiltered(t *testing.T) {
	doc := `<a xmlns="urn:x" xmlns:dc="urn:dc" id="1"/>`
	r := FromBytes([]byte(doc))
	readFirstElement(t, r)

	if r.AttrCount() != 1 {
		t.Errorf("AttrCount = %d, want 1", r.AttrCount())
	}
	for _, name := range []string{"xmlns", "xmlns:dc"} {
		if _, ok := r.Attr(name); ok {
			t.Errorf("Attr(%q) should never be visible", name)
		}
	}
	if v, ok := r.Attr("id"); !ok || v != "1" {
		t.Errorf("Attr(id) = %q, %v; want %q, true", v, ok, "1")
	}

	// xmlnsfoo is not a namespace declaration.
	r = FromBytes([]byte(`<a xmlnsfoo="1"/>`))
	readFirstElement(t, r)
	if _, ok := r.Attr("xmlnsfoo"); !ok {
		t.Error("Attr(xmlnsfoo) should be visible")
	}
}

func TestAttr_MalformedSkipped(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bare name", `<a standalone id="1">x</a>`},
		{"missing quote", `<a b=1 id="1">x</a>`},
		{"name only with equals", `<a b= id="1">x</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromBytes([]byte(tt.doc))
			readFirstElement(t, r)

			// The well-formed attribute after the malformed one survives.
			if v, ok := r.Attr("id"); !ok || v != "1" {
				t.Errorf("Attr(id) = %q, %v; want %q, true", v, ok, "1")
			}

			// The cursor still advanced correctly past the tag.
			if !r.Read() || r.Kind() != KindText || r.Value() != "x" {
				t.Error("scanning did not resume correctly after the malformed attribute")
			}
		})
	}
}

func TestAttr_CapAtThirtyTwo(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<a")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&sb, ` k%d="%d"`, i, i)
	}
	sb.WriteString(">x</a>")

	r := FromBytes([]byte(sb.String()))
	readFirstElement(t, r)

	if r.AttrCount() != maxAttrs {
		t.Errorf("AttrCount = %d, want %d", r.AttrCount(), maxAttrs)
	}
	if v, ok := r.Attr("k32"); !ok || v != "32" {
		t.Errorf("Attr(k32) = %q, %v; want %q, true", v, ok, "32")
	}
	if _, ok := r.Attr("k33"); ok {
		t.Error("attributes beyond the cap should be dropped")
	}

	// Excess attributes are still parsed for cursor advancement.
	if !r.Read() || r.Kind() != KindText || r.Value() != "x" {
		t.Error("scanning did not resume correctly past the capped tag")
	}
}

func TestAttr_SelfClosingTerminators(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"tight", `<a id="1"/>`},
		{"space before slash", `<a id="1" />`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromBytes([]byte(tt.doc))
			readFirstElement(t, r)

			if !r.SelfClosing() {
				t.Error("element should be self-closing")
			}
			if v, ok := r.Attr("id"); !ok || v != "1" {
				t.Errorf("Attr(id) = %q, %v; want %q, true", v, ok, "1")
			}
		})
	}
}
