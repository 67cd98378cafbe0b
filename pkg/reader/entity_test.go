package reader

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no entities", "plain text", "plain text"},
		{"empty", "", ""},
		{"all predefined", "&amp;&lt;&gt;&quot;&apos;", `&<>"'`},
		{"mixed with text", "a &amp; b", "a & b"},
		{"decimal reference", "&#65;", "A"},
		{"hex lowercase", "&#x41;", "A"},
		{"hex uppercase marker", "&#X41;", "A"},
		{"multibyte code point", "&#x00E9;", "é"},
		{"high code point", "&#x1F600;", "\U0001F600"},
		{"unknown entity passes through", "&foo;", "&foo;"},
		{"unknown entity amid text", "a &foo; b", "a &foo; b"},
		{"bare ampersand", "fish & chips", "fish & chips"},
		{"ampersand at end", "trailing &", "trailing &"},
		{"ampersand then entity", "& &lt;", "& <"},
		{"adjacent references", "&#65;&#x42;C", "ABC"},
		{"empty reference", "&;", "&;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeEntities([]byte(tt.in)); got != tt.want {
				t.Errorf("decodeEntities(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeEntities_FastPathAliasesNothing(t *testing.T) {
	src := []byte("no references here")
	out := decodeEntities(src)

	// The returned string must be independent of the caller's bytes.
	src[0] = 'X'
	if out != "no references here" {
		t.Errorf("decoded text aliases the source buffer: %q", out)
	}
}

func TestValue_TextWithEntities(t *testing.T) {
	doc := `<r>2 &lt; 3 &amp;&amp; 4 &gt; 1</r>`
	r := FromBytes([]byte(doc))

	var got string
	for r.Read() {
		if r.Kind() == KindText {
			got = r.Value()
		}
	}
	if want := "2 < 3 && 4 > 1"; got != want {
		t.Errorf("Value = %q, want %q", got, want)
	}
}
