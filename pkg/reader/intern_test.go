package reader

import (
	"fmt"
	"strings"
	"testing"
	"unsafe"
)

func TestIntern_CanonicalValues(t *testing.T) {
	var table internTable

	a := table.intern([]byte("item"))
	b := table.intern([]byte("item"))

	if a != "item" || b != "item" {
		t.Fatalf("intern returned %q, %q; want %q", a, b, "item")
	}

	// Identity sharing is the point of the cache: repeated interning of
	// the same bytes returns the same string header.
	if unsafe.StringData(a) != unsafe.StringData(b) {
		t.Error("repeated intern of equal bytes should share storage")
	}
}

func TestIntern_EmptyName(t *testing.T) {
	var table internTable
	if got := table.intern(nil); got != "" {
		t.Errorf("intern(nil) = %q, want empty", got)
	}
}

func TestIntern_OverflowStaysCorrect(t *testing.T) {
	var table internTable

	// Far more distinct names than the table holds. Many probe runs will
	// exhaust; every returned value must still be correct.
	for i := 0; i < 3*internTableSize; i++ {
		name := fmt.Sprintf("name-%d", i)
		if got := table.intern([]byte(name)); got != name {
			t.Fatalf("intern(%q) = %q after overflow", name, got)
		}
	}

	// Earlier cached entries are unaffected by later overflow.
	if got := table.intern([]byte("name-0")); got != "name-0" {
		t.Errorf("intern(name-0) = %q after overflow", got)
	}
}

func TestIntern_AcrossDocument(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<list>")
	for i := 0; i < 100; i++ {
		sb.WriteString("<item/>")
	}
	sb.WriteString("</list>")

	r := FromBytes([]byte(sb.String()))

	var first string
	for r.Read() {
		if r.Kind() != KindElement || r.Name() != "item" {
			continue
		}
		if first == "" {
			first = r.Name()
			continue
		}
		if unsafe.StringData(r.Name()) != unsafe.StringData(first) {
			t.Fatal("repeated element names should intern to shared storage")
		}
	}
	if first == "" {
		t.Fatal("no item elements seen")
	}
}

func TestFnv1a_MatchesReference(t *testing.T) {
	// Published FNV-1a test vectors.
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 2166136261},
		{"a", 0xe40c292c},
		{"foobar", 0xbf9cf968},
	}

	for _, tt := range tests {
		if got := fnv1a([]byte(tt.in)); got != tt.want {
			t.Errorf("fnv1a(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}
