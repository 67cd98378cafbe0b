package reader

// Name interning: element and attribute names repeat heavily in real
// documents, so canonical strings are cached in a fixed-size
// open-addressed table. The table never grows and never evicts; when a
// probe run is exhausted the lookup degrades to a fresh allocation, which
// is still correct, just not shared. This keeps both latency and memory
// strictly bounded.
const (
	internTableSize = 512 // must be a power of two
	internTableMask = internTableSize - 1
	internMaxProbe  = 8
)

const (
	fnvOffsetBasis = 2166136261
	fnvPrime       = 16777619
)

type internEntry struct {
	hash uint32
	name string
}

// internTable maps raw name bytes to canonical strings. Entries persist
// for the owning reader's full lifetime.
type internTable struct {
	entries [internTableSize]internEntry
}

// fnv1a hashes raw bytes with 32-bit FNV-1a.
func fnv1a(b []byte) uint32 {
	h := uint32(fnvOffsetBasis)
	for _, c := range b {
		h ^= uint32(c)
		h *= fnvPrime
	}
	return h
}

// intern returns the canonical string for b, inserting it on first sight.
// An exhausted probe run falls back to a non-cached copy.
func (t *internTable) intern(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	h := fnv1a(b)
	idx := h & internTableMask

	for i := uint32(0); i < internMaxProbe; i++ {
		e := &t.entries[(idx+i)&internTableMask]
		if e.name == "" {
			e.hash = h
			e.name = string(b)
			return e.name
		}
		if e.hash == h && e.name == string(b) {
			return e.name
		}
	}

	return string(b)
}
