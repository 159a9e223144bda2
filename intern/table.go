// Package intern implements the interning table an application uses
// alongside the codec: the codec only emits and consumes opaque u32 keys
// for Ref/Tag/Index values; Table is where an application actually maps
// names to those keys and back.
//
// Table folds a name to a candidate key with xxhash
// (github.com/conspack-go/conspack/internal/hash), keeps a bounded
// hot-path cache of recent reverse lookups with hashicorp/golang-lru/v2,
// and falls back to an unbounded backing map that probes forward through
// neighboring keys when two different names fold to the same candidate.
package intern

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/conspack-go/conspack/cpk"
	"github.com/conspack-go/conspack/format"
	"github.com/conspack-go/conspack/internal/hash"
)

const (
	defaultCacheSize = 4096
	defaultMaxProbe  = 1 << 16
)

type nameKey struct {
	kind format.Kind
	name string
}

type idKey struct {
	kind format.Kind
	key  uint32
}

// Table interns names to u32 keys per Kind namespace (Ref, Tag, and Index
// each get independent key spaces, since the wire format never confuses
// them with each other).
type Table struct {
	mu       sync.Mutex
	forward  map[nameKey]uint32
	used     map[idKey]string
	cache    *lru.Cache[idKey, string]
	maxProbe int
}

// NewTable builds an empty Table with a bounded reverse-lookup cache.
func NewTable() *Table {
	c, _ := lru.New[idKey, string](defaultCacheSize)
	return &Table{
		forward:  make(map[nameKey]uint32),
		used:     make(map[idKey]string),
		cache:    c,
		maxProbe: defaultMaxProbe,
	}
}

// Key interns name under kind, returning its existing key if name was
// already seen. On a hash collision (a different name already holds the
// hashed candidate key) it linearly probes forward until it finds a free
// or matching slot.
func (t *Table) Key(kind format.Kind, name string) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	nk := nameKey{kind, name}
	if k, ok := t.forward[nk]; ok {
		return k
	}

	candidate := uint32(hash.ID(name))
	for i := 0; i < t.maxProbe; i++ {
		k := candidate + uint32(i)
		ik := idKey{kind, k}
		existing, taken := t.used[ik]
		if !taken || existing == name {
			t.assign(nk, ik, name)
			return k
		}
	}

	// Probe space exhausted (astronomically unlikely at 2^32 keys per
	// kind): overwrite the candidate slot rather than fail Key, which has
	// no error return in this API.
	ik := idKey{kind, candidate}
	t.assign(nk, ik, name)
	return candidate
}

func (t *Table) assign(nk nameKey, ik idKey, name string) {
	t.used[ik] = name
	t.forward[nk] = ik.key
	t.cache.Add(ik, name)
}

// Resolve reverses Key. It checks the bounded cache first and falls back
// to the full backing map on a miss, repopulating the cache.
func (t *Table) Resolve(kind format.Kind, key uint32) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ik := idKey{kind, key}
	if name, ok := t.cache.Get(ik); ok {
		return name, true
	}
	if name, ok := t.used[ik]; ok {
		t.cache.Add(ik, name)
		return name, true
	}
	return "", false
}

// Count reports the number of interned (kind, name) entries: a name
// interned under two kinds counts twice.
func (t *Table) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.used)
}

var _ cpk.Resolver = (*Table)(nil)
