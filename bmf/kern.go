package bmf

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// KerningPair is an ordered pair of code-points. The adjustment applies when
// Second immediately follows First.
type KerningPair struct {
	First, Second rune
}

// kernRecordSize is the size of a kerning record in bytes.
const kernRecordSize = 10

// KerningTable maps ordered pairs of code-points to a signed pixel adjustment.
// Lookups are by exact pair only, there are no class or wildcard entries.
//
// Entries are held in a tree map so that listings come out ordered by
// (First, Second).
type KerningTable struct {
	pairs *treemap.Map
}

func compareKerningPairs(a, b interface{}) int {
	p, q := a.(KerningPair), b.(KerningPair)
	switch {
	case p.First < q.First:
		return -1
	case p.First > q.First:
		return 1
	case p.Second < q.Second:
		return -1
	case p.Second > q.Second:
		return 1
	}
	return 0
}

func newKerningTable() *KerningTable {
	return &KerningTable{pairs: treemap.NewWith(compareKerningPairs)}
}

// insert stores an adjustment, overwriting a previous entry for the same pair.
func (kt *KerningTable) insert(first, second rune, amount int16) {
	kt.pairs.Put(KerningPair{First: first, Second: second}, amount)
}

// Lookup returns the adjustment for second following first.
func (kt *KerningTable) Lookup(first, second rune) (int16, bool) {
	if kt == nil || kt.pairs == nil {
		return 0, false
	}
	v, ok := kt.pairs.Get(KerningPair{First: first, Second: second})
	if !ok {
		return 0, false
	}
	return v.(int16), true
}

// Len returns the number of kerning pairs.
func (kt *KerningTable) Len() int {
	if kt == nil || kt.pairs == nil {
		return 0
	}
	return kt.pairs.Size()
}

// All yields all kerning pairs ordered by (First, Second).
func (kt *KerningTable) All() iter.Seq2[KerningPair, int16] {
	return func(yield func(KerningPair, int16) bool) {
		if kt == nil || kt.pairs == nil {
			return
		}
		it := kt.pairs.Iterator()
		for it.Next() {
			if !yield(it.Key().(KerningPair), it.Value().(int16)) {
				return
			}
		}
	}
}
