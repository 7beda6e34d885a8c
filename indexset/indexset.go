// Package indexset holds a set of row indices as a bit vector filled by the
// byte predicate kernels of package compare.
package indexset

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/wangkai2014/elfie-arriba/compare"
)

// IndexSet is a fixed-capacity set of rows [0, Capacity()). Bits at or above
// the capacity are kept zero. An IndexSet is not safe for concurrent
// mutation.
type IndexSet struct {
	words    []uint64
	capacity int
}

// New returns an empty set able to hold rows [0, capacity).
func New(capacity int) *IndexSet {
	if capacity < 0 {
		panic(fmt.Sprintf("indexset: negative capacity %d", capacity))
	}
	return &IndexSet{
		words:    make([]uint64, compare.WordCount(capacity)),
		capacity: capacity,
	}
}

// Capacity returns the number of rows the set covers.
func (s *IndexSet) Capacity() int { return s.capacity }

// Words exposes the underlying match vector.
func (s *IndexSet) Words() []uint64 { return s.words }

// Get reports whether row i is in the set. It panics if i is outside
// [0, Capacity()).
func (s *IndexSet) Get(i int) bool {
	s.checkIndex(i)
	return s.words[i>>6]&(1<<(i&63)) != 0
}

// Set adds row i when v is true and removes it otherwise. It panics if i is
// outside [0, Capacity()).
func (s *IndexSet) Set(i int, v bool) {
	s.checkIndex(i)
	if v {
		s.words[i>>6] |= 1 << (i & 63)
	} else {
		s.words[i>>6] &^= 1 << (i & 63)
	}
}

// All adds every row.
func (s *IndexSet) All() *IndexSet {
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.clearTail()
	return s
}

// None removes every row.
func (s *IndexSet) None() *IndexSet {
	clear(s.words)
	return s
}

// Count returns the number of rows in the set.
func (s *IndexSet) Count() int {
	count := 0
	for _, w := range s.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// And keeps only the rows also in other. Both sets must have the same
// capacity.
func (s *IndexSet) And(other *IndexSet) *IndexSet {
	s.checkSame(other)
	for i, w := range other.words {
		s.words[i] &= w
	}
	return s
}

// Or adds the rows of other. Both sets must have the same capacity.
func (s *IndexSet) Or(other *IndexSet) *IndexSet {
	s.checkSame(other)
	for i, w := range other.words {
		s.words[i] |= w
	}
	return s
}

// AndNot removes the rows of other. Both sets must have the same capacity.
func (s *IndexSet) AndNot(other *IndexSet) *IndexSet {
	s.checkSame(other)
	for i, w := range other.words {
		s.words[i] &^= w
	}
	return s
}

// Where evaluates column[i] cOp value for every row and merges the result
// into the set with bOp. The column must have exactly Capacity() rows.
func (s *IndexSet) Where(bOp compare.BooleanOperator, cOp compare.CompareOperator, sign compare.Signing, column []byte, value byte) *IndexSet {
	if len(column) != s.capacity {
		panic(fmt.Sprintf("indexset: column has %d rows, set capacity is %d", len(column), s.capacity))
	}
	compare.Where(cOp, bOp, sign, column, value, s.words)
	s.clearTail()
	return s
}

// WhereRange is Where over column[offset:offset+Capacity()], so that a column
// can be split across several sets, one per partition.
func (s *IndexSet) WhereRange(bOp compare.BooleanOperator, cOp compare.CompareOperator, sign compare.Signing, column []byte, value byte, offset int) *IndexSet {
	if offset < 0 || offset+s.capacity > len(column) {
		panic(fmt.Sprintf("indexset: range [%d, %d) outside column of %d rows", offset, offset+s.capacity, len(column)))
	}
	return s.Where(bOp, cOp, sign, column[offset:offset+s.capacity], value)
}

// Page writes the rows of the set starting at row start into page, in
// ascending order. It returns the number of rows written and the row to pass
// as start on the next call, or -1 once the set is exhausted.
func (s *IndexSet) Page(page []int, start int) (n, next int) {
	if start < 0 || start >= s.capacity {
		return 0, -1
	}

	wi := start >> 6
	w := s.words[wi] &^ (1<<(start&63) - 1)
	for {
		for w != 0 {
			if n == len(page) {
				return n, wi<<6 + bits.TrailingZeros64(w)
			}
			page[n] = wi<<6 + bits.TrailingZeros64(w)
			n++
			w &= w - 1
		}

		wi++
		if wi == len(s.words) {
			return n, -1
		}
		w = s.words[wi]
	}
}

// ToRoaring copies the set into a roaring bitmap.
func (s *IndexSet) ToRoaring() *roaring.Bitmap {
	bm := roaring.New()
	var rows [256]uint32
	n := 0
	for wi, w := range s.words {
		for ; w != 0; w &= w - 1 {
			rows[n] = uint32(wi<<6 + bits.TrailingZeros64(w))
			n++
			if n == len(rows) {
				bm.AddMany(rows[:n])
				n = 0
			}
		}
	}
	bm.AddMany(rows[:n])
	return bm
}

// FromRoaring builds a set of the given capacity from a roaring bitmap.
// Rows at or above capacity are dropped.
func FromRoaring(bm *roaring.Bitmap, capacity int) *IndexSet {
	s := New(capacity)
	it := bm.Iterator()
	for it.HasNext() {
		row := int(it.Next())
		if row >= capacity {
			break
		}
		s.words[row>>6] |= 1 << (row & 63)
	}
	return s
}

// clearTail restores the invariant that rows >= capacity are absent; the
// kernels leave those bits unspecified.
func (s *IndexSet) clearTail() {
	if rem := s.capacity & 63; rem != 0 {
		s.words[len(s.words)-1] &= 1<<rem - 1
	}
}

func (s *IndexSet) checkIndex(i int) {
	if i < 0 || i >= s.capacity {
		panic(fmt.Sprintf("indexset: row %d out of range [0, %d)", i, s.capacity))
	}
}

func (s *IndexSet) checkSame(other *IndexSet) {
	if other.capacity != s.capacity {
		panic(fmt.Sprintf("indexset: capacity mismatch %d != %d", other.capacity, s.capacity))
	}
}
