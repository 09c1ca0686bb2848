package mask

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is the set of observed column indices of one row.
type Set struct {
	rb *roaring.Bitmap
}

// New returns an empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// FromRow builds the mask of a single row.
func FromRow(row []float64) *Set {
	s := New()
	start := -1
	for k, v := range row {
		if math.IsNaN(v) {
			if start >= 0 {
				s.rb.AddRange(uint64(start), uint64(k))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = k
		}
	}
	if start >= 0 {
		s.rb.AddRange(uint64(start), uint64(len(row)))
	}
	s.rb.RunOptimize()
	return s
}

// Rows builds one mask per row of a row-major matrix.
func Rows(data []float64, rows, cols int) []*Set {
	sets := make([]*Set, rows)
	for i := range sets {
		sets[i] = FromRow(data[i*cols : i*cols+cols])
	}
	return sets
}

// Len returns the number of observed columns.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// JointLen returns the number of columns observed in both a and b.
func JointLen(a, b *Set) int {
	return int(a.rb.AndCardinality(b.rb))
}

// Joint overwrites s with the intersection of a and b and returns s.
func (s *Set) Joint(a, b *Set) *Set {
	s.rb.Clear()
	s.rb.Or(a.rb)
	s.rb.And(b.rb)
	return s
}

// ForEach calls fn for every column in ascending order until fn returns false.
func (s *Set) ForEach(fn func(col uint32) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		if !fn(it.Next()) {
			break
		}
	}
}
