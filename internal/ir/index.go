package ir

import "sort"

// IndexSet is a set of positional entity indices.
type IndexSet map[int]struct{}

// NewIndexSet returns a set holding the given indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	s.Add(indices...)
	return s
}

// Add inserts indices. Duplicates are ignored.
func (s IndexSet) Add(indices ...int) {
	for _, i := range indices {
		s[i] = struct{}{}
	}
}

// Union inserts every member of other.
func (s IndexSet) Union(other IndexSet) {
	for i := range other {
		s[i] = struct{}{}
	}
}

// Has reports membership. A nil set has no members.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns the number of members.
func (s IndexSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Bucket holds the object and action indices for one level, or for the
// aggregate of all levels.
type Bucket struct {
	Objects IndexSet
	Actions IndexSet
}

// NewBucket returns a bucket with empty, non-nil sets.
func NewBucket() Bucket {
	return Bucket{Objects: NewIndexSet(), Actions: NewIndexSet()}
}

// Merge unions another bucket's indices into b.
func (b Bucket) Merge(other Bucket) {
	b.Objects.Union(other.Objects)
	b.Actions.Union(other.Actions)
}

// Document is one {level, objects, actions} record, as found in the
// reachability manifest and in session coverage output.
//
// Level is 1-based as written by the game.
type Document struct {
	Level   int   `json:"level"`
	Objects []int `json:"objects"`
	Actions []int `json:"actions"`
}

// Key returns the 0-based level key.
func (d Document) Key() int {
	return d.Level - 1
}

// Bucket returns the document's indices as sets.
func (d Document) Bucket() Bucket {
	return Bucket{
		Objects: NewIndexSet(d.Objects...),
		Actions: NewIndexSet(d.Actions...),
	}
}
