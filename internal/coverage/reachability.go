package coverage

import (
	"sort"

	"github.com/roach88/covreport/internal/ir"
)

// Reachability maps level keys to statically reachable indices.
type Reachability struct {
	levels map[int]ir.Bucket
	all    ir.Bucket
}

// NewReachability builds the index from manifest documents. A level that
// appears more than once is the union of its entries.
func NewReachability(docs []ir.Document) *Reachability {
	r := &Reachability{
		levels: make(map[int]ir.Bucket, len(docs)),
		all:    ir.NewBucket(),
	}
	for _, doc := range docs {
		b, ok := r.levels[doc.Key()]
		if !ok {
			b = ir.NewBucket()
			r.levels[doc.Key()] = b
		}
		docBucket := doc.Bucket()
		b.Merge(docBucket)
		r.all.Merge(docBucket)
	}
	return r
}

// Levels returns the concrete level keys in ascending order.
func (r *Reachability) Levels() []int {
	keys := make([]int, 0, len(r.levels))
	for k := range r.levels {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Has reports whether key is a concrete level of the manifest.
func (r *Reachability) Has(key int) bool {
	_, ok := r.levels[key]
	return ok
}

// Level returns the bucket for a concrete key. Unknown keys yield an
// empty bucket.
func (r *Reachability) Level(key int) ir.Bucket {
	return r.levels[key]
}

// All returns the aggregate bucket.
func (r *Reachability) All() ir.Bucket {
	return r.all
}
