package coverage

import (
	"github.com/roach88/covreport/internal/ir"
)

// Coverage accumulates observed indices from session documents.
//
// Its key space is fixed at construction from a Reachability; every
// manifest level has a bucket even if no session played it.
type Coverage struct {
	levels map[int]ir.Bucket
	all    ir.Bucket
}

// NewCoverage seeds an empty bucket for every level key of reach.
func NewCoverage(reach *Reachability) *Coverage {
	c := &Coverage{
		levels: make(map[int]ir.Bucket, len(reach.levels)),
		all:    ir.NewBucket(),
	}
	for key := range reach.levels {
		c.levels[key] = ir.NewBucket()
	}
	return c
}

// Add folds one session document into its level bucket and the aggregate.
// A level outside the seeded key space fails with MissingLevel and leaves
// the coverage unchanged.
func (c *Coverage) Add(doc ir.Document) error {
	b, ok := c.levels[doc.Key()]
	if !ok {
		return ir.NewMissingLevelError(doc.Level)
	}
	docBucket := doc.Bucket()
	b.Merge(docBucket)
	c.all.Merge(docBucket)
	return nil
}

// AddAll folds documents in order, stopping at the first error.
func (c *Coverage) AddAll(docs []ir.Document) error {
	for _, doc := range docs {
		if err := c.Add(doc); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the bucket for a concrete key.
func (c *Coverage) Level(key int) ir.Bucket {
	return c.levels[key]
}

// All returns the aggregate bucket.
func (c *Coverage) All() ir.Bucket {
	return c.all
}
