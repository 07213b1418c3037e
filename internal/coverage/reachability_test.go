package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/covreport/internal/ir"
)

func TestNewReachability_AggregateUnion(t *testing.T) {
	r := NewReachability([]ir.Document{
		{Level: 1, Objects: []int{1, 2}},
		{Level: 2, Objects: []int{2, 3}, Actions: []int{9}},
	})

	assert.Equal(t, []int{1, 2, 3}, r.All().Objects.Sorted())
	assert.Equal(t, []int{9}, r.All().Actions.Sorted())
}

func TestNewReachability_KeysAreZeroBased(t *testing.T) {
	r := NewReachability([]ir.Document{
		{Level: 3, Objects: []int{7}},
		{Level: 1, Objects: []int{5}},
	})

	assert.Equal(t, []int{0, 2}, r.Levels())
	assert.True(t, r.Has(2))
	assert.False(t, r.Has(3))
	assert.True(t, r.Level(2).Objects.Has(7))
	assert.True(t, r.Level(0).Objects.Has(5))
}

func TestNewReachability_DuplicateLevelsMerge(t *testing.T) {
	r := NewReachability([]ir.Document{
		{Level: 1, Objects: []int{1, 1}},
		{Level: 1, Objects: []int{2}},
	})

	assert.Equal(t, []int{0}, r.Levels())
	assert.Equal(t, []int{1, 2}, r.Level(0).Objects.Sorted())
	assert.Equal(t, []int{1, 2}, r.All().Objects.Sorted())
}

func TestNewReachability_Empty(t *testing.T) {
	r := NewReachability(nil)
	assert.Empty(t, r.Levels())
	assert.Equal(t, 0, r.All().Objects.Len())
}

func TestReachability_UnknownLevelIsEmpty(t *testing.T) {
	r := NewReachability([]ir.Document{{Level: 1, Objects: []int{1}}})
	assert.False(t, r.Level(5).Objects.Has(1))
}
