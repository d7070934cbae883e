package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/interval"
)

// seedToSoil is the first table of the almanac sample.
var seedToSoil = interval.Table{
	{Dest: 50, Source: 98, Length: 2},
	{Dest: 52, Source: 50, Length: 48},
}

func TestRange_Basics(t *testing.T) {
	r := interval.Range{Start: 3, End: 8}
	assert.Equal(t, int64(5), r.Len())
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(8))
	assert.Equal(t, "[3,8)", r.String())

	assert.Equal(t, int64(0), interval.Range{Start: 5, End: 2}.Len())
	assert.True(t, interval.Range{Start: 5, End: 5}.Empty())
	assert.Equal(t, interval.Range{Start: 10, End: 14}, interval.Of(10, 4))
}

func TestRange_IntersectAndSplit(t *testing.T) {
	a := interval.Range{Start: 0, End: 10}
	got, ok := a.Intersect(interval.Range{Start: 5, End: 20})
	require.True(t, ok)
	assert.Equal(t, interval.Range{Start: 5, End: 10}, got)

	_, ok = a.Intersect(interval.Range{Start: 10, End: 20})
	assert.False(t, ok)

	lo, hi := a.SplitAt(4)
	assert.Equal(t, interval.Range{Start: 0, End: 4}, lo)
	assert.Equal(t, interval.Range{Start: 4, End: 10}, hi)

	lo, hi = a.SplitAt(-5)
	assert.True(t, lo.Empty())
	assert.Equal(t, a, hi)
}

func TestTable_MapValue(t *testing.T) {
	cases := map[int64]int64{79: 81, 14: 14, 55: 57, 13: 13, 98: 50, 99: 51, 100: 100, 49: 49, 50: 52}
	for in, want := range cases {
		assert.Equal(t, want, seedToSoil.MapValue(in), "MapValue(%d)", in)
	}
}

// TestTable_MapRanges_Example maps [50,97) (length 47) onto [52,99).
func TestTable_MapRanges_Example(t *testing.T) {
	table := interval.Table{
		{Dest: 52, Source: 50, Length: 48},
		{Dest: 50, Source: 98, Length: 2},
	}
	in := []interval.Range{{Start: 50, End: 97}}
	out := table.MapRanges(in)
	assert.Equal(t, []interval.Range{{Start: 52, End: 99}}, out)
	assert.Equal(t, int64(47), interval.TotalLen(in))
	assert.Equal(t, int64(47), interval.TotalLen(out))
}

// TestTable_MapRanges_Split straddles both rules and the identity gap.
func TestTable_MapRanges_Split(t *testing.T) {
	in := []interval.Range{{Start: 40, End: 105}}
	out := interval.Merge(seedToSoil.MapRanges(in))
	// [40,50) identity, [50,98) → [52,100), [98,100) → [50,52), [100,105) identity
	assert.Equal(t, []interval.Range{{Start: 40, End: 105}}, out)
	assert.Equal(t, interval.TotalLen(in), interval.TotalLen(seedToSoil.MapRanges(in)))
}

// TestTable_MapRanges_Agrees compares range mapping with per-value mapping.
func TestTable_MapRanges_Agrees(t *testing.T) {
	table := interval.Table{
		{Dest: 0, Source: 15, Length: 37},
		{Dest: 37, Source: 52, Length: 2},
		{Dest: 39, Source: 0, Length: 15},
	}
	in := []interval.Range{{Start: 10, End: 60}, {Start: 0, End: 3}}
	out := table.MapRanges(in)
	assert.Equal(t, interval.TotalLen(in), interval.TotalLen(out))

	for _, r := range in {
		for v := r.Start; v < r.End; v++ {
			mapped := table.MapValue(v)
			hit := false
			for _, o := range out {
				if o.Contains(mapped) {
					hit = true
					break
				}
			}
			assert.True(t, hit, "value %d → %d not covered", v, mapped)
		}
	}
}

func TestTable_MapRanges_DropsEmpty(t *testing.T) {
	out := seedToSoil.MapRanges([]interval.Range{{Start: 5, End: 5}, {Start: 9, End: 3}})
	assert.Empty(t, out)
}

func TestPipeline(t *testing.T) {
	p := interval.Pipeline{
		seedToSoil,
		{{Dest: 0, Source: 15, Length: 37}, {Dest: 37, Source: 52, Length: 2}, {Dest: 39, Source: 0, Length: 15}},
	}
	assert.Equal(t, int64(81), p.MapValue(79))
	assert.Equal(t, int64(53), p.MapValue(14))

	out := p.MapRanges([]interval.Range{interval.Of(79, 14), interval.Of(55, 13)})
	assert.Equal(t, int64(27), interval.TotalLen(out))
	low, ok := interval.Min(out)
	require.True(t, ok)
	assert.Equal(t, p.MapValue(55), low)
}

func TestMerge(t *testing.T) {
	in := []interval.Range{{Start: 10, End: 12}, {Start: 1, End: 3}, {Start: 3, End: 5}, {Start: 11, End: 20}, {Start: 7, End: 7}}
	assert.Equal(t, []interval.Range{{Start: 1, End: 5}, {Start: 10, End: 20}}, interval.Merge(in))
	assert.Nil(t, interval.Merge(nil))
}

func TestRule_Validate(t *testing.T) {
	assert.NoError(t, interval.Rule{Dest: 1, Source: 2, Length: 0}.Validate())
	assert.ErrorIs(t, interval.Rule{Dest: 1, Source: 2, Length: -1}.Validate(), interval.ErrBadRule)
}

func TestMin_Empty(t *testing.T) {
	_, ok := interval.Min([]interval.Range{{Start: 4, End: 4}})
	assert.False(t, ok)
}
