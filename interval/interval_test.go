package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name string
		a, b Interval
		want Overlap
	}{
		{"before", New(0, 5), New(10, 20), Before},
		{"touching before", New(0, 10), New(10, 20), Before},
		{"overlap start", New(5, 15), New(10, 20), OverlapStart},
		{"overlap start flush end", New(5, 20), New(10, 20), OverlapStart},
		{"contains", New(5, 25), New(10, 20), Contains},
		{"contained by", New(12, 18), New(10, 20), ContainedBy},
		{"equal", New(10, 20), New(10, 20), ContainedBy},
		{"overlap end", New(15, 25), New(10, 20), OverlapEnd},
		{"after", New(21, 30), New(10, 20), After},
		{"starts at reference end", New(20, 30), New(10, 20), OverlapEnd},
		{"feature spans window", New(100, 200), New(150, 160), Contains},
		{"feature right of window", New(100, 200), New(0, 50), After},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compute(tc.a, tc.b))
		})
	}
}

// specTag restates the classification rules for non-empty intervals.
func specTag(a, b Interval) Overlap {
	switch {
	case a.End <= b.Start:
		return Before
	case a.Start < b.Start && a.End <= b.End:
		return OverlapStart
	case a.Start < b.Start && a.End > b.End:
		return Contains
	case a.Start > b.End:
		return After
	case a.End <= b.End:
		return ContainedBy
	default:
		return OverlapEnd
	}
}

func TestCompute_Exhaustive(t *testing.T) {
	const n = 8
	for as := 0; as < n; as++ {
		for ae := as; ae < n; ae++ {
			for bs := 0; bs < n; bs++ {
				for be := bs; be < n; be++ {
					a, b := New(as, ae), New(bs, be)
					tag := Compute(a, b)
					require.Contains(t, overlapNames, tag, "a=%v b=%v", a, b)
					assert.Equal(t, tag != Before && tag != After, IsOverlap(a, b), "a=%v b=%v", a, b)
					if a.Len() > 0 {
						assert.Equal(t, specTag(a, b), tag, "a=%v b=%v", a, b)
					}
				}
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	view := New(100, 200)
	assert.True(t, Overlaps(New(90, 150), view))
	assert.True(t, Overlaps(New(110, 120), view))
	assert.True(t, Overlaps(New(199, 300), view))
	assert.False(t, Overlaps(New(200, 300), view))
	assert.False(t, Overlaps(New(50, 100), view))
}

func TestIntersect(t *testing.T) {
	got, ok := Intersect(New(90, 150), New(100, 200))
	require.True(t, ok)
	assert.Equal(t, New(100, 150), got)

	_, ok = Intersect(New(0, 10), New(10, 20))
	assert.False(t, ok)
}

func TestOverlapString(t *testing.T) {
	assert.Equal(t, "CONTAINED_BY", ContainedBy.String())
	assert.Equal(t, "UNKNOWN", Overlap(0).String())
}
