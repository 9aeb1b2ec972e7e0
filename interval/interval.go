// Package interval classifies how two half-open genomic intervals relate.
//
// Intervals follow the BED convention: [Start, End) with 0-based
// coordinates and Start <= End.
package interval

// Interval is a half-open range [Start, End).
type Interval struct {
	Start, End int
}

// New returns the interval [start, end).
func New(start, end int) Interval {
	return Interval{Start: start, End: end}
}

// Len returns the number of bases covered by i.
func (i Interval) Len() int {
	return i.End - i.Start
}

// Overlap describes the position of an interval relative to a reference.
type Overlap int

// Overlap tags. The zero value is not a valid tag.
const (
	// Before: the interval ends at or before the reference start.
	Before Overlap = iota + 1001
	// Contains: the interval extends past both ends of the reference.
	Contains
	// OverlapStart: the interval straddles the reference start.
	OverlapStart
	// OverlapEnd: the interval straddles the reference end.
	OverlapEnd
	// ContainedBy: the interval lies within the reference.
	ContainedBy
	// After: the interval starts after the reference end.
	After
)

var overlapNames = map[Overlap]string{
	Before:       "BEFORE",
	Contains:     "CONTAINS",
	OverlapStart: "OVERLAP_START",
	OverlapEnd:   "OVERLAP_END",
	ContainedBy:  "CONTAINED_BY",
	After:        "AFTER",
}

// String returns the tag name.
func (o Overlap) String() string {
	if s, ok := overlapNames[o]; ok {
		return s
	}
	return "UNKNOWN"
}

// Compute classifies a relative to the reference b.
func Compute(a, b Interval) Overlap {
	if a.Start < b.Start {
		switch {
		case a.End <= b.Start:
			return Before
		case a.End <= b.End:
			return OverlapStart
		default:
			return Contains
		}
	}
	switch {
	case a.Start > b.End:
		return After
	case a.End <= b.End:
		return ContainedBy
	default:
		return OverlapEnd
	}
}

// IsOverlap reports whether Compute(a, b) is neither Before nor After.
func IsOverlap(a, b Interval) bool {
	o := Compute(a, b)
	return o != Before && o != After
}

// Overlaps reports whether a and b share at least one base. Unlike
// IsOverlap it treats touching intervals as disjoint at both ends; painters
// use it for the "start < viewEnd && end > viewStart" visibility test.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Intersect returns the common part of a and b, and false if they are disjoint.
func Intersect(a, b Interval) (Interval, bool) {
	if !Overlaps(a, b) {
		return Interval{}, false
	}
	return Interval{Start: max(a.Start, b.Start), End: min(a.End, b.End)}, true
}
