package painter

import (
	"math"

	itree "github.com/biogo/store/interval"
)

// Entry is one drawn record in a PositionMapper.
type Entry struct {
	Slot         int
	XStart, XEnd int
	Data         Record
}

// span adapts an Entry to the biogo interval tree. Ranges are stored
// half-open as [XStart, XEnd+1) so the inclusive pixel span matches.
type span struct {
	start, end int
	uid        uintptr
	entry      *Entry
}

func (s span) Overlap(b itree.IntRange) bool {
	return s.start < b.End && b.Start < s.end
}
func (s span) ID() uintptr           { return s.uid }
func (s span) Range() itree.IntRange { return itree.IntRange{Start: s.start, End: s.end} }

// PositionMapper maps pixel positions back to the records drawn there.
// Entries are grouped by slot (row); within a slot the earliest mapped
// entry wins when spans overlap.
type PositionMapper struct {
	SlotHeight float64

	// Translation is added to query x before lookup.
	Translation float64
	// YTranslation is subtracted from query y before computing the slot.
	YTranslation float64

	slots map[int]*itree.IntTree
	n     uintptr
}

// NewPositionMapper creates an empty mapper for rows of slotHeight pixels.
func NewPositionMapper(slotHeight float64) *PositionMapper {
	return &PositionMapper{
		SlotHeight: slotHeight,
		slots:      make(map[int]*itree.IntTree),
	}
}

// Map records that data was drawn in slot between xStart and xEnd inclusive.
func (m *PositionMapper) Map(data Record, slot, xStart, xEnd int) {
	if xEnd < xStart {
		xStart, xEnd = xEnd, xStart
	}
	tree, ok := m.slots[slot]
	if !ok {
		tree = &itree.IntTree{}
		m.slots[slot] = tree
	}
	e := &Entry{Slot: slot, XStart: xStart, XEnd: xEnd, Data: data}
	if err := tree.Insert(span{start: xStart, end: xEnd + 1, uid: m.n, entry: e}, false); err != nil {
		return
	}
	m.n++
}

// Get returns the record drawn at (x, y). It reports false when the row is
// empty or nothing covers x.
func (m *PositionMapper) Get(x, y float64) (Record, bool) {
	e, ok := m.Lookup(x, y)
	if !ok {
		return nil, false
	}
	return e.Data, true
}

// Lookup is like Get but returns the whole entry.
func (m *PositionMapper) Lookup(x, y float64) (*Entry, bool) {
	if m.SlotHeight <= 0 {
		return nil, false
	}
	slot := int(math.Floor((y - m.YTranslation) / m.SlotHeight))
	tree, ok := m.slots[slot]
	if !ok {
		return nil, false
	}
	// The tree narrows the search to the pixel cell; the span test itself
	// is on the unrounded x.
	x += m.Translation
	qx := int(math.Floor(x))
	q := span{start: qx, end: qx + 1}

	var best span
	found := false
	tree.DoMatching(func(iv itree.IntInterface) bool {
		s := iv.(span)
		if x < float64(s.entry.XStart) || x > float64(s.entry.XEnd) {
			return false
		}
		if !found || s.uid < best.uid {
			best, found = s, true
		}
		return false
	}, q)
	if !found {
		return nil, false
	}
	return best.entry, true
}

// Len returns the number of mapped entries.
func (m *PositionMapper) Len() int {
	return int(m.n)
}
