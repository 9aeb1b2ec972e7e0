package ggtrack

import (
	"math"

	"github.com/gogpu/gg"
)

// FillStyle is a paint a Surface can fill or stroke with.
// It is implemented by Color and *Pattern.
type FillStyle interface {
	isFillStyle()
}

// Arrow is the direction of a strand pattern's chevrons.
type Arrow int

const (
	// ArrowRight points towards increasing coordinates (+ strand).
	ArrowRight Arrow = iota
	// ArrowLeft points towards decreasing coordinates (- strand).
	ArrowLeft
)

// Pattern is a repeating chevron hatch used to show strand orientation.
// Patterns are anchored at the surface origin, like canvas patterns.
//
// Pattern implements gg.Pattern so backends can fill with it directly.
type Pattern struct {
	Name      string
	Color     Color
	Direction Arrow
	Cell      float64 // side of one repeat cell in pixels
}

// ColorAt returns the pattern color at device position (x, y).
func (p *Pattern) ColorAt(x, y float64) gg.RGBA {
	cell := p.Cell
	if cell <= 0 {
		return gg.Transparent
	}
	lx := math.Mod(x, cell)
	if lx < 0 {
		lx += cell
	}
	ly := math.Mod(y, cell)
	if ly < 0 {
		ly += cell
	}
	if p.Direction == ArrowLeft {
		lx = cell - lx
	}

	// One chevron per cell: the arms meet at the cell's vertical center.
	d := math.Abs(ly - cell/2)
	if d <= cell/4 && math.Abs(lx-(cell/2-d)) < 0.75 {
		return p.Color.GG()
	}
	return gg.Transparent
}

func (*Pattern) isFillStyle() {}

var _ gg.Pattern = (*Pattern)(nil)

// PatternSource looks up named fill patterns.
// Pattern returns nil for unknown names.
type PatternSource interface {
	Pattern(name string) FillStyle
}

// PatternSet is a PatternSource backed by a map.
type PatternSet map[string]*Pattern

// Pattern implements PatternSource.
func (s PatternSet) Pattern(name string) FillStyle {
	if p, ok := s[name]; ok && p != nil {
		return p
	}
	return nil
}

// Strand pattern names.
const (
	PatternRightStrand    = "right_strand"
	PatternLeftStrand     = "left_strand"
	PatternRightStrandInv = "right_strand_inv"
	PatternLeftStrandInv  = "left_strand_inv"
)

// StrandPatterns returns the default strand hatches: dark chevrons for thin
// connectors and white ("_inv") chevrons for drawing over filled blocks.
func StrandPatterns() PatternSet {
	dark := RGB(136, 136, 136)
	const cell = 8
	return PatternSet{
		PatternRightStrand:    {Name: PatternRightStrand, Color: dark, Direction: ArrowRight, Cell: cell},
		PatternLeftStrand:     {Name: PatternLeftStrand, Color: dark, Direction: ArrowLeft, Cell: cell},
		PatternRightStrandInv: {Name: PatternRightStrandInv, Color: White, Direction: ArrowRight, Cell: cell},
		PatternLeftStrandInv:  {Name: PatternLeftStrandInv, Color: White, Direction: ArrowLeft, Cell: cell},
	}
}

// StrandPatternName returns the pattern name for strand ("+" or "-"), or ""
// when the strand carries no orientation.
func StrandPatternName(strand string, inverted bool) string {
	var name string
	switch strand {
	case "+":
		name = PatternRightStrand
	case "-":
		name = PatternLeftStrand
	default:
		return ""
	}
	if inverted {
		name += "_inv"
	}
	return name
}
