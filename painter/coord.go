package painter

import "math"

// Pixel offsets applied by the three coordinate mapper flavors.
const (
	startOfBase  = -0.5
	centerOfBase = 0
	endOfBase    = 0.5
)

// Mapper converts genomic coordinates into pixel offsets for a view window
// starting at ViewStart.
//
// Positions left of ViewStart map to the window edge; results are never
// negative.
type Mapper struct {
	ViewStart int
}

// DrawPos returns the pixel of the center of base pos.
func (m Mapper) DrawPos(pos int, scale float64) int {
	return chromPosToDrawPos(pos, m.ViewStart, scale, centerOfBase)
}

// StartDrawPos returns the pixel where base pos begins.
func (m Mapper) StartDrawPos(pos int, scale float64) int {
	return chromPosToDrawPos(pos, m.ViewStart, scale, startOfBase)
}

// EndDrawPos returns the pixel where base pos ends.
func (m Mapper) EndDrawPos(pos int, scale float64) int {
	return chromPosToDrawPos(pos, m.ViewStart, scale, endOfBase)
}

func chromPosToDrawPos(pos, viewStart int, scale, offset float64) int {
	px := math.Floor(scale * (float64(max(0, pos-viewStart)) + offset))
	return max(0, int(px))
}
