package painter

import (
	"math"

	"github.com/gogpu/ggtrack"
)

// DiagonalHeatmapPainter draws an interaction matrix as a triangle above
// the genome axis: each contact is a cell in a coordinate system rotated by
// -45 degrees, colored by a split ramp around zero.
type DiagonalHeatmapPainter struct {
	view
	data  []Contact
	prefs HeatmapPrefs
}

var _ Painter = (*DiagonalHeatmapPainter)(nil)

// NewDiagonalHeatmap returns a heatmap painter for data over
// [viewStart, viewEnd). Missing min_value and max_value preferences are
// taken from the data.
func NewDiagonalHeatmap(data []Contact, viewStart, viewEnd int, prefs Preferences, mode Mode, opts ...Option) *DiagonalHeatmapPainter {
	p := &DiagonalHeatmapPainter{
		view:  newView(viewStart, viewEnd, mode, opts),
		data:  data,
		prefs: mergeHeatmapPrefs(DefaultHeatmapPrefs(), prefs),
	}
	lo, hi := valueRange(data, func(c Contact) float64 { return c.Value })
	if !p.prefs.HasMin {
		p.prefs.MinValue = lo
	}
	if !p.prefs.HasMax {
		p.prefs.MaxValue = hi
	}
	return p
}

// Kind implements Painter.
func (*DiagonalHeatmapPainter) Kind() Kind { return KindDiagonalHeatmap }

// Ramp returns the color ramp cells are filled with.
func (p *DiagonalHeatmapPainter) Ramp() ggtrack.SplitRamp {
	return ggtrack.NewSplitRamp(p.prefs.NegColor, ggtrack.White, p.prefs.PosColor, p.prefs.MinValue, p.prefs.MaxValue)
}

// RequiredHeight implements Painter. The triangle over a window of width
// pixels is half as high as it is wide.
func (p *DiagonalHeatmapPainter) RequiredHeight(_, width int) int {
	return int(math.Ceil(float64(width) / 2))
}

// Draw implements Painter. Slots are not used.
func (p *DiagonalHeatmapPainter) Draw(s ggtrack.Surface, width, height int, scale float64, _ Slots) Result {
	ramp := p.Ramp()
	pos := func(x int) float64 { return float64(x-p.window.Start) * scale }

	s.Save()
	defer s.Restore()
	s.Rotate(-math.Pi / 4)
	s.Scale(1/math.Sqrt2, 1/math.Sqrt2)

	var incomplete []Record
	for _, c := range p.data {
		s1, e1 := pos(c.Start1), pos(c.End1)
		s2, e2 := pos(c.Start2), pos(c.End2)
		s.SetFillStyle(ramp.Map(c.Value))
		s.FillRect(s1, s2, e1-s1, e2-s2)
		if c.Start1 < p.window.Start || c.End2 > p.window.End {
			incomplete = append(incomplete, c)
		}
	}
	ggtrack.Logger().Debug("painter: drew contacts", "n", len(p.data))
	return Result{Incomplete: incomplete, Positions: NewPositionMapper(float64(max(height, 1)))}
}
