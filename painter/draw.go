package painter

import (
	"math"

	"github.com/gogpu/ggtrack"
)

// drawSlotted runs the shared feature loop: it draws every visible record
// with an assigned slot (any record in Dense mode), indexes its pixel span
// and collects records that cross the window edges.
func drawSlotted[T Record](v view, s ggtrack.Surface, data []T, rowHeight, topPadding float64, slots Slots,
	draw func(rec T, slot int) (xStart, xEnd int)) Result {
	positions := NewPositionMapper(rowHeight)
	var incomplete []Record

	s.Save()
	defer s.Restore()

	skipped := 0
	for _, rec := range data {
		span := rec.Span()
		slot, ok := slots[rec.ID()]
		if v.mode == ModeDense {
			slot, ok = 0, true
		}
		if !ok || !v.visible(span) {
			skipped++
			continue
		}
		x0, x1 := draw(rec, slot)
		positions.Map(rec, slot, x0, x1)
		if v.incomplete(span) {
			incomplete = append(incomplete, rec)
		}
	}
	positions.YTranslation = topPadding

	ggtrack.Logger().Debug("painter: drew records",
		"drawn", len(data)-skipped, "skipped", skipped, "incomplete", len(incomplete))
	return Result{Incomplete: incomplete, Positions: positions}
}

// drawLabel draws name next to a feature drawn over [fStart, fEnd] and
// returns the span extended by the label. The label goes left of the
// feature unless that would clip it at the start of the chromosome.
func drawLabel(s ggtrack.Surface, v view, name string, color ggtrack.Color, fStart, fEnd, y float64) (float64, float64) {
	w := s.MeasureText(name)
	s.SetFillStyle(color)
	if v.window.Start == 0 && fStart-w < 0 {
		s.SetTextAlign(ggtrack.AlignLeft)
		s.FillText(name, fEnd+labelSpacing, y)
		return fStart, fEnd + w + labelSpacing
	}
	s.SetTextAlign(ggtrack.AlignRight)
	s.FillText(name, fStart-labelSpacing, y)
	return fStart - w - labelSpacing, fEnd
}

// dashedLine draws a 1px dashed line from (x1, y1) towards (x2, y2) as a run
// of small rectangles in the current fill style.
func dashedLine(s ggtrack.Surface, x1, y1, x2, y2, dashLen float64) {
	dx, dy := x2-x1, y2-y1
	dashes := int(math.Floor(math.Hypot(dx, dy) / dashLen))
	if dashes <= 0 {
		return
	}
	stepX, stepY := dx/float64(dashes), dy/float64(dashes)
	for q := 0; q < dashes; q++ {
		if q%2 == 0 {
			s.FillRect(x1, y1, dashLen, 1)
		}
		x1 += stepX
		y1 += stepY
	}
}

// downwardTriangle fills an equilateral-ish triangle whose lower vertex is
// at (x, y).
func downwardTriangle(s ggtrack.Surface, x, y, side float64) {
	top := y - math.Sqrt(side*3/2)
	s.BeginPath()
	s.MoveTo(x-side/2, top)
	s.LineTo(x+side/2, top)
	s.LineTo(x, y)
	s.ClosePath()
	s.Fill()
	s.Stroke()
}

// deletionDrawer paints deletions for reads and variants.
type deletionDrawer struct {
	rowHeight float64
	scale     float64
	// detail is set when per-base glyphs are drawn; deletions are then
	// thinner to stand apart from full-height blocks.
	detail bool
}

func (d deletionDrawer) draw(s ggtrack.Surface, x, y float64, length int) {
	thickness := 0.6 * d.rowHeight
	if d.detail {
		thickness = 0.2 * d.rowHeight
	}
	s.SetFillStyle(ggtrack.Black)
	s.FillRect(x, y+(d.rowHeight-thickness)/2, math.Max(1, float64(length)*d.scale), thickness)
}

// drawQueue holds overlay items painted after a read so they stay on top.
type drawQueue []queued

type queued struct {
	triangle bool
	text     string
	x, y     float64
	side     float64
}

func (q *drawQueue) text(s string, x, y float64) {
	*q = append(*q, queued{text: s, x: x, y: y})
}

func (q *drawQueue) triangle(x, y, side float64) {
	*q = append(*q, queued{triangle: true, x: x, y: y, side: side})
}

func (q drawQueue) flush(s ggtrack.Surface, color ggtrack.Color) {
	if len(q) == 0 {
		return
	}
	s.SetFillStyle(color)
	s.SetStrokeStyle(color)
	for _, it := range q {
		if it.triangle {
			downwardTriangle(s, it.x, it.y, it.side)
			continue
		}
		s.Save()
		s.SetBold(true)
		s.FillText(it.text, it.x, it.y)
		s.Restore()
	}
}
