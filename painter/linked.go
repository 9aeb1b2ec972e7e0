package painter

import (
	"math"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/interval"
)

// featurePainter draws BED-like features with blocks and thick regions. The
// linked and arc-linked painters differ only in how blocks are connected.
type featurePainter struct {
	view
	data  []Feature
	prefs FeaturePrefs

	// arcs draws one arc between consecutive blocks instead of a single
	// connector under the whole feature.
	arcs bool
	// longest is the length of the longest feature, for arc headroom.
	longest int
}

// LinkedFeaturePainter draws features as blocks joined by a connector line.
type LinkedFeaturePainter struct {
	featurePainter
}

// ArcLinkedFeaturePainter draws features as blocks joined by arcs.
type ArcLinkedFeaturePainter struct {
	featurePainter
}

var (
	_ Painter = (*LinkedFeaturePainter)(nil)
	_ Painter = (*ArcLinkedFeaturePainter)(nil)
)

// NewLinkedFeature returns a painter for data over [viewStart, viewEnd).
func NewLinkedFeature(data []Feature, viewStart, viewEnd int, prefs Preferences, mode Mode, opts ...Option) *LinkedFeaturePainter {
	return &LinkedFeaturePainter{newFeaturePainter(data, viewStart, viewEnd, prefs, mode, opts, false)}
}

// NewArcLinkedFeature returns an arc-linked painter for data over
// [viewStart, viewEnd).
func NewArcLinkedFeature(data []Feature, viewStart, viewEnd int, prefs Preferences, mode Mode, opts ...Option) *ArcLinkedFeaturePainter {
	return &ArcLinkedFeaturePainter{newFeaturePainter(data, viewStart, viewEnd, prefs, mode, opts, true)}
}

func newFeaturePainter(data []Feature, viewStart, viewEnd int, prefs Preferences, mode Mode, opts []Option, arcs bool) featurePainter {
	p := featurePainter{
		view:  newView(viewStart, viewEnd, mode, opts),
		data:  data,
		prefs: mergeFeaturePrefs(DefaultFeaturePrefs(), prefs),
		arcs:  arcs,
	}
	if arcs {
		for _, f := range data {
			p.longest = max(p.longest, f.End-f.Start)
		}
	}
	return p
}

// Kind implements Painter.
func (*LinkedFeaturePainter) Kind() Kind { return KindLinkedFeature }

// Kind implements Painter.
func (*ArcLinkedFeaturePainter) Kind() Kind { return KindArcLinkedFeature }

func (p *featurePainter) rowHeight() float64 {
	switch p.mode {
	case ModeDense:
		return denseTrackHeight
	case ModeNoDetail:
		return noDetailTrackHeight
	case ModeSquish:
		return squishTrackHeight
	default:
		return packTrackHeight
	}
}

// topPadding returns the headroom reserved above the rows for arcs.
func (p *featurePainter) topPadding(width int) float64 {
	viewRange := p.window.Len()
	if !p.arcs || viewRange <= 0 {
		return 0
	}
	scale := float64(width) / float64(viewRange)
	return math.Min(128, math.Ceil(float64(p.longest)/2*scale))
}

// RequiredHeight implements Painter.
func (p *featurePainter) RequiredHeight(rows, width int) int {
	h := p.rowHeight()
	if p.mode != ModeDense {
		h *= float64(rows)
	}
	return int(h + p.topPadding(width))
}

// Draw implements Painter.
func (p *featurePainter) Draw(s ggtrack.Surface, width, height int, scale float64, slots Slots) Result {
	rowHeight := p.rowHeight()
	topPadding := p.topPadding(width)

	s.SetFillStyle(p.prefs.BlockColor)
	s.SetTextAlign(ggtrack.AlignRight)
	return drawSlotted(p.view, s, p.data, rowHeight, topPadding, slots, func(f Feature, slot int) (int, int) {
		y := float64(slot)*rowHeight + topPadding
		return p.drawElement(s, f, y, float64(width), scale)
	})
}

func (p *featurePainter) drawElement(s ggtrack.Surface, f Feature, y, width, scale float64) (int, int) {
	px := func(pos int) float64 {
		return (float64(pos-p.window.Start) - 0.5) * scale
	}
	fStart := math.Floor(math.Max(0, px(f.Start)))
	fEnd := math.Ceil(math.Min(width, math.Max(0, px(f.End))))
	drawStart, drawEnd := fStart, fEnd

	blockColor := p.prefs.BlockColor
	if reverseStrand(f.Strand) {
		blockColor = p.prefs.ReverseStrandColor
	}

	s.SetGlobalAlpha(p.opts.alphaScaler.Value(f))

	if p.mode == ModeNoDetail {
		s.SetFillStyle(blockColor)
		s.FillRect(fStart, y+1, fEnd-fStart, noDetailFeatureHeight)
		s.SetGlobalAlpha(1)
		return int(drawStart), int(drawEnd)
	}

	thinHeight, thickHeight, fullHeight := 5.0, float64(packFeatureHeight), true
	switch p.mode {
	case ModeSquish:
		thinHeight, thickHeight, fullHeight = 1, squishFeatureHeight, false
	case ModeDense:
		thickHeight = denseFeatureHeight
	}

	var thickStart, thickEnd float64
	thick, hasThick := thickSpan(f)
	if hasThick {
		thickStart = math.Floor(math.Max(0, px(thick.Start)))
		thickEnd = math.Ceil(math.Min(width, math.Max(0, px(thick.End))))
	}

	if len(f.Blocks) == 0 {
		s.SetFillStyle(blockColor)
		s.FillRect(fStart, y+1, fEnd-fStart, thickHeight)
		if fullHeight {
			if pat := p.opts.pattern(f.Strand, true); pat != nil {
				s.SetFillStyle(pat)
				s.FillRect(fStart, y+1, fEnd-fStart, thickHeight)
			}
		}
	} else {
		if !p.arcs {
			p.drawConnector(s, f.Strand, fStart, fEnd, y, thickHeight)
		}

		var prevEnd float64
		havePrev := false
		for _, b := range f.Blocks {
			bStart := math.Floor(math.Max(0, px(b.Start)))
			bEnd := math.Ceil(math.Min(width, px(b.End)))
			if bStart > bEnd {
				continue
			}
			s.SetFillStyle(blockColor)
			s.FillRect(bStart, y+(thickHeight-thinHeight)/2+1, bEnd-bStart, thinHeight)

			if hasThick && !(bStart > thickEnd || bEnd < thickStart) {
				ts, te := math.Max(bStart, thickStart), math.Min(bEnd, thickEnd)
				s.FillRect(ts, y+1, te-ts, thickHeight)
				if len(f.Blocks) == 1 && p.mode == ModePack {
					if pat := p.opts.pattern(f.Strand, true); pat != nil {
						if ts+14 < te {
							ts += 2
							te -= 2
						}
						s.SetFillStyle(pat)
						s.FillRect(ts, y+1, te-ts, thickHeight)
					}
				}
			}

			if p.arcs && havePrev {
				p.drawArc(s, prevEnd, bStart, y, blockColor)
			}
			prevEnd, havePrev = bEnd, true
		}

		if p.mode == ModePack {
			s.SetGlobalAlpha(1)
			if h := p.opts.heightScaler.Value(f); h != 1 {
				newHeight := math.Ceil(thickHeight * h)
				band := math.Round((thickHeight - newHeight) / 2)
				s.SetFillStyle(ggtrack.White)
				s.FillRect(fStart, y+1, fEnd-fStart, band)
				s.FillRect(fStart, y+thickHeight-band+1, fEnd-fStart, band)
			}
		}
	}

	s.SetGlobalAlpha(1)
	if f.Name != "" && p.mode == ModePack && f.Start > p.window.Start {
		drawStart, drawEnd = drawLabel(s, p.view, f.Name, p.prefs.LabelColor, fStart, fEnd, y+8)
	}
	return int(math.Floor(drawStart)), int(math.Ceil(drawEnd))
}

// drawConnector draws the line under the whole feature. In Pack mode a
// stranded feature gets a full-height strand hatch instead.
func (p *featurePainter) drawConnector(s ggtrack.Surface, strand string, fStart, fEnd, y, thickHeight float64) {
	if p.mode == ModePack {
		if pat := p.opts.pattern(strand, false); pat != nil {
			s.SetFillStyle(pat)
			s.FillRect(fStart, y, fEnd-fStart, thickHeight)
			return
		}
	}
	cy := y + math.Floor(squishFeatureHeight/2) + 1
	if p.mode == ModePack || p.mode == ModeAuto {
		cy = y + (thickHeight-1)/2 + 1
	}
	s.SetFillStyle(p.prefs.ConnectorColor)
	s.FillRect(fStart, cy, fEnd-fStart, 1)
}

// drawArc joins two blocks with an upward half circle. Touching or
// overlapping blocks get no arc.
func (p *featurePainter) drawArc(s ggtrack.Surface, prevEnd, nextStart, y float64, color ggtrack.Color) {
	center := (prevEnd + nextStart) / 2
	radius := nextStart - center
	if radius <= 0 {
		return
	}
	s.SetStrokeStyle(color)
	s.BeginPath()
	s.Arc(center, y, radius, math.Pi, 0)
	s.Stroke()
}

// thickSpan returns the thick region of f clipped to its extent.
func thickSpan(f Feature) (interval.Interval, bool) {
	if f.Thick == nil {
		return interval.Interval{}, false
	}
	return interval.Intersect(*f.Thick, f.Span())
}
