package painter

import (
	"math"
	"strconv"

	"github.com/biogo/hts/sam"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/cigar"
	"github.com/gogpu/ggtrack/interval"
)

var insertionColor = ggtrack.MustColor("yellow")

// ReadPainter draws aligned reads: CIGAR blocks, mismatching bases,
// deletions, skips and insertions, with paired mates joined by a dashed
// line.
type ReadPainter struct {
	view
	data  []Read
	prefs ReadPrefs
}

var _ Painter = (*ReadPainter)(nil)

// NewRead returns a read painter for data over [viewStart, viewEnd).
func NewRead(data []Read, viewStart, viewEnd int, prefs Preferences, mode Mode, opts ...Option) *ReadPainter {
	return &ReadPainter{
		view:  newView(viewStart, viewEnd, mode, opts),
		data:  data,
		prefs: mergeReadPrefs(DefaultReadPrefs(), prefs),
	}
}

// Kind implements Painter.
func (*ReadPainter) Kind() Kind { return KindRead }

// insertionBand reports whether each row reserves a band above the read
// for inserted sequences.
func (p *ReadPainter) insertionBand() bool {
	return p.prefs.ShowInsertions && p.mode.detail()
}

func (p *ReadPainter) rowHeight() float64 {
	switch p.mode {
	case ModeDense:
		return denseTrackHeight
	case ModeSquish:
		return squishTrackHeight
	}
	h := float64(packTrackHeight)
	if p.insertionBand() {
		h *= 2
	}
	return h
}

// RequiredHeight implements Painter.
func (p *ReadPainter) RequiredHeight(rows, _ int) int {
	h := p.rowHeight()
	if p.mode != ModeDense {
		h *= float64(rows)
	}
	return int(h)
}

// readDraw is the per-pass state of a read draw.
type readDraw struct {
	s          ggtrack.Surface
	width      float64
	scale      float64
	charWidth  float64
	drawHeight float64
	last       drawQueue
}

// Draw implements Painter.
func (p *ReadPainter) Draw(s ggtrack.Surface, width, height int, scale float64, slots Slots) Result {
	rowHeight := p.rowHeight()
	d := &readDraw{
		s:          s,
		width:      float64(width),
		scale:      scale,
		charWidth:  p.charWidth(s),
		drawHeight: squishFeatureHeight,
	}
	if p.mode.detail() {
		d.drawHeight = packFeatureHeight
	}

	res := drawSlotted(p.view, s, p.data, rowHeight, 0, slots, func(r Read, slot int) (int, int) {
		y := float64(slot) * rowHeight
		if p.insertionBand() {
			y += packTrackHeight
		}
		return p.drawElement(d, r, y)
	})

	s.Save()
	d.last.flush(s, insertionColor)
	s.Restore()
	return res
}

// px returns the unclamped pixel where base pos begins.
func (p *ReadPainter) px(pos int, scale float64) float64 {
	return (float64(pos-p.window.Start) - 0.5) * scale
}

func (p *ReadPainter) drawElement(d *readDraw, r Read, y float64) (int, int) {
	fStart := math.Floor(math.Max(-0.5*d.scale, p.px(r.Start, d.scale)))
	fEnd := math.Ceil(math.Min(d.width, math.Max(0, p.px(r.End, d.scale))))

	if r.Paired() {
		connector := true
		for _, m := range r.Mates {
			if m.End >= p.window.Start && m.Start <= p.window.End && m.Cigar != "" {
				p.drawRead(d, y, m.Start, m.Cigar, m.Strand, m.Seq)
			} else {
				connector = false
			}
		}
		leftEnd := math.Ceil(math.Min(d.width, math.Max(-0.5*d.scale, p.px(r.Mates[0].End, d.scale))))
		rightStart := math.Floor(math.Max(-0.5*d.scale, p.px(r.Mates[1].Start, d.scale)))
		if connector && rightStart > leftEnd {
			lineY := y + 1 + (d.drawHeight-1)/2
			d.s.SetFillStyle(p.prefs.ConnectorColor)
			dashedLine(d.s, leftEnd, lineY, rightStart, lineY, p.opts.dashLength)
		}
	} else if r.Cigar != "" {
		p.drawRead(d, y, r.Start, r.Cigar, r.Strand, r.Seq)
	}

	drawStart, drawEnd := fStart, fEnd
	if p.mode.detail() && r.Start >= p.window.Start && r.Name != "" && r.Name != "." {
		drawStart, drawEnd = drawLabel(d.s, p.view, r.Name, p.prefs.LabelColor, fStart, fEnd, y+9)
	}
	return int(math.Floor(drawStart)), int(math.Ceil(drawEnd))
}

// drawRead draws one alignment starting at genomic position start.
func (p *ReadPainter) drawRead(d *readDraw, y float64, start int, cigarStr, strand, seq string) {
	s := d.s
	tile := p.window
	coord := func(pos int) float64 {
		return math.Floor(math.Max(0, p.px(pos, d.scale)))
	}
	gap := math.Round(d.scale / 2)
	detail := p.mode.detail() && d.scale > d.charWidth
	rectY := y + 1

	blockColor := p.prefs.BlockColor
	switch {
	case reverseStrand(strand):
		blockColor = p.prefs.ReverseStrandColor
	case detail:
		blockColor = p.prefs.DetailBlockColor
	}

	s.SetTextAlign(ggtrack.AlignCenter)
	dec := cigar.Parse(cigarStr)
	for _, b := range dec.Blocks {
		abs := interval.New(start+b.Start, start+b.End)
		if !interval.IsOverlap(abs, tile) {
			continue
		}
		x0, x1 := coord(abs.Start), coord(abs.End)
		if x0 == x1 {
			x1++
		}
		s.SetFillStyle(blockColor)
		s.FillRect(x0, rectY, x1-x0, d.drawHeight)
	}

	deletions := deletionDrawer{rowHeight: d.drawHeight, scale: d.scale, detail: detail}
	cigar.Walk(dec.Cigar, func(op sam.CigarOp, at cigar.State) {
		n := op.Len()
		seqStart := start + at.BaseOffset
		opSpan := interval.New(seqStart, seqStart+n)
		if !interval.IsOverlap(opSpan, tile) {
			return
		}
		x0, x1 := coord(seqStart), coord(seqStart+n)
		if x0 == x1 {
			x1++
		}

		switch op.Type() {
		case sam.CigarEqual, sam.CigarMismatch:
			mismatch := op.Type() == sam.CigarMismatch
			if !mismatch && p.prefs.ShowDifferences {
				return
			}
			for pos := max(seqStart, tile.Start); pos < min(seqStart+n, tile.End); pos++ {
				var base byte
				if mismatch {
					base = byteAt(seq, at.SeqOffset+pos-seqStart)
				} else {
					base = p.refBase(pos)
				}
				if base == 0 {
					continue
				}
				cx := math.Floor(math.Max(0, float64(pos-tile.Start)*d.scale))
				s.SetFillStyle(p.opts.baseColor(base))
				if detail {
					s.FillText(string(base), cx, y+9)
				} else if d.scale > 0.05 {
					s.FillRect(cx-gap, rectY, math.Max(1, math.Round(d.scale)), d.drawHeight)
				}
			}
		case sam.CigarSkipped:
			s.SetFillStyle(connectorColor)
			s.FillRect(x0, rectY+(d.drawHeight-1)/2, x1-x0, 1)
		case sam.CigarDeletion:
			deletions.draw(s, x0, rectY, n)
		case sam.CigarInsertion:
			p.drawInsertion(d, y, x0, x1, gap, detail, opSpan, sliceSeq(seq, at.SeqOffset, n))
		}
	})
}

func (p *ReadPainter) drawInsertion(d *readDraw, y, x0, x1, gap float64, detail bool, span interval.Interval, ins string) {
	s := d.s
	insertX := x0 - gap
	w := x1 - x0
	if !p.prefs.ShowInsertions {
		if detail && ins != "" {
			d.last.text(strconv.Itoa(span.Len()), insertX, y+9)
		}
		return
	}

	center := x0 - w/2
	s.SetFillStyle(insertionColor)
	if !detail || ins == "" {
		if p.mode == ModeDense {
			s.FillRect(center, y+5, w, denseFeatureHeight)
		} else {
			s.FillRect(center, y+2, w, squishFeatureHeight)
		}
		return
	}

	// The box and glyphs sit in the band above y, the triangle on the read.
	s.FillRect(center, y-9, w, 9)
	d.last.triangle(x0, y+4, 5)

	from, to := clipInsertion(span, p.window)
	s.SetFillStyle(connectorColor)
	for i := from; i < to && i < len(ins); i++ {
		cx := math.Floor(math.Max(0, float64(span.Start+i-p.window.Start)*d.scale))
		s.FillText(ins[i:i+1], cx-w/2, y-1)
	}
}

// clipInsertion returns the range of inserted bases, as offsets into the
// insertion, that fall inside the tile.
func clipInsertion(span, tile interval.Interval) (from, to int) {
	n := span.Len()
	switch interval.Compute(span, tile) {
	case interval.OverlapStart:
		return tile.Start - span.Start, n
	case interval.OverlapEnd:
		return 0, tile.End - span.Start
	case interval.Contains:
		return tile.Start - span.Start, tile.End - span.Start
	case interval.ContainedBy:
		return 0, n
	}
	return 0, 0
}

func byteAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func sliceSeq(s string, from, n int) string {
	if from < 0 || from >= len(s) {
		return ""
	}
	return s[from:min(len(s), from+n)]
}
