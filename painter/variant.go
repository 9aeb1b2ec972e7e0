package painter

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/ggtrack"
)

const variantDividerHeight = 1

var (
	summaryBackground = ggtrack.MustColor("#999999")
	dividerColor      = ggtrack.MustColor("#F3F3F3")
)

type alleleKind int

const (
	alleleSNP alleleKind = iota
	alleleInsertion
	alleleDeletion
)

// allele is one classified alternate allele. For deletions start is the
// offset of the first deleted base from the locus and length the number of
// deleted bases.
type allele struct {
	kind          alleleKind
	value         string
	start, length int
}

// classifyAllele compares alt against ref assuming left-aligned indels that
// share their leading bases with the reference.
func classifyAllele(ref, alt string) allele {
	switch {
	case alt == "-":
		return allele{kind: alleleDeletion, value: alt, start: 0, length: len(ref)}
	case len(ref) > len(alt) && strings.HasPrefix(ref, alt):
		return allele{kind: alleleDeletion, value: alt, start: len(alt), length: len(ref) - len(alt)}
	case len(alt) > len(ref) && strings.HasPrefix(alt, ref):
		return allele{kind: alleleInsertion, value: alt[len(ref):]}
	}
	return allele{kind: alleleSNP, value: alt}
}

func parseAlleles(v Variant) []allele {
	if v.Alt == "" {
		return nil
	}
	fields := strings.Split(v.Alt, ",")
	alts := make([]allele, len(fields))
	for i, a := range fields {
		alts[i] = classifyAllele(v.Ref, a)
	}
	return alts
}

// splitGenotype splits "a/b" or "a|b". Empty calls are missing.
func splitGenotype(gt string) (string, string) {
	if gt == "" {
		return ".", "."
	}
	a, b, ok := strings.Cut(gt, "/")
	if !ok {
		a, b, ok = strings.Cut(gt, "|")
	}
	if !ok {
		return a, a
	}
	return a, b
}

// calledAllele returns the index into the alt alleles drawn for a genotype
// and its opacity. Homozygous reference and missing calls draw nothing.
func calledAllele(gt string) (idx int, alpha float64, ok bool) {
	a, b := splitGenotype(gt)
	g, alpha := a, 1.0
	if a != b {
		if a == "0" {
			g = b
		}
		alpha = 0.5
	}
	if g == "0" || g == "." {
		return 0, 0, false
	}
	n, err := strconv.Atoi(g)
	if err != nil || n < 1 {
		return 0, 0, false
	}
	return n - 1, alpha, true
}

// alleleCounts returns the called count of each of n alt alleles.
func alleleCounts(v Variant, n int) []int {
	counts := make([]int, n)
	if len(v.AlleleCounts) > 0 {
		copy(counts, v.AlleleCounts)
		return counts
	}
	for _, gt := range v.Samples() {
		a, b := splitGenotype(gt)
		for _, g := range []string{a, b} {
			if k, err := strconv.Atoi(g); err == nil && k >= 1 && k <= n {
				counts[k-1]++
			}
		}
	}
	return counts
}

// VariantPainter draws variant calls: an allele-frequency summary row and
// one row per sample.
type VariantPainter struct {
	view
	data  []Variant
	prefs VariantPrefs
}

var _ Painter = (*VariantPainter)(nil)

// NewVariant returns a variant painter for data over [viewStart, viewEnd).
func NewVariant(data []Variant, viewStart, viewEnd int, prefs Preferences, mode Mode, opts ...Option) *VariantPainter {
	return &VariantPainter{
		view:  newView(viewStart, viewEnd, mode, opts),
		data:  data,
		prefs: mergeVariantPrefs(DefaultVariantPrefs(), prefs),
	}
}

// Kind implements Painter.
func (*VariantPainter) Kind() Kind { return KindVariant }

func (p *VariantPainter) rowHeight() float64 {
	switch p.mode {
	case ModeDense:
		return denseTrackHeight
	case ModeSquish:
		return squishTrackHeight
	}
	return packTrackHeight
}

// RequiredHeight implements Painter. Rows is the number of samples.
func (p *VariantPainter) RequiredHeight(rows, _ int) int {
	h := p.prefs.SummaryHeight
	if rows > 1 && p.prefs.ShowSampleData {
		h += variantDividerHeight + float64(rows)*p.rowHeight()
	}
	return int(h)
}

func (p *VariantPainter) numSamples() int {
	if len(p.data) == 0 {
		return 0
	}
	return len(p.data[0].Samples())
}

// Draw implements Painter. Slots are not used.
func (p *VariantPainter) Draw(s ggtrack.Surface, width, height int, scale float64, _ Slots) Result {
	s.Save()
	defer s.Restore()

	summaryHeight := p.prefs.SummaryHeight
	basePx := math.Max(1, math.Floor(scale))
	numSamples := p.numSamples()
	charWidth := p.charWidth(s)

	rowHeight := float64(packTrackHeight)
	featureHeight := float64(packFeatureHeight)
	if p.mode == ModeSquish {
		rowHeight, featureHeight = squishTrackHeight, squishFeatureHeight
	}
	if scale < 0.1 {
		featureHeight = rowHeight
	}
	drawSummary := true
	if numSamples == 1 {
		if scale < charWidth {
			rowHeight = summaryHeight
		}
		featureHeight = rowHeight
		drawSummary = false
	}
	deletions := deletionDrawer{rowHeight: rowHeight, scale: scale, detail: p.mode.detail() && scale > charWidth}

	if p.prefs.ShowSampleData && drawSummary {
		s.SetGlobalAlpha(1)
		s.SetFillStyle(dividerColor)
		s.FillRect(0, summaryHeight-variantDividerHeight, float64(width), variantDividerHeight)
	}
	s.SetTextAlign(ggtrack.AlignCenter)

	positions := NewPositionMapper(float64(max(height, 1)))
	for _, v := range p.data {
		if !p.visible(v.Span()) {
			continue
		}
		alts := parseAlleles(v)
		x := math.Floor(math.Max(-0.5*scale, (float64(v.Pos-p.window.Start)-0.5)*scale))
		positions.Map(v, 0, int(x), int(x+basePx))

		if drawSummary {
			p.drawSummary(s, v, alts, x, basePx, numSamples)
		}
		if !p.prefs.ShowSampleData {
			continue
		}

		y := 0.0
		if drawSummary {
			y = summaryHeight + variantDividerHeight
		}
		for _, gt := range v.Samples() {
			idx, alpha, ok := calledAllele(gt)
			if ok && idx < len(alts) && alts[idx].value != "" {
				s.SetGlobalAlpha(alpha)
				a := alts[idx]
				switch a.kind {
				case alleleSNP:
					s.SetFillStyle(p.opts.baseColor(a.value[0]))
					if p.mode == ModePack && charWidth <= scale {
						s.FillText(a.value, x+basePx/2, y+rowHeight)
					} else {
						s.FillRect(x, y+1, basePx, featureHeight)
					}
				case alleleDeletion:
					deletions.draw(s, x+basePx*float64(a.start), y+1, a.length)
				}
				// TODO: draw insertions and uncalled genotypes.
			}
			y += rowHeight
		}
	}
	return Result{Positions: positions}
}

// drawSummary stacks the allele fractions of v over a gray background.
func (p *VariantPainter) drawSummary(s ggtrack.Surface, v Variant, alts []allele, x, basePx float64, numSamples int) {
	h := p.prefs.SummaryHeight
	s.SetGlobalAlpha(1)
	s.SetFillStyle(summaryBackground)
	s.FillRect(x, 0, basePx, h)

	called := 2 * numSamples
	if called == 0 {
		return
	}
	y := h
	for j, n := range alleleCounts(v, len(alts)) {
		if n == 0 {
			continue
		}
		color := ggtrack.Black
		if alts[j].kind != alleleDeletion && alts[j].value != "" {
			color = p.opts.baseColor(alts[j].value[0])
		}
		barHeight := math.Ceil(h * float64(n) / float64(called))
		s.SetFillStyle(color)
		s.FillRect(x, y-barHeight, basePx, barHeight)
		y -= barHeight
	}
}
