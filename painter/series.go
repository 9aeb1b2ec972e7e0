package painter

import (
	"math"

	"github.com/gogpu/ggtrack"
)

const (
	// histogramFallbackWidth is the bar width of a single-point series.
	histogramFallbackWidth = 10
	overflowMarkerHeight   = 3
	seriesRowHeight        = 32
)

var zeroLineColor = ggtrack.MustColor("#aaa")

// ValueSeriesPainter draws one value per position as a histogram, a line,
// a filled area or an intensity strip.
type ValueSeriesPainter struct {
	view
	data  []Point
	prefs SeriesPrefs
}

var _ Painter = (*ValueSeriesPainter)(nil)

// NewValueSeries returns a value-series painter for data over
// [viewStart, viewEnd). Points must be sorted by position. Missing
// min_value and max_value preferences are taken from the data.
//
// The series mode comes from the "mode" preference; the track mode is kept
// for interface symmetry and does not change the drawing.
func NewValueSeries(data []Point, viewStart, viewEnd int, prefs Preferences, mode Mode, opts ...Option) *ValueSeriesPainter {
	p := &ValueSeriesPainter{
		view:  newView(viewStart, viewEnd, mode, opts),
		data:  data,
		prefs: mergeSeriesPrefs(DefaultSeriesPrefs(), prefs),
	}
	lo, hi := valueRange(data, func(pt Point) float64 { return pt.Value })
	if !p.prefs.HasMin {
		p.prefs.MinValue = lo
	}
	if !p.prefs.HasMax {
		p.prefs.MaxValue = hi
	}
	return p
}

// valueRange returns the smallest and largest non-NaN value in data, or
// zeros when there is none.
func valueRange[T any](data []T, value func(T) float64) (lo, hi float64) {
	first := true
	for _, d := range data {
		v := value(d)
		if math.IsNaN(v) {
			continue
		}
		if first {
			lo, hi, first = v, v, false
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}

// Kind implements Painter.
func (*ValueSeriesPainter) Kind() Kind { return KindValueSeries }

// Mode returns the series drawing style.
func (p *ValueSeriesPainter) Mode() SeriesMode { return p.prefs.Mode }

// Range returns the value bounds the series is drawn with.
func (p *ValueSeriesPainter) Range() (lo, hi float64) {
	return p.prefs.MinValue, p.prefs.MaxValue
}

// RequiredHeight implements Painter.
func (p *ValueSeriesPainter) RequiredHeight(rows, _ int) int {
	return max(rows, 1) * seriesRowHeight
}

// Draw implements Painter. Slots are not used.
func (p *ValueSeriesPainter) Draw(s ggtrack.Surface, width, height int, scale float64, _ Slots) Result {
	s.Save()
	defer s.Restore()

	mode := p.prefs.Mode
	minValue, maxValue := p.prefs.MinValue, p.prefs.MaxValue
	vrange := maxValue - minValue
	if vrange <= 0 {
		vrange = 1
	}
	h := float64(height)
	data := p.data

	yZero := math.Round(h + minValue/vrange*h)
	if mode != SeriesIntensity {
		s.SetFillStyle(zeroLineColor)
		s.FillRect(0, yZero, float64(width), 1)
	}

	deltas := make([]float64, len(data))
	for i := range data {
		switch {
		case len(data) == 1:
			deltas[i] = histogramFallbackWidth
		case i+1 < len(data):
			deltas[i] = math.Ceil(float64(data[i+1].Pos-data[i].Pos) * scale)
		default:
			deltas[i] = deltas[i-1]
		}
	}

	color := p.prefs.Color
	positions := NewPositionMapper(h)
	s.BeginPath()
	s.SetStrokeStyle(color)
	inPath := false
	var x, y float64
	for i, pt := range data {
		s.SetFillStyle(color)
		delta := deltas[i]
		x = math.Floor((float64(pt.Pos-p.window.Start) - 0.5) * scale)

		if pt.IsGap() {
			if inPath && mode == SeriesFilled {
				s.LineTo(x, h)
			}
			inPath = false
			continue
		}

		v := pt.Value
		topOverflow, botOverflow := false, false
		if v < minValue {
			botOverflow, v = true, minValue
		} else if v > maxValue {
			topOverflow, v = true, maxValue
		}
		positions.Map(pt, 0, int(x), int(x+delta))

		switch mode {
		case SeriesHistogram:
			y = math.Round(v / vrange * h)
			s.FillRect(x, yZero, delta, -y)
		case SeriesIntensity:
			saturation := (v - minValue) / vrange
			s.SetFillStyle(color.Mix(ggtrack.White, saturation).WithAlpha(1))
			s.FillRect(x, 0, delta, h)
		default:
			y = math.Round(h - (v-minValue)/vrange*h)
			switch {
			case inPath:
				s.LineTo(x, y)
			case mode == SeriesFilled:
				inPath = true
				s.MoveTo(x, h)
				s.LineTo(x, y)
			default:
				inPath = true
				s.MoveTo(x, y)
			}
		}

		if topOverflow || botOverflow {
			mx, mw := x, delta
			if mode != SeriesHistogram && mode != SeriesIntensity {
				mx, mw = x-2, 5
			}
			s.SetFillStyle(p.prefs.OverflowColor)
			if topOverflow {
				s.FillRect(mx, 0, mw, overflowMarkerHeight)
			}
			if botOverflow {
				s.FillRect(mx, h-overflowMarkerHeight, mw, overflowMarkerHeight)
			}
		}
	}

	switch mode {
	case SeriesFilled:
		if inPath {
			s.LineTo(x, yZero)
			s.LineTo(0, yZero)
		}
		s.SetFillStyle(color)
		s.Fill()
	case SeriesLine, SeriesCoverage:
		s.Stroke()
	}
	return Result{Positions: positions}
}
