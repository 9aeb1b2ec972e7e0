package painter

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/recording"
)

func TestValueSeries_Range(t *testing.T) {
	data := []Point{{Pos: 1, Value: 4}, Gap(2), {Pos: 3, Value: -2}, {Pos: 4, Value: 9}}

	p := NewValueSeries(data, 0, 10, nil, ModePack)
	lo, hi := p.Range()
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 9.0, hi)
	assert.Equal(t, SeriesHistogram, p.Mode())

	p = NewValueSeries(data, 0, 10, Preferences{"max_value": 5}, ModePack)
	lo, hi = p.Range()
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 5.0, hi)

	assert.Equal(t, 32, p.RequiredHeight(0, 100))
	assert.Equal(t, 64, p.RequiredHeight(2, 100))
}

func TestValueSeries_Histogram(t *testing.T) {
	data := []Point{{Pos: 100, Value: 5}, {Pos: 101, Value: 10}, {Pos: 102, Value: 15}}
	prefs := Preferences{"min_value": 0, "max_value": 10}
	d := draw(t, NewValueSeries(data, 100, 110, prefs, ModePack), 100, 20, 10, nil)

	assert.Equal(t, []recording.Rect{rect(0, 20, 100, 1)}, rectsOf(d.rectsIn(zeroLineColor)))
	assert.Equal(t, []recording.Rect{
		rect(-5, 10, 10, 10),
		rect(5, 0, 10, 20),
		rect(15, 0, 10, 20),
	}, rectsOf(d.rectsIn(ggtrack.Black)))
	assert.Equal(t, []recording.Rect{rect(15, 0, 10, overflowMarkerHeight)}, rectsOf(d.rectsIn(ggtrack.MustColor("#F66"))))

	hit, ok := d.res.Positions.Get(10, 10)
	require.True(t, ok)
	assert.Equal(t, data[1], hit)
}

func TestValueSeries_NegativeRange(t *testing.T) {
	data := []Point{{Pos: 0, Value: -5}, {Pos: 1, Value: 5}, {Pos: 2, Value: -20}}
	prefs := Preferences{"min_value": -10, "max_value": 10}
	d := draw(t, NewValueSeries(data, 0, 10, prefs, ModePack), 100, 20, 10, nil)

	assert.Equal(t, []recording.Rect{rect(0, 10, 100, 1)}, rectsOf(d.rectsIn(zeroLineColor)))
	assert.Equal(t, []recording.Rect{
		rect(-5, 10, 10, 5),
		rect(5, 5, 10, 5),
		rect(15, 10, 10, 10),
	}, rectsOf(d.rectsIn(ggtrack.Black)))
	assert.Equal(t, []recording.Rect{rect(15, 17, 10, overflowMarkerHeight)}, rectsOf(d.rectsIn(ggtrack.MustColor("#F66"))))
}

func TestValueSeries_SinglePoint(t *testing.T) {
	data := []Point{{Pos: 5, Value: 1}}
	d := draw(t, NewValueSeries(data, 0, 10, Preferences{"min_value": 0}, ModePack), 100, 10, 10, nil)

	rs := d.rectsIn(ggtrack.Black)
	require.Len(t, rs, 1)
	assert.Equal(t, float64(histogramFallbackWidth), rs[0].Rect.Width())
}

func TestValueSeries_LineGaps(t *testing.T) {
	data := []Point{
		{Pos: 100, Value: 1}, {Pos: 101, Value: 2},
		Gap(102),
		{Pos: 103, Value: 3}, {Pos: 104, Value: 4},
	}
	prefs := Preferences{"min_value": 0, "max_value": 4, "mode": "Line"}
	d := draw(t, NewValueSeries(data, 100, 110, prefs, ModePack), 100, 20, 10, nil)

	var strokes []recording.StrokePathCommand
	for _, c := range d.rec.Commands() {
		if sp, ok := c.(recording.StrokePathCommand); ok {
			strokes = append(strokes, sp)
		}
	}
	require.Len(t, strokes, 1)

	var moves, lines int
	for _, el := range d.rec.Path(strokes[0].Path).Elements() {
		switch el.(type) {
		case gg.MoveTo:
			moves++
		case gg.LineTo:
			lines++
		}
	}
	assert.Equal(t, 2, moves, "a gap starts a new subpath")
	assert.Equal(t, 2, lines)
	assert.Zero(t, d.count(recording.CmdFillPath))
}

func TestValueSeries_Filled(t *testing.T) {
	data := []Point{{Pos: 0, Value: 1}, {Pos: 1, Value: 2}}
	prefs := Preferences{"min_value": 0, "max_value": 2, "mode": "Filled"}
	d := draw(t, NewValueSeries(data, 0, 10, prefs, ModePack), 100, 20, 10, nil)

	var fills []recording.FillPathCommand
	for _, c := range d.rec.Commands() {
		if fp, ok := c.(recording.FillPathCommand); ok {
			fills = append(fills, fp)
		}
	}
	require.Len(t, fills, 1)
	els := d.rec.Path(fills[0].Path).Elements()
	last, ok := els[len(els)-1].(gg.LineTo)
	require.True(t, ok)
	assert.Equal(t, gg.Point{X: 0, Y: 20}, last.Point, "area closes along the zero line")
}

func TestValueSeries_LineOverflow(t *testing.T) {
	data := []Point{{Pos: 0, Value: 1}, {Pos: 1, Value: 50}}
	prefs := Preferences{"min_value": 0, "max_value": 2, "mode": "Coverage"}
	d := draw(t, NewValueSeries(data, 0, 10, prefs, ModePack), 100, 20, 10, nil)

	assert.Equal(t, []recording.Rect{rect(3, 0, 5, overflowMarkerHeight)}, rectsOf(d.rectsIn(ggtrack.MustColor("#F66"))))
}

func TestValueSeries_Intensity(t *testing.T) {
	data := []Point{{Pos: 0, Value: 0}, {Pos: 1, Value: 5}, {Pos: 2, Value: 10}}
	prefs := Preferences{"min_value": 0, "max_value": 10, "mode": "Intensity", "color": "#000"}
	d := draw(t, NewValueSeries(data, 0, 10, prefs, ModePack), 100, 20, 10, nil)

	assert.Empty(t, d.rectsIn(zeroLineColor), "no zero line in intensity mode")

	rs := d.rects()
	require.Len(t, rs, 3)
	want := []float64{255, 127.5, 0}
	for i, fr := range rs {
		c, ok := d.rec.Style(fr.Style).(ggtrack.Color)
		require.True(t, ok)
		assert.InDelta(t, want[i], c.R, 1e-6, "point %d", i)
		assert.Equal(t, 1.0, c.A)
		assert.Equal(t, 0.0, fr.Rect.MinY)
		assert.Equal(t, 20.0, fr.Rect.Height())
	}
}

func TestValueSeries_FlatRange(t *testing.T) {
	data := []Point{{Pos: 0, Value: 3}, {Pos: 1, Value: 3}}
	d := draw(t, NewValueSeries(data, 0, 10, nil, ModePack), 100, 20, 10, nil)
	for _, fr := range d.rects() {
		assert.False(t, math.IsNaN(fr.Rect.MinY))
		assert.False(t, math.IsInf(fr.Rect.Height(), 0))
	}
}
