package painter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/recording"
)

// glyph is the fixed text advance used by every test recorder.
const glyph = 6

// drawn is the outcome of one recorded draw pass.
type drawn struct {
	rec *recording.Recording
	res Result
}

func draw(t *testing.T, p Painter, width, height int, scale float64, slots Slots) drawn {
	t.Helper()
	r := recording.NewRecorder(width, height, recording.WithFixedAdvance(glyph))
	res := p.Draw(r, width, height, scale, slots)
	require.NotNil(t, res.Positions, "Draw must always return a position index")
	return drawn{rec: r.FinishRecording(), res: res}
}

func (d drawn) rects() []recording.FillRectCommand {
	var out []recording.FillRectCommand
	for _, c := range d.rec.Commands() {
		if fr, ok := c.(recording.FillRectCommand); ok {
			out = append(out, fr)
		}
	}
	return out
}

// rectsIn returns the rectangles filled with style.
func (d drawn) rectsIn(style ggtrack.FillStyle) []recording.FillRectCommand {
	var out []recording.FillRectCommand
	for _, fr := range d.rects() {
		if d.rec.Style(fr.Style) == style {
			out = append(out, fr)
		}
	}
	return out
}

func (d drawn) texts() []recording.FillTextCommand {
	var out []recording.FillTextCommand
	for _, c := range d.rec.Commands() {
		if ft, ok := c.(recording.FillTextCommand); ok {
			out = append(out, ft)
		}
	}
	return out
}

func (d drawn) count(typ recording.CommandType) int {
	n := 0
	for _, c := range d.rec.Commands() {
		if c.Type() == typ {
			n++
		}
	}
	return n
}

func rect(x, y, w, h float64) recording.Rect {
	return recording.NewRect(x, y, w, h)
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in   string
		want Mode
	}{
		{"Dense", ModeDense},
		{"pack", ModePack},
		{"SQUISH", ModeSquish},
		{"no_detail", ModeNoDetail},
		{"auto", ModeAuto},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseMode("Expanded")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseSeriesMode(t *testing.T) {
	got, err := ParseSeriesMode("intensity")
	require.NoError(t, err)
	assert.Equal(t, SeriesIntensity, got)

	_, err = ParseSeriesMode("Bars")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindValueSeries, KindLinkedFeature, KindArcLinkedFeature, KindRead, KindDiagonalHeatmap, KindVariant} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "Kind(42)", Kind(42).String())

	_, err := ParseKind("bigwig")
	assert.Error(t, err)
}

func TestPainterKinds(t *testing.T) {
	painters := map[Kind]Painter{
		KindLinkedFeature:    NewLinkedFeature(nil, 0, 10, nil, ModePack),
		KindArcLinkedFeature: NewArcLinkedFeature(nil, 0, 10, nil, ModePack),
		KindRead:             NewRead(nil, 0, 10, nil, ModePack),
		KindVariant:          NewVariant(nil, 0, 10, nil, ModePack),
		KindValueSeries:      NewValueSeries(nil, 0, 10, nil, ModePack),
		KindDiagonalHeatmap:  NewDiagonalHeatmap(nil, 0, 10, nil, ModePack),
	}
	for kind, p := range painters {
		assert.Equal(t, kind, p.Kind())

		// Nothing to draw is not an error.
		d := draw(t, p, 100, 40, 10, nil)
		assert.Empty(t, d.res.Incomplete, kind.String())
		assert.Zero(t, d.res.Positions.Len(), kind.String())
	}
}

func TestDefaultBaseColor(t *testing.T) {
	assert.Equal(t, ggtrack.MustColor("#00AA00"), DefaultBaseColor('A'))
	assert.Equal(t, DefaultBaseColor('T'), DefaultBaseColor('t'))
	assert.Equal(t, DefaultBaseColor('N'), DefaultBaseColor('?'))
}

func TestDashedLine(t *testing.T) {
	r := recording.NewRecorder(100, 10)
	dashedLine(r, 10, 5, 50, 5, 4)
	d := drawn{rec: r.FinishRecording()}

	rs := d.rects()
	// 40px make ten dash steps; every other one is filled.
	require.Len(t, rs, 5)
	for i, fr := range rs {
		assert.Equal(t, rect(10+float64(i)*8, 5, 4, 1), fr.Rect)
	}
}

func TestDashedLine_TooShort(t *testing.T) {
	r := recording.NewRecorder(100, 10)
	dashedLine(r, 10, 5, 13, 5, 4)
	assert.Zero(t, r.Len())
}

func TestDeletionDrawer(t *testing.T) {
	testCases := []struct {
		name   string
		detail bool
		want   recording.Rect
	}{
		{"detail", true, rect(45, 1+(9-1.8)/2, 30, 1.8)},
		{"overview", false, rect(45, 1+(9-5.4)/2, 30, 5.4)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := recording.NewRecorder(100, 10)
			deletionDrawer{rowHeight: 9, scale: 10, detail: tc.detail}.draw(r, 45, 1, 3)
			d := drawn{rec: r.FinishRecording()}

			rs := d.rectsIn(ggtrack.Black)
			require.Len(t, rs, 1)
			assert.InDelta(t, tc.want.MinX, rs[0].Rect.MinX, 1e-9)
			assert.InDelta(t, tc.want.MinY, rs[0].Rect.MinY, 1e-9)
			assert.InDelta(t, tc.want.Width(), rs[0].Rect.Width(), 1e-9)
			assert.InDelta(t, tc.want.Height(), rs[0].Rect.Height(), 1e-9)
		})
	}
}

func TestDeletionDrawer_MinimumWidth(t *testing.T) {
	r := recording.NewRecorder(100, 10)
	deletionDrawer{rowHeight: 9, scale: 0.01}.draw(r, 3, 0, 2)
	d := drawn{rec: r.FinishRecording()}

	rs := d.rects()
	require.Len(t, rs, 1)
	assert.Equal(t, 1.0, rs[0].Rect.Width())
}
