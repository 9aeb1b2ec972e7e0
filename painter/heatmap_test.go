package painter

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/recording"
)

func TestDiagonalHeatmap(t *testing.T) {
	contacts := []Contact{
		{UID: "a", Start1: 100, End1: 110, Start2: 100, End2: 110, Value: 4},
		{UID: "b", Start1: 110, End1: 120, Start2: 120, End2: 130, Value: -2},
	}
	p := NewDiagonalHeatmap(contacts, 100, 200, nil, ModePack)
	assert.Equal(t, 50, p.RequiredHeight(0, 100))
	assert.Equal(t, 51, p.RequiredHeight(0, 101))

	d := draw(t, p, 100, 50, 1, nil)
	assert.Empty(t, d.res.Incomplete)
	assert.Zero(t, d.count(recording.CmdFillRect), "cells are rotated")

	var cells []recording.FillPathCommand
	for _, c := range d.rec.Commands() {
		if fp, ok := c.(recording.FillPathCommand); ok {
			cells = append(cells, fp)
		}
	}
	require.Len(t, cells, 2)
	assert.Equal(t, ggtrack.MustColor("#FF8C00"), d.rec.Style(cells[0].Style))
	assert.Equal(t, ggtrack.MustColor("#4169E1"), d.rec.Style(cells[1].Style))

	// The diagonal of a cell on the main diagonal lies on the x axis.
	els := d.rec.Path(cells[0].Path).Elements()
	require.GreaterOrEqual(t, len(els), 4)
	corner, ok := els[2].(gg.LineTo)
	require.True(t, ok)
	assert.InDelta(t, 10, corner.Point.X, 1e-9)
	assert.InDelta(t, 0, corner.Point.Y, 1e-9)

	// Off-diagonal cells hang below it.
	for _, el := range d.rec.Path(cells[1].Path).Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			assert.GreaterOrEqual(t, e.Point.Y, -1e-9)
		case gg.LineTo:
			assert.GreaterOrEqual(t, e.Point.Y, -1e-9)
		}
	}
}

func TestDiagonalHeatmap_Ramp(t *testing.T) {
	p := NewDiagonalHeatmap(nil, 0, 10, Preferences{"min_value": -1, "max_value": 1, "pos_color": "red"}, ModePack)
	ramp := p.Ramp()
	assert.Equal(t, ggtrack.MustColor("red"), ramp.Map(1))
	assert.Equal(t, ggtrack.White, ramp.Map(0))
	assert.Equal(t, ggtrack.MustColor("#4169E1"), ramp.Map(-5))
}

func TestDiagonalHeatmap_Incomplete(t *testing.T) {
	contacts := []Contact{
		{UID: "left", Start1: 90, End1: 100, Start2: 100, End2: 110, Value: 1},
		{UID: "right", Start1: 150, End1: 160, Start2: 190, End2: 210, Value: 1},
		{UID: "in", Start1: 150, End1: 160, Start2: 160, End2: 170, Value: 1},
	}
	d := draw(t, NewDiagonalHeatmap(contacts, 100, 200, nil, ModePack), 100, 50, 1, nil)
	assert.Equal(t, []Record{contacts[0], contacts[1]}, d.res.Incomplete)
}
