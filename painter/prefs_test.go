package painter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/ggtrack"
)

// captureLog routes the package logger into a buffer for the duration of
// the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	ggtrack.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { ggtrack.SetLogger(nil) })
	return &buf
}

func TestMergeFeaturePrefs(t *testing.T) {
	d := DefaultFeaturePrefs()

	got := mergeFeaturePrefs(d, nil)
	assert.Equal(t, d, got)

	red := ggtrack.MustColor("#F00")
	got = mergeFeaturePrefs(d, Preferences{"block_color": "#F00"})
	assert.Equal(t, red, got.BlockColor)
	assert.Equal(t, red, got.ReverseStrandColor, "reverse strand color follows block color")

	got = mergeFeaturePrefs(d, Preferences{
		"block_color":          red,
		"reverse_strand_color": "blue",
	})
	assert.Equal(t, red, got.BlockColor)
	assert.Equal(t, ggtrack.MustColor("blue"), got.ReverseStrandColor)
	assert.Equal(t, d.ConnectorColor, got.ConnectorColor)
}

func TestMergeFeaturePrefs_WrongType(t *testing.T) {
	buf := captureLog(t)

	got := mergeFeaturePrefs(DefaultFeaturePrefs(), Preferences{"label_color": 42, "connector_color": "not a color"})
	assert.Equal(t, ggtrack.Black, got.LabelColor)
	assert.Equal(t, ggtrack.MustColor("#ccc"), got.ConnectorColor)
	assert.Contains(t, buf.String(), "ignoring preference")
	assert.Contains(t, buf.String(), "key=label_color")
	assert.Contains(t, buf.String(), "key=connector_color")
}

func TestMergeReadPrefs(t *testing.T) {
	d := DefaultReadPrefs()
	assert.False(t, d.ShowInsertions)
	assert.True(t, d.ShowDifferences)

	got := mergeReadPrefs(d, Preferences{
		"show_insertions":    true,
		"show_differences":   "yes",
		"detail_block_color": "#123",
	})
	assert.True(t, got.ShowInsertions)
	assert.True(t, got.ShowDifferences, "non-bool values are ignored")
	assert.Equal(t, ggtrack.MustColor("#123"), got.DetailBlockColor)
	assert.Equal(t, d.FeaturePrefs, got.FeaturePrefs)
}

func TestMergeSeriesPrefs(t *testing.T) {
	buf := captureLog(t)
	d := DefaultSeriesPrefs()

	got := mergeSeriesPrefs(d, Preferences{"min_value": 3, "max_value": 7.5, "mode": "line"})
	assert.True(t, got.HasMin)
	assert.True(t, got.HasMax)
	assert.Equal(t, 3.0, got.MinValue)
	assert.Equal(t, 7.5, got.MaxValue)
	assert.Equal(t, SeriesLine, got.Mode)

	got = mergeSeriesPrefs(d, Preferences{"mode": "Bogus", "max_value": "10"})
	assert.Equal(t, SeriesHistogram, got.Mode)
	assert.False(t, got.HasMax)
	assert.Contains(t, buf.String(), "key=mode")
	assert.Contains(t, buf.String(), "key=max_value")
}

func TestMergeHeatmapPrefs(t *testing.T) {
	got := mergeHeatmapPrefs(DefaultHeatmapPrefs(), Preferences{"pos_color": "red", "min_value": -1.0})
	assert.Equal(t, ggtrack.MustColor("red"), got.PosColor)
	assert.Equal(t, ggtrack.MustColor("#4169E1"), got.NegColor)
	assert.True(t, got.HasMin)
	assert.False(t, got.HasMax)
}

func TestMergeVariantPrefs(t *testing.T) {
	got := mergeVariantPrefs(DefaultVariantPrefs(), Preferences{"summary_height": 40, "show_sample_data": false})
	assert.Equal(t, 40.0, got.SummaryHeight)
	assert.False(t, got.ShowSampleData)
}
