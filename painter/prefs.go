package painter

import (
	"math"

	"github.com/gogpu/ggtrack"
)

// Preferences is a flat set of drawing preferences as supplied by a view
// layer or a config file. Painters merge it once over their defaults.
//
// Values may be strings, numbers or booleans; colors may be given as
// strings or ggtrack.Color. Values of the wrong type are ignored.
type Preferences map[string]any

func (p Preferences) color(key string, def ggtrack.Color) ggtrack.Color {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch c := v.(type) {
	case ggtrack.Color:
		return c
	case string:
		parsed, err := ggtrack.ParseColor(c)
		if err == nil {
			return parsed
		}
	}
	ignored(key, v)
	return def
}

// number returns the numeric value for key and whether one was set.
func (p Preferences) number(key string) (float64, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	ignored(key, v)
	return 0, false
}

func (p Preferences) boolean(key string, def bool) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	ignored(key, v)
	return def
}

func (p Preferences) str(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	ignored(key, v)
	return def
}

func ignored(key string, v any) {
	ggtrack.Logger().Warn("ggtrack: ignoring preference", "key", key, "value", v)
}

// FeaturePrefs configures the linked-feature painters.
type FeaturePrefs struct {
	BlockColor         ggtrack.Color
	ConnectorColor     ggtrack.Color
	ReverseStrandColor ggtrack.Color
	LabelColor         ggtrack.Color
}

// DefaultFeaturePrefs returns the linked-feature defaults.
func DefaultFeaturePrefs() FeaturePrefs {
	return FeaturePrefs{
		BlockColor:         ggtrack.MustColor("#000"),
		ConnectorColor:     ggtrack.MustColor("#ccc"),
		ReverseStrandColor: ggtrack.MustColor("#000"),
		LabelColor:         ggtrack.Black,
	}
}

// mergeFeaturePrefs applies p over d. A missing reverse_strand_color
// follows block_color.
func mergeFeaturePrefs(d FeaturePrefs, p Preferences) FeaturePrefs {
	block := p.color("block_color", d.BlockColor)
	reverse := d.ReverseStrandColor
	if _, ok := p["block_color"]; ok {
		reverse = block
	}
	return FeaturePrefs{
		BlockColor:         block,
		ConnectorColor:     p.color("connector_color", d.ConnectorColor),
		ReverseStrandColor: p.color("reverse_strand_color", reverse),
		LabelColor:         p.color("label_color", d.LabelColor),
	}
}

// ReadPrefs configures the read painter.
type ReadPrefs struct {
	FeaturePrefs
	DetailBlockColor ggtrack.Color
	ShowInsertions   bool
	ShowDifferences  bool
}

// DefaultReadPrefs returns the read painter defaults.
func DefaultReadPrefs() ReadPrefs {
	return ReadPrefs{
		FeaturePrefs: FeaturePrefs{
			BlockColor:         ggtrack.MustColor("#AAA"),
			ConnectorColor:     ggtrack.MustColor("#ccc"),
			ReverseStrandColor: ggtrack.MustColor("#DDD"),
			LabelColor:         ggtrack.Black,
		},
		DetailBlockColor: ggtrack.MustColor("#AAA"),
		ShowInsertions:   false,
		ShowDifferences:  true,
	}
}

func mergeReadPrefs(d ReadPrefs, p Preferences) ReadPrefs {
	fp := d.FeaturePrefs
	return ReadPrefs{
		FeaturePrefs: FeaturePrefs{
			BlockColor:         p.color("block_color", fp.BlockColor),
			ConnectorColor:     p.color("connector_color", fp.ConnectorColor),
			ReverseStrandColor: p.color("reverse_strand_color", fp.ReverseStrandColor),
			LabelColor:         p.color("label_color", fp.LabelColor),
		},
		DetailBlockColor: p.color("detail_block_color", d.DetailBlockColor),
		ShowInsertions:   p.boolean("show_insertions", d.ShowInsertions),
		ShowDifferences:  p.boolean("show_differences", d.ShowDifferences),
	}
}

// SeriesPrefs configures the value-series painter. HasMin and HasMax report
// whether the bounds were given; missing bounds are derived from the data.
type SeriesPrefs struct {
	MinValue, MaxValue float64
	HasMin, HasMax     bool
	Mode               SeriesMode
	Color              ggtrack.Color
	OverflowColor      ggtrack.Color
}

// DefaultSeriesPrefs returns the value-series defaults.
func DefaultSeriesPrefs() SeriesPrefs {
	return SeriesPrefs{
		Mode:          SeriesHistogram,
		Color:         ggtrack.MustColor("#000"),
		OverflowColor: ggtrack.MustColor("#F66"),
	}
}

func mergeSeriesPrefs(d SeriesPrefs, p Preferences) SeriesPrefs {
	out := d
	if v, ok := p.number("min_value"); ok {
		out.MinValue, out.HasMin = v, true
	}
	if v, ok := p.number("max_value"); ok {
		out.MaxValue, out.HasMax = v, true
	}
	if s := p.str("mode", ""); s != "" {
		if m, err := ParseSeriesMode(s); err == nil {
			out.Mode = m
		} else {
			ignored("mode", s)
		}
	}
	out.Color = p.color("color", d.Color)
	out.OverflowColor = p.color("overflow_color", d.OverflowColor)
	return out
}

// HeatmapPrefs configures the diagonal heatmap painter.
type HeatmapPrefs struct {
	MinValue, MaxValue float64
	HasMin, HasMax     bool
	PosColor           ggtrack.Color
	NegColor           ggtrack.Color
}

// DefaultHeatmapPrefs returns the diagonal heatmap defaults.
func DefaultHeatmapPrefs() HeatmapPrefs {
	return HeatmapPrefs{
		PosColor: ggtrack.MustColor("#FF8C00"),
		NegColor: ggtrack.MustColor("#4169E1"),
	}
}

func mergeHeatmapPrefs(d HeatmapPrefs, p Preferences) HeatmapPrefs {
	out := d
	if v, ok := p.number("min_value"); ok {
		out.MinValue, out.HasMin = v, true
	}
	if v, ok := p.number("max_value"); ok {
		out.MaxValue, out.HasMax = v, true
	}
	out.PosColor = p.color("pos_color", d.PosColor)
	out.NegColor = p.color("neg_color", d.NegColor)
	return out
}

// VariantPrefs configures the variant painter.
type VariantPrefs struct {
	SummaryHeight  float64
	ShowSampleData bool
}

// DefaultVariantPrefs returns the variant painter defaults.
func DefaultVariantPrefs() VariantPrefs {
	return VariantPrefs{SummaryHeight: 30, ShowSampleData: true}
}

func mergeVariantPrefs(d VariantPrefs, p Preferences) VariantPrefs {
	out := d
	if v, ok := p.number("summary_height"); ok {
		out.SummaryHeight = v
	}
	out.ShowSampleData = p.boolean("show_sample_data", d.ShowSampleData)
	return out
}
