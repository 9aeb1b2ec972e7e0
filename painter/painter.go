// Package painter turns genomic records into drawing primitives.
//
// Each painter is built once over its records, a view window
// [viewStart, viewEnd) and a set of preferences, then drawn onto a
// ggtrack.Surface at a given pixel size and scale (pixels per base):
//
//	p := painter.NewLinkedFeature(features, 95, 165, prefs, painter.ModePack)
//	res := p.Draw(surface, 700, p.RequiredHeight(len(lanes), 700), 10, slots)
//
// Draw never fails. Records outside the window are skipped, records that
// cross its edges are reported in Result.Incomplete, and Result.Positions
// maps pixels back to the records drawn there.
package painter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/interval"
)

// ErrUnknownMode is returned when a display mode name is not recognized.
var ErrUnknownMode = errors.New("painter: unknown mode")

// Kind identifies a painter variant.
type Kind int

const (
	KindValueSeries Kind = iota
	KindLinkedFeature
	KindArcLinkedFeature
	KindRead
	KindDiagonalHeatmap
	KindVariant
)

var kindNames = [...]string{
	KindValueSeries:      "value_series",
	KindLinkedFeature:    "linked_feature",
	KindArcLinkedFeature: "arc_linked_feature",
	KindRead:             "read",
	KindDiagonalHeatmap:  "diagonal_heatmap",
	KindVariant:          "variant",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("painter: unknown painter kind %q", s)
}

// Mode is a track display mode.
type Mode string

const (
	ModeDense    Mode = "Dense"
	ModeNoDetail Mode = "no_detail"
	ModeSquish   Mode = "Squish"
	ModePack     Mode = "Pack"
	ModeAuto     Mode = "Auto"
)

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeDense, ModeNoDetail, ModeSquish, ModePack, ModeAuto} {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// detail reports whether m may draw per-base detail.
func (m Mode) detail() bool { return m == ModePack || m == ModeAuto }

// SeriesMode is the drawing style of a value series.
type SeriesMode string

const (
	SeriesHistogram SeriesMode = "Histogram"
	SeriesLine      SeriesMode = "Line"
	SeriesFilled    SeriesMode = "Filled"
	SeriesCoverage  SeriesMode = "Coverage"
	SeriesIntensity SeriesMode = "Intensity"
)

// ParseSeriesMode returns the series mode with the given name.
func ParseSeriesMode(s string) (SeriesMode, error) {
	for _, m := range []SeriesMode{SeriesHistogram, SeriesLine, SeriesFilled, SeriesCoverage, SeriesIntensity} {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Row and element heights in pixels.
const (
	denseTrackHeight    = 10
	noDetailTrackHeight = 3
	squishTrackHeight   = 5
	packTrackHeight     = 10

	denseFeatureHeight    = 9
	noDetailFeatureHeight = 1
	squishFeatureHeight   = 3
	packFeatureHeight     = 9

	labelSpacing = 2
)

var connectorColor = ggtrack.MustColor("#ccc")

// Slots maps record ids to their packing lane.
type Slots map[string]int

// Result is what a draw pass returns.
type Result struct {
	// Incomplete lists drawn records that extend past the view window.
	Incomplete []Record
	// Positions maps pixels back to drawn records.
	Positions *PositionMapper
}

// Painter draws one track.
type Painter interface {
	Kind() Kind
	// RequiredHeight returns the pixel height needed for rows lanes (or
	// samples) at the given pixel width.
	RequiredHeight(rows, width int) int
	// Draw paints the records onto s. Slots may be nil in Dense mode.
	Draw(s ggtrack.Surface, width, height int, scale float64, slots Slots) Result
}

// view is the state shared by every painter.
type view struct {
	window interval.Interval
	mode   Mode
	opts   options
}

func newView(viewStart, viewEnd int, mode Mode, opts []Option) view {
	return view{
		window: interval.New(viewStart, viewEnd),
		mode:   mode,
		opts:   newOptions(opts),
	}
}

func (v view) mapper() Mapper { return Mapper{ViewStart: v.window.Start} }

// visible reports whether r overlaps the window.
func (v view) visible(r interval.Interval) bool {
	return r.Start < v.window.End && r.End > v.window.Start
}

// incomplete reports whether r crosses a window edge.
func (v view) incomplete(r interval.Interval) bool {
	return r.Start < v.window.Start || r.End > v.window.End
}

// charWidth returns the width of one sequence glyph on s.
func (v view) charWidth(s ggtrack.Surface) float64 {
	if v.opts.charWidth > 0 {
		return v.opts.charWidth
	}
	return s.MeasureText("A")
}

// refBase returns the reference base at genomic position pos, or 0 when no
// reference covers it.
func (v view) refBase(pos int) byte {
	i := pos - v.window.Start
	if i < 0 || i >= len(v.opts.refSeq) {
		return 0
	}
	return v.opts.refSeq[i]
}
