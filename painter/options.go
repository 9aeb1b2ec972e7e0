package painter

import (
	"github.com/gogpu/ggtrack"
)

// BaseColorFunc returns the fill color for a nucleotide.
type BaseColorFunc func(base byte) ggtrack.Color

// Option configures a painter's collaborators.
type Option func(*options)

type options struct {
	alphaScaler  Scaler
	heightScaler Scaler
	refSeq       string
	baseColor    BaseColorFunc
	patterns     ggtrack.PatternSource
	charWidth    float64
	dashLength   float64
}

func defaultOptions() options {
	return options{
		alphaScaler:  ConstantScaler(1),
		heightScaler: ConstantScaler(1),
		baseColor:    DefaultBaseColor,
		patterns:     ggtrack.StrandPatterns(),
		dashLength:   4,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAlphaScaler sets the scaler for per-feature body alpha.
func WithAlphaScaler(s Scaler) Option {
	return func(o *options) {
		if s != nil {
			o.alphaScaler = s
		}
	}
}

// WithHeightScaler sets the scaler that shrinks Pack-mode thick regions.
func WithHeightScaler(s Scaler) Option {
	return func(o *options) {
		if s != nil {
			o.heightScaler = s
		}
	}
}

// WithReferenceSeq sets the reference sequence of the tile, starting at the
// view start. Read and variant painters compare bases against it.
func WithReferenceSeq(seq string) Option {
	return func(o *options) {
		o.refSeq = seq
	}
}

// WithBaseColors sets the nucleotide palette.
func WithBaseColors(fn BaseColorFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.baseColor = fn
		}
	}
}

// WithPatterns sets the source of strand hatch patterns.
func WithPatterns(src ggtrack.PatternSource) Option {
	return func(o *options) {
		o.patterns = src
	}
}

// WithCharWidth fixes the width of one sequence glyph. By default it is
// measured on the surface.
func WithCharWidth(w float64) Option {
	return func(o *options) {
		o.charWidth = w
	}
}

// WithDashLength sets the dash length of read pair connectors.
func WithDashLength(n float64) Option {
	return func(o *options) {
		if n > 0 {
			o.dashLength = n
		}
	}
}

var basePalette = map[byte]ggtrack.Color{
	'A': ggtrack.MustColor("#00AA00"),
	'C': ggtrack.MustColor("#0000FF"),
	'G': ggtrack.MustColor("#DDAA00"),
	'T': ggtrack.MustColor("#FF0000"),
	'N': ggtrack.MustColor("#888888"),
}

// DefaultBaseColor is the default nucleotide palette. Unknown bases are gray.
func DefaultBaseColor(base byte) ggtrack.Color {
	if base >= 'a' && base <= 'z' {
		base -= 'a' - 'A'
	}
	if c, ok := basePalette[base]; ok {
		return c
	}
	return basePalette['N']
}

// pattern looks up a strand hatch, tolerating a nil source.
func (o options) pattern(strand string, inverted bool) ggtrack.FillStyle {
	name := ggtrack.StrandPatternName(strand, inverted)
	if name == "" || o.patterns == nil {
		return nil
	}
	return o.patterns.Pattern(name)
}
