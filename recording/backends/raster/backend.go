// Package raster plays recordings back onto a gg.Context and writes PNG.
//
// Importing the package registers the backend as "raster":
//
//	import _ "github.com/gogpu/ggtrack/recording/backends/raster"
//
//	b, _ := recording.NewBackend("raster")
//	r.Playback(b)
//	b.(recording.FileBackend).SaveToFile("track.png")
//
// Labels use the Go fonts from golang.org/x/image.
package raster

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

var (
	facesOnce         sync.Once
	regular, boldFace text.Face
	facesErr          error
)

func loadFaces() error {
	facesOnce.Do(func() {
		var src *text.FontSource
		if src, facesErr = text.NewFontSource(goregular.TTF); facesErr != nil {
			return
		}
		regular = src.Face(recording.DefaultFontSize)
		if src, facesErr = text.NewFontSource(gobold.TTF); facesErr != nil {
			return
		}
		boldFace = src.Face(recording.DefaultFontSize)
	})
	return facesErr
}

// Option configures a Backend.
type Option func(*Backend)

// WithBackground fills the canvas with c on Begin. The default is white.
func WithBackground(c ggtrack.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// Backend renders recordings to an image using gg.Context.
type Backend struct {
	ctx        *gg.Context
	width      int
	height     int
	background ggtrack.Color
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a raster backend. Begin must be called before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{background: ggtrack.White}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin creates the canvas.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	if err := loadFaces(); err != nil {
		return fmt.Errorf("raster: loading fonts: %w", err)
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.ctx.ClearWithColor(b.background.GG())
	return nil
}

// End finishes rendering.
func (b *Backend) End() error {
	return nil
}

// FillRect fills rect, given in device space.
func (b *Backend) FillRect(rect recording.Rect, style ggtrack.FillStyle, alpha float64) {
	if rect.Empty() || !b.applyStyle(style, alpha) {
		return
	}
	b.ctx.Identity()
	b.ctx.ClearPath()
	b.ctx.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	_ = b.ctx.Fill()
}

// FillPath fills path, given in device space.
func (b *Backend) FillPath(path *gg.Path, style ggtrack.FillStyle, alpha float64) {
	if path == nil || !b.applyStyle(style, alpha) {
		return
	}
	b.setPath(path)
	_ = b.ctx.Fill()
}

// StrokePath strokes path, given in device space.
func (b *Backend) StrokePath(path *gg.Path, style ggtrack.FillStyle, width, alpha float64) {
	if path == nil || !b.applyStyle(style, alpha) {
		return
	}
	b.ctx.SetLineWidth(width)
	b.setPath(path)
	_ = b.ctx.Stroke()
}

// FillText draws s with the label face. Patterns are not supported for
// text; it is drawn in black instead.
func (b *Backend) FillText(s string, x, y float64, style recording.TextStyle) {
	face := regular
	if style.Bold {
		face = boldFace
	}
	if face == nil {
		return
	}
	c, ok := style.Fill.(ggtrack.Color)
	if !ok {
		c = ggtrack.Black
	}
	b.ctx.Identity()
	b.ctx.SetFont(face)
	b.ctx.SetColor(c.WithAlpha(c.A * style.Alpha))

	w, _ := b.ctx.MeasureString(s)
	switch style.Align {
	case ggtrack.AlignCenter:
		x -= w / 2
	case ggtrack.AlignRight:
		x -= w
	}
	b.ctx.DrawString(s, x, y)
}

// WriteTo writes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile writes the image as PNG to path.
func (b *Backend) SaveToFile(path string) error {
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// Width returns the canvas width.
func (b *Backend) Width() int { return b.width }

// Height returns the canvas height.
func (b *Backend) Height() int { return b.height }

// applyStyle sets the fill paint and reports whether anything is visible.
func (b *Backend) applyStyle(style ggtrack.FillStyle, alpha float64) bool {
	if alpha <= 0 {
		return false
	}
	switch s := style.(type) {
	case ggtrack.Color:
		c := s.GG()
		c.A *= alpha
		b.ctx.SetFillBrush(gg.Solid(c))
	case *ggtrack.Pattern:
		var p gg.Pattern = s
		if alpha < 1 {
			p = fadedPattern{p: s, alpha: alpha}
		}
		b.ctx.SetFillPattern(p)
	default:
		return false
	}
	return true
}

// setPath replaces the context path with path under identity transform.
func (b *Backend) setPath(path *gg.Path) {
	b.ctx.Identity()
	b.ctx.ClearPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			b.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			b.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			b.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			b.ctx.ClosePath()
		}
	}
}

// fadedPattern scales the alpha of another pattern.
type fadedPattern struct {
	p     gg.Pattern
	alpha float64
}

func (f fadedPattern) ColorAt(x, y float64) gg.RGBA {
	c := f.p.ColorAt(x, y)
	c.A *= f.alpha
	return c
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
