package recording

import (
	"math"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggtrack"
)

// DefaultFontSize is the label text size in pixels.
const DefaultFontSize = 11

// fallbackAdvance is the per-rune width used when no face is available.
const fallbackAdvance = 6

var (
	defaultFaceOnce sync.Once
	defaultFace     text.Face
)

// DefaultFace returns the Go regular face at DefaultFontSize, or nil if it
// cannot be loaded.
func DefaultFace() text.Face {
	defaultFaceOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			ggtrack.Logger().Warn("recording: loading default face", "err", err)
			return
		}
		defaultFace = src.Face(DefaultFontSize)
	})
	return defaultFace
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithFace measures text with face.
func WithFace(face text.Face) Option {
	return func(r *Recorder) {
		r.face = face
	}
}

// WithFixedAdvance measures every rune as px pixels wide. It makes label
// geometry independent of fonts.
func WithFixedAdvance(px float64) Option {
	return func(r *Recorder) {
		r.face = nil
		r.advance = px
	}
}

// Recorder captures drawing operations as commands. It implements
// ggtrack.Surface with HTML canvas semantics.
//
// Example:
//
//	rec := recording.NewRecorder(800, 40)
//	rec.SetFillStyle(ggtrack.MustColor("#336699"))
//	rec.FillRect(10, 10, 100, 20)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// Current path, in device space.
	path *gg.Path

	state recorderState
	stack []recorderState

	face    text.Face
	advance float64
}

// recorderState is the graphics state saved by Save.
type recorderState struct {
	fill      ggtrack.FillStyle
	stroke    ggtrack.FillStyle
	alpha     float64
	lineWidth float64
	transform gg.Matrix
	align     ggtrack.TextAlign
	bold      bool
}

var _ ggtrack.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for the given dimensions. It starts with
// black fill and stroke, full opacity, a 1px line and identity transform.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		path:      gg.NewPath(),
		state: recorderState{
			fill:      ggtrack.Black,
			stroke:    ggtrack.Black,
			alpha:     1,
			lineWidth: 1,
			transform: gg.Identity(),
		},
		stack:   make([]recorderState, 0, 8),
		face:    DefaultFace(),
		advance: fallbackAdvance,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int { return len(r.commands) }

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder should not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Save pushes the graphics state.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
}

// Restore pops the graphics state. Restore without a matching Save is a
// no-op.
func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Translate implements ggtrack.Surface.
func (r *Recorder) Translate(x, y float64) {
	r.state.transform = r.state.transform.Multiply(gg.Translate(x, y))
}

// Rotate implements ggtrack.Surface.
func (r *Recorder) Rotate(angle float64) {
	r.state.transform = r.state.transform.Multiply(gg.Rotate(angle))
}

// Scale implements ggtrack.Surface.
func (r *Recorder) Scale(sx, sy float64) {
	r.state.transform = r.state.transform.Multiply(gg.Scale(sx, sy))
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() gg.Matrix { return r.state.transform }

// SetFillStyle implements ggtrack.Surface. A nil style is ignored.
func (r *Recorder) SetFillStyle(style ggtrack.FillStyle) {
	if style != nil {
		r.state.fill = style
	}
}

// SetStrokeStyle implements ggtrack.Surface. A nil style is ignored.
func (r *Recorder) SetStrokeStyle(style ggtrack.FillStyle) {
	if style != nil {
		r.state.stroke = style
	}
}

// SetGlobalAlpha implements ggtrack.Surface. Values outside [0, 1] are
// ignored, as on a canvas.
func (r *Recorder) SetGlobalAlpha(alpha float64) {
	if alpha >= 0 && alpha <= 1 {
		r.state.alpha = alpha
	}
}

// SetLineWidth implements ggtrack.Surface.
func (r *Recorder) SetLineWidth(width float64) {
	if width > 0 {
		r.state.lineWidth = width
	}
}

// FillRect implements ggtrack.Surface.
func (r *Recorder) FillRect(x, y, w, h float64) {
	if w == 0 || h == 0 || math.IsNaN(w) || math.IsNaN(h) {
		return
	}
	m := r.state.transform
	style := r.resources.AddStyle(r.state.fill)
	if m.B == 0 && m.D == 0 {
		p0 := m.TransformPoint(gg.Point{X: x, Y: y})
		p1 := m.TransformPoint(gg.Point{X: x + w, Y: y + h})
		r.commands = append(r.commands, FillRectCommand{
			Rect:  NewRect(p0.X, p0.Y, p1.X-p0.X, p1.Y-p0.Y),
			Style: style,
			Alpha: r.state.alpha,
		})
		return
	}

	quad := gg.NewPath()
	quad.MoveTo(x, y)
	quad.LineTo(x+w, y)
	quad.LineTo(x+w, y+h)
	quad.LineTo(x, y+h)
	quad.Close()
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(quad.Transform(m)),
		Style: style,
		Alpha: r.state.alpha,
	})
}

// BeginPath implements ggtrack.Surface.
func (r *Recorder) BeginPath() {
	r.path = gg.NewPath()
}

func (r *Recorder) device(x, y float64) gg.Point {
	return r.state.transform.TransformPoint(gg.Point{X: x, Y: y})
}

// MoveTo implements ggtrack.Surface.
func (r *Recorder) MoveTo(x, y float64) {
	p := r.device(x, y)
	r.path.MoveTo(p.X, p.Y)
}

// LineTo implements ggtrack.Surface. On an empty path it acts as MoveTo.
func (r *Recorder) LineTo(x, y float64) {
	p := r.device(x, y)
	if !r.path.HasCurrentPoint() {
		r.path.MoveTo(p.X, p.Y)
		return
	}
	r.path.LineTo(p.X, p.Y)
}

// Arc implements ggtrack.Surface. The arc runs clockwise (in device space
// with y down) from startAngle to endAngle, joined to the current point by
// a straight line.
func (r *Recorder) Arc(cx, cy, radius, startAngle, endAngle float64) {
	if radius <= 0 {
		return
	}
	sx := cx + radius*math.Cos(startAngle)
	sy := cy + radius*math.Sin(startAngle)
	r.LineTo(sx, sy)

	arc := gg.NewPath()
	arc.MoveTo(sx, sy)
	arc.Arc(cx, cy, radius, startAngle, endAngle)
	for _, el := range arc.Transform(r.state.transform).Elements()[1:] {
		if c, ok := el.(gg.CubicTo); ok {
			r.path.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
		}
	}
}

// ClosePath implements ggtrack.Surface.
func (r *Recorder) ClosePath() {
	if r.path.HasCurrentPoint() {
		r.path.Close()
	}
}

// Fill implements ggtrack.Surface.
func (r *Recorder) Fill() {
	if !r.path.HasCurrentPoint() {
		return
	}
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(r.path),
		Style: r.resources.AddStyle(r.state.fill),
		Alpha: r.state.alpha,
	})
}

// Stroke implements ggtrack.Surface.
func (r *Recorder) Stroke() {
	if !r.path.HasCurrentPoint() {
		return
	}
	m := r.state.transform
	scale := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
	r.commands = append(r.commands, StrokePathCommand{
		Path:  r.resources.AddPath(r.path),
		Style: r.resources.AddStyle(r.state.stroke),
		Alpha: r.state.alpha,
		Width: r.state.lineWidth * scale,
	})
}

// SetTextAlign implements ggtrack.Surface.
func (r *Recorder) SetTextAlign(align ggtrack.TextAlign) {
	r.state.align = align
}

// SetBold implements ggtrack.Surface.
func (r *Recorder) SetBold(bold bool) {
	r.state.bold = bold
}

// MeasureText implements ggtrack.Surface.
func (r *Recorder) MeasureText(s string) float64 {
	if r.face != nil {
		w, _ := text.Measure(s, r.face)
		return w
	}
	return r.advance * float64(utf8.RuneCountInString(s))
}

// FillText implements ggtrack.Surface.
func (r *Recorder) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	p := r.device(x, y)
	r.commands = append(r.commands, FillTextCommand{
		Text:  s,
		X:     p.X,
		Y:     p.Y,
		Align: r.state.align,
		Bold:  r.state.bold,
		Style: r.resources.AddStyle(r.state.fill),
		Alpha: r.state.alpha,
	})
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Style returns the fill style referenced by a command.
func (r *Recording) Style(ref StyleRef) ggtrack.FillStyle {
	return r.resources.Style(ref)
}

// Path returns the path referenced by a command.
func (r *Recording) Path(ref PathRef) *gg.Path {
	return r.resources.Path(ref)
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillRectCommand:
			backend.FillRect(c.Rect, r.Style(c.Style), c.Alpha)
		case FillPathCommand:
			backend.FillPath(r.Path(c.Path), r.Style(c.Style), c.Alpha)
		case StrokePathCommand:
			backend.StrokePath(r.Path(c.Path), r.Style(c.Style), c.Width, c.Alpha)
		case FillTextCommand:
			backend.FillText(c.Text, c.X, c.Y, TextStyle{
				Align: c.Align,
				Bold:  c.Bold,
				Fill:  r.Style(c.Style),
				Alpha: c.Alpha,
			})
		}
	}
	return backend.End()
}
