package recording

import (
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggtrack"
)

// TextStyle carries the paint state of a text run.
type TextStyle struct {
	Align ggtrack.TextAlign
	Bold  bool
	Fill  ggtrack.FillStyle
	Alpha float64
}

// Backend renders recorded commands to an output format. All coordinates
// it receives are in device space.
//
// Backends are created through the registry with NewBackend and register
// themselves in init:
//
//	func init() {
//		recording.Register("svg", func() recording.Backend {
//			return NewSVGBackend()
//		})
//	}
type Backend interface {
	// Begin prepares a canvas of the given size. It is called once before
	// any drawing.
	Begin(width, height int) error

	// End finishes the output. Output methods are valid afterwards.
	End() error

	// FillRect fills an axis-aligned rectangle.
	FillRect(rect Rect, style ggtrack.FillStyle, alpha float64)

	// FillPath fills a path using the non-zero rule.
	FillPath(path *gg.Path, style ggtrack.FillStyle, alpha float64)

	// StrokePath strokes a path with the given line width.
	StrokePath(path *gg.Path, style ggtrack.FillStyle, width, alpha float64)

	// FillText draws s anchored at (x, y) on the baseline.
	FillText(s string, x, y float64, style TextStyle)
}

// WriterBackend is a Backend that can write its output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered output. Call it after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend is a Backend that can save its output to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered output to path. Call it after End.
	SaveToFile(path string) error
}
