package recording

import "github.com/gogpu/ggtrack"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillRect   CommandType = iota // Fill an axis-aligned rectangle
	CmdFillPath                      // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdFillText                      // Draw a text run
)

var commandTypeNames = [...]string{
	CmdFillRect:   "FillRect",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdFillText:   "FillText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all recorded commands.
type Command interface {
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// StyleRef is a reference to a fill style in the resource pool.
type StyleRef uint32

// Rect is an axis-aligned rectangle in device space.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect returns the rectangle at (x, y) with the given size. Negative
// sizes extend left or up from (x, y).
func NewRect(x, y, w, h float64) Rect {
	r := Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
	if r.MaxX < r.MinX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MaxY < r.MinY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}
	return r
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// FillRectCommand fills an axis-aligned rectangle.
type FillRectCommand struct {
	Rect  Rect
	Style StyleRef
	Alpha float64
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// FillPathCommand fills a closed path.
type FillPathCommand struct {
	Path  PathRef
	Style StyleRef
	Alpha float64
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path  PathRef
	Style StyleRef
	Alpha float64
	// Width is the line width in device pixels.
	Width float64
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillTextCommand draws a run of text whose anchor, given by Align, sits at
// (X, Y) on the baseline.
type FillTextCommand struct {
	Text  string
	X, Y  float64
	Align ggtrack.TextAlign
	Bold  bool
	Style StyleRef
	Alpha float64
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }
