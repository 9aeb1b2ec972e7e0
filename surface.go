package ggtrack

// TextAlign is the horizontal anchor of drawn text.
type TextAlign int

const (
	// AlignLeft places the text start at x.
	AlignLeft TextAlign = iota
	// AlignCenter centers the text on x.
	AlignCenter
	// AlignRight places the text end at x.
	AlignRight
)

// String returns the canvas name of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Surface is the drawing capability set painters issue primitives against.
// It mirrors the subset of an HTML canvas 2D context that track painting
// needs. Implementations own all state; painters never read pixels back.
//
// Surface methods are called from one goroutine in the order painters issue
// them. Later primitives paint over earlier ones.
type Surface interface {
	// State management
	Save()
	Restore()

	// Transformations apply to subsequent primitives.
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	// Paint state
	SetFillStyle(style FillStyle)
	SetStrokeStyle(style FillStyle)
	SetGlobalAlpha(alpha float64)
	SetLineWidth(width float64)

	// FillRect fills a rectangle. Negative sizes extend left/up from (x, y).
	FillRect(x, y, w, h float64)

	// Path construction. Fill and Stroke paint the current path without
	// clearing it; BeginPath starts a new one.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, startAngle, endAngle float64)
	ClosePath()
	Fill()
	Stroke()

	// Text
	SetTextAlign(align TextAlign)
	SetBold(bold bool)
	MeasureText(s string) float64
	FillText(s string, x, y float64)
}
