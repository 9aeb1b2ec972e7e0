package ggtrack

import "math"

// Ramp maps a numeric value to a color.
type Ramp interface {
	Map(value float64) Color
}

// LinearRamp interpolates between two colors over [StartValue, EndValue].
// Values outside the domain are clamped to its ends.
//
// A zero-width domain (StartValue == EndValue) is a constant ramp that
// always yields Start.
//
// Example:
//
//	ramp := ggtrack.NewLinearRamp(ggtrack.White, ggtrack.MustColor("#f00"), 0, 100)
//	c := ramp.Map(50) // halfway between white and red
type LinearRamp struct {
	Start, End           Color
	StartValue, EndValue float64
}

// NewLinearRamp creates a ramp from start (at startValue) to end (at endValue).
func NewLinearRamp(start, end Color, startValue, endValue float64) LinearRamp {
	return LinearRamp{Start: start, End: end, StartValue: startValue, EndValue: endValue}
}

// Map returns the color for value.
func (r LinearRamp) Map(value float64) Color {
	span := r.EndValue - r.StartValue
	if span == 0 || math.IsNaN(value) {
		return r.Start
	}
	value = math.Min(math.Max(value, r.StartValue), r.EndValue)
	t := (value - r.StartValue) / span
	return r.Start.Mix(r.End, 1-t)
}

// SplitRamp is a two-sided ramp for signed values: zero maps to Mid,
// EndValue maps to Pos and StartValue (negative) maps to Neg.
type SplitRamp struct {
	Positive, Negative   LinearRamp
	StartValue, EndValue float64
}

// NewSplitRamp creates a split ramp over [startValue, endValue].
func NewSplitRamp(neg, mid, pos Color, startValue, endValue float64) SplitRamp {
	return SplitRamp{
		Positive:   NewLinearRamp(mid, pos, 0, endValue),
		Negative:   NewLinearRamp(mid, neg, 0, -startValue),
		StartValue: startValue,
		EndValue:   endValue,
	}
}

// Map returns the color for value.
func (r SplitRamp) Map(value float64) Color {
	value = math.Min(math.Max(value, r.StartValue), r.EndValue)
	if value >= 0 {
		return r.Positive.Map(value)
	}
	return r.Negative.Map(-value)
}

var (
	_ Ramp = LinearRamp{}
	_ Ramp = SplitRamp{}
)
