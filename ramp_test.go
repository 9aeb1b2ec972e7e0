package ggtrack

import (
	"math"
	"testing"
)

func TestLinearRamp_Endpoints(t *testing.T) {
	start := RGB(255, 255, 255)
	end := RGB(255, 0, 0)
	ramp := NewLinearRamp(start, end, 10, 20)

	if got := ramp.Map(10); !sameRGB(got, start) {
		t.Errorf("Map(start) = %+v, want %+v", got, start)
	}
	if got := ramp.Map(20); !sameRGB(got, end) {
		t.Errorf("Map(end) = %+v, want %+v", got, end)
	}
	if got := ramp.Map(15); !sameRGB(got, RGB(255, 127.5, 127.5)) {
		t.Errorf("Map(mid) = %+v", got)
	}
}

func TestLinearRamp_Clamps(t *testing.T) {
	ramp := NewLinearRamp(RGB(0, 0, 0), RGB(200, 100, 50), -5, 5)

	tests := []struct {
		name       string
		out, inner float64
	}{
		{"below", -100, -5},
		{"just below", -5.0001, -5},
		{"above", 1e9, 5},
		{"just above", 5.0001, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := ramp.Map(tt.out), ramp.Map(tt.inner); got != want {
				t.Errorf("Map(%v) = %+v, want %+v (clamped)", tt.out, got, want)
			}
		})
	}
}

func TestLinearRamp_ZeroWidthDomain(t *testing.T) {
	start := RGB(1, 2, 3)
	ramp := NewLinearRamp(start, RGB(9, 9, 9), 4, 4)
	for _, v := range []float64{-1, 4, 100, math.NaN()} {
		if got := ramp.Map(v); got != start {
			t.Errorf("Map(%v) = %+v, want start color", v, got)
		}
	}
}

func TestSplitRamp(t *testing.T) {
	neg := MustColor("#4169E1")
	pos := MustColor("#FF8C00")
	ramp := NewSplitRamp(neg, White, pos, -10, 20)

	tests := []struct {
		name  string
		value float64
		want  Color
	}{
		{"zero", 0, White},
		{"max", 20, pos},
		{"above max", 50, pos},
		{"min", -10, neg},
		{"below min", -30, neg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ramp.Map(tt.value); !sameRGB(got, tt.want) {
				t.Errorf("Map(%v) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}

	half := ramp.Map(10)
	if want := White.Mix(pos, 0.5); !sameRGB(half, want) {
		t.Errorf("Map(10) = %+v, want %+v", half, want)
	}
}
