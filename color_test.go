package ggtrack

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"fff", RGB(255, 255, 255)},
		{"#FFF", RGB(255, 255, 255)},
		{"a0b", RGB(0xaa, 0x00, 0xbb)},
		{"336699", RGB(0x33, 0x66, 0x99)},
		{"#F66", RGB(0xff, 0x66, 0x66)},
		{"#4169E1", RGB(0x41, 0x69, 0xe1)},
		{"black", Black},
		{"Yellow", RGB(255, 255, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "ff", "12345", "#1234567", "ggg", "zz0000", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestMustColor_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustColor did not panic on invalid input")
		}
	}()
	MustColor("nope!")
}

func TestColor_CSS(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"opaque", RGB(255, 102, 102), "#ff6666"},
		{"rounded", RGB(12.4, 12.6, 0), "#0c0d00"},
		{"clamped", RGB(300, -4, 128), "#ff0080"},
		{"translucent", NewColor([3]float64{255, 0, 0}, 0.5), "rgba(255,0,0,0.5)"},
		{"transparent", Transparent, "rgba(0,0,0,0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_ARGB(t *testing.T) {
	c := NewColor([3]float64{0x11, 0x22, 0x33}, 0.5)
	if got, want := c.ARGB(), "#80112233"; got != want {
		t.Errorf("ARGB() = %q, want %q", got, want)
	}
	if got, want := RGB(1, 2, 3).ARGB(), "#ff010203"; got != want {
		t.Errorf("ARGB() = %q, want %q", got, want)
	}
}

func TestColor_MixEndpoints(t *testing.T) {
	a := RGB(200, 40, 10)
	b := RGB(10, 220, 90)

	if got := a.Mix(b, 1); !sameRGB(got, a) {
		t.Errorf("a.Mix(b, 1) = %+v, want %+v", got, a)
	}
	if got := a.Mix(b, 0); !sameRGB(got, b) {
		t.Errorf("a.Mix(b, 0) = %+v, want %+v", got, b)
	}
	mid := a.Mix(b, 0.5)
	if !sameRGB(mid, RGB(105, 130, 50)) {
		t.Errorf("a.Mix(b, 0.5) = %+v, want midpoint", mid)
	}
}

func TestColor_MixSelf(t *testing.T) {
	colors := []Color{
		RGB(0, 0, 0),
		RGB(255, 128, 7),
		NewColor([3]float64{30, 60, 90}, 0.25),
	}
	for _, c := range colors {
		for _, w := range []float64{0, 0.1, 0.5, 0.9, 1} {
			got := c.Mix(c, w)
			if !sameRGB(got, c) || math.Abs(got.A-c.A) > 1e-9 {
				t.Errorf("%v.Mix(self, %v) = %+v", c, w, got)
			}
		}
	}
}

func TestColor_MixAlphaWeighting(t *testing.T) {
	opaque := RGB(255, 0, 0)
	faint := NewColor([3]float64{0, 0, 255}, 0)

	got := opaque.Mix(faint, 0.5)
	// The opaque color dominates the channels at equal weight.
	if got.R <= 127.5 || got.B >= 127.5 {
		t.Errorf("Mix(0.5) = %+v, want channels pulled towards the opaque color", got)
	}
	if math.Abs(got.A-0.5) > 1e-9 {
		t.Errorf("Mix(0.5) alpha = %v, want 0.5", got.A)
	}
}

func TestColor_RGBAInterface(t *testing.T) {
	r, g, b, a := RGB(255, 0, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
	r, _, _, a = NewColor([3]float64{255, 0, 0}, 0.5).RGBA()
	if diff(r, 0x7fff) > 1 || diff(a, 0x7fff) > 1 {
		t.Errorf("premultiplied RGBA() = (%d, %d), want ~0x7fff", r, a)
	}
}

func TestColor_GG(t *testing.T) {
	got := RGB(255, 0, 51).GG()
	if got.R != 1 || got.G != 0 || math.Abs(got.B-0.2) > 1e-9 || got.A != 1 {
		t.Errorf("GG() = %+v", got)
	}
}

func sameRGB(a, b Color) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
