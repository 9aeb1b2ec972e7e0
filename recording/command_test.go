package recording

import "testing"

func TestCommandTypeString(t *testing.T) {
	if got := CmdFillText.String(); got != "FillText" {
		t.Errorf("String() = %q", got)
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       Rect
	}{
		{"positive", 1, 2, 3, 4, Rect{1, 2, 4, 6}},
		{"negative height", 5, 20, 10, -10, Rect{5, 10, 15, 20}},
		{"negative width", 5, 0, -5, 2, Rect{0, 0, 5, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.x, tt.y, tt.w, tt.h)
			if r != tt.want {
				t.Errorf("NewRect = %+v, want %+v", r, tt.want)
			}
			if r.Width() < 0 || r.Height() < 0 {
				t.Errorf("negative size %vx%v", r.Width(), r.Height())
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 5)
	if !r.Contains(0, 0) || !r.Contains(9.9, 4.9) {
		t.Error("inside points not contained")
	}
	if r.Contains(10, 0) || r.Contains(0, 5) {
		t.Error("max edges are exclusive")
	}
	if !NewRect(3, 3, 0, 4).Empty() || r.Empty() {
		t.Error("Empty() wrong")
	}
}
