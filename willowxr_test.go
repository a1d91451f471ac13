package willowxr

import (
	"image/color"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Color ---

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"half alpha premultiplies", Color{1, 0, 0, 0.5}, color.RGBA{127, 0, 0, 127}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.ToRGBA(); got != tt.want {
				t.Errorf("ToRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{1, 1, 1, 0.5}.WithAlpha(0.5)
	if c.A != 0.25 || c.R != 1 {
		t.Errorf("WithAlpha = %+v", c)
	}
}

func TestPointerKindString(t *testing.T) {
	for kind, want := range map[PointerKind]string{
		PointerMotion:     "motion",
		PointerButtonDown: "down",
		PointerButtonUp:   "up",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestPointerEventButtons(t *testing.T) {
	if (PointerEvent{Kind: PointerMotion}).IsButton() {
		t.Error("motion is not a button event")
	}
	down := PointerEvent{Kind: PointerButtonDown}
	if !down.IsButton() || !down.Pressed() {
		t.Error("down should be a pressed button event")
	}
	up := PointerEvent{Kind: PointerButtonUp}
	if !up.IsButton() || up.Pressed() {
		t.Error("up should be a released button event")
	}
}
