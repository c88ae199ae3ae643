package geom

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{
			name: "even dimensions",
			rect: Rect{X: 100, Y: 100, W: 20, H: 10},
			want: Point{X: 110, Y: 105},
		},
		{
			name: "odd dimensions truncate",
			rect: Rect{X: 0, Y: 0, W: 5, H: 7},
			want: Point{X: 2, Y: 3},
		},
		{
			name: "zero size degenerates to origin",
			rect: Rect{X: 42, Y: 17},
			want: Point{X: 42, Y: 17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Center(); got != tt.want {
				t.Errorf("Center() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fully inside", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"flush with edges", Rect{X: 0, Y: 0, W: 100, H: 100}, true},
		{"overflows right", Rect{X: 90, Y: 0, W: 20, H: 10}, false},
		{"starts before top", Rect{X: 0, Y: -1, W: 10, H: 10}, false},
		{"larger than outer", Rect{X: -10, Y: -10, W: 120, H: 120}, false},
		{"zero-size on edge", Rect{X: 100, Y: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectPadInset(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	in := Insets{Top: 1, Left: 2, Right: 3, Bottom: 4}

	padded := r.Pad(in)
	want := Rect{X: 8, Y: 19, W: 105, H: 55}
	if padded != want {
		t.Errorf("Pad() = %v, want %v", padded, want)
	}

	// Inset is the inverse of Pad.
	if got := padded.Inset(in); got != r {
		t.Errorf("Pad().Inset() = %v, want %v", got, r)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{X: 5, Y: 5}, true},
		{"origin inclusive", Point{X: 0, Y: 0}, true},
		{"right edge exclusive", Point{X: 10, Y: 5}, false},
		{"bottom edge exclusive", Point{X: 5, Y: 10}, false},
		{"outside", Point{X: -1, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestInsets(t *testing.T) {
	in := Insets{Top: 1, Left: 2, Right: 3, Bottom: 4}
	if got := in.Horizontal(); got != 5 {
		t.Errorf("Horizontal() = %d, want 5", got)
	}
	if got := in.Vertical(); got != 5 {
		t.Errorf("Vertical() = %d, want 5", got)
	}
	if in.IsZero() {
		t.Error("IsZero() = true for non-zero insets")
	}
	if !(Insets{}).IsZero() {
		t.Error("IsZero() = false for zero insets")
	}
}

func TestPointAddSub(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 1, Y: -2}

	if got := p.Add(q); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add() = %v", got)
	}
	if got := p.Sub(q); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v", got)
	}
}

func TestRectString(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 300, H: 200}
	if got := r.String(); got != "300x200+10+20" {
		t.Errorf("String() = %q", got)
	}
}
