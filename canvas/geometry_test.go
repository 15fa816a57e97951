package canvas

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, -4)); got != Pt(4, -2) {
		t.Fatalf("Add = %v", got)
	}
	if got := Pt(1, 2).Sub(Pt(3, -4)); got != Pt(-2, 6) {
		t.Fatalf("Sub = %v", got)
	}
	if got := Pt(3, 4).String(); got != "(3,4)" {
		t.Fatalf("String = %q", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 2, Width: 3, Height: 2}
	if !r.Contains(Pt(4, 3)) || r.Contains(Pt(5, 3)) {
		t.Fatalf("Contains is off by one")
	}
	if !r.ContainsRect(Rect{X: 2, Y: 2, Width: 3, Height: 2}) || r.ContainsRect(Rect{X: 2, Y: 2, Width: 4, Height: 1}) {
		t.Fatalf("ContainsRect is wrong")
	}
	if got := r.Intersection(Rect{X: 4, Y: 0, Width: 5, Height: 3}); got != (Rect{X: 4, Y: 2, Width: 1, Height: 1}) {
		t.Fatalf("Intersection = %+v", got)
	}
	if got := r.Intersection(Rect{X: 10, Y: 10, Width: 1, Height: 1}); !got.Empty() {
		t.Fatalf("disjoint Intersection = %+v, want empty", got)
	}
	if got := r.Translate(Pt(-2, 1)); got != (Rect{X: 0, Y: 3, Width: 3, Height: 2}) {
		t.Fatalf("Translate = %+v", got)
	}
}

func TestContainsRectNearIntLimit(t *testing.T) {
	bounds := Rect{Width: 20, Height: 20}
	for _, o := range []Rect{
		{X: math.MaxInt - 1, Width: 3, Height: 3},
		{Y: math.MaxInt - 1, Width: 3, Height: 3},
		{X: 2, Y: 2, Width: math.MaxInt, Height: 1},
	} {
		if bounds.ContainsRect(o) {
			t.Fatalf("ContainsRect(%+v) = true, want false", o)
		}
	}
	if !bounds.ContainsRect(Rect{X: 17, Y: 17, Width: 3, Height: 3}) {
		t.Fatalf("ContainsRect rejected the bottom-right corner")
	}
}
