package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 2, 2}, true},
		{"separate", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"touching_edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching_corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(&c.b); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.b.Intersects(&c.a); got != c.want {
				t.Fatalf("Intersects (swapped) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCircleOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"overlapping", Circle{0, 0, 10}, Circle{5, 0, 10}, true},
		{"separate", Circle{0, 0, 5}, Circle{20, 0, 5}, false},
		{"exactly_touching", Circle{0, 0, 5}, Circle{10, 0, 5}, false},
		{"concentric", Circle{0, 0, 5}, Circle{0, 0, 1}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(&c.b); got != c.want {
				t.Fatalf("Overlaps = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	cases := []struct {
		name string
		c    Circle
		r    Rect
		want bool
	}{
		{"center_inside", Circle{5, 5, 2}, Rect{0, 0, 10, 10}, true},
		{"edge_overlap", Circle{-3, 5, 5}, Rect{0, 0, 10, 10}, true},
		{"corner_miss", Circle{-4, -4, 5}, Rect{0, 0, 10, 10}, false},
		{"far_away", Circle{100, 100, 5}, Rect{0, 0, 10, 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.IntersectsRect(&c.r); got != c.want {
				t.Fatalf("IntersectsRect = %v, want %v", got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5, 0, 10) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1, 0, 10) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11, 0, 10) = %v", got)
	}
}
