package common

// Rect is an axis-aligned rectangle with a top-left origin, in world pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether two rects overlap. Edges that merely touch do
// not count as an intersection.
func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// ContainsPoint reports whether (x, y) lies inside the rect.
func (r *Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Circle is a collision circle centered at (X, Y).
type Circle struct {
	X, Y float64
	R    float64
}

// Overlaps reports whether two circles overlap. The comparison uses squared
// distances so collision resolution never pays for a square root.
func (c *Circle) Overlaps(other *Circle) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	rr := c.R + other.R
	return dx*dx+dy*dy < rr*rr
}

// IntersectsRect reports whether the circle overlaps the rect, using the
// clamped nearest point on the rect. Squared distances again.
func (c *Circle) IntersectsRect(r *Rect) bool {
	nx := Clamp(c.X, r.X, r.X+r.Width)
	ny := Clamp(c.Y, r.Y, r.Y+r.Height)
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < c.R*c.R
}

// DistSq returns the squared distance between two points.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
